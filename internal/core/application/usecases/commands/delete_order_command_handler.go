package commands

import (
	"context"
)

// DeleteOrderCommandHandler deletes an order unconditionally, regardless of
// its status — paid and shipped orders included. Restricting deletion by
// status is an open product question; see DESIGN.md.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. A missing order fails with an
// ObjectNotFoundError; otherwise the order is removed and the aggregate is
// never partially deleted.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
