package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order creation: it constructs the
// aggregate, persists it, and publishes an order.created event carrying the
// full order snapshot — all within one unit of work, so the event lands in
// the outbox atomically with the order row.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a Clock for
// event timestamps.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command and returns the assigned
// order id.
//
// When the command carries an explicit order id and an order with that id
// already exists, the call fails with a ConflictError and the stored order
// is left untouched — creation is never idempotent.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderID, supplied := cmd.OrderID()
	if supplied {
		if _, err := orderRepo.Get(ctx, orderID); err == nil {
			return kernel.UUID{}, errs.NewConflictError("order", orderID.String())
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, err
		}
	} else {
		orderID = kernel.NewUUID()
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		item, err := order.NewItem(in.ProductID, in.Name, in.Quantity, in.UnitPrice, in.Metadata)
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(orderID, cmd.CustomerID(), items, nil)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	event, err := order.NewCreatedEvent(newOrder, h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.EventBus().Publish(ctx, []kernel.DomainEvent{event}); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}
