package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// AddItemToOrderResult is the outcome of a successful AddItemToOrder call:
// the order id and the order's new total in the requested currency.
type AddItemToOrderResult struct {
	OrderID kernel.UUID
	Total   kernel.Money
}

// AddItemToOrderCommandHandler adds a product line to an existing order.
// The flow is strictly sequential: order lookup, unit-price resolution,
// aggregate mutation, persistence, event publication — with the repository
// write and the order.item_added outbox write sharing one transaction.
type AddItemToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    ports.PricingService
	clock      ports.Clock
}

// NewAddItemToOrderCommandHandler creates a handler for adding items to
// orders.
func NewAddItemToOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing ports.PricingService,
	clock ports.Clock,
) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the add-item command.
//
// A missing order fails with ObjectNotFoundError before the pricing port is
// ever consulted. When the command carries an explicit unit price the
// pricing port is not consulted at all; otherwise it is queried exactly
// once with (sku, currency), and any failure to obtain a price — absence or
// lookup error alike — surfaces as a ValidationError, because price
// unavailability is a business condition here, not an infrastructure fault.
func (h *AddItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) (AddItemToOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemToOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemToOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AddItemToOrderResult{}, err
	}

	unitPrice, err := h.resolveUnitPrice(ctx, cmd)
	if err != nil {
		return AddItemToOrderResult{}, err
	}

	item, err := order.NewItem(cmd.SKU(), cmd.SKU(), cmd.Qty(), unitPrice, nil)
	if err != nil {
		return AddItemToOrderResult{}, err
	}

	if err = existing.AddItem(item); err != nil {
		return AddItemToOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return AddItemToOrderResult{}, err
	}

	event, err := order.NewItemAddedEvent(existing, cmd.SKU(), cmd.Qty(), unitPrice, h.clock.Now())
	if err != nil {
		return AddItemToOrderResult{}, err
	}
	if err = uow.EventBus().Publish(ctx, []kernel.DomainEvent{event}); err != nil {
		return AddItemToOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemToOrderResult{}, err
	}

	total, err := kernel.NewMoney(existing.Total(), cmd.Currency())
	if err != nil {
		return AddItemToOrderResult{}, err
	}

	return AddItemToOrderResult{
		OrderID: existing.ID(),
		Total:   total,
	}, nil
}

func (h *AddItemToOrderCommandHandler) resolveUnitPrice(ctx context.Context, cmd AddItemToOrderCommand) (float64, error) {
	if price, supplied := cmd.UnitPrice(); supplied {
		return price, nil
	}

	price, err := h.pricing.GetCurrentPrice(ctx, cmd.SKU(), cmd.Currency())
	if err != nil {
		return 0, errs.NewValidationErrorWithDetails(
			"Price not available for sku/currency",
			map[string]string{"price": err.Error()},
		)
	}
	if err = price.Validate(); err != nil {
		return 0, errs.NewValidationErrorWithDetails(
			"Price not available for sku/currency",
			map[string]string{"price": "Pricing service returned no price"},
		)
	}

	return price.Amount(), nil
}
