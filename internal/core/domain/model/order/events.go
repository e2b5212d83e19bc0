package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

// Event type tags published by the order use cases.
const (
	EventCreated   = "order.created"
	EventItemAdded = "order.item_added"
)

// CreatedPayload is the payload of an order.created event: the full
// primitive snapshot of the new order.
type CreatedPayload struct {
	Order Snapshot `json:"order"`
}

// ItemAddedPayload is the payload of an order.item_added event.
type ItemAddedPayload struct {
	OrderID   string  `json:"orderId"`
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// NewCreatedEvent builds the order.created domain event for an order.
func NewCreatedEvent(o *Order, occurredAt time.Time) (kernel.DomainEvent, error) {
	return kernel.NewDomainEvent(EventCreated, CreatedPayload{Order: o.Snapshot()}, occurredAt)
}

// NewItemAddedEvent builds the order.item_added domain event carrying the
// added line and the order's new total.
func NewItemAddedEvent(o *Order, sku string, qty int, unitPrice float64, occurredAt time.Time) (kernel.DomainEvent, error) {
	return kernel.NewDomainEvent(EventItemAdded, ItemAddedPayload{
		OrderID:   o.ID().String(),
		SKU:       sku,
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     o.Total(),
	}, occurredAt)
}
