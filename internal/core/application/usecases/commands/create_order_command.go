package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// NewOrderItem carries the raw item fields of a create-order request. Field
// level invariants (positive quantity, finite price) are enforced by the
// aggregate when the order is constructed.
type NewOrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
	Metadata  map[string]any
}

// CreateOrderCommand represents a request to create a new order for a
// customer. The order id is optional: when empty, the handler generates
// one; when supplied, creation fails with a conflict if an order with that
// id already exists.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "cust-1", []NewOrderItem{
//	    {ProductID: "prod-1", Name: "Widget", Quantity: 1, UnitPrice: 10},
//	})
//	if err != nil {
//	    return err // ValidationError with field details
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	hasOrderID bool
	customerID string
	items      []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Structural validation failures are collected into a single
// ValidationError whose details map one message per offending field.
func NewCreateOrderCommand(orderID string, customerID string, items []NewOrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	details := make(map[string]string)

	if orderID != "" {
		id, err := kernel.UUIDFromString(orderID)
		if err != nil {
			details["orderId"] = "Invalid order id format"
		} else {
			cmd.orderID = id
			cmd.hasOrderID = true
		}
	}

	if customerID == "" {
		details["customerId"] = "Required"
	}
	cmd.customerID = customerID

	if len(items) == 0 {
		details["items"] = "Order must have at least one item"
	}
	cmd.items = items

	if len(details) > 0 {
		return CreateOrderCommand{}, errs.NewValidationErrorWithDetails("Invalid input", details)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order id and whether one was given.
func (c CreateOrderCommand) OrderID() (kernel.UUID, bool) {
	return c.orderID, c.hasOrderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return c.items
}
