package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete an order by id.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order, validating
// the id format.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if orderID == "" {
		return DeleteOrderCommand{}, errs.NewValidationErrorWithDetails("Invalid input",
			map[string]string{"orderId": "Required"})
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return DeleteOrderCommand{}, errs.NewValidationErrorWithDetails("Invalid input",
			map[string]string{"orderId": "Invalid order id format"})
	}

	return DeleteOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
