// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return plain read models and never mutate aggregates.
package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its id.
//
// Example:
//
//	query, err := NewGetOrderQuery("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order. The order id must be
// a well-formed UUID.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValidationErrorWithDetails("Invalid input",
			map[string]string{"orderId": "Required"})
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, errs.NewValidationErrorWithDetails("Invalid input",
			map[string]string{"orderId": "Invalid order id format"})
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
