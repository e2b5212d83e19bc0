package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must be safe to call from concurrent use-case
// invocations; no particular isolation level is mandated here, so the last
// writer's save wins unless the implementation adds its own guard.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier. Returns an
	// ObjectNotFoundError when no order with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order with the given identifier. Returns an
	// ObjectNotFoundError when no order with that id exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
