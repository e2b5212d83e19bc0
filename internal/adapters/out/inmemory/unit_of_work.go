package inmemory

import (
	"context"

	"orders/internal/core/ports"
)

// UnitOfWorkFactory hands out unit of work instances over one shared
// repository and event bus pair.
type UnitOfWorkFactory struct {
	orders *OrderRepository
	events *EventBus
}

// NewUnitOfWorkFactory creates a factory over the given repository and
// event bus.
func NewUnitOfWorkFactory(orders *OrderRepository, events *EventBus) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{orders: orders, events: events}
}

// Create produces a new UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{orders: f.orders, events: f.events}
}

// UnitOfWork satisfies the transactional port without real transaction
// semantics: writes apply immediately and rollback does not undo them.
// Good enough for development and handler-level tests; transactional
// guarantees come from the postgres implementation.
type UnitOfWork struct {
	orders *OrderRepository
	events *EventBus
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared order repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}

// EventBus returns the shared event bus.
func (uow *UnitOfWork) EventBus() ports.EventBus {
	return uow.events
}
