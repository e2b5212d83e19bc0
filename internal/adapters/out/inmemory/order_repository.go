// Package inmemory provides map-backed implementations of the persistence
// ports. Intended for local development and tests; the HTTP boundary can
// run against it without a database.
package inmemory

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// OrderRepository stores orders in memory, keyed by id. Orders are kept as
// snapshots so callers never share aggregate instances with the store.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.Snapshot
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]order.Snapshot)}
}

// Add stores a new order. Fails with a ConflictError when an order with the
// same id already exists.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.orders[key]; exists {
		return errs.NewConflictError("order", key)
	}

	r.orders[key] = aggregate.Snapshot()
	return nil
}

// Update replaces a stored order. The save compares the aggregate's loaded
// version against the stored one and bumps it, so a concurrent update since
// the load fails with a StaleObjectError.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	stored, exists := r.orders[key]
	if !exists {
		return errs.NewObjectNotFoundError("order", key)
	}
	if stored.Version != aggregate.Version() {
		return errs.NewStaleObjectError("order", key)
	}

	snapshot := aggregate.Snapshot()
	snapshot.Version++
	r.orders[key] = snapshot
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	snapshot, exists := r.orders[id.String()]
	r.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return order.FromSnapshot(snapshot)
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, exists := r.orders[key]; !exists {
		return errs.NewObjectNotFoundError("order", key)
	}

	delete(r.orders, key)
	return nil
}
