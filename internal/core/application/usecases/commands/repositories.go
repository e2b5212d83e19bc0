// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each use case is a
// validated command object plus a handler that orchestrates the aggregate
// against the ports inside a unit of work. Handlers return typed errors
// from the errs package; no transport concern leaks in here.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The order repository and the event bus obtained from one unit
// of work share the same transaction, which is what makes the outbox write
// atomic with the aggregate write.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EventBusFactory provides access to the event bus within a
	// transaction.
	EventBusFactory interface {
		EventBus() ports.EventBus
	}

	// OrderUoW manages a transaction spanning the order aggregate write and
	// the event publication.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventBusFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
