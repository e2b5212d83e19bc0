package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per use-case invocation,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code must
// explicitly manage the transaction lifecycle; repository and event bus
// operations obtained from the unit of work run inside the transaction
// started by Begin, so the aggregate write and the outbox event write share
// one atomic commit where the backend supports it.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// EventBus returns an EventBus bound to the current transaction.
	EventBus() EventBus
}
