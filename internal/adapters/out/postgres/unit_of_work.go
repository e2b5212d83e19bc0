// Package postgres provides the GORM-based Unit of Work tying the order
// repository and the outbox event bus to one database transaction, so an
// aggregate write and its domain events commit or roll back together.
package postgres

import (
	"context"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a single database transaction. Repositories
// obtained from it while a transaction is active are bound to that
// transaction; outside a transaction they fall back to the main connection.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.EventBus().Publish(ctx, events); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is active, which makes the
// usual deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// EventBus returns an outbox-backed event bus bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) EventBus() ports.EventBus {
	return outboxrepo.NewGormOutboxEventBus(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
