// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the wholesale order engine. Every command attempt runs in exactly
// one unit of work: one database transaction spanning the client, product and
// order repositories.
//
// Key Features:
//   - Transaction management across the three repositories
//   - A per-transaction lock_timeout bounding row lock waits
//   - Contention failures (lock timeout, deadlock, serialization) reported as errs.ErrConflict
//   - Repository factory methods bound to the active transaction
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db, WithLockTimeout(2*time.Second))
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, number)
//	if err != nil {
//	    return err
//	}
//	p, err := uow.ProductRepository().GetForUpdate(ctx, reference)
//	if err != nil {
//	    return err
//	}
//	// ... mutate o and p, then save them
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Row locks are taken order first, then products by ascending reference
package postgres

import (
	"context"
	"fmt"
	"time"

	"wholesale/internal/adapters/out/postgres/clientrepo"
	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/adapters/out/postgres/productrepo"
	"wholesale/internal/core/ports"

	"gorm.io/gorm"
)

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithLockTimeout bounds how long a statement waits for a row lock. Zero keeps
// the server default (wait forever).
func WithLockTimeout(d time.Duration) Option {
	return func(f *GormUnitOfWorkFactory) {
		f.lockTimeout = d
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, WithLockTimeout(time.Second))
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		lockTimeout: f.lockTimeout,
	}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
// Repositories obtained while a transaction is active execute inside it;
// otherwise they use the main connection.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	lockTimeout time.Duration
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Translate("begin", tx.Error)
	}

	if uow.lockTimeout > 0 {
		// SET does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback()
			return pgerr.Translate("set lock timeout", err)
		}
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, and an
// errs.ConflictError when the server aborted the transaction for contention.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Translate("commit", err)
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, which is
// the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ClientRepository provides access to client persistence within the unit of work.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn())
}

// ProductRepository provides access to product persistence within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
