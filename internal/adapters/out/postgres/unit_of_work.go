// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work wraps one database transaction, hands out
// repositories bound to that transaction, and carries the post-commit hook
// list for best-effort side effects.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	uow.RegisterPostCommit(func(ctx context.Context) error {
//	    return cache.SetStatus(ctx, order.ID(), order.Status())
//	})
//
//	return uow.Commit(ctx)
//
// Hooks run only after the transaction has committed. A hook failure is
// logged and swallowed: the relational store is the source of truth, and a
// committed write must not be reported as failed because a mirror or a
// broker was unavailable. Rollback discards the hooks untouched.
//
// Each business operation gets its own instance from the factory; instances
// are not safe for concurrent use.
package postgres

import (
	"context"
	"log/slog"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The logger receives post-commit hook failures.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, slog.Default())
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork instance ready for one business
// transaction. Each instance maintains its own transaction state and hook
// list, ensuring isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		logger: f.logger,
	}
}

// GormUnitOfWork coordinates one database transaction and the post-commit
// hooks registered during it.
type GormUnitOfWork struct {
	db         *gorm.DB
	tx         *gorm.DB
	logger     *slog.Logger
	postCommit []ports.PostCommitHook
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction
// context. Calling Begin again on an instance with an active transaction is
// a no-op rather than a nested transaction.
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

// Commit finalizes all changes made within the current transaction, then
// runs the registered post-commit hooks in registration order. Hook failures
// are logged at warn level and do not fail the commit.
//
// Returns error if no active transaction exists or if the commit itself fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	hooks := uow.postCommit
	uow.postCommit = nil
	for _, hook := range hooks {
		if hookErr := hook(ctx); hookErr != nil {
			uow.logger.WarnContext(ctx, "post-commit hook failed", "error", hookErr)
		}
	}

	return nil
}

// Rollback discards all changes made within the current transaction along
// with any registered post-commit hooks.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.postCommit = nil
	return err
}

// RegisterPostCommit queues a hook to run after a successful Commit.
func (uow *GormUnitOfWork) RegisterPostCommit(hook ports.PostCommitHook) {
	uow.postCommit = append(uow.postCommit, hook)
}

// OrderRepository provides access to order persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise on the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}
