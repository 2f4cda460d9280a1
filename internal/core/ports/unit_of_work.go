package ports

import (
	"context"
)

// PostCommitHook is a best-effort side effect to run after the transaction
// commits. Hook failures are logged by the unit of work, never propagated:
// once the relational write has landed, the operation has succeeded.
type PostCommitHook func(ctx context.Context) error

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control, repository access bound to the current
// transaction, and a post-commit hook list for best-effort side effects
// (cache mirror, event publish) that must only run once the transaction
// has committed.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then runs the registered
	// post-commit hooks. Hook failures are logged, not returned.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and discards any
	// registered post-commit hooks.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RegisterPostCommit queues a hook to run after a successful Commit.
	RegisterPostCommit(hook PostCommitHook)

	// OrderRepository returns an OrderRepository instance bound to the current
	// transaction. Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository
}
