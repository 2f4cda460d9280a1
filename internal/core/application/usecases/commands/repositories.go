// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit side effects.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across the order aggregate and
// carry the post-commit hook list for best-effort side effects.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
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

	// PostCommitRegistry queues best-effort hooks (cache mirror, event
	// publish) to run after the transaction commits.
	PostCommitRegistry interface {
		RegisterPostCommit(hook ports.PostCommitHook)
	}

	// OrderUoW manages transactions and post-commit hooks for order
	// operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PostCommitRegistry
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
