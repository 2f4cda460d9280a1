package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only status history.
type OrderRepository interface {
	// Add persists a new order together with its first history entry, both in
	// the caller's transaction, and assigns the generated identifier to the
	// aggregate. The order must be valid and must not carry an id yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's current status and appends a matching
	// history entry, both in the caller's transaction. The order must exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetHistory retrieves the order's status history, oldest first.
	// The slice is empty when the order does not exist.
	GetHistory(ctx context.Context, id kernel.OrderID) ([]order.HistoryEntry, error)
}
