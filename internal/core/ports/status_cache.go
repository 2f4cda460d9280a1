package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// StatusCache is the fast key-value mirror of an order's current status.
// It is best-effort and never authoritative: the relational store wins on any
// disagreement, and a cache failure must not roll back a committed write.
type StatusCache interface {
	// SetStatus mirrors the order's current status into the cache.
	SetStatus(ctx context.Context, id kernel.OrderID, status order.Status) error

	// GetStatus looks up the mirrored status. The second return value reports
	// whether the key was present; a miss is not an error.
	GetStatus(ctx context.Context, id kernel.OrderID) (order.Status, bool, error)
}
