package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// StatusNotifier publishes durable status-change events for external
// consumers. Delivery is at-least-once and the core performs no
// deduplication; consumers are required to be idempotent.
type StatusNotifier interface {
	// PublishStatusChange publishes one event describing the order's new
	// status to the configured queue.
	PublishStatusChange(ctx context.Context, id kernel.OrderID, clientID kernel.ClientID, status order.Status) error
}
