// Package redis provides the Redis-backed implementation of the status cache
// mirror. One long-lived client is shared across requests; reconnects are
// handled by the driver.
package redis

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// StatusCache mirrors the current status of orders in Redis under
// "order:{id}:status" keys. Values are the workflow wire strings, so the
// keys stay inspectable with a plain redis-cli GET.
//
// The mirror is best-effort: callers treat write failures as log-worthy,
// not fatal, and the relational store remains the source of truth.
type StatusCache struct {
	client *redis.Client
}

// NewStatusCache creates a cache mirror on an existing Redis client.
func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

// SetStatus mirrors the order's current status. Entries have no expiry; they
// are overwritten on every status change.
func (c *StatusCache) SetStatus(ctx context.Context, id kernel.OrderID, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	return c.client.Set(ctx, statusKey(id), status.String(), 0).Err()
}

// GetStatus looks up the mirrored status. A missing key is a miss, not an
// error; an unparseable value is treated as an error so stale garbage never
// masquerades as a status.
func (c *StatusCache) GetStatus(ctx context.Context, id kernel.OrderID) (order.Status, bool, error) {
	raw, err := c.client.Get(ctx, statusKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return order.Unknown, false, nil
	}
	if err != nil {
		return order.Unknown, false, err
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return order.Unknown, false, err
	}

	return status, true, nil
}

func statusKey(id kernel.OrderID) string {
	return fmt.Sprintf("order:%d:status", id.Int64())
}
