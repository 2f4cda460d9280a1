package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// RefreshStatusCacheCommandHandler heals drift between the relational store
// and the cache mirror. Post-commit mirror writes are best-effort, so a cache
// outage can leave stale or missing entries behind; this handler re-mirrors
// every order whose status changed inside the command's window.
type RefreshStatusCacheCommandHandler struct {
	db     *gorm.DB
	cache  ports.StatusCache
	logger *slog.Logger
}

// NewRefreshStatusCacheCommandHandler creates a handler for cache refresh
// runs. Requires a GORM database connection and the status cache mirror.
func NewRefreshStatusCacheCommandHandler(
	db *gorm.DB,
	cache ports.StatusCache,
	logger *slog.Logger,
) RefreshStatusCacheCommandHandler {
	return RefreshStatusCacheCommandHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "refresh_status_cache"),
	}
}

// Handle re-mirrors recently changed statuses. Individual cache write
// failures are logged and skipped so one bad key cannot stall the sweep.
// Returns the number of entries successfully mirrored.
func (h RefreshStatusCacheCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshStatusCacheCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	since := time.Now().UTC().Add(-cmd.Window())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, status
		FROM orders
		WHERE id IN (
			SELECT DISTINCT order_id FROM order_history WHERE change_date >= ?
		)
	`, since).Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	refreshed := 0
	for rows.Next() {
		var (
			id        int64
			statusRaw string
		)

		if err = rows.Scan(&id, &statusRaw); err != nil {
			return refreshed, err
		}

		orderID, idErr := kernel.NewOrderID(id)
		if idErr != nil {
			return refreshed, idErr
		}
		status, statusErr := order.ParseStatus(statusRaw)
		if statusErr != nil {
			return refreshed, statusErr
		}

		if cacheErr := h.cache.SetStatus(ctx, orderID, status); cacheErr != nil {
			h.logger.WarnContext(ctx, "failed to re-mirror order status",
				"order_id", id,
				"error", cacheErr)
			continue
		}

		refreshed++
	}

	if err = rows.Err(); err != nil {
		return refreshed, err
	}

	return refreshed, nil
}
