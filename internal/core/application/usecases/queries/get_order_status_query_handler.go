package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler answers status lookups cache-first. A cache hit
// never touches the database; on a miss the row is read from the relational
// store and the mirror is repopulated best-effort. A cache outage degrades the
// lookup to a plain database read instead of failing it.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db, cache, logger)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404 for the caller
//	}
type GetOrderStatusQueryHandler struct {
	db     *gorm.DB
	cache  ports.StatusCache
	logger *slog.Logger
}

// NewGetOrderStatusQueryHandler creates a handler for status lookups.
// Requires a GORM database connection, the status cache mirror, and a logger
// for cache degradation warnings.
func NewGetOrderStatusQueryHandler(
	db *gorm.DB,
	cache ports.StatusCache,
	logger *slog.Logger,
) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "get_order_status_query"),
	}
}

// Handle executes the status lookup.
// Returns an ObjectNotFoundError when the order exists in neither the cache
// nor the relational store.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status, found, err := h.cache.GetStatus(ctx, query.OrderID())
	if err != nil {
		h.logger.WarnContext(ctx, "status cache read failed, falling back to database",
			"order_id", query.OrderID().Int64(),
			"error", err)
	} else if found {
		return GetOrderStatusQueryResponse{Status: status}, nil
	}

	var statusRaw string

	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = ?
	`, query.OrderID().Int64()).Row()

	scanErr := row.Scan(&statusRaw)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID().Int64())
	}
	if scanErr != nil {
		return GetOrderStatusQueryResponse{}, scanErr
	}

	status, err = order.ParseStatus(statusRaw)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	if err = h.cache.SetStatus(ctx, query.OrderID(), status); err != nil {
		h.logger.WarnContext(ctx, "status cache repopulation failed",
			"order_id", query.OrderID().Int64(),
			"error", err)
	}

	return GetOrderStatusQueryResponse{Status: status}, nil
}
