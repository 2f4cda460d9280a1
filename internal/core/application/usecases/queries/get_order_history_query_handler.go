package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's status timeline from the
// append-only history table. An unknown order id is a not-found error rather
// than an empty timeline, so callers can distinguish "never existed" from
// "just created".
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the timeline, oldest entry first.
// Entries with the same change date keep their insertion order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM orders WHERE id = ?
	`, query.OrderID().Int64()).Row()
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order id", query.OrderID().Int64())
		}
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			change_date
		FROM order_history
		WHERE order_id = ?
		ORDER BY change_date, id
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			statusRaw  string
			changeDate time.Time
		)

		if err = rows.Scan(&statusRaw, &changeDate); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(statusRaw)
		if parseErr != nil {
			return nil, parseErr
		}

		entries = append(entries, GetOrderHistoryQueryResponse{
			Status:     status,
			ChangeDate: changeDate,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
