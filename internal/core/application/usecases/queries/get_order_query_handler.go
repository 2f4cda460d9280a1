package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row straight from the database,
// bypassing the aggregate. Read models do not need the domain invariants
// beyond field validation.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404 for the caller
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order projection.
// Returns an ObjectNotFoundError when no row matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id           int64
		clientID     int64
		statusRaw    string
		creationDate time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			status,
			creation_date
		FROM orders
		WHERE id = ?
	`, query.OrderID().Int64()).Row()

	err := row.Scan(&id, &clientID, &statusRaw, &creationDate)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID().Int64())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.NewOrderID(id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	client, err := kernel.NewClientID(clientID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	status, err := order.ParseStatus(statusRaw)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:           orderID,
		ClientID:     client,
		Status:       status,
		CreationDate: creationDate,
	}, nil
}
