package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the full status timeline of an order,
// oldest entry first. The first entry is always the initial status recorded
// at creation.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID(42)
//	query, _ := NewGetOrderHistoryQuery(orderID)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//	for _, entry := range entries {
//	    fmt.Printf("%s at %s\n", entry.Status, entry.ChangeDate)
//	}
type GetOrderHistoryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for one order's status history.
// Validates that the order id is assigned.
func NewGetOrderHistoryQuery(orderID kernel.OrderID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history to retrieve.
func (q GetOrderHistoryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderHistoryQueryResponse is one entry of the status timeline.
type GetOrderHistoryQueryResponse struct {
	Status     order.Status
	ChangeDate time.Time
}
