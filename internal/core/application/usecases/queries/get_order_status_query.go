package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves just the current workflow status of an order.
// This is the hot read path: the handler consults the cache mirror before
// touching the relational store.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID(42)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get status: %w", err)
//	}
//	fmt.Printf("Order %d is %s\n", orderID.Int64(), result.Status)
type GetOrderStatusQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for one order's current status.
// Validates that the order id is assigned.
func NewGetOrderStatusQuery(orderID kernel.OrderID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to look up.
func (q GetOrderStatusQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the order's current workflow status.
type GetOrderStatusQueryResponse struct {
	Status order.Status
}
