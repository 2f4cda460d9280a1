package kernel

import (
	"fmt"
	"strconv"

	"ordering/internal/pkg/errs"
)

// OrderID identifies an order. Values are assigned by the relational store on
// creation; the zero value means "not assigned yet".
type OrderID int64

// NewOrderID creates an OrderID from a raw value assigned by the store.
//
// Returns:
//   - The OrderID if the value is positive
//   - error if the value is zero or negative
func NewOrderID(value int64) (OrderID, error) {
	id := OrderID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseOrderID parses an OrderID from its decimal string representation,
// typically a path parameter.
func ParseOrderID(raw string) (OrderID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return NewOrderID(value)
}

// Validate checks that the OrderID carries an assigned, positive value.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive identifier", int64(id)),
		)
	}
	return nil
}

// Int64 returns the raw identifier value for persistence and transport.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// IsAssigned reports whether the store has assigned a value yet.
func (id OrderID) IsAssigned() bool {
	return id > 0
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ClientID identifies the client that placed an order. Supplied by the caller
// at creation and immutable afterwards.
type ClientID int64

// NewClientID creates a ClientID from a caller-supplied value.
//
// Returns:
//   - The ClientID if the value is positive
//   - error if the value is zero or negative
func NewClientID(value int64) (ClientID, error) {
	id := ClientID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ClientID carries a positive value.
func (id ClientID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"client id",
			fmt.Errorf("%d is not a positive identifier", int64(id)),
		)
	}
	return nil
}

// Int64 returns the raw identifier value for persistence and transport.
func (id ClientID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id ClientID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
