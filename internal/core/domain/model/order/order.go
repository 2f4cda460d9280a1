package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a customer purchase request tracked through a status
// lifecycle. It is the aggregate root that owns the workflow state machine.
//
// Order follows these invariants:
//   - clientID is positive and immutable
//   - creationDate is caller-supplied and immutable
//   - id is assigned exactly once, by the relational store on creation
//   - status only changes through validated, strictly forward transitions
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the store-assigned identifier; zero until the first insert
	id kernel.OrderID

	// clientID identifies the client that placed the order
	clientID kernel.ClientID

	// status is the current state in the workflow
	status Status

	// creationDate is the caller-supplied creation timestamp
	creationDate time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order awaiting its store-assigned identifier.
// This is the entry point for the create flow: every new order starts in
// Received status and with an unassigned id.
//
// Parameters:
//   - clientID: Identifier of the client placing the order (must be positive)
//   - creationDate: Caller-supplied creation timestamp (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Whether the creation date lies in the future is decided by the lifecycle
// service against its own clock, not here.
func NewOrder(clientID kernel.ClientID, creationDate time.Time) (*Order, error) {
	order := &Order{
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setClientID(clientID),
		order.setCreationDate(creationDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields, including
// the assigned id and current status, must already be valid.
func RestoreOrder(
	id kernel.OrderID,
	clientID kernel.ClientID,
	status Status,
	creationDate time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setStatus(status),
		order.setCreationDate(creationDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsAssigned() && o.id == other.id
}

// ID returns the store-assigned identifier. Zero until AssignID is called.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ClientID returns the identifier of the client that placed the order.
func (o *Order) ClientID() kernel.ClientID {
	return o.clientID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreationDate returns the caller-supplied creation timestamp.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// AssignID records the identifier generated by the relational store.
//
// This method enforces the following rules:
//   - The id must be a valid positive identifier
//   - An already assigned id can never be replaced
//
// It is called by the repository once the insert has produced a key.
func (o *Order) AssignID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.IsAssigned() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be strictly forward in the workflow; backward moves and
// re-asserting the current status are rejected with an InvalidTransitionError
// and leave the order untouched.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreationDate(creationDate time.Time) error {
	if creationDate.IsZero() {
		return errs.NewValueIsRequiredError("creation date")
	}
	o.creationDate = creationDate
	return nil
}
