package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// The workflow is a fixed total order of states and transitions may only move
// forward along it:
//
//	RECEIVED ──> PAID ──> PREPARING ──> SENT
//
// Skipping states forward is legal (RECEIVED straight to SENT), moving
// backward or re-asserting the current state is not. SENT is terminal.
//
// Status is a value object that validates state transitions and provides the
// wire string representation used for persistence, caching and messaging.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of every order.
	Received

	// Paid indicates payment for the order has been confirmed.
	Paid

	// Preparing indicates the order is being prepared for shipment.
	Preparing

	// Sent indicates the order has been shipped. This is the terminal state
	// with no further transitions allowed.
	Sent
)

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		Paid:      "PAID",
		Preparing: "PREPARING",
		Sent:      "SENT",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "RECEIVED",
		Paid:      "PAID",
		Preparing: "PREPARING",
		Sent:      "SENT",
	}
}

// ParseStatus converts a wire string into a Status.
//
// Returns:
//   - The matching Status for "RECEIVED", "PAID", "PREPARING" or "SENT"
//   - error if the string names no known status
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Paid, Preparing, Sent.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "RECEIVED", "PAID", "PREPARING" or "SENT" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no legal outgoing transition exists.
func (s Status) IsTerminal() bool {
	return s == Sent
}

// CanTransitionTo checks whether the workflow allows moving from the current
// status to target without performing the transition.
//
// A transition is legal iff the target lies strictly after the current status
// in the workflow order. Re-asserting the current status is rejected.
//
// Returns:
//   - nil if the transition is allowed
//   - error if either status is invalid or the move is not strictly forward
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	// The linear workflow makes the legality check an index comparison.
	if target <= s {
		return NewInvalidTransitionError(s, target)
	}
	return nil
}
