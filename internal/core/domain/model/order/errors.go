package order

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors used for classification with errors.Is.
var (
	// ErrInvalidStatusTransition marks a status change that is not strictly
	// forward in the workflow. Callers must not retry the same payload.
	ErrInvalidStatusTransition = errors.New("status transition is invalid")

	// ErrCreationDateInFuture marks a creation date strictly after the moment
	// the request is processed. Recoverable by resubmitting a valid date.
	ErrCreationDateInFuture = errors.New("creation date is in the future")
)

// InvalidTransitionError reports a rejected workflow transition together with
// the states involved.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// states.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move to %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// CreationDateInFutureError reports a rejected creation date together with the
// moment it was compared against.
type CreationDateInFutureError struct {
	CreationDate time.Time
	Now          time.Time
}

// NewCreationDateInFutureError creates a CreationDateInFutureError for the
// given dates.
func NewCreationDateInFutureError(creationDate, now time.Time) *CreationDateInFutureError {
	return &CreationDateInFutureError{CreationDate: creationDate, Now: now}
}

func (e *CreationDateInFutureError) Error() string {
	return fmt.Sprintf("%s: %s is after %s",
		ErrCreationDateInFuture,
		e.CreationDate.Format(time.RFC3339),
		e.Now.Format(time.RFC3339),
	)
}

func (e *CreationDateInFutureError) Unwrap() error {
	return ErrCreationDateInFuture
}
