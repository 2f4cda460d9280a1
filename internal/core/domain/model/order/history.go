package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created via the NewHistoryEntry constructor.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry constructor",
	)
)

// HistoryEntry is an immutable, append-only record of a status the order held
// at a point in time. Many entries reference one order; entries are never
// mutated or deleted, and their change dates are non-decreasing within an
// order's history.
type HistoryEntry struct {
	orderID    kernel.OrderID
	status     Status
	changeDate time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a history entry recording that the order held the
// given status at changeDate.
func NewHistoryEntry(orderID kernel.OrderID, status Status, changeDate time.Time) (HistoryEntry, error) {
	entry := HistoryEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := entry.setOrderID(orderID); err != nil {
		return HistoryEntry{}, err
	}
	if err := entry.setStatus(status); err != nil {
		return HistoryEntry{}, err
	}
	if err := entry.setChangeDate(changeDate); err != nil {
		return HistoryEntry{}, err
	}

	return entry, nil
}

// Validate ensures the entry was created through the constructor.
func (e HistoryEntry) Validate() error {
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// OrderID returns the identifier of the order this entry belongs to.
func (e HistoryEntry) OrderID() kernel.OrderID {
	return e.orderID
}

// Status returns the workflow state recorded by this entry.
func (e HistoryEntry) Status() Status {
	return e.status
}

// ChangeDate returns the moment the status was recorded. Ordering by change
// date is authoritative for reconstructing the timeline.
func (e HistoryEntry) ChangeDate() time.Time {
	return e.changeDate
}

func (e *HistoryEntry) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *HistoryEntry) setChangeDate(changeDate time.Time) error {
	if changeDate.IsZero() {
		return errs.NewValueIsRequiredError("change date")
	}
	e.changeDate = changeDate
	return nil
}
