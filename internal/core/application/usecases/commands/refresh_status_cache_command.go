package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrRefreshStatusCacheCommandIsNotConstructed = errors.New(
		"RefreshStatusCacheCommand must be created via NewRefreshStatusCacheCommand constructor",
	)
)

// RefreshStatusCacheCommand requests a re-mirror of recently changed order
// statuses into the cache. The window bounds how far back to look for
// changes; orders untouched for longer are left to read-through repair.
type RefreshStatusCacheCommand struct {
	window time.Duration

	guard guard.ConstructorGuard
}

// NewRefreshStatusCacheCommand creates a cache refresh command.
// The window must be positive.
func NewRefreshStatusCacheCommand(window time.Duration) (RefreshStatusCacheCommand, error) {
	if window <= 0 {
		return RefreshStatusCacheCommand{}, errs.NewValueIsInvalidError("refresh window")
	}

	return RefreshStatusCacheCommand{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshStatusCacheCommandIsNotConstructed if validation fails.
func (c RefreshStatusCacheCommand) Validate() error {
	return c.guard.Validate(ErrRefreshStatusCacheCommandIsNotConstructed)
}

// Window returns how far back to look for status changes.
func (c RefreshStatusCacheCommand) Window() time.Duration {
	return c.window
}
