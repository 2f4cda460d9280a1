package commands

import "time"

// SetClock replaces the handler's clock so tests can pin the future-date
// acceptance boundary to a fixed instant.
func (h *CreateOrderCommandHandler) SetClock(now func() time.Time) {
	h.now = now
}
