package kernel

import (
	"fmt"
	"time"

	"logix/internal/pkg/errs"
)

// TimeWindow is a value object describing a half-open interval [start, end)
// during which a delivery must (hard window) or should (soft window) happen.
// The zero value means "no window"; check IsZero before treating the bounds
// as meaningful.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow creates a TimeWindow, validating that end is after start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"timeWindow",
			fmt.Errorf("end %s is not after start %s", end, start),
		)
	}

	return TimeWindow{start: start, end: end}, nil
}

// Start returns the window's opening instant.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the window's closing instant.
func (w TimeWindow) End() time.Time {
	return w.end
}

// IsZero reports whether the window carries no constraint.
func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

// Contains reports whether t falls inside [start, end).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// Duration returns the window length. Zero windows report 0.
func (w TimeWindow) Duration() time.Duration {
	if w.IsZero() {
		return 0
	}
	return w.end.Sub(w.start)
}
