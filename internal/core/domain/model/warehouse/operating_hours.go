package warehouse

import (
	"fmt"

	"logix/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// OperatingHours is a daily open interval expressed in minutes from midnight
// UTC. An interval of [0, 1440) means the facility never closes. Overnight
// intervals (close before open, e.g. 22:00 to 06:00) wrap across midnight.
type OperatingHours struct {
	opensAt  int
	closesAt int
}

// NewOperatingHours creates a daily open interval. Both bounds are minutes
// from midnight in [0, 1440]; equal bounds are rejected, use AlwaysOpen for
// round-the-clock facilities.
func NewOperatingHours(opensAt, closesAt int) (OperatingHours, error) {
	if opensAt < 0 || opensAt >= minutesPerDay {
		return OperatingHours{}, errs.NewValueIsOutOfRangeError("opensAt", opensAt, 0, minutesPerDay-1)
	}
	if closesAt < 0 || closesAt > minutesPerDay {
		return OperatingHours{}, errs.NewValueIsOutOfRangeError("closesAt", closesAt, 0, minutesPerDay)
	}
	if opensAt == closesAt {
		return OperatingHours{}, errs.NewValueIsInvalidErrorWithCause(
			"closesAt",
			fmt.Errorf("open and close are both at minute %d", opensAt),
		)
	}
	return OperatingHours{opensAt: opensAt, closesAt: closesAt}, nil
}

// AlwaysOpen returns hours covering the whole day.
func AlwaysOpen() OperatingHours {
	return OperatingHours{opensAt: 0, closesAt: minutesPerDay}
}

// OpensAt returns the opening minute of the day.
func (h OperatingHours) OpensAt() int { return h.opensAt }

// ClosesAt returns the closing minute of the day.
func (h OperatingHours) ClosesAt() int { return h.closesAt }

// IsAlwaysOpen reports whether the interval spans the full day.
func (h OperatingHours) IsAlwaysOpen() bool {
	return h.opensAt == 0 && h.closesAt == minutesPerDay
}

// ContainsMinute reports whether the given minute of the day falls inside the
// open interval.
func (h OperatingHours) ContainsMinute(m int) bool {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	if h.opensAt < h.closesAt {
		return m >= h.opensAt && m < h.closesAt
	}
	// Overnight interval.
	return m >= h.opensAt || m < h.closesAt
}

// String renders the interval as HH:MM-HH:MM, or 24/7 when always open.
func (h OperatingHours) String() string {
	if h.IsAlwaysOpen() {
		return "24/7"
	}
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		h.opensAt/60, h.opensAt%60, (h.closesAt%minutesPerDay)/60, h.closesAt%60)
}
