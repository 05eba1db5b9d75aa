package order

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// Priority ranks how urgently an order should be fulfilled. Industry
// processors raise it during automation (food delivery is always high,
// tight 3PL SLAs become urgent).
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityNormal: "normal",
		PriorityHigh:   "high",
		PriorityUrgent: "urgent",
	}
}

// Validate checks that the priority is one of the declared levels.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the wire name of the priority or "unknown".
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// PriorityFromString parses a wire name into a Priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, name := range getPriorityStrings() {
		if name == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", s),
	)
}
