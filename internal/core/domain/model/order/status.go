package order

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// Status represents a point in an order's lifecycle. Which statuses an order
// may move through, and in which sequence, depends on its OrderType: the
// per-type workflow table in workflow.go is the single source of truth for
// transitions. Status itself only enumerates the vocabulary.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Shared lifecycle statuses.
	StatusPending
	StatusConfirmed
	StatusProcessing

	// E-commerce and general fulfillment statuses.
	StatusPicked
	StatusPacked
	StatusShipped
	StatusOutForDelivery
	StatusDelivered
	StatusCancelled
	StatusReturned

	// Retail distribution statuses.
	StatusInspected
	StatusApproved
	StatusReceived
	StatusInventoried

	// Food delivery statuses.
	StatusPreparing
	StatusReadyForPickup
	StatusPickedUp

	// Manufacturing statuses.
	StatusMaterialsAllocated
	StatusProductionStarted
	StatusProductionInProgress
	StatusProductionCompleted
	StatusQualityChecked
	StatusQualityFailed
	StatusPackaged
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:              "pending",
		StatusConfirmed:            "confirmed",
		StatusProcessing:           "processing",
		StatusPicked:               "picked",
		StatusPacked:               "packed",
		StatusShipped:              "shipped",
		StatusOutForDelivery:       "out_for_delivery",
		StatusDelivered:            "delivered",
		StatusCancelled:            "cancelled",
		StatusReturned:             "returned",
		StatusInspected:            "inspected",
		StatusApproved:             "approved",
		StatusReceived:             "received",
		StatusInventoried:          "inventoried",
		StatusPreparing:            "preparing",
		StatusReadyForPickup:       "ready_for_pickup",
		StatusPickedUp:             "picked_up",
		StatusMaterialsAllocated:   "materials_allocated",
		StatusProductionStarted:    "production_started",
		StatusProductionInProgress: "production_in_progress",
		StatusProductionCompleted:  "production_completed",
		StatusQualityChecked:       "quality_checked",
		StatusQualityFailed:        "quality_failed",
		StatusPackaged:             "packaged",
	}
}

// Validate checks that the status is part of the declared vocabulary.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status or "unknown".
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}
