// Package route contains the ephemeral value objects exchanged with the
// route optimization adapter: stops, requests, and sequenced results.
package route

import (
	"time"

	"logix/internal/core/domain/model/driver"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/pkg/errs"
)

// Stop is a single delivery point on a route.
type Stop struct {
	OrderID  kernel.UUID
	Address  string
	Location kernel.GeoPoint

	// Window is the hard delivery window, zero when the stop has none.
	Window kernel.TimeWindow

	// Industry and Priority carry the order's sequencing constraints.
	// Manufacturing stops sharing a window run in production-priority order.
	Industry order.IndustryCategory
	Priority order.Priority

	RequiresExpeditedHandling bool
	RequiresManualHandling    bool
}

// Validate checks the stop references an order and a destination.
func (s Stop) Validate() error {
	if err := s.OrderID.Validate(); err != nil {
		return err
	}
	if s.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

// HasWindow reports whether the stop carries a hard delivery window.
func (s Stop) HasWindow() bool {
	return !s.Window.IsZero()
}

// Request is an optimization request: an origin, the stops to sequence, and
// the constraints of the driver who will run the route.
type Request struct {
	Origin kernel.GeoPoint
	Stops  []Stop

	VehicleType driver.VehicleType
	MaxLoad     int

	// DepartAt anchors window feasibility checks; zero means now.
	DepartAt time.Time
}

// Validate checks every stop in the request.
func (r Request) Validate() error {
	for _, s := range r.Stops {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Result is a sequenced route with total distance and duration estimates.
type Result struct {
	Stops           []Stop
	TotalDistanceKm float64
	TotalDuration   time.Duration

	// Optimized is false when the deterministic fallback produced the
	// sequence instead of the optimization service.
	Optimized bool
}
