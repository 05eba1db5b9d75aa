package warehouse

import (
	"errors"
	"fmt"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/errs"
	"logix/internal/pkg/guard"
)

// Domain errors for warehouse operations.
var (
	// ErrWarehouseIsNotConstructed is returned when a Warehouse was not created
	// through the NewWarehouse or RestoreWarehouse factory functions.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")

	// ErrNameIsRequired is returned when the warehouse name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCapabilitiesAreRequired is returned when no capability was supplied.
	ErrCapabilitiesAreRequired = errs.NewValueIsRequiredError("capabilities")

	// ErrCapacityExceeded is returned when a reservation would push utilized
	// capacity past the maximum.
	ErrCapacityExceeded = errors.New("reservation exceeds warehouse capacity")
)

// Warehouse is reference data about a fulfillment facility: what it can
// handle, when it is open, where it is, and how full it is. The engine only
// reads warehouses when routing, except for capacity reservations made after
// an order commits to the facility.
type Warehouse struct {
	id           kernel.UUID
	name         string
	capabilities map[Capability]bool
	hours        OperatingHours
	location     kernel.GeoPoint

	currentCapacity int
	maxCapacity     int

	guard guard.ConstructorGuard
}

// NewWarehouse creates an empty facility with the given capabilities, hours,
// and capacity ceiling.
func NewWarehouse(
	id kernel.UUID,
	name string,
	capabilities []Capability,
	hours OperatingHours,
	location kernel.GeoPoint,
	maxCapacity int,
) (*Warehouse, error) {
	w := &Warehouse{
		hours:    hours,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCapabilities(capabilities),
		w.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a Warehouse from persistent storage with its
// current utilization.
func RestoreWarehouse(
	id kernel.UUID,
	name string,
	capabilities []Capability,
	hours OperatingHours,
	location kernel.GeoPoint,
	currentCapacity int,
	maxCapacity int,
) (*Warehouse, error) {
	w := &Warehouse{
		hours:    hours,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCapabilities(capabilities),
		w.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	if currentCapacity < 0 || currentCapacity > maxCapacity {
		return nil, errs.NewValueIsOutOfRangeError("currentCapacity", currentCapacity, 0, maxCapacity)
	}
	w.currentCapacity = currentCapacity

	return w, nil
}

// Validate ensures the Warehouse was built through a factory function.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by identity.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// Name returns the display name.
func (w *Warehouse) Name() string { return w.name }

// Capabilities returns the capability set in no particular order.
func (w *Warehouse) Capabilities() []Capability {
	out := make([]Capability, 0, len(w.capabilities))
	for c := range w.capabilities {
		out = append(out, c)
	}
	return out
}

// Hours returns the daily operating hours.
func (w *Warehouse) Hours() OperatingHours { return w.hours }

// Location returns the facility coordinates.
func (w *Warehouse) Location() kernel.GeoPoint { return w.location }

// CurrentCapacity returns the utilized capacity in load units.
func (w *Warehouse) CurrentCapacity() int { return w.currentCapacity }

// MaxCapacity returns the capacity ceiling in load units.
func (w *Warehouse) MaxCapacity() int { return w.maxCapacity }

// HasCapability reports whether the facility offers a single capability.
func (w *Warehouse) HasCapability(c Capability) bool {
	return w.capabilities[c]
}

// HasCapabilities reports whether the facility offers every capability in the
// required set. An empty requirement always matches.
func (w *Warehouse) HasCapabilities(required []Capability) bool {
	for _, c := range required {
		if !w.capabilities[c] {
			return false
		}
	}
	return true
}

// IsOpenAt reports whether the facility is open at the given instant,
// evaluated in UTC.
func (w *Warehouse) IsOpenAt(t time.Time) bool {
	t = t.UTC()
	return w.hours.ContainsMinute(t.Hour()*60 + t.Minute())
}

// HasAvailableCapacity reports whether any headroom remains.
func (w *Warehouse) HasAvailableCapacity() bool {
	return w.currentCapacity < w.maxCapacity
}

// CanAccommodate reports whether a load of the given size fits in the
// remaining headroom.
func (w *Warehouse) CanAccommodate(load int) bool {
	return load > 0 && w.currentCapacity+load <= w.maxCapacity
}

// AvailableFraction returns remaining headroom normalized to [0,1].
func (w *Warehouse) AvailableFraction() float64 {
	if w.maxCapacity == 0 {
		return 0
	}
	return float64(w.maxCapacity-w.currentCapacity) / float64(w.maxCapacity)
}

// Reserve consumes headroom for an accepted order. Reservations that do not
// fit return ErrCapacityExceeded and leave the counter unchanged.
func (w *Warehouse) Reserve(load int) error {
	if load <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"load",
			fmt.Errorf("%d is not greater than 0", load),
		)
	}
	if w.currentCapacity+load > w.maxCapacity {
		return fmt.Errorf("%w: %d + %d > %d", ErrCapacityExceeded, w.currentCapacity, load, w.maxCapacity)
	}

	w.currentCapacity += load
	return nil
}

// Release returns headroom when an order leaves the facility or is cancelled
// after reservation.
func (w *Warehouse) Release(load int) error {
	if load <= 0 || load > w.currentCapacity {
		return errs.NewValueIsOutOfRangeError("load", load, 1, w.currentCapacity)
	}

	w.currentCapacity -= load
	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCapabilities(capabilities []Capability) error {
	if len(capabilities) == 0 {
		return ErrCapabilitiesAreRequired
	}

	set := make(map[Capability]bool, len(capabilities))
	for _, c := range capabilities {
		if err := c.Validate(); err != nil {
			return err
		}
		set[c] = true
	}

	w.capabilities = set
	return nil
}

func (w *Warehouse) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity",
			fmt.Errorf("%d is not greater than 0", maxCapacity),
		)
	}
	w.maxCapacity = maxCapacity
	return nil
}
