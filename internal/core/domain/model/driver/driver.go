package driver

import (
	"errors"
	"fmt"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/errs"
	"logix/internal/pkg/guard"
)

// Rating bounds for driver performance scores.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created
	// through the NewDriver or RestoreDriver factory functions.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrNameIsRequired is returned when the driver name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrLoadExceedsCapacity is returned when taking a load would push the
	// driver past max capacity.
	ErrLoadExceedsCapacity = errors.New("load exceeds driver capacity")
)

// Driver is reference data about a delivery driver: qualifications, vehicle,
// load counters, and a rolling performance rating. The engine reads drivers
// when assigning and increments the load counter on selection; that increment
// is the only mutation the engine performs on driver state.
type Driver struct {
	id             kernel.UUID
	name           string
	certifications map[Certification]bool
	vehicleType    VehicleType

	maxLoad     int
	currentLoad int
	rating      float64

	location  kernel.GeoPoint
	available bool

	guard guard.ConstructorGuard
}

// NewDriver creates an available, unloaded driver.
func NewDriver(
	id kernel.UUID,
	name string,
	certifications []Certification,
	vehicleType VehicleType,
	maxLoad int,
	rating float64,
	location kernel.GeoPoint,
) (*Driver, error) {
	d := &Driver{
		location:  location,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCertifications(certifications),
		d.setVehicleType(vehicleType),
		d.setMaxLoad(maxLoad),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage with its
// current load and availability.
func RestoreDriver(
	id kernel.UUID,
	name string,
	certifications []Certification,
	vehicleType VehicleType,
	maxLoad int,
	currentLoad int,
	rating float64,
	location kernel.GeoPoint,
	available bool,
) (*Driver, error) {
	d := &Driver{
		location:  location,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCertifications(certifications),
		d.setVehicleType(vehicleType),
		d.setMaxLoad(maxLoad),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	if currentLoad < 0 || currentLoad > maxLoad {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, maxLoad)
	}
	d.currentLoad = currentLoad

	return d, nil
}

// Validate ensures the Driver was built through a factory function.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the display name.
func (d *Driver) Name() string { return d.name }

// Certifications returns the certification set in no particular order.
func (d *Driver) Certifications() []Certification {
	out := make([]Certification, 0, len(d.certifications))
	for c := range d.certifications {
		out = append(out, c)
	}
	return out
}

// VehicleType returns the driver's vehicle class.
func (d *Driver) VehicleType() VehicleType { return d.vehicleType }

// MaxLoad returns the driver's load capacity ceiling.
func (d *Driver) MaxLoad() int { return d.maxLoad }

// CurrentLoad returns the load units currently assigned.
func (d *Driver) CurrentLoad() int { return d.currentLoad }

// Rating returns the rolling performance rating in [0,5].
func (d *Driver) Rating() float64 { return d.rating }

// Location returns the driver's last known coordinates.
func (d *Driver) Location() kernel.GeoPoint { return d.location }

// IsAvailable reports whether the driver is taking assignments.
func (d *Driver) IsAvailable() bool { return d.available }

// HasCertification reports whether the driver holds a single certification.
func (d *Driver) HasCertification(c Certification) bool {
	return d.certifications[c]
}

// HasCertifications reports whether the driver holds every certification in
// the required set. An empty requirement always matches.
func (d *Driver) HasCertifications(required []Certification) bool {
	for _, c := range required {
		if !d.certifications[c] {
			return false
		}
	}
	return true
}

// CanCarry reports whether the driver may take an additional order of the
// given load: available, the vehicle class fits it, and the load counter
// stays within capacity.
func (d *Driver) CanCarry(load int) bool {
	return d.available &&
		d.vehicleType.FitsLoad(load) &&
		d.currentLoad+load <= d.maxLoad
}

// LoadFraction returns current utilization normalized to [0,1].
func (d *Driver) LoadFraction() float64 {
	if d.maxLoad == 0 {
		return 1
	}
	return float64(d.currentLoad) / float64(d.maxLoad)
}

// TakeLoad assigns additional load units to the driver. Loads that do not fit
// return ErrLoadExceedsCapacity and leave the counter unchanged.
func (d *Driver) TakeLoad(load int) error {
	if load <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"load",
			fmt.Errorf("%d is not greater than 0", load),
		)
	}
	if d.currentLoad+load > d.maxLoad {
		return fmt.Errorf("%w: %d + %d > %d", ErrLoadExceedsCapacity, d.currentLoad, load, d.maxLoad)
	}

	d.currentLoad += load
	return nil
}

// ReleaseLoad returns load units after a delivery completes or unwinds.
func (d *Driver) ReleaseLoad(load int) error {
	if load <= 0 || load > d.currentLoad {
		return errs.NewValueIsOutOfRangeError("load", load, 1, d.currentLoad)
	}

	d.currentLoad -= load
	return nil
}

// SetAvailability toggles whether the driver takes assignments.
func (d *Driver) SetAvailability(available bool) {
	d.available = available
}

// MoveTo updates the driver's last known coordinates.
func (d *Driver) MoveTo(location kernel.GeoPoint) {
	d.location = location
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setCertifications(certifications []Certification) error {
	set := make(map[Certification]bool, len(certifications))
	for _, c := range certifications {
		if err := c.Validate(); err != nil {
			return err
		}
		set[c] = true
	}

	d.certifications = set
	return nil
}

func (d *Driver) setVehicleType(v VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	d.vehicleType = v
	return nil
}

func (d *Driver) setMaxLoad(maxLoad int) error {
	if maxLoad <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxLoad",
			fmt.Errorf("%d is not greater than 0", maxLoad),
		)
	}
	d.maxLoad = maxLoad
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	d.rating = rating
	return nil
}
