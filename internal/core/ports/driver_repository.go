package ports

import (
	"context"

	"logix/internal/core/domain/model/driver"
	"logix/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver reference
// data. The engine reads drivers for assignment; the load increment on
// selection is the only mutation it performs.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves every driver currently taking assignments.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// ReserveCapacity atomically adds load units to the driver's current
	// load, failing with driver.ErrLoadExceedsCapacity if the result would
	// pass max capacity. Two concurrent reservations racing for the last
	// units of a driver's capacity must resolve to exactly one winner.
	ReserveCapacity(ctx context.Context, id kernel.UUID, load int) error
}
