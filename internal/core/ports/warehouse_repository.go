package ports

import (
	"context"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// reference data. Warehouses are owned by the inventory collaborator; the
// engine reads them for routing and reserves capacity on commitment.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAllActive retrieves every warehouse eligible as a routing candidate.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)

	// ReserveCapacity atomically adds load units to the warehouse's utilized
	// capacity, failing with warehouse.ErrCapacityExceeded if the reservation
	// would not fit. The check and increment must be a single atomic
	// operation with respect to concurrent reservations.
	ReserveCapacity(ctx context.Context, id kernel.UUID, load int) error
}
