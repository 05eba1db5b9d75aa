// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. Capabilities are stored as a text array so new
// capability kinds need no schema change.
package warehouserepo

import (
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string
	Capabilities pq.StringArray `gorm:"type:text[]"`
	OpensAt      int
	ClosesAt     int
	Location     GeoPointDTO    `gorm:"embedded;embeddedPrefix:location_"`

	CurrentCapacity int
	MaxCapacity     int
}

// TableName overrides GORM's default naming convention to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// GeoPointDTO represents embedded facility coordinates.
type GeoPointDTO struct {
	Lat float64
	Lon float64
}

func marshalCapabilities(capabilities []warehouse.Capability) pq.StringArray {
	names := make(pq.StringArray, 0, len(capabilities))
	for _, c := range capabilities {
		names = append(names, c.String())
	}
	return names
}

func unmarshalCapabilities(names pq.StringArray) ([]warehouse.Capability, error) {
	capabilities := make([]warehouse.Capability, 0, len(names))
	for _, name := range names {
		c, err := warehouse.CapabilityFromString(name)
		if err != nil {
			return nil, err
		}
		capabilities = append(capabilities, c)
	}
	return capabilities, nil
}

// fromDomain converts a warehouse aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) (WarehouseDTO, error) {
	return WarehouseDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Capabilities: marshalCapabilities(aggregate.Capabilities()),
		OpensAt:      aggregate.Hours().OpensAt(),
		ClosesAt:     aggregate.Hours().ClosesAt(),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lon: aggregate.Location().Lon(),
		},
		CurrentCapacity: aggregate.CurrentCapacity(),
		MaxCapacity:     aggregate.MaxCapacity(),
	}, nil
}

// toDomain converts a database row back to a warehouse aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capabilities, err := unmarshalCapabilities(dto.Capabilities)
	if err != nil {
		return nil, err
	}

	hours, err := restoreHours(dto.OpensAt, dto.ClosesAt)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lon)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(
		id,
		dto.Name,
		capabilities,
		hours,
		location,
		dto.CurrentCapacity,
		dto.MaxCapacity,
	)
}

func restoreHours(opensAt, closesAt int) (warehouse.OperatingHours, error) {
	always := warehouse.AlwaysOpen()
	if opensAt == always.OpensAt() && closesAt == always.ClosesAt() {
		return always, nil
	}
	return warehouse.NewOperatingHours(opensAt, closesAt)
}
