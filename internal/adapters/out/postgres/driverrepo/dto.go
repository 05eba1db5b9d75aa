// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"logix/internal/core/domain/model/driver"
	"logix/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string
	Certifications pq.StringArray `gorm:"type:text[]"`
	VehicleType    int
	Location       GeoPointDTO    `gorm:"embedded;embeddedPrefix:location_"`

	MaxLoad     int
	CurrentLoad int
	Rating      float64
	Available   bool `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// GeoPointDTO represents embedded driver coordinates.
type GeoPointDTO struct {
	Lat float64
	Lon float64
}

func marshalCertifications(certifications []driver.Certification) pq.StringArray {
	names := make(pq.StringArray, 0, len(certifications))
	for _, c := range certifications {
		names = append(names, c.String())
	}
	return names
}

func unmarshalCertifications(names pq.StringArray) ([]driver.Certification, error) {
	certifications := make([]driver.Certification, 0, len(names))
	for _, name := range names {
		c, err := driver.CertificationFromString(name)
		if err != nil {
			return nil, err
		}
		certifications = append(certifications, c)
	}
	return certifications, nil
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Certifications: marshalCertifications(aggregate.Certifications()),
		VehicleType:    int(aggregate.VehicleType()),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lon: aggregate.Location().Lon(),
		},
		MaxLoad:     aggregate.MaxLoad(),
		CurrentLoad: aggregate.CurrentLoad(),
		Rating:      aggregate.Rating(),
		Available:   aggregate.IsAvailable(),
	}
}

// toDomain converts a database row back to a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	certifications, err := unmarshalCertifications(dto.Certifications)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lon)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		certifications,
		driver.VehicleType(dto.VehicleType),
		dto.MaxLoad,
		dto.CurrentLoad,
		dto.Rating,
		location,
		dto.Available,
	)
}
