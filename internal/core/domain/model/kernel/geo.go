package kernel

import (
	"fmt"
	"math"
	"time"

	"logix/internal/pkg/errs"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// DefaultTravelSpeedKmh is the assumed average road speed used when
	// converting distances into transit-time estimates.
	DefaultTravelSpeedKmh = 40.0

	latitudeMin  = -90.0
	latitudeMax  = 90.0
	longitudeMin = -180.0
	longitudeMax = 180.0
)

// GeoPoint is a value object holding a WGS84 coordinate pair.
// It is used for warehouse locations, driver positions, and delivery
// destinations. The zero value (0, 0) is a valid point in the Gulf of
// Guinea; use NewGeoPoint so range validation is applied.
//
// GeoPoint is immutable and safe for concurrent use.
type GeoPoint struct {
	lat float64
	lon float64
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90, 90] and longitude within [-180, 180] degrees.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < latitudeMin || lat > latitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, latitudeMin, latitudeMax)
	}
	if lon < longitudeMin || lon > longitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, longitudeMin, longitudeMax)
	}

	return GeoPoint{lat: lat, lon: lon}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// DistanceKm returns the great-circle distance to the other point in kilometers,
// computed with the haversine formula.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TravelTime estimates the transit duration to other at the given average
// speed. Speeds at or below zero fall back to DefaultTravelSpeedKmh.
func (p GeoPoint) TravelTime(other GeoPoint, speedKmh float64) time.Duration {
	if speedKmh <= 0 {
		speedKmh = DefaultTravelSpeedKmh
	}

	hours := p.DistanceKm(other) / speedKmh
	return time.Duration(hours * float64(time.Hour))
}

// String returns "lat,lon" with six decimal places, the precision commonly
// used for street-level coordinates.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.lat, p.lon)
}
