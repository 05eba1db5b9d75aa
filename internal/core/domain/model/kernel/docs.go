// Package kernel provides the shared value objects used across the domain
// model: UUID identifiers, WGS84 geographic points with haversine distances,
// and delivery time windows.
//
// All types in this package are immutable value objects. They validate on
// construction and are safe to share between goroutines.
package kernel
