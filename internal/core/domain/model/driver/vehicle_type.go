package driver

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// VehicleType classifies what a driver drives and bounds the single-order
// load the vehicle can physically take.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	VehicleTypeUnknown VehicleType = iota
	VehicleTypeBike
	VehicleTypeCar
	VehicleTypeVan
	VehicleTypeTruck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeBike:  "bike",
		VehicleTypeCar:   "car",
		VehicleTypeVan:   "van",
		VehicleTypeTruck: "truck",
	}
}

// getVehicleLoadLimits bounds the load units a single order may put on each
// vehicle class. Trucks are unbounded; the driver's own max load still caps
// them.
func getVehicleLoadLimits() map[VehicleType]int {
	return map[VehicleType]int{
		VehicleTypeBike: 5,
		VehicleTypeCar:  10,
		VehicleTypeVan:  25,
	}
}

// Validate checks that the vehicle type is one of the declared values.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType",
			fmt.Errorf("%d is not a known vehicle type", int(v)),
		)
	}
	return nil
}

// String returns the wire representation of the vehicle type.
func (v VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[v]; ok {
		return s
	}
	return "unknown"
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for v, str := range getVehicleTypeStrings() {
		if str == s {
			return v, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType",
		fmt.Errorf("%q is not a known vehicle type", s),
	)
}

// FitsLoad reports whether a single order of the given load units fits this
// vehicle class.
func (v VehicleType) FitsLoad(load int) bool {
	if load <= 0 {
		return false
	}
	limit, ok := getVehicleLoadLimits()[v]
	if !ok {
		return v == VehicleTypeTruck
	}
	return load <= limit
}
