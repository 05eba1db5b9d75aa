package warehouse

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// Capability is a fulfillment capability a warehouse offers. Industry
// capabilities mark which verticals a facility can serve; the remaining
// values are physical qualifications a particular order may demand.
type Capability int

const (
	// CapabilityUnknown represents an invalid or undefined capability.
	CapabilityUnknown Capability = iota
	CapabilityEcommerce
	CapabilityRetail
	CapabilityFoodDelivery
	CapabilityManufacturing
	CapabilityThirdPartyLogistics
	CapabilityTemperatureControlled
	CapabilityHazmatCertified
	CapabilityInspectionCapable
	CapabilityCrossDock
)

func getCapabilityStrings() map[Capability]string {
	return map[Capability]string{
		CapabilityEcommerce:             "ecommerce",
		CapabilityRetail:                "retail",
		CapabilityFoodDelivery:          "food_delivery",
		CapabilityManufacturing:         "manufacturing",
		CapabilityThirdPartyLogistics:   "3pl",
		CapabilityTemperatureControlled: "temperature_controlled",
		CapabilityHazmatCertified:       "hazmat_certified",
		CapabilityInspectionCapable:     "inspection_capable",
		CapabilityCrossDock:             "cross_dock",
	}
}

// Validate checks that the capability is one of the declared values.
func (c Capability) Validate() error {
	if _, ok := getCapabilityStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"capability",
			fmt.Errorf("%d is not a known capability", int(c)),
		)
	}
	return nil
}

// String returns the wire representation of the capability.
func (c Capability) String() string {
	if s, ok := getCapabilityStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// CapabilityFromString parses the wire representation of a capability.
func CapabilityFromString(s string) (Capability, error) {
	for c, str := range getCapabilityStrings() {
		if str == s {
			return c, nil
		}
	}
	return CapabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"capability",
		fmt.Errorf("%q is not a known capability", s),
	)
}
