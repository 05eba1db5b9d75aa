package driver

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// Certification is a qualification a driver holds. Orders derive required
// certifications from their industry payload, e.g. food safety for food
// delivery and hazmat for hazardous retail freight.
type Certification int

const (
	// CertificationUnknown represents an invalid or undefined certification.
	CertificationUnknown Certification = iota
	CertificationFoodSafety
	CertificationHazmat
	CertificationForklift
)

func getCertificationStrings() map[Certification]string {
	return map[Certification]string{
		CertificationFoodSafety: "food_safety",
		CertificationHazmat:     "hazmat",
		CertificationForklift:   "forklift",
	}
}

// Validate checks that the certification is one of the declared values.
func (c Certification) Validate() error {
	if _, ok := getCertificationStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"certification",
			fmt.Errorf("%d is not a known certification", int(c)),
		)
	}
	return nil
}

// String returns the wire representation of the certification.
func (c Certification) String() string {
	if s, ok := getCertificationStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// CertificationFromString parses the wire representation of a certification.
func CertificationFromString(s string) (Certification, error) {
	for c, str := range getCertificationStrings() {
		if str == s {
			return c, nil
		}
	}
	return CertificationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"certification",
		fmt.Errorf("%q is not a known certification", s),
	)
}
