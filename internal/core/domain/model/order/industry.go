package order

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// IndustryCategory identifies the business vertical an order belongs to.
// The category drives validator selection, fulfillment time estimation,
// warehouse capability requirements, and driver certification requirements.
type IndustryCategory int

const (
	// IndustryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized values.
	IndustryUnknown IndustryCategory = iota

	// IndustryEcommerce covers direct, marketplace, and subscription web orders.
	IndustryEcommerce

	// IndustryRetail covers B2B retail distribution (purchase orders, transfers, restocks).
	IndustryRetail

	// IndustryFoodDelivery covers restaurant, catering, and grocery deliveries.
	IndustryFoodDelivery

	// IndustryManufacturing covers production, raw material, and finished goods orders.
	IndustryManufacturing

	// IndustryThirdPartyLogistics covers 3PL fulfillment, storage, and cross-dock orders.
	IndustryThirdPartyLogistics
)

func getIndustryStrings() map[IndustryCategory]string {
	return map[IndustryCategory]string{
		IndustryEcommerce:           "ecommerce",
		IndustryRetail:              "retail",
		IndustryFoodDelivery:        "food_delivery",
		IndustryManufacturing:       "manufacturing",
		IndustryThirdPartyLogistics: "3pl",
	}
}

// AllIndustryCategories returns every valid category, in declaration order.
// Used by registries to verify full coverage.
func AllIndustryCategories() []IndustryCategory {
	return []IndustryCategory{
		IndustryEcommerce,
		IndustryRetail,
		IndustryFoodDelivery,
		IndustryManufacturing,
		IndustryThirdPartyLogistics,
	}
}

// Validate checks that the category is one of the declared verticals.
func (c IndustryCategory) Validate() error {
	if _, ok := getIndustryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"industryCategory",
			fmt.Errorf("%d is not a valid industry category", c),
		)
	}
	return nil
}

// String returns the wire name of the category ("ecommerce", "retail",
// "food_delivery", "manufacturing", "3pl") or "unknown".
func (c IndustryCategory) String() string {
	if s, ok := getIndustryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// IndustryCategoryFromString parses a wire name into an IndustryCategory.
func IndustryCategoryFromString(s string) (IndustryCategory, error) {
	for category, name := range getIndustryStrings() {
		if name == s {
			return category, nil
		}
	}
	return IndustryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"industryCategory",
		fmt.Errorf("%q is not a valid industry category", s),
	)
}
