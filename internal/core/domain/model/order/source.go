package order

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// OrderSource records the channel an order arrived through. The engine does
// not branch on it, but it is carried for auditing and dashboards.
type OrderSource int

const (
	// OrderSourceUnknown represents an invalid or undefined source.
	OrderSourceUnknown OrderSource = iota

	// E-commerce platforms.
	OrderSourceShopify
	OrderSourceWooCommerce
	OrderSourceAmazonMarketplace

	// Retail distribution channels.
	OrderSourceVendorPortal
	OrderSourceEDISystem

	// Food delivery platforms.
	OrderSourceUberEats
	OrderSourceDoorDash
	OrderSourceRestaurantPOS

	// Manufacturing systems.
	OrderSourceERPSystem
	OrderSourceProductionSchedule

	// 3PL channels.
	OrderSourceClientPortal
	OrderSourceWMSIntegration

	// Generic channels.
	OrderSourceWeb
	OrderSourceMobile
	OrderSourceAPI
	OrderSourceManualEntry
)

func getOrderSourceStrings() map[OrderSource]string {
	return map[OrderSource]string{
		OrderSourceShopify:            "shopify",
		OrderSourceWooCommerce:        "woocommerce",
		OrderSourceAmazonMarketplace:  "amazon_marketplace",
		OrderSourceVendorPortal:       "vendor_portal",
		OrderSourceEDISystem:          "edi_system",
		OrderSourceUberEats:           "uber_eats",
		OrderSourceDoorDash:           "doordash",
		OrderSourceRestaurantPOS:      "restaurant_pos",
		OrderSourceERPSystem:          "erp_system",
		OrderSourceProductionSchedule: "production_schedule",
		OrderSourceClientPortal:       "client_portal",
		OrderSourceWMSIntegration:     "wms_integration",
		OrderSourceWeb:                "web",
		OrderSourceMobile:             "mobile",
		OrderSourceAPI:                "api",
		OrderSourceManualEntry:        "manual_entry",
	}
}

// Validate checks that the source is one of the declared channels.
func (s OrderSource) Validate() error {
	if _, ok := getOrderSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderSource",
			fmt.Errorf("%d is not a valid order source", s),
		)
	}
	return nil
}

// String returns the wire name of the source or "unknown".
func (s OrderSource) String() string {
	if str, ok := getOrderSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// OrderSourceFromString parses a wire name into an OrderSource.
func OrderSourceFromString(s string) (OrderSource, error) {
	for source, name := range getOrderSourceStrings() {
		if name == s {
			return source, nil
		}
	}
	return OrderSourceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderSource",
		fmt.Errorf("%q is not a valid order source", s),
	)
}
