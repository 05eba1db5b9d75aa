package order

import (
	"fmt"

	"logix/internal/pkg/errs"
)

// OrderType refines the industry category into the concrete business flow an
// order follows. Each type owns a status workflow (see workflow.go).
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined type.
	OrderTypeUnknown OrderType = iota

	// E-commerce flows.
	OrderTypeEcommerceDirect
	OrderTypeEcommerceMarketplace
	OrderTypeEcommerceSubscription

	// Retail distribution flows.
	OrderTypeRetailPurchaseOrder
	OrderTypeRetailTransfer
	OrderTypeRetailRestock
	OrderTypeRetailReturn

	// Food delivery flows.
	OrderTypeFoodDeliveryCustomer
	OrderTypeFoodDeliveryCatering
	OrderTypeFoodDeliveryGrocery
	OrderTypeFoodDeliveryPickup

	// Manufacturing flows.
	OrderTypeManufacturingProduction
	OrderTypeManufacturingRawMaterials
	OrderTypeManufacturingFinishedGoods

	// Third-party logistics flows.
	OrderTypeThirdPartyFulfillment
	OrderTypeThirdPartyCrossDock
	OrderTypeThirdPartyStorage
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		OrderTypeEcommerceDirect:            "ecommerce_direct",
		OrderTypeEcommerceMarketplace:       "ecommerce_marketplace",
		OrderTypeEcommerceSubscription:      "ecommerce_subscription",
		OrderTypeRetailPurchaseOrder:        "retail_po",
		OrderTypeRetailTransfer:             "retail_transfer",
		OrderTypeRetailRestock:              "retail_restock",
		OrderTypeRetailReturn:               "retail_return",
		OrderTypeFoodDeliveryCustomer:       "food_delivery_customer",
		OrderTypeFoodDeliveryCatering:       "food_delivery_catering",
		OrderTypeFoodDeliveryGrocery:        "food_delivery_grocery",
		OrderTypeFoodDeliveryPickup:         "food_delivery_pickup",
		OrderTypeManufacturingProduction:    "manufacturing_production",
		OrderTypeManufacturingRawMaterials:  "manufacturing_raw_materials",
		OrderTypeManufacturingFinishedGoods: "manufacturing_finished_goods",
		OrderTypeThirdPartyFulfillment:      "3pl_fulfillment",
		OrderTypeThirdPartyCrossDock:        "3pl_cross_dock",
		OrderTypeThirdPartyStorage:          "3pl_storage",
	}
}

func getOrderTypeCategories() map[OrderType]IndustryCategory {
	return map[OrderType]IndustryCategory{
		OrderTypeEcommerceDirect:            IndustryEcommerce,
		OrderTypeEcommerceMarketplace:       IndustryEcommerce,
		OrderTypeEcommerceSubscription:      IndustryEcommerce,
		OrderTypeRetailPurchaseOrder:        IndustryRetail,
		OrderTypeRetailTransfer:             IndustryRetail,
		OrderTypeRetailRestock:              IndustryRetail,
		OrderTypeRetailReturn:               IndustryRetail,
		OrderTypeFoodDeliveryCustomer:       IndustryFoodDelivery,
		OrderTypeFoodDeliveryCatering:       IndustryFoodDelivery,
		OrderTypeFoodDeliveryGrocery:        IndustryFoodDelivery,
		OrderTypeFoodDeliveryPickup:         IndustryFoodDelivery,
		OrderTypeManufacturingProduction:    IndustryManufacturing,
		OrderTypeManufacturingRawMaterials:  IndustryManufacturing,
		OrderTypeManufacturingFinishedGoods: IndustryManufacturing,
		OrderTypeThirdPartyFulfillment:      IndustryThirdPartyLogistics,
		OrderTypeThirdPartyCrossDock:        IndustryThirdPartyLogistics,
		OrderTypeThirdPartyStorage:          IndustryThirdPartyLogistics,
	}
}

// AllOrderTypes returns every declared order type in declaration order.
func AllOrderTypes() []OrderType {
	return []OrderType{
		OrderTypeEcommerceDirect,
		OrderTypeEcommerceMarketplace,
		OrderTypeEcommerceSubscription,
		OrderTypeRetailPurchaseOrder,
		OrderTypeRetailTransfer,
		OrderTypeRetailRestock,
		OrderTypeRetailReturn,
		OrderTypeFoodDeliveryCustomer,
		OrderTypeFoodDeliveryCatering,
		OrderTypeFoodDeliveryGrocery,
		OrderTypeFoodDeliveryPickup,
		OrderTypeManufacturingProduction,
		OrderTypeManufacturingRawMaterials,
		OrderTypeManufacturingFinishedGoods,
		OrderTypeThirdPartyFulfillment,
		OrderTypeThirdPartyCrossDock,
		OrderTypeThirdPartyStorage,
	}
}

// Category returns the industry vertical this order type belongs to.
func (t OrderType) Category() IndustryCategory {
	if c, ok := getOrderTypeCategories()[t]; ok {
		return c
	}
	return IndustryUnknown
}

// Validate checks that the type is one of the declared flows.
func (t OrderType) Validate() error {
	if _, ok := getOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the wire name of the type or "unknown".
func (t OrderType) String() string {
	if s, ok := getOrderTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// OrderTypeFromString parses a wire name into an OrderType.
func OrderTypeFromString(s string) (OrderType, error) {
	for orderType, name := range getOrderTypeStrings() {
		if name == s {
			return orderType, nil
		}
	}
	return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderType",
		fmt.Errorf("%q is not a valid order type", s),
	)
}
