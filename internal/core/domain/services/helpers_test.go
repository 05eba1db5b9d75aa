package services_test

import (
	"testing"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func buildOrder(
	t *testing.T,
	orderType order.OrderType,
	source order.OrderSource,
	items []order.Item,
	deliveryLocation kernel.GeoPoint,
	payload order.Payload,
) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), orderType, source, items,
		"1 Main St, Springfield", deliveryLocation, kernel.TimeWindow{}, payload,
	)
	require.NoError(t, err)
	return o
}

func ecommercePayload() order.EcommercePayload {
	return order.EcommercePayload{
		PlatformOrderID: "SHOP-1001",
		PlatformName:    "shopify",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+15550100",
		CustomerSegment: "loyal",
	}
}

func retailPayload() order.RetailPayload {
	return order.RetailPayload{
		PONumber:      "PO-9001",
		VendorID:      "V-77",
		VendorName:    "Acme Wholesale",
		PaymentTerms:  "Net 30",
		DeliveryTerms: "FOB Destination",
	}
}

func foodPayload(prepMinutes, travelMinutes int) order.FoodDeliveryPayload {
	return order.FoodDeliveryPayload{
		RestaurantID:           "R-9",
		RestaurantName:         "Luigi's",
		CustomerPhone:          "+15550101",
		PrepTimeMinutes:        prepMinutes,
		TravelEstimateMinutes:  travelMinutes,
		TemperatureRequirement: order.TemperatureHot,
	}
}

func thirdPartyPayload() order.ThirdPartyPayload {
	return order.ThirdPartyPayload{
		ClientID:          "C-12",
		ClientName:        "Northwind",
		ServiceType:       "fulfillment",
		BillingModel:      "per_order",
		FulfillmentCenter: "FC-EAST",
	}
}

func buildEcommerceOrder(t *testing.T, deliveryLocation kernel.GeoPoint, items []order.Item) *order.Order {
	t.Helper()
	return buildOrder(t, order.OrderTypeEcommerceDirect, order.OrderSourceShopify,
		items, deliveryLocation, ecommercePayload())
}

func buildFoodOrder(t *testing.T, deliveryLocation kernel.GeoPoint, payload order.FoodDeliveryPayload) *order.Order {
	t.Helper()
	return buildOrder(t, order.OrderTypeFoodDeliveryCustomer, order.OrderSourceUberEats,
		[]order.Item{{SKU: "MEAL-1", Quantity: 1}}, deliveryLocation, payload)
}
