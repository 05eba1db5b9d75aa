package services_test

import (
	"testing"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/core/domain/model/warehouse"
	"logix/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWarehouse(
	t *testing.T,
	name string,
	capabilities []warehouse.Capability,
	hours warehouse.OperatingHours,
	location kernel.GeoPoint,
	current, max int,
) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.RestoreWarehouse(
		kernel.NewUUID(), name, capabilities, hours, location, current, max)
	require.NoError(t, err)
	return w
}

func TestRequiredCapabilities(t *testing.T) {
	router := services.NewWarehouseRouter()
	location := geoPoint(t, 34.05, -118.24)

	t.Run("food orders always require temperature control", func(t *testing.T) {
		o := buildFoodOrder(t, location, foodPayload(20, 0))

		required := router.RequiredCapabilities(o)

		assert.ElementsMatch(t, []warehouse.Capability{
			warehouse.CapabilityFoodDelivery, warehouse.CapabilityTemperatureControlled,
		}, required)
	})

	t.Run("hazmat retail adds hazmat certification", func(t *testing.T) {
		p := retailPayload()
		p.Hazmat = true
		p.ComplianceCertifications = []string{"DOT-HM-181"}
		p.InspectionRequired = true
		o := buildOrder(t, order.OrderTypeRetailPurchaseOrder, order.OrderSourceVendorPortal,
			[]order.Item{{SKU: "A", Quantity: 2}}, location, p)

		required := router.RequiredCapabilities(o)

		assert.ElementsMatch(t, []warehouse.Capability{
			warehouse.CapabilityRetail,
			warehouse.CapabilityHazmatCertified,
			warehouse.CapabilityInspectionCapable,
		}, required)
	})

	t.Run("cross-dock orders need a cross-dock facility", func(t *testing.T) {
		o := buildOrder(t, order.OrderTypeThirdPartyCrossDock, order.OrderSourceClientPortal,
			[]order.Item{{SKU: "A", Quantity: 2}}, location, thirdPartyPayload())

		required := router.RequiredCapabilities(o)

		assert.ElementsMatch(t, []warehouse.Capability{
			warehouse.CapabilityThirdPartyLogistics, warehouse.CapabilityCrossDock,
		}, required)
	})
}

func TestSelectWarehouse(t *testing.T) {
	router := services.NewWarehouseRouter()

	// Delivery in downtown LA; one warehouse close by, one up in SF.
	deliveryLocation := geoPoint(t, 34.0522, -118.2437)
	nearLocation := geoPoint(t, 34.10, -118.30)
	farLocation := geoPoint(t, 37.7749, -122.4194)

	t.Run("picks the fastest transit among qualified facilities", func(t *testing.T) {
		near := buildWarehouse(t, "LA DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), nearLocation, 0, 100)
		far := buildWarehouse(t, "SF DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), farLocation, 0, 100)
		o := buildEcommerceOrder(t, deliveryLocation, []order.Item{{SKU: "A", Quantity: 1}})

		selection, err := router.SelectWarehouse(o, []*warehouse.Warehouse{far, near})

		require.NoError(t, err)
		assert.True(t, selection.WarehouseID.IsEqual(near.ID()))
		assert.Contains(t, selection.Reason, "fastest transit")
	})

	t.Run("capability disqualification beats distance", func(t *testing.T) {
		// The close warehouse lacks temperature control, so the far one wins.
		near := buildWarehouse(t, "LA Dry Goods",
			[]warehouse.Capability{warehouse.CapabilityFoodDelivery},
			warehouse.AlwaysOpen(), nearLocation, 0, 100)
		far := buildWarehouse(t, "SF Food Hub",
			[]warehouse.Capability{warehouse.CapabilityFoodDelivery, warehouse.CapabilityTemperatureControlled},
			warehouse.AlwaysOpen(), farLocation, 0, 100)
		o := buildFoodOrder(t, deliveryLocation, foodPayload(20, 0))

		selection, err := router.SelectWarehouse(o, []*warehouse.Warehouse{near, far})

		require.NoError(t, err)
		assert.True(t, selection.WarehouseID.IsEqual(far.ID()))
		assert.Contains(t, selection.Reason, "only facility")
	})

	t.Run("ties on transit break to more headroom", func(t *testing.T) {
		full := buildWarehouse(t, "Busy DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), nearLocation, 90, 100)
		empty := buildWarehouse(t, "Fresh DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), nearLocation, 10, 100)
		o := buildEcommerceOrder(t, deliveryLocation, []order.Item{{SKU: "A", Quantity: 1}})

		selection, err := router.SelectWarehouse(o, []*warehouse.Warehouse{full, empty})

		require.NoError(t, err)
		assert.True(t, selection.WarehouseID.IsEqual(empty.ID()))
	})

	t.Run("closed facilities are filtered out", func(t *testing.T) {
		dayHours, err := warehouse.NewOperatingHours(8*60, 18*60)
		require.NoError(t, err)

		closed := buildWarehouse(t, "Day DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			dayHours, nearLocation, 0, 100)

		nightRouter := services.NewWarehouseRouterWithClock(func() time.Time {
			return time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
		})
		o := buildEcommerceOrder(t, deliveryLocation, []order.Item{{SKU: "A", Quantity: 1}})

		_, err = nightRouter.SelectWarehouse(o, []*warehouse.Warehouse{closed})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoWarehouseAvailable)
	})

	t.Run("facilities without room for the load are filtered out", func(t *testing.T) {
		crowded := buildWarehouse(t, "Crowded DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), nearLocation, 99, 100)
		o := buildEcommerceOrder(t, deliveryLocation, []order.Item{{SKU: "A", Quantity: 2}})

		_, err := router.SelectWarehouse(o, []*warehouse.Warehouse{crowded})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoWarehouseAvailable)
	})

	t.Run("empty candidate list returns NoWarehouseAvailable", func(t *testing.T) {
		o := buildEcommerceOrder(t, deliveryLocation, []order.Item{{SKU: "A", Quantity: 1}})

		_, err := router.SelectWarehouse(o, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoWarehouseAvailable)
	})
}
