package order_test

import (
	"testing"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEcommercePayload() order.EcommercePayload {
	return order.EcommercePayload{
		PlatformOrderID: "SHOP-1001",
		PlatformName:    "shopify",
		CustomerEmail:   "jane@example.com",
	}
}

func validItems() []order.Item {
	return []order.Item{
		{SKU: "SKU-A", Quantity: 2},
		{SKU: "SKU-B", Quantity: 3},
	}
}

func validLocation() kernel.GeoPoint {
	p, _ := kernel.NewGeoPoint(34.0522, -118.2437)
	return p
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"1 Main St, Springfield",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.NoError(t, err)
		require.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.IndustryEcommerce, o.Industry())
		assert.Equal(t, order.OrderTypeEcommerceDirect, o.Type())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PriorityNormal, o.Priority())
		assert.Equal(t, 5, o.Load())
		assert.Nil(t, o.Warehouse())
		assert.Nil(t, o.Driver())
		assert.False(t, o.RequiresExpeditedHandling())
		assert.False(t, o.RequiresManualHandling())
	})

	t.Run("should derive industry from order type", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.OrderTypeFoodDeliveryCustomer,
			order.OrderSourceUberEats,
			[]order.Item{{SKU: "MEAL-1", Quantity: 1}},
			"2 Oak Ave",
			validLocation(),
			kernel.TimeWindow{},
			order.FoodDeliveryPayload{RestaurantID: "R-9", RestaurantName: "Luigi's", PrepTimeMinutes: 15},
		)

		require.NoError(t, err)
		assert.Equal(t, order.IndustryFoodDelivery, o.Industry())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(
			invalidID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			nil,
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should fail with zero quantity item", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			[]order.Item{{SKU: "SKU-A", Quantity: 0}},
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should fail with nil payload", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrPayloadIsRequired)
	})

	t.Run("should fail when payload category does not match order type", func(t *testing.T) {
		o, err := order.NewOrder(
			validID,
			order.OrderTypeRetailPurchaseOrder,
			order.OrderSourceVendorPortal,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrPayloadCategoryMismatch)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(
			invalidID,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			nil,
			"",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("should allow moving to the next workflow status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("should reject skipping a workflow status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.StatusShipped)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))

		err := o.ChangeStatus(order.StatusPending)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should allow cancellation from any non-terminal status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))
		require.NoError(t, o.ChangeStatus(order.StatusProcessing))

		require.NoError(t, o.ChangeStatus(order.StatusCancelled))
		assert.True(t, o.IsTerminal())
	})

	t.Run("should reject any change out of a terminal status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		err := o.ChangeStatus(order.StatusConfirmed)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should allow return only from delivered", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.StatusReturned)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		for _, s := range []order.Status{
			order.StatusConfirmed, order.StatusProcessing, order.StatusPicked,
			order.StatusPacked, order.StatusShipped, order.StatusOutForDelivery,
			order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(s))
		}

		require.NoError(t, o.ChangeStatus(order.StatusReturned))
		assert.True(t, o.IsTerminal())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.StatusUnknown)

		require.Error(t, err)
	})
}

func TestOrderAssignments(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("should assign warehouse", func(t *testing.T) {
		o := newOrder(t)
		warehouseID := kernel.NewUUID()

		require.NoError(t, o.AssignWarehouse(warehouseID))
		require.NotNil(t, o.Warehouse())
		assert.True(t, o.Warehouse().IsEqual(warehouseID))
	})

	t.Run("should reject driver before warehouse", func(t *testing.T) {
		o := newOrder(t)

		err := o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrWarehouseNotAssigned)
		assert.Nil(t, o.Driver())
	})

	t.Run("should assign driver after warehouse", func(t *testing.T) {
		o := newOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.AssignWarehouse(kernel.NewUUID()))
		require.NoError(t, o.AssignDriver(driverID))
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("should reject warehouse assignment on terminal order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		err := o.AssignWarehouse(kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should reject invalid warehouse id", func(t *testing.T) {
		o := newOrder(t)
		var invalidID kernel.UUID

		require.Error(t, o.AssignWarehouse(invalidID))
	})
}

func TestOrderFlagsAndEstimate(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.OrderTypeEcommerceDirect,
		order.OrderSourceShopify,
		validItems(),
		"1 Main St",
		validLocation(),
		kernel.TimeWindow{},
		validEcommercePayload(),
	)
	require.NoError(t, err)

	t.Run("should attach fulfillment estimate", func(t *testing.T) {
		o.InitializeWorkflow(40 * time.Minute)

		assert.Equal(t, 40*time.Minute, o.FulfillmentEstimate())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should keep progressed status on workflow re-init", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))

		o.InitializeWorkflow(50 * time.Minute)

		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, 50*time.Minute, o.FulfillmentEstimate())
	})

	t.Run("should set sticky handling flags", func(t *testing.T) {
		o.FlagExpeditedHandling()
		o.RequireManualHandling()

		assert.True(t, o.RequiresExpeditedHandling())
		assert.True(t, o.RequiresManualHandling())
	})

	t.Run("should change priority", func(t *testing.T) {
		require.NoError(t, o.SetPriority(order.PriorityUrgent))
		assert.Equal(t, order.PriorityUrgent, o.Priority())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with assignments and flags", func(t *testing.T) {
		id := kernel.NewUUID()
		warehouseID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(
			id,
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			order.StatusProcessing,
			order.PriorityHigh,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
			&warehouseID,
			&driverID,
			35*time.Minute,
			true,
			false,
			createdAt,
			updatedAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusProcessing, o.Status())
		assert.Equal(t, order.PriorityHigh, o.Priority())
		assert.True(t, o.Warehouse().IsEqual(warehouseID))
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Equal(t, 35*time.Minute, o.FulfillmentEstimate())
		assert.True(t, o.RequiresExpeditedHandling())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.OrderTypeEcommerceDirect,
			order.OrderSourceShopify,
			order.StatusUnknown,
			order.PriorityNormal,
			validItems(),
			"1 Main St",
			validLocation(),
			kernel.TimeWindow{},
			validEcommercePayload(),
			nil, nil, 0, false, false,
			time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
