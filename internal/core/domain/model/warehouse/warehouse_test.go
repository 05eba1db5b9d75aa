package warehouse_test

import (
	"testing"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() kernel.GeoPoint {
	p, _ := kernel.NewGeoPoint(37.7749, -122.4194)
	return p
}

func TestNewWarehouse(t *testing.T) {
	t.Run("should create valid warehouse", func(t *testing.T) {
		id := kernel.NewUUID()

		w, err := warehouse.NewWarehouse(
			id,
			"Food Hub",
			[]warehouse.Capability{warehouse.CapabilityFoodDelivery, warehouse.CapabilityTemperatureControlled},
			warehouse.AlwaysOpen(),
			testLocation(),
			500,
		)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsEqual(id))
		assert.Equal(t, "Food Hub", w.Name())
		assert.Equal(t, 0, w.CurrentCapacity())
		assert.Equal(t, 500, w.MaxCapacity())
		assert.True(t, w.HasCapability(warehouse.CapabilityTemperatureControlled))
		assert.False(t, w.HasCapability(warehouse.CapabilityHazmatCertified))
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(
			kernel.NewUUID(), "",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), testLocation(), 100,
		)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, warehouse.ErrNameIsRequired)
	})

	t.Run("should fail with no capabilities", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(
			kernel.NewUUID(), "Main DC", nil,
			warehouse.AlwaysOpen(), testLocation(), 100,
		)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, warehouse.ErrCapabilitiesAreRequired)
	})

	t.Run("should fail with unknown capability", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(
			kernel.NewUUID(), "Main DC",
			[]warehouse.Capability{warehouse.CapabilityUnknown},
			warehouse.AlwaysOpen(), testLocation(), 100,
		)

		require.Error(t, err)
		assert.Nil(t, w)
	})

	t.Run("should fail with non-positive capacity", func(t *testing.T) {
		w, err := warehouse.NewWarehouse(
			kernel.NewUUID(), "Main DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), testLocation(), 0,
		)

		require.Error(t, err)
		assert.Nil(t, w)
	})
}

func TestWarehouseCapabilities(t *testing.T) {
	w, err := warehouse.NewWarehouse(
		kernel.NewUUID(), "Main DC",
		[]warehouse.Capability{
			warehouse.CapabilityEcommerce,
			warehouse.CapabilityRetail,
			warehouse.CapabilityHazmatCertified,
		},
		warehouse.AlwaysOpen(), testLocation(), 100,
	)
	require.NoError(t, err)

	t.Run("should match a required subset", func(t *testing.T) {
		assert.True(t, w.HasCapabilities([]warehouse.Capability{
			warehouse.CapabilityRetail, warehouse.CapabilityHazmatCertified,
		}))
	})

	t.Run("should reject a missing requirement", func(t *testing.T) {
		assert.False(t, w.HasCapabilities([]warehouse.Capability{
			warehouse.CapabilityRetail, warehouse.CapabilityTemperatureControlled,
		}))
	})

	t.Run("should match an empty requirement", func(t *testing.T) {
		assert.True(t, w.HasCapabilities(nil))
	})
}

func TestOperatingHours(t *testing.T) {
	t.Run("should contain minutes inside a same-day interval", func(t *testing.T) {
		h, err := warehouse.NewOperatingHours(6*60, 22*60)
		require.NoError(t, err)

		assert.True(t, h.ContainsMinute(6*60))
		assert.True(t, h.ContainsMinute(12*60))
		assert.False(t, h.ContainsMinute(22*60))
		assert.False(t, h.ContainsMinute(3*60))
	})

	t.Run("should wrap overnight intervals across midnight", func(t *testing.T) {
		h, err := warehouse.NewOperatingHours(22*60, 6*60)
		require.NoError(t, err)

		assert.True(t, h.ContainsMinute(23*60))
		assert.True(t, h.ContainsMinute(2*60))
		assert.False(t, h.ContainsMinute(12*60))
	})

	t.Run("always open contains every minute", func(t *testing.T) {
		h := warehouse.AlwaysOpen()

		assert.True(t, h.IsAlwaysOpen())
		assert.True(t, h.ContainsMinute(0))
		assert.True(t, h.ContainsMinute(1439))
		assert.Equal(t, "24/7", h.String())
	})

	t.Run("should reject out of range bounds", func(t *testing.T) {
		_, err := warehouse.NewOperatingHours(-1, 600)
		require.Error(t, err)

		_, err = warehouse.NewOperatingHours(600, 600)
		require.Error(t, err)
	})

	t.Run("warehouse evaluates instants in UTC", func(t *testing.T) {
		h, err := warehouse.NewOperatingHours(8*60, 18*60)
		require.NoError(t, err)

		w, err := warehouse.NewWarehouse(
			kernel.NewUUID(), "Plant",
			[]warehouse.Capability{warehouse.CapabilityManufacturing},
			h, testLocation(), 100,
		)
		require.NoError(t, err)

		open := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		closed := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)

		assert.True(t, w.IsOpenAt(open))
		assert.False(t, w.IsOpenAt(closed))
	})
}

func TestWarehouseCapacity(t *testing.T) {
	newWarehouse := func(t *testing.T, current, max int) *warehouse.Warehouse {
		t.Helper()
		w, err := warehouse.RestoreWarehouse(
			kernel.NewUUID(), "Main DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), testLocation(), current, max,
		)
		require.NoError(t, err)
		return w
	}

	t.Run("should report headroom", func(t *testing.T) {
		w := newWarehouse(t, 40, 100)

		assert.True(t, w.HasAvailableCapacity())
		assert.True(t, w.CanAccommodate(60))
		assert.False(t, w.CanAccommodate(61))
		assert.InDelta(t, 0.6, w.AvailableFraction(), 1e-9)
	})

	t.Run("full warehouse has no headroom", func(t *testing.T) {
		w := newWarehouse(t, 100, 100)

		assert.False(t, w.HasAvailableCapacity())
		assert.False(t, w.CanAccommodate(1))
	})

	t.Run("should reserve and release capacity", func(t *testing.T) {
		w := newWarehouse(t, 10, 20)

		require.NoError(t, w.Reserve(5))
		assert.Equal(t, 15, w.CurrentCapacity())

		require.NoError(t, w.Release(3))
		assert.Equal(t, 12, w.CurrentCapacity())
	})

	t.Run("should reject reservation past the ceiling", func(t *testing.T) {
		w := newWarehouse(t, 19, 20)

		err := w.Reserve(2)

		require.Error(t, err)
		assert.ErrorIs(t, err, warehouse.ErrCapacityExceeded)
		assert.Equal(t, 19, w.CurrentCapacity())
	})

	t.Run("should reject releasing more than reserved", func(t *testing.T) {
		w := newWarehouse(t, 2, 20)

		require.Error(t, w.Release(3))
		assert.Equal(t, 2, w.CurrentCapacity())
	})

	t.Run("restore should reject utilization past the ceiling", func(t *testing.T) {
		_, err := warehouse.RestoreWarehouse(
			kernel.NewUUID(), "Main DC",
			[]warehouse.Capability{warehouse.CapabilityEcommerce},
			warehouse.AlwaysOpen(), testLocation(), 101, 100,
		)

		require.Error(t, err)
	})
}
