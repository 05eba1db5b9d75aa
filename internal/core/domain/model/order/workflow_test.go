package order_test

import (
	"testing"

	"logix/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow(t *testing.T) {
	t.Run("should declare a workflow for every order type", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			seq := order.Workflow(ot)
			require.NotEmpty(t, seq, "order type %s has no workflow", ot)
			assert.Equal(t, order.StatusPending, seq[0], "order type %s does not start at pending", ot)
		}
	})

	t.Run("should return nil for unknown order type", func(t *testing.T) {
		assert.Nil(t, order.Workflow(order.OrderTypeUnknown))
	})

	t.Run("should return a defensive copy", func(t *testing.T) {
		seq := order.Workflow(order.OrderTypeEcommerceDirect)
		seq[0] = order.StatusShipped

		assert.Equal(t, order.StatusPending, order.Workflow(order.OrderTypeEcommerceDirect)[0])
	})
}

func TestInitialStatus(t *testing.T) {
	for _, ot := range order.AllOrderTypes() {
		assert.Equal(t, order.StatusPending, order.InitialStatus(ot))
	}
	assert.Equal(t, order.StatusPending, order.InitialStatus(order.OrderTypeUnknown))
}

func TestValidTransition(t *testing.T) {
	t.Run("should allow exactly the adjacent forward move in every sequence", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			seq := order.Workflow(ot)
			for i, from := range seq {
				for j, to := range seq {
					got := order.ValidTransition(ot, from, to)
					if j == i+1 {
						assert.True(t, got, "%s: %s -> %s should be allowed", ot, from, to)
					} else if to != order.StatusCancelled && to != order.StatusReturned {
						assert.False(t, got, "%s: %s -> %s should be rejected", ot, from, to)
					}
				}
			}
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			seq := order.Workflow(ot)
			for i, from := range seq {
				got := order.ValidTransition(ot, from, order.StatusCancelled)
				if i == len(seq)-1 {
					assert.False(t, got, "%s: terminal %s -> cancelled should be rejected", ot, from)
				} else {
					assert.True(t, got, "%s: %s -> cancelled should be allowed", ot, from)
				}
			}
		}
	})

	t.Run("should reject any move out of cancelled or returned", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			for _, from := range []order.Status{order.StatusCancelled, order.StatusReturned} {
				for _, to := range order.Workflow(ot) {
					assert.False(t, order.ValidTransition(ot, from, to),
						"%s: %s -> %s should be rejected", ot, from, to)
				}
			}
		}
	})

	t.Run("should allow return only from delivered", func(t *testing.T) {
		assert.True(t, order.ValidTransition(
			order.OrderTypeEcommerceDirect, order.StatusDelivered, order.StatusReturned))
		assert.False(t, order.ValidTransition(
			order.OrderTypeEcommerceDirect, order.StatusShipped, order.StatusReturned))
		assert.False(t, order.ValidTransition(
			order.OrderTypeRetailPurchaseOrder, order.StatusInventoried, order.StatusReturned))
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			for _, s := range order.Workflow(ot) {
				assert.False(t, order.ValidTransition(ot, s, s))
			}
		}
	})

	t.Run("should reject unknown order type", func(t *testing.T) {
		assert.False(t, order.ValidTransition(
			order.OrderTypeUnknown, order.StatusPending, order.StatusConfirmed))
	})

	t.Run("should reject escape moves for unknown order type", func(t *testing.T) {
		assert.False(t, order.ValidTransition(
			order.OrderTypeUnknown, order.StatusPending, order.StatusCancelled))
		assert.False(t, order.ValidTransition(
			order.OrderTypeUnknown, order.StatusDelivered, order.StatusReturned))
	})

	t.Run("should reject statuses outside the type's sequence", func(t *testing.T) {
		assert.False(t, order.ValidTransition(
			order.OrderTypeEcommerceDirect, order.StatusPreparing, order.StatusReadyForPickup))
		assert.False(t, order.ValidTransition(
			order.OrderTypeFoodDeliveryCustomer, order.StatusPicked, order.StatusPacked))
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("cancelled and returned are terminal for every type", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			assert.True(t, order.IsTerminal(ot, order.StatusCancelled))
			assert.True(t, order.IsTerminal(ot, order.StatusReturned))
		}
	})

	t.Run("only the last sequence status is otherwise terminal", func(t *testing.T) {
		for _, ot := range order.AllOrderTypes() {
			seq := order.Workflow(ot)
			for i, s := range seq {
				assert.Equal(t, i == len(seq)-1, order.IsTerminal(ot, s),
					"%s: %s", ot, s)
			}
		}
	})

	t.Run("final statuses differ per vertical", func(t *testing.T) {
		assert.True(t, order.IsTerminal(order.OrderTypeEcommerceDirect, order.StatusDelivered))
		assert.True(t, order.IsTerminal(order.OrderTypeRetailPurchaseOrder, order.StatusInventoried))
		assert.True(t, order.IsTerminal(order.OrderTypeFoodDeliveryPickup, order.StatusPickedUp))
		assert.True(t, order.IsTerminal(order.OrderTypeManufacturingProduction, order.StatusShipped))
		assert.True(t, order.IsTerminal(order.OrderTypeThirdPartyStorage, order.StatusInventoried))

		assert.False(t, order.IsTerminal(order.OrderTypeThirdPartyFulfillment, order.StatusShipped))
	})
}

func TestNextStatuses(t *testing.T) {
	t.Run("should list forward move plus cancellation", func(t *testing.T) {
		next := order.NextStatuses(order.OrderTypeEcommerceDirect, order.StatusPending)

		assert.ElementsMatch(t,
			[]order.Status{order.StatusConfirmed, order.StatusCancelled}, next)
	})

	t.Run("should offer return and cancellation is absent from delivered", func(t *testing.T) {
		next := order.NextStatuses(order.OrderTypeEcommerceDirect, order.StatusDelivered)

		assert.ElementsMatch(t, []order.Status{order.StatusReturned}, next)
	})

	t.Run("should be empty for cancelled", func(t *testing.T) {
		assert.Empty(t, order.NextStatuses(order.OrderTypeEcommerceDirect, order.StatusCancelled))
	})

	t.Run("should be empty for unknown order type", func(t *testing.T) {
		assert.Empty(t, order.NextStatuses(order.OrderTypeUnknown, order.StatusPending))
	})
}
