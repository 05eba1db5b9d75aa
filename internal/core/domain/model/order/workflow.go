package order

// workflow.go holds the per-order-type status workflow table. Every order
// type declares an ordered status sequence; a transition is valid only to the
// immediately following status in that sequence, with two universal escapes:
//
//   - any non-terminal status may transition to cancelled
//   - delivered may transition to returned
//
// Skipping ahead or moving backward is never allowed.

func getWorkflows() map[OrderType][]Status {
	ecommerce := []Status{
		StatusPending, StatusConfirmed, StatusProcessing, StatusPicked,
		StatusPacked, StatusShipped, StatusOutForDelivery, StatusDelivered,
	}
	retailPO := []Status{
		StatusPending, StatusConfirmed, StatusProcessing, StatusInspected,
		StatusApproved, StatusReceived, StatusInventoried,
	}
	retailMove := []Status{
		StatusPending, StatusConfirmed, StatusPicked, StatusPacked,
		StatusShipped, StatusReceived, StatusInventoried,
	}
	foodCustomer := []Status{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReadyForPickup,
		StatusPickedUp, StatusOutForDelivery, StatusDelivered,
	}

	return map[OrderType][]Status{
		OrderTypeEcommerceDirect:       ecommerce,
		OrderTypeEcommerceMarketplace:  ecommerce,
		OrderTypeEcommerceSubscription: ecommerce,

		OrderTypeRetailPurchaseOrder: retailPO,
		OrderTypeRetailTransfer:      retailMove,
		OrderTypeRetailRestock: {
			StatusPending, StatusConfirmed, StatusProcessing, StatusPicked,
			StatusPacked, StatusShipped, StatusReceived, StatusInventoried,
		},
		// Returns follow the inbound purchase-order sequence.
		OrderTypeRetailReturn: retailPO,

		OrderTypeFoodDeliveryCustomer: foodCustomer,
		OrderTypeFoodDeliveryCatering: {
			StatusPending, StatusConfirmed, StatusPreparing,
			StatusReadyForPickup, StatusPickedUp, StatusDelivered,
		},
		// Grocery runs follow the standard customer delivery sequence.
		OrderTypeFoodDeliveryGrocery: foodCustomer,
		OrderTypeFoodDeliveryPickup: {
			StatusPending, StatusConfirmed, StatusPreparing,
			StatusReadyForPickup, StatusPickedUp,
		},

		OrderTypeManufacturingProduction: {
			StatusPending, StatusApproved, StatusMaterialsAllocated,
			StatusProductionStarted, StatusProductionInProgress,
			StatusProductionCompleted, StatusQualityChecked, StatusPackaged,
			StatusShipped,
		},
		OrderTypeManufacturingRawMaterials: {
			StatusPending, StatusConfirmed, StatusShipped, StatusReceived,
			StatusInspected, StatusApproved, StatusInventoried,
		},
		OrderTypeManufacturingFinishedGoods: {
			StatusPending, StatusConfirmed, StatusPicked, StatusPacked,
			StatusShipped, StatusDelivered,
		},

		OrderTypeThirdPartyFulfillment: {
			StatusPending, StatusConfirmed, StatusReceived, StatusInventoried,
			StatusProcessing, StatusPicked, StatusPacked, StatusShipped,
			StatusDelivered,
		},
		OrderTypeThirdPartyCrossDock: {
			StatusPending, StatusConfirmed, StatusReceived, StatusProcessing,
			StatusShipped, StatusDelivered,
		},
		OrderTypeThirdPartyStorage: {
			StatusPending, StatusConfirmed, StatusReceived, StatusInventoried,
		},
	}
}

// Workflow returns a copy of the ordered status sequence for the given order
// type, or nil for an unknown type.
func Workflow(t OrderType) []Status {
	seq, ok := getWorkflows()[t]
	if !ok {
		return nil
	}

	out := make([]Status, len(seq))
	copy(out, seq)
	return out
}

// InitialStatus returns the first status of the type's workflow.
// Every declared workflow starts at pending, which is also the fallback for
// unknown types.
func InitialStatus(t OrderType) Status {
	if seq, ok := getWorkflows()[t]; ok && len(seq) > 0 {
		return seq[0]
	}
	return StatusPending
}

// IsTerminal reports whether status ends the given order type's lifecycle.
// Cancelled and returned are terminal for every type; otherwise only the last
// status of the type's declared sequence is terminal.
func IsTerminal(t OrderType, s Status) bool {
	if s == StatusCancelled || s == StatusReturned {
		return true
	}

	seq, ok := getWorkflows()[t]
	if !ok || len(seq) == 0 {
		return false
	}
	return s == seq[len(seq)-1]
}

// ValidTransition reports whether an order of the given type may move from
// one status to another. Valid moves are:
//
//   - the immediately next status in the type's declared sequence
//   - cancelled, from any non-terminal status
//   - returned, from delivered only
//
// Everything else, including skips, reversals, self-transitions, and any
// move involving an unknown type or status, is rejected.
func ValidTransition(t OrderType, from, to Status) bool {
	seq, ok := getWorkflows()[t]
	if !ok {
		return false
	}

	switch to {
	case StatusCancelled:
		return !IsTerminal(t, from) && from.Validate() == nil
	case StatusReturned:
		return from == StatusDelivered
	}

	for i := 0; i < len(seq)-1; i++ {
		if seq[i] == from {
			return seq[i+1] == to
		}
	}
	return false
}

// NextStatuses returns every status the order type may legally move to from
// the given status. Used by the API layer to advertise allowed actions.
func NextStatuses(t OrderType, from Status) []Status {
	seq, ok := getWorkflows()[t]
	if !ok {
		return nil
	}

	var next []Status
	for i := 0; i < len(seq)-1; i++ {
		if seq[i] == from {
			next = append(next, seq[i+1])
			break
		}
	}

	if !IsTerminal(t, from) && from.Validate() == nil {
		next = append(next, StatusCancelled)
	}
	if from == StatusDelivered {
		next = append(next, StatusReturned)
	}

	return next
}
