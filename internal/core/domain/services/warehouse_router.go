package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/core/domain/model/warehouse"
)

// ErrNoWarehouseAvailable is returned when no candidate warehouse survives
// capability, hours, and capacity filtering. The orchestrator treats it as a
// manual-handling outcome, not a hard failure.
var ErrNoWarehouseAvailable = errors.New("no warehouse available")

// WarehouseSelection is the router's verdict: the chosen facility and a
// human-readable reason naming the deciding factor.
type WarehouseSelection struct {
	WarehouseID kernel.UUID
	Reason      string
}

// WarehouseRouter is a domain service selecting the fulfillment warehouse for
// an order.
//
// Business rules:
//   - a candidate must offer every capability the order requires, be open for
//     the requested window, and have room for the order's load
//   - survivors are ranked by estimated transit time to the delivery address,
//     ties broken by available capacity fraction (more headroom wins)
//   - the router only reads warehouse state; reservations happen later, once
//     the whole automation attempt commits
type WarehouseRouter struct {
	now func() time.Time
}

// NewWarehouseRouter creates a router on the system clock.
func NewWarehouseRouter() WarehouseRouter {
	return WarehouseRouter{now: time.Now}
}

// NewWarehouseRouterWithClock creates a router on the given clock. Tests use
// this to pin operating-hours checks.
func NewWarehouseRouterWithClock(now func() time.Time) WarehouseRouter {
	return WarehouseRouter{now: now}
}

// RequiredCapabilities derives the capability set an order demands from its
// industry and payload. Every order requires its industry capability; food
// always adds temperature control, hazardous or inspected retail freight adds
// the matching physical qualifications, and 3PL cross-dock orders need a
// cross-dock facility.
func (r WarehouseRouter) RequiredCapabilities(o *order.Order) []warehouse.Capability {
	var required []warehouse.Capability

	switch o.Industry() {
	case order.IndustryEcommerce:
		required = append(required, warehouse.CapabilityEcommerce)
	case order.IndustryRetail:
		required = append(required, warehouse.CapabilityRetail)
	case order.IndustryFoodDelivery:
		required = append(required, warehouse.CapabilityFoodDelivery, warehouse.CapabilityTemperatureControlled)
	case order.IndustryManufacturing:
		required = append(required, warehouse.CapabilityManufacturing)
	case order.IndustryThirdPartyLogistics:
		required = append(required, warehouse.CapabilityThirdPartyLogistics)
	}

	if p, ok := o.Payload().(order.RetailPayload); ok {
		if p.Hazmat {
			required = append(required, warehouse.CapabilityHazmatCertified)
		}
		if p.InspectionRequired {
			required = append(required, warehouse.CapabilityInspectionCapable)
		}
	}

	if o.Type() == order.OrderTypeThirdPartyCrossDock {
		required = append(required, warehouse.CapabilityCrossDock)
	}

	return required
}

// SelectWarehouse picks the best facility for the order among the candidates,
// or returns ErrNoWarehouseAvailable when none qualifies.
func (r WarehouseRouter) SelectWarehouse(
	o *order.Order,
	candidates []*warehouse.Warehouse,
) (WarehouseSelection, error) {
	if err := o.Validate(); err != nil {
		return WarehouseSelection{}, err
	}

	required := r.RequiredCapabilities(o)
	at := o.DeliveryWindow().Start()
	if o.DeliveryWindow().IsZero() {
		at = r.now()
	}

	type ranked struct {
		w        *warehouse.Warehouse
		transit  time.Duration
		headroom float64
	}

	var survivors []ranked
	for _, w := range candidates {
		if w == nil || w.Validate() != nil {
			continue
		}
		if !w.HasCapabilities(required) {
			continue
		}
		if !w.IsOpenAt(at) {
			continue
		}
		if !w.CanAccommodate(o.Load()) {
			continue
		}

		survivors = append(survivors, ranked{
			w:        w,
			transit:  w.Location().TravelTime(o.DeliveryLocation(), kernel.DefaultTravelSpeedKmh),
			headroom: w.AvailableFraction(),
		})
	}

	if len(survivors) == 0 {
		return WarehouseSelection{}, fmt.Errorf(
			"%w: none of %d candidates qualify for %s order",
			ErrNoWarehouseAvailable, len(candidates), o.Industry())
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].transit != survivors[j].transit {
			return survivors[i].transit < survivors[j].transit
		}
		if survivors[i].headroom != survivors[j].headroom {
			return survivors[i].headroom > survivors[j].headroom
		}
		return survivors[i].w.ID().String() < survivors[j].w.ID().String()
	})

	best := survivors[0]
	reason := fmt.Sprintf(
		"%s: only facility qualified for %s orders", best.w.Name(), o.Industry())
	if len(survivors) > 1 {
		reason = fmt.Sprintf(
			"%s: fastest transit (%s) among %d qualified facilities, %.0f%% headroom",
			best.w.Name(), best.transit.Round(time.Minute), len(survivors), best.headroom*100)
	}

	return WarehouseSelection{WarehouseID: best.w.ID(), Reason: reason}, nil
}
