package services

import (
	"time"

	"logix/internal/core/domain/model/order"
)

// Per-industry estimation constants, in minutes unless noted.
const (
	ecommerceBaseMinutes    = 30
	ecommercePerItemMinutes = 5

	retailBaseMinutes       = 240
	retailInspectionMinutes = 120
	retailQualityMinutes    = 60

	foodDefaultTravelMinutes = 20
	// FoodFulfillmentCapMinutes is the hard ceiling for food orders. Estimates
	// above it flag the order for expedited handling instead of rejecting it.
	FoodFulfillmentCapMinutes = 45

	manufacturingDefaultMinutes = 1440

	thirdPartyDefaultMinutes = 240
)

func getThirdPartyServiceMinutes() map[string]int {
	return map[string]int{
		"fulfillment": 240,
		"cross_dock":  120,
		"storage":     60,
		"returns":     180,
	}
}

func getPriorityMultipliers() map[order.Priority]float64 {
	return map[order.Priority]float64{
		order.PriorityUrgent: 0.5,
		order.PriorityHigh:   0.75,
		order.PriorityNormal: 1.0,
		order.PriorityLow:    1.5,
	}
}

// FulfillmentEstimate is the estimator's verdict for one order.
type FulfillmentEstimate struct {
	Duration time.Duration

	// RequiresExpedited is set when the estimate exceeds the industry's hard
	// cap (currently only food delivery has one).
	RequiresExpedited bool
}

// FulfillmentEstimator is a domain service computing the expected fulfillment
// duration of an order from its industry payload and static per-industry
// constants.
//
// Business rules:
//   - e-commerce: base processing plus per-line packing, scaled by priority
//   - retail: B2B base plus inspection and quality control buffers
//   - food delivery: preparation plus travel, capped at 45 minutes; orders
//     over the cap are flagged for expedited handling, never rejected
//   - manufacturing: production schedule length, or a 24 hour default
//   - 3PL: contractual SLA minus time already elapsed since intake, or a
//     service-type default when no SLA is set
//
// Every branch is pure given the order and the injected clock.
type FulfillmentEstimator struct {
	now func() time.Time
}

// NewFulfillmentEstimator creates an estimator on the system clock.
func NewFulfillmentEstimator() FulfillmentEstimator {
	return FulfillmentEstimator{now: time.Now}
}

// NewFulfillmentEstimatorWithClock creates an estimator on the given clock.
// Tests use this to pin elapsed-time calculations.
func NewFulfillmentEstimatorWithClock(now func() time.Time) FulfillmentEstimator {
	return FulfillmentEstimator{now: now}
}

// Estimate computes the fulfillment duration for the order.
func (e FulfillmentEstimator) Estimate(o *order.Order) (FulfillmentEstimate, error) {
	if err := o.Validate(); err != nil {
		return FulfillmentEstimate{}, err
	}

	switch p := o.Payload().(type) {
	case order.EcommercePayload:
		return e.estimateEcommerce(o), nil
	case order.RetailPayload:
		return e.estimateRetail(p), nil
	case order.FoodDeliveryPayload:
		return e.estimateFoodDelivery(p), nil
	case order.ManufacturingPayload:
		return e.estimateManufacturing(p), nil
	case order.ThirdPartyPayload:
		return e.estimateThirdParty(o, p), nil
	}

	return FulfillmentEstimate{Duration: time.Hour}, nil
}

func (e FulfillmentEstimator) estimateEcommerce(o *order.Order) FulfillmentEstimate {
	minutes := float64(ecommerceBaseMinutes + len(o.Items())*ecommercePerItemMinutes)

	multiplier, ok := getPriorityMultipliers()[o.Priority()]
	if !ok {
		multiplier = 1.0
	}

	return FulfillmentEstimate{
		Duration: time.Duration(minutes*multiplier) * time.Minute,
	}
}

func (e FulfillmentEstimator) estimateRetail(p order.RetailPayload) FulfillmentEstimate {
	minutes := retailBaseMinutes
	if p.InspectionRequired {
		minutes += retailInspectionMinutes
	}
	if len(p.QualityStandards) > 0 {
		minutes += retailQualityMinutes
	}

	return FulfillmentEstimate{Duration: time.Duration(minutes) * time.Minute}
}

func (e FulfillmentEstimator) estimateFoodDelivery(p order.FoodDeliveryPayload) FulfillmentEstimate {
	travel := p.TravelEstimateMinutes
	if travel <= 0 {
		travel = foodDefaultTravelMinutes
	}

	minutes := p.PrepTimeMinutes + travel
	if minutes > FoodFulfillmentCapMinutes {
		return FulfillmentEstimate{
			Duration:          time.Duration(minutes) * time.Minute,
			RequiresExpedited: true,
		}
	}

	return FulfillmentEstimate{Duration: time.Duration(minutes) * time.Minute}
}

func (e FulfillmentEstimator) estimateManufacturing(p order.ManufacturingPayload) FulfillmentEstimate {
	if !p.ProductionStart.IsZero() && !p.ProductionEnd.IsZero() &&
		p.ProductionEnd.After(p.ProductionStart) {
		return FulfillmentEstimate{Duration: p.ProductionEnd.Sub(p.ProductionStart)}
	}

	return FulfillmentEstimate{Duration: manufacturingDefaultMinutes * time.Minute}
}

func (e FulfillmentEstimator) estimateThirdParty(o *order.Order, p order.ThirdPartyPayload) FulfillmentEstimate {
	if p.SLADeliveryMinutes > 0 {
		remaining := time.Duration(p.SLADeliveryMinutes)*time.Minute - e.now().Sub(o.CreatedAt())
		if remaining < 0 {
			remaining = 0
		}
		return FulfillmentEstimate{Duration: remaining}
	}

	if minutes, ok := getThirdPartyServiceMinutes()[p.ServiceType]; ok {
		return FulfillmentEstimate{Duration: time.Duration(minutes) * time.Minute}
	}
	return FulfillmentEstimate{Duration: thirdPartyDefaultMinutes * time.Minute}
}
