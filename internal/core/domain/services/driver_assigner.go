package services

import (
	"errors"
	"fmt"
	"sort"

	"logix/internal/core/domain/model/driver"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
)

// Scoring weights for driver selection. Headroom dominates so that load
// spreads across the fleet before ratings decide.
const (
	driverHeadroomWeight = 0.6
	driverRatingWeight   = 0.4
)

// ErrNoDriverAvailable is returned when no candidate driver survives
// availability, certification, vehicle, and capacity filtering. The
// orchestrator treats it as a manual-handling outcome, not a hard failure.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverSelection is the assigner's verdict: the chosen driver, the score it
// won with, and a reason naming the dominant scoring factor.
type DriverSelection struct {
	DriverID kernel.UUID
	Score    float64
	Reason   string
}

// DriverAssigner is a domain service scoring and selecting a driver for an
// order leaving a warehouse.
//
// Business rules:
//   - a candidate must be available, hold every required certification, drive
//     a vehicle class that fits the order, and have load headroom for it
//   - score = 0.6 * (1 - current_load/max_load) + 0.4 * (rating/5), both
//     terms normalized to [0,1]
//   - ties break to the lowest current load, then to the smallest driver id,
//     so repeated runs over the same pool are deterministic
//
// Selection is pure: committing the chosen driver's load increment is the
// caller's job and must be atomic against concurrent assignments.
type DriverAssigner struct{}

// NewDriverAssigner creates a new DriverAssigner instance.
func NewDriverAssigner() DriverAssigner {
	return DriverAssigner{}
}

// RequiredCertifications derives the certifications an order demands from its
// industry and payload.
func (a DriverAssigner) RequiredCertifications(o *order.Order) []driver.Certification {
	var required []driver.Certification

	switch o.Industry() {
	case order.IndustryFoodDelivery:
		required = append(required, driver.CertificationFoodSafety)
	case order.IndustryManufacturing:
		required = append(required, driver.CertificationForklift)
	}

	if p, ok := o.Payload().(order.RetailPayload); ok && p.Hazmat {
		required = append(required, driver.CertificationHazmat)
	}

	return required
}

// Score computes the selection score for one driver. Exposed so tests can
// assert scoring monotonicity directly.
func (a DriverAssigner) Score(d *driver.Driver) float64 {
	headroom := 1 - d.LoadFraction()
	return driverHeadroomWeight*headroom + driverRatingWeight*(d.Rating()/driver.MaxRating)
}

// SelectDriver picks the best driver for the order among the candidates, or
// returns ErrNoDriverAvailable when none qualifies.
func (a DriverAssigner) SelectDriver(
	o *order.Order,
	candidates []*driver.Driver,
) (DriverSelection, error) {
	if err := o.Validate(); err != nil {
		return DriverSelection{}, err
	}

	required := a.RequiredCertifications(o)
	load := o.Load()

	type ranked struct {
		d     *driver.Driver
		score float64
	}

	var survivors []ranked
	for _, d := range candidates {
		if d == nil || d.Validate() != nil {
			continue
		}
		if !d.HasCertifications(required) {
			continue
		}
		if !d.CanCarry(load) {
			continue
		}

		survivors = append(survivors, ranked{d: d, score: a.Score(d)})
	}

	if len(survivors) == 0 {
		return DriverSelection{}, fmt.Errorf(
			"%w: none of %d candidates can take a %d unit %s order",
			ErrNoDriverAvailable, len(candidates), load, o.Industry())
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].score != survivors[j].score {
			return survivors[i].score > survivors[j].score
		}
		if survivors[i].d.CurrentLoad() != survivors[j].d.CurrentLoad() {
			return survivors[i].d.CurrentLoad() < survivors[j].d.CurrentLoad()
		}
		return survivors[i].d.ID().String() < survivors[j].d.ID().String()
	})

	best := survivors[0]
	reason := fmt.Sprintf("%s: highest rating (%.1f) with capacity for the load", best.d.Name(), best.d.Rating())
	if driverHeadroomWeight*(1-best.d.LoadFraction()) >= driverRatingWeight*(best.d.Rating()/driver.MaxRating) {
		reason = fmt.Sprintf("%s: most capacity headroom (%d/%d load) in the pool",
			best.d.Name(), best.d.CurrentLoad(), best.d.MaxLoad())
	}

	return DriverSelection{DriverID: best.d.ID(), Score: best.score, Reason: reason}, nil
}
