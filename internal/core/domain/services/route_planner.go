package services

import (
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/core/domain/model/route"
)

// FallbackRoutePlanner is the deterministic heuristic used when the external
// route optimization service is unavailable: nearest-neighbor ordering from
// the origin, with hard-windowed stops inserted at their earliest feasible
// position instead of strictly by proximity.
//
// The planner always produces a valid result: every stop in the request
// appears exactly once in the output, and an empty request yields an empty
// sequenced list rather than an error.
type FallbackRoutePlanner struct{}

// NewFallbackRoutePlanner creates a new FallbackRoutePlanner instance.
func NewFallbackRoutePlanner() FallbackRoutePlanner {
	return FallbackRoutePlanner{}
}

// Plan sequences the request's stops.
func (p FallbackRoutePlanner) Plan(req route.Request) route.Result {
	if len(req.Stops) == 0 {
		return route.Result{Stops: []route.Stop{}}
	}

	var free, windowed []route.Stop
	for _, s := range req.Stops {
		if s.HasWindow() {
			windowed = append(windowed, s)
		} else {
			free = append(free, s)
		}
	}

	seq := nearestNeighborOrder(req.Origin, free)

	departAt := req.DepartAt
	if departAt.IsZero() {
		departAt = time.Now().UTC()
	}

	// Earliest-deadline-first keeps tight windows from being crowded out by
	// looser ones inserted before them. Manufacturing stops sharing a
	// deadline are inserted in production-priority order, so the higher
	// priority takes the earlier feasible slot.
	sortByWindowEnd(windowed)
	for _, s := range windowed {
		seq = insertAtEarliestFeasible(req.Origin, seq, s, departAt)
	}

	distance, duration := routeTotals(req.Origin, seq)
	return route.Result{
		Stops:           seq,
		TotalDistanceKm: distance,
		TotalDuration:   duration,
	}
}

// nearestNeighborOrder greedily visits the closest unvisited stop, starting
// from the origin.
func nearestNeighborOrder(origin kernel.GeoPoint, stops []route.Stop) []route.Stop {
	remaining := make([]route.Stop, len(stops))
	copy(remaining, stops)

	seq := make([]route.Stop, 0, len(stops))
	at := origin
	for len(remaining) > 0 {
		best := 0
		bestDist := at.DistanceKm(remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			if d := at.DistanceKm(remaining[i].Location); d < bestDist {
				best, bestDist = i, d
			}
		}

		seq = append(seq, remaining[best])
		at = remaining[best].Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return seq
}

func sortByWindowEnd(stops []route.Stop) {
	for i := 1; i < len(stops); i++ {
		for j := i; j > 0 && windowedBefore(stops[j], stops[j-1]); j-- {
			stops[j], stops[j-1] = stops[j-1], stops[j]
		}
	}
}

func windowedBefore(a, b route.Stop) bool {
	if !a.Window.End().Equal(b.Window.End()) {
		return a.Window.End().Before(b.Window.End())
	}
	if a.Industry == order.IndustryManufacturing && b.Industry == order.IndustryManufacturing {
		return a.Priority > b.Priority
	}
	return false
}

// insertAtEarliestFeasible places a windowed stop at the first position where
// the estimated arrival does not miss its window. Arriving early is fine (the
// driver waits); when no position is feasible the stop goes last so the
// route stays complete. The stop never jumps ahead of a manufacturing stop
// that shares its window and carries an equal or higher production priority.
func insertAtEarliestFeasible(
	origin kernel.GeoPoint,
	seq []route.Stop,
	stop route.Stop,
	departAt time.Time,
) []route.Stop {
	for pos := 0; pos <= len(seq); pos++ {
		if pos < len(seq) && yieldsTo(stop, seq[pos]) {
			continue
		}
		candidate := insertAt(seq, stop, pos)
		if arrivalAt(origin, candidate, pos, departAt).Before(stop.Window.End()) {
			return candidate
		}
	}
	return append(seq, stop)
}

// yieldsTo reports whether stop must stay behind placed. Manufacturing stops
// sharing a delivery window run in production-priority order.
func yieldsTo(stop, placed route.Stop) bool {
	if stop.Industry != order.IndustryManufacturing || placed.Industry != order.IndustryManufacturing {
		return false
	}
	return placed.HasWindow() && placed.Window.End().Equal(stop.Window.End()) &&
		placed.Priority >= stop.Priority
}

func insertAt(seq []route.Stop, stop route.Stop, pos int) []route.Stop {
	out := make([]route.Stop, 0, len(seq)+1)
	out = append(out, seq[:pos]...)
	out = append(out, stop)
	out = append(out, seq[pos:]...)
	return out
}

// arrivalAt estimates when the driver reaches seq[pos], accounting for
// waiting at earlier windowed stops.
func arrivalAt(origin kernel.GeoPoint, seq []route.Stop, pos int, departAt time.Time) time.Time {
	at := origin
	t := departAt
	for i := 0; i <= pos; i++ {
		t = t.Add(at.TravelTime(seq[i].Location, kernel.DefaultTravelSpeedKmh))
		if seq[i].HasWindow() && t.Before(seq[i].Window.Start()) {
			t = seq[i].Window.Start()
		}
		at = seq[i].Location
	}
	return t
}

func routeTotals(origin kernel.GeoPoint, seq []route.Stop) (float64, time.Duration) {
	var distance float64
	at := origin
	for _, s := range seq {
		distance += at.DistanceKm(s.Location)
		at = s.Location
	}
	return distance, durationForKm(distance)
}

func durationForKm(km float64) time.Duration {
	return time.Duration(km / kernel.DefaultTravelSpeedKmh * float64(time.Hour))
}
