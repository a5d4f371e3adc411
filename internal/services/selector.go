package services

import (
	"fmt"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/geo"
)

const (
	EcoRouteName       = "Eco Route"
	FastestRouteName   = "Fastest Route"
	EstimatedRouteName = "Estimated Route"

	estimatePoints   = 11
	estimateSpeedKMH = 60.0
)

// Trip holds the per-query context shared by every candidate.
type Trip struct {
	StartLabel string
	EndLabel   string
	Start      domain.Coordinates
	End        domain.Coordinates
	Weather    *domain.WeatherSample
}

func startEndSteps(trip Trip, distKM, durMin float64) []domain.StepSummary {
	return []domain.StepSummary{
		{Instruction: fmt.Sprintf("Start at %s", trip.StartLabel)},
		{Instruction: fmt.Sprintf("Drive to %s", trip.EndLabel), DistanceKM: distKM, DurationMin: durMin},
		{Instruction: "Arrive at destination"},
	}
}

// Score simulates one raw candidate and assembles the scored route.
func (s *Simulator) Score(r domain.RawRoute, name string, trip Trip) domain.ScoredRoute {
	distKM := r.Summary.DistanceM / 1000
	durMin := r.Summary.DurationS / 60

	coords := geo.RouteCoordinates(r)

	steps := r.Steps
	if len(steps) == 0 {
		// Without maneuvers the whole route is simulated as one cruise stretch.
		steps = []domain.RouteStep{{DistanceM: r.Summary.DistanceM, DurationS: r.Summary.DurationS}}
	}
	fuel := s.Simulate(steps, coords, r.Summary.DurationS, trip.Weather)

	summaries := make([]domain.StepSummary, 0, len(r.Steps))
	for _, st := range r.Steps {
		if st.Instruction == "" {
			continue
		}
		summaries = append(summaries, domain.StepSummary{
			Instruction: st.Instruction,
			DistanceKM:  st.DistanceM / 1000,
			DurationMin: st.DurationS / 60,
		})
	}
	if len(summaries) == 0 {
		summaries = startEndSteps(trip, distKM, durMin)
	}

	if len(coords) < 2 {
		coords = geo.Interpolate(trip.Start, trip.End, estimatePoints)
	}

	var avg float64
	if durMin > 0 {
		avg = distKM / (durMin / 60)
	}

	return domain.ScoredRoute{
		Name:        name,
		DistanceKM:  distKM,
		DurationMin: durMin,
		AvgSpeedKMH: avg,
		Fuel:        fuel,
		EnergyKWh:   EnergyKWh(s.spec, fuel.Total),
		CO2Kg:       Emissions(s.spec, fuel.Total),
		Cost:        Cost(s.spec, fuel.Total),
		Start:       trip.Start,
		End:         trip.End,
		Coordinates: coords,
		Steps:       summaries,
		Weather:     trip.Weather,
	}
}

// Estimate is the straight-line fallback used when no candidate survives. It
// assumes 60 km/h over the great-circle distance and the vehicle's base
// consumption, split 10/25/65 between idle, acceleration and cruise.
func Estimate(spec domain.VehicleSpec, trip Trip) domain.ScoredRoute {
	distKM := geo.HaversineKm(trip.Start, trip.End)
	durMin := distKM / estimateSpeedKMH * 60
	total := distKM * spec.BaseConsumptionLKM

	return domain.ScoredRoute{
		Name:        EstimatedRouteName,
		Tag:         domain.TagEco,
		DistanceKM:  distKM,
		DurationMin: durMin,
		AvgSpeedKMH: estimateSpeedKMH,
		Fuel: domain.FuelBreakdown{
			Idle:         total * 0.10,
			Acceleration: total * 0.25,
			Cruise:       total * 0.65,
			Total:        total,
		},
		EnergyKWh:   EnergyKWh(spec, total),
		CO2Kg:       Emissions(spec, total),
		Cost:        Cost(spec, total),
		Start:       trip.Start,
		End:         trip.End,
		Coordinates: geo.Interpolate(trip.Start, trip.End, estimatePoints),
		Steps:       startEndSteps(trip, distKM, durMin),
		Estimated:   true,
	}
}

// Selection is the outcome of one query: the two tagged routes and their
// side-by-side comparison.
type Selection struct {
	Eco                 domain.ScoredRoute
	Fastest             domain.ScoredRoute
	Comparison          []domain.ComparisonRow
	CandidatesEvaluated int
	Estimated           bool
}

// Select picks the eco route as the lowest total fuel and the fastest route as
// the pinned fastest-preference result, or the shortest duration when nothing
// is pinned. Ties keep the first route in pool order. Returned routes are
// copies; scored is not modified. ok is false for an empty pool.
func Select(scored []domain.ScoredRoute, pinned *domain.ScoredRoute) (Selection, bool) {
	if len(scored) == 0 {
		return Selection{}, false
	}

	eco, fastest := scored[0], scored[0]
	for _, r := range scored[1:] {
		if r.Fuel.Total < eco.Fuel.Total {
			eco = r
		}
		if r.DurationMin < fastest.DurationMin {
			fastest = r
		}
	}
	if pinned != nil {
		fastest = *pinned
	}

	eco.Tag, eco.Name = domain.TagEco, EcoRouteName
	fastest.Tag, fastest.Name = domain.TagFastest, FastestRouteName

	return Selection{
		Eco:                 eco,
		Fastest:             fastest,
		Comparison:          []domain.ComparisonRow{eco.Row(), fastest.Row()},
		CandidatesEvaluated: len(scored),
	}, true
}

// EstimateSelection wraps the straight-line estimate as both the eco and the
// fastest result.
func EstimateSelection(spec domain.VehicleSpec, trip Trip) Selection {
	eco := Estimate(spec, trip)
	fastest := eco
	fastest.Tag, fastest.Name = domain.TagFastest, FastestRouteName

	return Selection{
		Eco:                 eco,
		Fastest:             fastest,
		Comparison:          []domain.ComparisonRow{eco.Row(), fastest.Row()},
		CandidatesEvaluated: 1,
		Estimated:           true,
	}
}
