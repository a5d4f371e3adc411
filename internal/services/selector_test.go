package services

import (
	"testing"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(name string, fuel, durMin float64) domain.ScoredRoute {
	return domain.ScoredRoute{Name: name, DurationMin: durMin, Fuel: domain.FuelBreakdown{Total: fuel}}
}

func TestSelectEcoAndFastest(t *testing.T) {
	pool := []domain.ScoredRoute{
		scored("Route 1", 1.20, 15),
		scored("Route 2", 0.95, 19),
		scored("Route 3", 1.40, 12),
	}

	sel, ok := Select(pool, nil)
	require.True(t, ok)

	assert.InDelta(t, 0.95, sel.Eco.Fuel.Total, 1e-12)
	assert.Equal(t, domain.TagEco, sel.Eco.Tag)
	assert.Equal(t, EcoRouteName, sel.Eco.Name)

	assert.InDelta(t, 12, sel.Fastest.DurationMin, 1e-12)
	assert.Equal(t, domain.TagFastest, sel.Fastest.Tag)
	assert.Equal(t, FastestRouteName, sel.Fastest.Name)

	assert.Equal(t, 3, sel.CandidatesEvaluated)
	require.Len(t, sel.Comparison, 2)
	assert.Equal(t, domain.TagEco, sel.Comparison[0].Tag)
	assert.Equal(t, domain.TagFastest, sel.Comparison[1].Tag)

	for _, r := range pool {
		assert.LessOrEqual(t, sel.Eco.Fuel.Total, r.Fuel.Total)
		assert.Empty(t, r.Tag, "pool entries must not be retagged")
	}
	assert.Equal(t, "Route 2", pool[1].Name)
}

func TestSelectTiesKeepFirstSeen(t *testing.T) {
	a := scored("Route 1", 1.0, 10)
	a.DistanceKM = 11
	b := scored("Route 2", 1.0, 10)
	b.DistanceKM = 22

	sel, ok := Select([]domain.ScoredRoute{a, b}, nil)
	require.True(t, ok)
	assert.Equal(t, 11.0, sel.Eco.DistanceKM)
	assert.Equal(t, 11.0, sel.Fastest.DistanceKM)
}

func TestSelectPinnedFastestWins(t *testing.T) {
	pool := []domain.ScoredRoute{scored("Route 1", 1.0, 10), scored("Route 2", 0.8, 14)}
	pinned := scored("pinned", 1.3, 11)

	sel, ok := Select(pool, &pinned)
	require.True(t, ok)
	assert.InDelta(t, 11, sel.Fastest.DurationMin, 1e-12)
	assert.Equal(t, FastestRouteName, sel.Fastest.Name)
	assert.Equal(t, "pinned", pinned.Name)
}

func TestSelectEmptyPool(t *testing.T) {
	_, ok := Select(nil, nil)
	assert.False(t, ok)
}

func phoenixTrip() Trip {
	return Trip{
		StartLabel: "Phoenix",
		EndLabel:   "Scottsdale",
		Start:      domain.Coordinates{Lat: 33.4484, Lon: -112.0740},
		End:        domain.Coordinates{Lat: 33.4942, Lon: -111.9261},
	}
}

func TestEstimate(t *testing.T) {
	spec := testSedan()
	trip := phoenixTrip()

	est := Estimate(spec, trip)
	dist := geo.HaversineKm(trip.Start, trip.End)

	assert.True(t, est.Estimated)
	assert.InDelta(t, dist, est.DistanceKM, 1e-9)
	assert.InDelta(t, dist, est.DurationMin, 1e-9)
	assert.InDelta(t, dist*spec.BaseConsumptionLKM, est.Fuel.Total, 1e-9)
	assert.InDelta(t, est.Fuel.Total, est.Fuel.Idle+est.Fuel.Acceleration+est.Fuel.Cruise, 1e-9)
	assert.InDelta(t, est.Fuel.Total*0.65, est.Fuel.Cruise, 1e-9)
	require.Len(t, est.Coordinates, 11)
	assert.Equal(t, trip.Start, est.Coordinates[0])
	assert.InDelta(t, trip.End.Lat, est.Coordinates[10].Lat, 1e-12)
	require.Len(t, est.Steps, 3)
	assert.Equal(t, "Start at Phoenix", est.Steps[0].Instruction)
	assert.Equal(t, "Drive to Scottsdale", est.Steps[1].Instruction)
}

func TestEstimateSelection(t *testing.T) {
	sel := EstimateSelection(testSedan(), phoenixTrip())
	assert.True(t, sel.Estimated)
	assert.Equal(t, 1, sel.CandidatesEvaluated)
	assert.Equal(t, domain.TagEco, sel.Eco.Tag)
	assert.Equal(t, domain.TagFastest, sel.Fastest.Tag)
	assert.Equal(t, sel.Eco.Fuel, sel.Fastest.Fuel)
}

func TestScoreFallsBackWithoutStepsOrGeometry(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	trip := phoenixTrip()

	r := domain.RawRoute{Summary: domain.RouteSummary{DistanceM: 10000, DurationS: 600}}
	sr := sim.Score(r, "Route 1", trip)

	assert.Equal(t, "Route 1", sr.Name)
	assert.InDelta(t, 10, sr.DistanceKM, 1e-12)
	assert.InDelta(t, 10, sr.DurationMin, 1e-12)
	assert.InDelta(t, 60, sr.AvgSpeedKMH, 1e-9)
	assert.Greater(t, sr.Fuel.Cruise, 0.0)
	assert.Len(t, sr.Coordinates, 11)
	require.Len(t, sr.Steps, 3)
	assert.Equal(t, "Arrive at destination", sr.Steps[2].Instruction)
	assert.InDelta(t, Emissions(testSedan(), sr.Fuel.Total), sr.CO2Kg, 1e-12)
	assert.Zero(t, sr.EnergyKWh)
}

func TestScoreUsesProviderSteps(t *testing.T) {
	sim := NewSimulator(testEV(), domain.StyleNormal)
	trip := phoenixTrip()
	trip.Weather = &domain.WeatherSample{TemperatureC: 30}

	coords := geo.Interpolate(trip.Start, trip.End, 6)
	r := domain.RawRoute{
		Summary:         domain.RouteSummary{DistanceM: 15000, DurationS: 900},
		EncodedGeometry: geo.Encode(coords),
		Steps: []domain.RouteStep{
			{DistanceM: 500, DurationS: 60, Instruction: "Head east on Main Street", ManeuverType: intPtr(11)},
			{DistanceM: 14500, DurationS: 840, Instruction: "Continue onto the freeway", Name: "Loop 101 Freeway"},
			{DistanceM: 0, DurationS: 0, Instruction: "Arrive at Scottsdale", ManeuverType: intPtr(10)},
		},
	}

	sr := sim.Score(r, "Route 2", trip)
	require.Len(t, sr.Steps, 3)
	assert.Equal(t, "Continue onto the freeway", sr.Steps[1].Instruction)
	assert.InDelta(t, 14.5, sr.Steps[1].DistanceKM, 1e-12)
	assert.Len(t, sr.Coordinates, 6)
	assert.Greater(t, sr.Fuel.Acceleration, 0.0)
	assert.Greater(t, sr.Fuel.Climate, 0.0)
	assert.Zero(t, sr.Fuel.ColdStart)
	assert.InDelta(t, sr.Fuel.Total*8.9, sr.EnergyKWh, 1e-9)
	assert.Same(t, trip.Weather, sr.Weather)
}
