package services

import (
	"testing"

	"ecoroute-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSedan() domain.VehicleSpec {
	return domain.VehicleSpec{
		Make: "Toyota", Model: "Camry",
		MassKg: 1560, DragCoefficient: 0.28, FrontalAreaM2: 2.24, RollingResistance: 0.010,
		IdleRateLPH: 0.55, BaseConsumptionLKM: 0.072, AccelCostL: 0.012, Efficiency: 0.26,
		FuelType: domain.FuelGasoline, Category: domain.CategorySedan, ColdStartML: 18, HVACLPH: 0.80,
		CityL100KM: 10.2, HighwayL100KM: 6.7,
	}
}

func testEV() domain.VehicleSpec {
	return domain.VehicleSpec{
		Make: "Tesla", Model: "Model 3",
		MassKg: 1611, DragCoefficient: 0.23, FrontalAreaM2: 2.22, RollingResistance: 0.009,
		IdleRateLPH: 0.02, BaseConsumptionLKM: 0.155, AccelCostL: 0.015, Efficiency: 0.92,
		FuelType: domain.FuelElectric, Category: domain.CategorySedan, RegenFraction: 0.7,
		CityL100KM: 6.7, HighwayL100KM: 7.4, KWhPer100KM: 14.9,
	}
}

func cruiseStep(distM, durS float64) domain.RouteStep {
	return domain.RouteStep{DistanceM: distM, DurationS: durS, Instruction: "Continue", Name: "Main Street"}
}

func stopStep(distM, durS float64) domain.RouteStep {
	return domain.RouteStep{DistanceM: distM, DurationS: durS, Instruction: "Turn left onto Elm", Name: "Elm Street"}
}

func tripFuel(fb domain.FuelBreakdown) float64 {
	return fb.Idle + fb.Acceleration + fb.Cruise
}

func TestAirDensity(t *testing.T) {
	assert.InDelta(t, 1.225, AirDensity(15), 1e-12)
	assert.Greater(t, AirDensity(-10), AirDensity(30))
}

func TestLoadFactorKeepsPowerTimesFactorIncreasing(t *testing.T) {
	prev := 0.0
	for p := 0.1; p < 150; p += 0.1 {
		cur := p * loadFactor(p)
		require.GreaterOrEqual(t, cur, prev, "power %.1f kW", p)
		prev = cur
	}
	assert.Equal(t, 1.16, loadFactor(1))
	assert.Equal(t, 1.0, loadFactor(30))
	assert.Equal(t, 0.93, loadFactor(100))
}

func TestCalibrationReproducesReferenceAtCruise(t *testing.T) {
	spec := testSedan()
	sim := NewSimulator(spec, domain.StyleNormal)

	// 1 km at exactly 60 km/h, 15 C, no wind.
	fb := sim.Simulate([]domain.RouteStep{cruiseStep(1000, 60)}, nil, 60, &domain.WeatherSample{TemperatureC: 15})

	v := 60 / 3.6
	force := 0.5*1.225*spec.DragCoefficient*spec.FrontalAreaM2*v*v + spec.RollingResistance*spec.MassKg*9.81
	want := spec.ReferenceL100KM() / 100 * loadFactor(force*v/1000)

	assert.InDelta(t, want, fb.Cruise, 1e-9)
	assert.Zero(t, fb.Idle)
	assert.Zero(t, fb.Acceleration)
}

func TestCalibrationFactorPerVehicle(t *testing.T) {
	gas := NewSimulator(testSedan(), domain.StyleNormal)
	ev := NewSimulator(testEV(), domain.StyleNormal)

	assert.Greater(t, gas.CalibrationFactor(), 0.0)
	assert.Greater(t, ev.CalibrationFactor(), 0.0)

	// Style does not change calibration.
	assert.Equal(t, gas.CalibrationFactor(), NewSimulator(testSedan(), domain.StyleAggressive).CalibrationFactor())
}

func TestTripFuelScalesWithWork(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	w := &domain.WeatherSample{TemperatureC: 21}

	base := []domain.RouteStep{cruiseStep(1000, 60), stopStep(800, 48), cruiseStep(2500, 150)}
	const k = 3.0
	scaled := make([]domain.RouteStep, len(base))
	for i, s := range base {
		s.DistanceM *= k
		s.DurationS *= k
		scaled[i] = s
	}

	a := tripFuel(sim.Simulate(base, nil, 258, w))
	b := tripFuel(sim.Simulate(scaled, nil, 258*k, w))
	assert.InDelta(t, k*a, b, 1e-9)
}

func TestCruiseFuelNeverDropsAsDistanceGrows(t *testing.T) {
	for _, spec := range []domain.VehicleSpec{testSedan(), testEV()} {
		sim := NewSimulator(spec, domain.StyleNormal)
		prev := 0.0
		// Fixed 5 minutes, 6 to 180 km/h.
		for d := 500.0; d <= 15000; d += 50 {
			fb := sim.Simulate([]domain.RouteStep{cruiseStep(d, 300)}, nil, 300, nil)
			require.GreaterOrEqual(t, fb.Cruise, prev, "%s at %.0f m", spec.Model, d)
			prev = fb.Cruise
		}
	}
}

func TestIdleBranch(t *testing.T) {
	spec := testSedan()
	sim := NewSimulator(spec, domain.StyleNormal)

	// 4 km/h for two minutes.
	step := cruiseStep(4000.0/30, 120)
	fb := sim.Simulate([]domain.RouteStep{step}, nil, 120, nil)

	assert.InDelta(t, spec.IdleRateLPH*(120.0/3600)*sim.CalibrationFactor(), fb.Idle, 1e-12)
	assert.Zero(t, fb.Cruise)
	assert.Zero(t, fb.Acceleration)
}

func TestZeroLengthStepsIgnored(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	fb := sim.Simulate([]domain.RouteStep{cruiseStep(0, 30), cruiseStep(500, 0)}, nil, 30, &domain.WeatherSample{TemperatureC: 20})
	assert.Zero(t, tripFuel(fb))
}

func TestRegenReducesAccelerationFuel(t *testing.T) {
	steps := []domain.RouteStep{stopStep(400, 30), stopStep(300, 30), stopStep(1200, 90)}

	withRegen := testEV()
	withoutRegen := testEV()
	withoutRegen.RegenFraction = 0

	a := NewSimulator(withRegen, domain.StyleNormal).Simulate(steps, nil, 150, nil)
	b := NewSimulator(withoutRegen, domain.StyleNormal).Simulate(steps, nil, 150, nil)

	assert.Less(t, a.Acceleration, b.Acceleration)
	assert.InDelta(t, b.Cruise, a.Cruise, 1e-12)
	assert.InDelta(t, 0.65, a.Acceleration/b.Acceleration, 1e-9)
}

func TestDrivingStyleOrdering(t *testing.T) {
	steps := []domain.RouteStep{stopStep(800, 60), cruiseStep(5000, 240)}
	calm := NewSimulator(testSedan(), domain.StyleCalm).Simulate(steps, nil, 300, nil)
	normal := NewSimulator(testSedan(), domain.StyleNormal).Simulate(steps, nil, 300, nil)
	aggressive := NewSimulator(testSedan(), domain.StyleAggressive).Simulate(steps, nil, 300, nil)

	assert.Less(t, calm.Total, normal.Total)
	assert.Less(t, normal.Total, aggressive.Total)
}

func TestRoughSurfaceCostsMore(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)

	paved := cruiseStep(5000, 300)
	paved.Surface = "motorway"
	gravel := cruiseStep(5000, 300)
	gravel.Surface = "gravel"

	a := sim.Simulate([]domain.RouteStep{paved}, nil, 300, nil)
	b := sim.Simulate([]domain.RouteStep{gravel}, nil, 300, nil)
	assert.Greater(t, b.Cruise, a.Cruise)

	assert.Equal(t, 1.0, SurfaceMultiplier("motorway"))
	assert.Equal(t, 1.35, SurfaceMultiplier("Gravel"))
}

func TestPrecipitationAddsRollingResistance(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	steps := []domain.RouteStep{cruiseStep(5000, 300)}

	dry := sim.Simulate(steps, nil, 300, &domain.WeatherSample{TemperatureC: 20})
	wet := sim.Simulate(steps, nil, 300, &domain.WeatherSample{TemperatureC: 20, PrecipitationMM: 3})
	soaked := sim.Simulate(steps, nil, 300, &domain.WeatherSample{TemperatureC: 20, PrecipitationMM: 30})

	assert.Greater(t, wet.Cruise, dry.Cruise)
	assert.Greater(t, soaked.Cruise, wet.Cruise)

	capped := sim.Simulate(steps, nil, 300, &domain.WeatherSample{TemperatureC: 20, PrecipitationMM: 50})
	assert.InDelta(t, soaked.Cruise, capped.Cruise, 1e-12)
}

func TestWindAlongHeading(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	// Northbound polyline.
	coords := []domain.Coordinates{{Lat: 33.0, Lon: -112.0}, {Lat: 33.05, Lon: -112.0}}
	steps := []domain.RouteStep{cruiseStep(5000, 300)}

	calm := sim.Simulate(steps, coords, 300, &domain.WeatherSample{TemperatureC: 20})
	fromNorth := sim.Simulate(steps, coords, 300, &domain.WeatherSample{TemperatureC: 20, WindSpeedKMH: 30, WindDirectionDeg: 0})
	fromSouth := sim.Simulate(steps, coords, 300, &domain.WeatherSample{TemperatureC: 20, WindSpeedKMH: 30, WindDirectionDeg: 180})
	crosswind := sim.Simulate(steps, coords, 300, &domain.WeatherSample{TemperatureC: 20, WindSpeedKMH: 30, WindDirectionDeg: 90})

	assert.Greater(t, fromNorth.Cruise, calm.Cruise)
	assert.Less(t, fromSouth.Cruise, calm.Cruise)
	assert.InDelta(t, calm.Cruise, crosswind.Cruise, 1e-9)
}

func TestWindUsesStepWayPoints(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	// East, then north.
	coords := []domain.Coordinates{
		{Lat: 33.0, Lon: -112.0},
		{Lat: 33.0, Lon: -111.95},
		{Lat: 33.05, Lon: -111.95},
	}
	w := &domain.WeatherSample{TemperatureC: 20, WindSpeedKMH: 30, WindDirectionDeg: 0}

	north := cruiseStep(5000, 300)
	north.WayPoints = []int{1, 2}
	east := cruiseStep(5000, 300)
	east.WayPoints = []int{0, 1}

	a := sim.Simulate([]domain.RouteStep{north}, coords, 300, w)
	b := sim.Simulate([]domain.RouteStep{east}, coords, 300, w)
	assert.Greater(t, a.Cruise, b.Cruise)
}

func TestColdStartTaper(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	assert.InDelta(t, 0.018, sim.ColdStart(5), 1e-12)
	assert.InDelta(t, 0.018, sim.ColdStart(10), 1e-12)
	assert.InDelta(t, 0.009, sim.ColdStart(15), 1e-12)
	assert.Zero(t, sim.ColdStart(25))

	assert.Zero(t, NewSimulator(testEV(), domain.StyleNormal).ColdStart(5))
}

func TestClimate(t *testing.T) {
	sim := NewSimulator(testSedan(), domain.StyleNormal)
	assert.Zero(t, sim.Climate(21, 1))
	assert.Zero(t, sim.Climate(18, 1))
	assert.Zero(t, sim.Climate(24, 1))
	assert.InDelta(t, 0.80, sim.Climate(-5, 1), 1e-12)
	assert.InDelta(t, 0.40, sim.Climate(32, 1), 1e-12)

	prev := 0.0
	for temp := 18.0; temp >= -10; temp-- {
		cur := sim.Climate(temp, 0.5)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}

	ev := NewSimulator(testEV(), domain.StyleNormal)
	assert.InDelta(t, 2.0/8.9, ev.Climate(-5, 1), 1e-12)
}

func TestEmissionsAndCost(t *testing.T) {
	gas := testSedan()
	diesel := testSedan()
	diesel.FuelType = domain.FuelDiesel
	hybrid := testSedan()
	hybrid.FuelType = domain.FuelHybrid
	ev := testEV()

	assert.InDelta(t, 23.1, Emissions(gas, 10), 1e-9)
	assert.InDelta(t, 23.1, Emissions(hybrid, 10), 1e-9)
	assert.InDelta(t, 26.8, Emissions(diesel, 10), 1e-9)
	assert.InDelta(t, 8.9*0.233, Emissions(ev, 1), 1e-9)

	assert.True(t, decimal.RequireFromString("10.00").Equal(Cost(gas, 10)))
	assert.True(t, decimal.RequireFromString("10.80").Equal(Cost(diesel, 10)))
	assert.True(t, decimal.RequireFromString("1.42").Equal(Cost(ev, 1)))

	assert.InDelta(t, 17.8, EnergyKWh(ev, 2), 1e-9)
	assert.Zero(t, EnergyKWh(gas, 2))
}

func TestHeavierVehicleUsesMoreUncalibratedWork(t *testing.T) {
	light := testSedan()
	heavy := testSedan()
	heavy.MassKg *= 2

	a := NewSimulator(light, domain.StyleNormal)
	b := NewSimulator(heavy, domain.StyleNormal)
	assert.Greater(t, b.segmentFuel(1000, 60, 1, 1.225, 0), a.segmentFuel(1000, 60, 1, 1.225, 0))
}
