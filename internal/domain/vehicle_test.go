package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sedan() VehicleSpec {
	return VehicleSpec{
		Make: "Toyota", Model: "Camry",
		MassKg: 1560, DragCoefficient: 0.28, FrontalAreaM2: 2.24, RollingResistance: 0.010,
		IdleRateLPH: 0.55, BaseConsumptionLKM: 0.072, AccelCostL: 0.012, Efficiency: 0.26,
		FuelType: FuelGasoline, Category: CategorySedan, ColdStartML: 18, HVACLPH: 0.80,
		CityL100KM: 10.2, HighwayL100KM: 6.7,
	}
}

func TestVehicleSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VehicleSpec)
		wantErr bool
	}{
		{name: "valid", mutate: func(*VehicleSpec) {}},
		{name: "efficiency zero", mutate: func(v *VehicleSpec) { v.Efficiency = 0 }, wantErr: true},
		{name: "efficiency above one", mutate: func(v *VehicleSpec) { v.Efficiency = 1.2 }, wantErr: true},
		{name: "efficiency exactly one", mutate: func(v *VehicleSpec) { v.Efficiency = 1 }},
		{name: "negative idle rate", mutate: func(v *VehicleSpec) { v.IdleRateLPH = -0.1 }, wantErr: true},
		{name: "unknown fuel", mutate: func(v *VehicleSpec) { v.FuelType = "coal" }, wantErr: true},
		{name: "missing model", mutate: func(v *VehicleSpec) { v.Model = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sedan()
			tt.mutate(&v)
			err := v.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCombinedL100KMFallsBackWhenMissing(t *testing.T) {
	v := sedan()
	assert.InDelta(t, 8.45, v.CombinedL100KM(), 1e-9)

	v.CityL100KM, v.HighwayL100KM = 0, 0
	assert.InDelta(t, 8.5, v.CombinedL100KM(), 1e-9)
}

func TestDrivingStyleFactor(t *testing.T) {
	assert.Equal(t, 0.85, StyleCalm.Factor())
	assert.Equal(t, 1.0, StyleNormal.Factor())
	assert.Equal(t, 1.22, StyleAggressive.Factor())
	assert.Equal(t, 1.0, DrivingStyle("sporty").Factor())
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Lat: 33.45, Lon: -112.07}.Valid())
	assert.False(t, Coordinates{Lat: 91, Lon: 0}.Valid())
	assert.False(t, Coordinates{Lat: 0, Lon: -181}.Valid())
	assert.Equal(t, []float64{-112.07, 33.45}, Coordinates{Lat: 33.45, Lon: -112.07}.CoordsToList())
}

func TestReferenceL100KM(t *testing.T) {
	assert.InDelta(t, 8.45, sedan().ReferenceL100KM(), 1e-9)

	ev := sedan()
	ev.FuelType = FuelElectric
	ev.KWhPer100KM = 17.8
	assert.InDelta(t, 2.0, ev.ReferenceL100KM(), 1e-9)

	ev.KWhPer100KM = 0
	assert.InDelta(t, 8.45, ev.ReferenceL100KM(), 1e-9)
}

func TestParseDrivingStyle(t *testing.T) {
	assert.Equal(t, StyleCalm, ParseDrivingStyle(" Calm "))
	assert.Equal(t, StyleAggressive, ParseDrivingStyle("aggressive"))
	assert.Equal(t, StyleNormal, ParseDrivingStyle("normal"))
	assert.Equal(t, StyleNormal, ParseDrivingStyle("sporty"))
	assert.Equal(t, StyleNormal, ParseDrivingStyle(""))
}
