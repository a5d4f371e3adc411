package domain

import (
	"errors"
	"fmt"
)

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

type Category string

const (
	CategorySedan    Category = "sedan"
	CategorySUV      Category = "suv"
	CategoryTruck    Category = "truck"
	CategoryHybrid   Category = "hybrid"
	CategoryElectric Category = "electric"
)

// VehicleSpec is the static physical and economy profile of one make/model.
// Rates are litres (litre-equivalent for electric vehicles) unless noted.
type VehicleSpec struct {
	Make  string `json:"make"`
	Model string `json:"model"`

	MassKg             float64  `json:"weight"`
	DragCoefficient    float64  `json:"drag_coefficient"`
	FrontalAreaM2      float64  `json:"frontal_area"`
	RollingResistance  float64  `json:"rolling_resistance"`
	EngineDisplacement float64  `json:"engine_displacement"`
	IdleRateLPH        float64  `json:"idle_rate"`
	BaseConsumptionLKM float64  `json:"base_consumption"`
	OptimalSpeedKMH    float64  `json:"optimal_speed"`
	AccelCostL         float64  `json:"accel_cost"`
	Efficiency         float64  `json:"efficiency"`
	FuelType           FuelType `json:"fuel_type"`
	Category           Category `json:"category"`
	ColdStartML        float64  `json:"cold_start_ml"`
	RegenFraction      float64  `json:"regen_fraction"`
	HVACLPH            float64  `json:"hvac_lph"`
	CityL100KM         float64  `json:"city_l100km"`
	HighwayL100KM      float64  `json:"hwy_l100km"`
	KWhPer100KM        float64  `json:"kwh_per_100km,omitempty"`
}

// CombinedL100KM is the reference combined-cycle economy, the mean of city and highway.
func (v VehicleSpec) CombinedL100KM() float64 {
	city, hwy := v.CityL100KM, v.HighwayL100KM
	if city <= 0 {
		city = 10.0
	}
	if hwy <= 0 {
		hwy = 7.0
	}
	return (city + hwy) / 2
}

func (v VehicleSpec) IsElectric() bool { return v.FuelType == FuelElectric }

// KWhPerLitreEquivalent converts electric energy to the litre-equivalent unit
// used for all fuel figures.
const KWhPerLitreEquivalent = 8.9

// ReferenceL100KM is the steady-state consumption the physics model is
// calibrated against. Electric vehicles with a rated kWh/100km figure use that,
// expressed in litre-equivalent; everything else uses the combined cycle.
func (v VehicleSpec) ReferenceL100KM() float64 {
	if v.IsElectric() && v.KWhPer100KM > 0 {
		return v.KWhPer100KM / KWhPerLitreEquivalent
	}
	return v.CombinedL100KM()
}

// Validate enforces efficiency in (0,1] and non-negative rates and coefficients.
func (v VehicleSpec) Validate() error {
	if v.Make == "" || v.Model == "" {
		return errors.New("vehicle spec: make and model must be non-empty")
	}
	if v.Efficiency <= 0 || v.Efficiency > 1 {
		return fmt.Errorf("vehicle spec %s %s: efficiency %.3f outside (0,1]", v.Make, v.Model, v.Efficiency)
	}

	fields := map[string]float64{
		"weight":             v.MassKg,
		"drag_coefficient":   v.DragCoefficient,
		"frontal_area":       v.FrontalAreaM2,
		"rolling_resistance": v.RollingResistance,
		"idle_rate":          v.IdleRateLPH,
		"base_consumption":   v.BaseConsumptionLKM,
		"accel_cost":         v.AccelCostL,
		"cold_start_ml":      v.ColdStartML,
		"regen_fraction":     v.RegenFraction,
		"hvac_lph":           v.HVACLPH,
		"city_l100km":        v.CityL100KM,
		"hwy_l100km":         v.HighwayL100KM,
	}
	for name, val := range fields {
		if val < 0 {
			return fmt.Errorf("vehicle spec %s %s: %s must be >= 0, got %v", v.Make, v.Model, name, val)
		}
	}

	switch v.FuelType {
	case FuelGasoline, FuelDiesel, FuelHybrid, FuelElectric:
	default:
		return fmt.Errorf("vehicle spec %s %s: unknown fuel type %q", v.Make, v.Model, v.FuelType)
	}

	return nil
}
