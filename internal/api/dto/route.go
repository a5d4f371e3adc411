package dto

import "github.com/shopspring/decimal"

type FuelResponse struct {
	Idle         float64 `json:"idle"`
	Acceleration float64 `json:"acceleration"`
	Cruise       float64 `json:"cruise"`
	ColdStart    float64 `json:"cold_start"`
	Climate      float64 `json:"climate"`
	Total        float64 `json:"total"`
}

type StepResponse struct {
	Instruction string  `json:"instruction"`
	DistanceKM  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

type WeatherResponse struct {
	TemperatureC     float64 `json:"temperature_c"`
	WindSpeedKMH     float64 `json:"wind_speed_kmh"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`
	PrecipitationMM  float64 `json:"precipitation_mm"`
}

type RouteResponse struct {
	Name        string           `json:"name"`
	Tag         string           `json:"tag"`
	DistanceKM  float64          `json:"distance_km"`
	DurationMin float64          `json:"duration_min"`
	AvgSpeedKMH float64          `json:"avg_speed_kmh"`
	Fuel        FuelResponse     `json:"fuel"`
	EnergyKWh   *float64         `json:"energy_kwh,omitempty"`
	CO2Kg       float64          `json:"co2_kg"`
	Cost        decimal.Decimal  `json:"cost"`
	Start       [2]float64       `json:"start"`
	End         [2]float64       `json:"end"`
	Coordinates [][2]float64     `json:"coordinates"`
	Steps       []StepResponse   `json:"steps"`
	Weather     *WeatherResponse `json:"weather"`
	Estimated   bool             `json:"estimated"`
}

type ComparisonRowResponse struct {
	Name        string          `json:"name"`
	Tag         string          `json:"tag"`
	DistanceKM  float64         `json:"distance_km"`
	DurationMin float64         `json:"duration_min"`
	TotalFuel   float64         `json:"total_fuel"`
	CO2Kg       float64         `json:"co2_kg"`
	Cost        decimal.Decimal `json:"cost"`
}

type TripResponse struct {
	Start       string     `json:"start"`
	End         string     `json:"end"`
	StartCoords [2]float64 `json:"start_coords"`
	EndCoords   [2]float64 `json:"end_coords"`
}

type RoutesResponse struct {
	Eco                 RouteResponse           `json:"eco"`
	Fastest             RouteResponse           `json:"fastest"`
	Comparison          []ComparisonRowResponse `json:"comparison"`
	CandidatesEvaluated int                     `json:"candidates_evaluated"`
	Estimated           bool                    `json:"estimated"`
	Style               string                  `json:"style"`
	Trip                TripResponse            `json:"trip"`
	Weather             *WeatherResponse        `json:"weather"`
	Vehicle             VehicleResponse         `json:"vehicle"`
}
