package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// One maneuver segment as reported by the directions provider.
// ManeuverType and WayPoints are optional; nil means the provider did not send them.
type RouteStep struct {
	DistanceM    float64
	DurationS    float64
	Instruction  string
	Name         string
	Surface      string
	ManeuverType *int
	WayPoints    []int
}

type RouteSummary struct {
	DistanceM float64
	DurationS float64
}

// RawRoute is a single provider candidate. Geometry is either encoded
// (EncodedGeometry) or already a coordinate list (Geometry).
// It lives only for the duration of one query.
type RawRoute struct {
	Summary         RouteSummary
	EncodedGeometry string
	Geometry        []Coordinates
	Steps           []RouteStep
	SourceKey       string
}

// Current conditions at one point. Wind direction follows the meteorological
// convention: the direction the wind blows from.
type WeatherSample struct {
	TemperatureC     float64 `json:"temperature_c"`
	WindSpeedKMH     float64 `json:"wind_speed_kmh"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`
	PrecipitationMM  float64 `json:"precipitation_mm"`
}

// DefaultWeather is used when no sample is available.
var DefaultWeather = WeatherSample{TemperatureC: 15}

type Tag string

const (
	TagEco     Tag = "eco"
	TagFastest Tag = "fastest"
)

// Fuel figures in litres (litre-equivalent for electric vehicles).
type FuelBreakdown struct {
	Idle         float64
	Acceleration float64
	Cruise       float64
	ColdStart    float64
	Climate      float64
	Total        float64
}

// Human readable maneuver line; distance in km, duration in minutes.
type StepSummary struct {
	Instruction string
	DistanceKM  float64
	DurationMin float64
}

// ScoredRoute is a candidate after simulation. It is never mutated once built;
// the selector copies it when retagging.
type ScoredRoute struct {
	Name        string
	Tag         Tag
	DistanceKM  float64
	DurationMin float64
	AvgSpeedKMH float64
	Fuel        FuelBreakdown
	EnergyKWh   float64
	CO2Kg       float64
	Cost        decimal.Decimal
	Start       Coordinates
	End         Coordinates
	Coordinates []Coordinates
	Steps       []StepSummary
	Weather     *WeatherSample
	Estimated   bool
}

// One row of the eco/fastest comparison table.
type ComparisonRow struct {
	Name        string
	Tag         Tag
	DistanceKM  float64
	DurationMin float64
	TotalFuel   float64
	CO2Kg       float64
	Cost        decimal.Decimal
}

func (r ScoredRoute) Row() ComparisonRow {
	return ComparisonRow{
		Name:        r.Name,
		Tag:         r.Tag,
		DistanceKM:  r.DistanceKM,
		DurationMin: r.DurationMin,
		TotalFuel:   r.Fuel.Total,
		CO2Kg:       r.CO2Kg,
		Cost:        r.Cost,
	}
}

type DrivingStyle string

const (
	StyleCalm       DrivingStyle = "calm"
	StyleNormal     DrivingStyle = "normal"
	StyleAggressive DrivingStyle = "aggressive"
)

// Factor returns the consumption multiplier; unknown styles drive like normal.
func (s DrivingStyle) Factor() float64 {
	switch s {
	case StyleCalm:
		return 0.85
	case StyleAggressive:
		return 1.22
	default:
		return 1.0
	}
}

// ParseDrivingStyle maps free text to a known style; anything unrecognised is normal.
func ParseDrivingStyle(s string) DrivingStyle {
	switch st := DrivingStyle(strings.ToLower(strings.TrimSpace(s))); st {
	case StyleCalm, StyleAggressive:
		return st
	default:
		return StyleNormal
	}
}
