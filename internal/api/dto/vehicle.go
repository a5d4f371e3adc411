package dto

type VehicleResponse struct {
	Make              string   `json:"make"`
	Model             string   `json:"model"`
	FuelType          string   `json:"fuel_type"`
	Category          string   `json:"category"`
	WeightKg          float64  `json:"weight"`
	DragCoefficient   float64  `json:"drag_coefficient"`
	FrontalAreaM2     float64  `json:"frontal_area"`
	RollingResistance float64  `json:"rolling_resistance"`
	Efficiency        float64  `json:"efficiency"`
	CityL100KM        float64  `json:"city_l100km"`
	HighwayL100KM     float64  `json:"hwy_l100km"`
	KWhPer100KM       *float64 `json:"kwh_per_100km,omitempty"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

type MakesResponse struct {
	Makes []string `json:"makes"`
}

type ModelsResponse struct {
	Make   string   `json:"make"`
	Models []string `json:"models"`
}

type PlaceResponse struct {
	Short   string  `json:"short"`
	Display string  `json:"display"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type AutocompleteResponse struct {
	Places []PlaceResponse `json:"places"`
}
