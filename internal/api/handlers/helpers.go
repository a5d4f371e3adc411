package handlers

import (
	"math"

	"ecoroute-service/internal/api/dto"
	"ecoroute-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, gin.H{"error": msg})
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func coordPair(c domain.Coordinates) [2]float64 {
	return [2]float64{round(c.Lat, 6), round(c.Lon, 6)}
}

func vehicleResponse(v domain.VehicleSpec) dto.VehicleResponse {
	res := dto.VehicleResponse{
		Make:              v.Make,
		Model:             v.Model,
		FuelType:          string(v.FuelType),
		Category:          string(v.Category),
		WeightKg:          v.MassKg,
		DragCoefficient:   v.DragCoefficient,
		FrontalAreaM2:     v.FrontalAreaM2,
		RollingResistance: v.RollingResistance,
		Efficiency:        v.Efficiency,
		CityL100KM:        v.CityL100KM,
		HighwayL100KM:     v.HighwayL100KM,
	}
	if v.KWhPer100KM > 0 {
		kwh := v.KWhPer100KM
		res.KWhPer100KM = &kwh
	}
	return res
}
