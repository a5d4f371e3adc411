package geo

import (
	"math"

	"ecoroute-service/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(a, b domain.Coordinates) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// BearingDeg is the initial compass bearing from a to b in [0, 360).
func BearingDeg(a, b domain.Coordinates) float64 {
	lat1, lon1 := degreesToRadians(a.Lat), degreesToRadians(a.Lon)
	lat2, lon2 := degreesToRadians(b.Lat), degreesToRadians(b.Lon)

	x := math.Sin(lon2-lon1) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)

	deg := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Interpolate returns n evenly spaced points from a to b, both ends included.
// n below 2 is treated as 2.
func Interpolate(a, b domain.Coordinates, n int) []domain.Coordinates {
	if n < 2 {
		n = 2
	}
	out := make([]domain.Coordinates, 0, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		out = append(out, domain.Coordinates{
			Lat: a.Lat + f*(b.Lat-a.Lat),
			Lon: a.Lon + f*(b.Lon-a.Lon),
		})
	}
	return out
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
