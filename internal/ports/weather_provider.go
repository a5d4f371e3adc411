package ports

import (
	"context"
	"ecoroute-service/internal/domain"
)

// Contract for current conditions at a point.
type WeatherProvider interface {
	Current(ctx context.Context, at domain.Coordinates) (domain.WeatherSample, error)
}
