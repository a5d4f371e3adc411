package ports

import (
	"context"
	"ecoroute-service/internal/domain"
)

// Contract for resolving a free-text place to coordinates.
type Geocoder interface {
	// Return the best match for the place name.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}

// Place suggestion returned by autocomplete.
type Place struct {
	Display string
	Short   string
	Coords  domain.Coordinates
}

// Optional extension of Geocoder that supports prefix search.
type PlaceSearcher interface {
	Geocoder
	// Return up to limit suggestions for a partial query.
	Search(ctx context.Context, query string, limit int) ([]Place, error)
}
