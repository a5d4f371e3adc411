package ports

import (
	"context"
	"ecoroute-service/internal/domain"
)

type Preference string

const (
	PreferenceFastest     Preference = "fastest"
	PreferenceShortest    Preference = "shortest"
	PreferenceRecommended Preference = "recommended"
)

// One outbound directions call. Key is stable for the lifetime of a query so
// failures can be attributed and the fastest-preference result pinned.
type DirectionsRequest struct {
	Key           string
	Waypoints     []domain.Coordinates
	Preference    Preference
	AvoidFeatures []string
	// Number of alternative routes to ask for; 0 requests a single route.
	Alternatives int
}

// Contract for retrieving driving route candidates.
type DirectionsProvider interface {
	// Return zero or more routes for the request. An error means the call failed
	// as a whole (transport, status, body); an empty slice means no route.
	Directions(ctx context.Context, req DirectionsRequest) ([]domain.RawRoute, error)
}
