package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves places with the Google Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
	log    *zap.Logger
}

// NewGoogleGeocoder builds a client for apiKey. baseURL is only set in tests.
func NewGoogleGeocoder(apiKey string, timeout time.Duration, baseURL string, log *zap.Logger) (*GoogleGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google geocoder: api key is empty")
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client, log: log.Named("google_geocoder")}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, g.log, "google.Geocode")(&err)

	place = strings.Join(strings.Fields(place), " ")
	if place == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", place)
	}

	loc := results[0].Geometry.Location
	coords := domain.Coordinates{Lat: loc.Lat, Lon: loc.Lng}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate for %q", place)
	}
	return coords, nil
}
