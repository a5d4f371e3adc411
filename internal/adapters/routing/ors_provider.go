package routing

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultORSBaseURL = "https://api.openrouteservice.org"
	defaultProfile    = "driving-car"
)

// ORSProvider implements DirectionsProvider and PlaceSearcher using
// OpenRouteService.
//
// It covers:
//   - Directions with alternatives, avoidance options and surface extras
//   - Forward geocoding (best match)
//   - Place autocomplete
//
// Calls are never retried. The provider is safe for concurrent use.
type ORSProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	log     *zap.Logger
}

func NewORSProvider(
	apiKey string,
	baseURL string,
	timeout time.Duration,
	log *zap.Logger,
) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultORSBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	provider := &ORSProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: defaultProfile,
		log:     log.Named("ors"),
	}

	return provider, nil
}

// normalize collapses whitespace in free-text queries.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
