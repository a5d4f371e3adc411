package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ecoroute-service/internal/domain"
)

type PlaceSeed struct {
	Place string  `json:"place"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// ParsePlaceSeeds validates a JSON array of places and keys them the same way
// CachedGeocoder does.
func ParsePlaceSeeds(data []byte) (map[string]domain.Coordinates, error) {
	var seeds []PlaceSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("seed places: parse json: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(seeds))
	for i, s := range seeds {
		key := cacheKey(s.Place)
		if key == "" {
			return nil, fmt.Errorf("seed places: item at index %d: place cannot be empty", i+1)
		}
		c := domain.Coordinates{Lat: s.Lat, Lon: s.Lon}
		if !c.Valid() {
			return nil, fmt.Errorf("seed places: item %q: invalid coordinate %v,%v", strings.TrimSpace(s.Place), s.Lat, s.Lon)
		}
		out[key] = c
	}
	return out, nil
}

// SeedFromJSON primes the geocode cache from a JSON file.
func SeedFromJSON(ctx context.Context, store GeocodeStore, jsonPath string) (int, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	places, err := ParsePlaceSeeds(data)
	if err != nil {
		return 0, err
	}
	if err := store.PutMany(ctx, places); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}
	return len(places), nil
}
