package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ecoroute-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	m       map[string]domain.Coordinates
	readErr error
	puts    int
}

func (s *memoryStore) GetMany(ctx context.Context, places []string) (map[string]domain.Coordinates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make(map[string]domain.Coordinates)
	for _, p := range places {
		if c, ok := s.m[p]; ok {
			out[p] = c
		}
	}
	return out, nil
}

func (s *memoryStore) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]domain.Coordinates)
	}
	for k, v := range results {
		s.m[k] = v
	}
	s.puts++
	return nil
}

type countingGeocoder struct {
	coords domain.Coordinates
	err    error
	calls  int
}

func (g *countingGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	g.calls++
	return g.coords, g.err
}

func TestCachedGeocoderStoresAndReuses(t *testing.T) {
	store := &memoryStore{}
	up := &countingGeocoder{coords: domain.Coordinates{Lat: 48.8566, Lon: 2.3522}}
	g := NewCachedGeocoder(up, store, nil)

	ctx := context.Background()
	a, err := g.Geocode(ctx, "Paris,  France")
	require.NoError(t, err)
	b, err := g.Geocode(ctx, "paris, france")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 1, up.calls)
	assert.Equal(t, 1, store.puts)
	assert.Contains(t, store.m, "paris, france")
}

func TestCachedGeocoderUpstreamError(t *testing.T) {
	store := &memoryStore{}
	g := NewCachedGeocoder(&countingGeocoder{err: errors.New("not found")}, store, nil)

	_, err := g.Geocode(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Zero(t, store.puts)
}

func TestCachedGeocoderStoreReadFailureFallsThrough(t *testing.T) {
	store := &memoryStore{readErr: errors.New("db down")}
	up := &countingGeocoder{coords: domain.Coordinates{Lat: 1, Lon: 2}}
	g := NewCachedGeocoder(up, store, nil)

	c, err := g.Geocode(context.Background(), "Somewhere")
	require.NoError(t, err)
	assert.Equal(t, up.coords, c)
	assert.Equal(t, 1, up.calls)
}
