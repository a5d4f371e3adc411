package cache

import (
	"context"
	"strings"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"go.uber.org/zap"
)

// GeocodeStore is the persistence side of CachedGeocoder.
type GeocodeStore interface {
	GetMany(ctx context.Context, places []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// CachedGeocoder consults the store before the upstream geocoder and writes
// fresh results back. Store failures are logged and never fail a lookup.
type CachedGeocoder struct {
	next  ports.Geocoder
	store GeocodeStore
	log   *zap.Logger
}

func NewCachedGeocoder(next ports.Geocoder, store GeocodeStore, log *zap.Logger) *CachedGeocoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedGeocoder{next: next, store: store, log: log.Named("geocode_cache")}
}

// cacheKey collapses whitespace and case so equivalent queries share an entry.
func cacheKey(place string) string {
	return strings.ToLower(strings.Join(strings.Fields(place), " "))
}

func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	key := cacheKey(place)

	if key != "" {
		hits, err := c.store.GetMany(ctx, []string{key})
		if err != nil {
			c.log.Warn("geocode cache read failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		} else if coords, ok := hits[key]; ok {
			return coords, nil
		}
	}

	coords, err := c.next.Geocode(ctx, place)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if key != "" {
		if err := c.store.PutMany(ctx, map[string]domain.Coordinates{key: coords}); err != nil {
			c.log.Warn("geocode cache write failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		}
	}
	return coords, nil
}
