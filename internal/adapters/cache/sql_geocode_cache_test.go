package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func TestSQLGeocodeCacheRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, url, db.DefaultPoolOptions())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, db.InitSchema(ctx, conn))

	c := NewSQLGeocodeCache(conn, nil)
	key := "test place " + time.Now().Format(time.RFC3339Nano)
	t.Cleanup(func() {
		_, _ = conn.Exec("DELETE FROM geocode_cache WHERE place = $1", key)
	})

	require.NoError(t, c.PutMany(ctx, map[string]domain.Coordinates{key: {Lat: 10.5, Lon: -20.25}}))
	require.NoError(t, c.PutMany(ctx, map[string]domain.Coordinates{key: {Lat: 11.5, Lon: -21.25}}))

	got, err := c.GetMany(ctx, []string{key, key, " ", "absent " + key})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Coordinates{key: {Lat: 11.5, Lon: -21.25}}, got)
}

func TestSQLGeocodeCacheNilDB(t *testing.T) {
	c := NewSQLGeocodeCache(nil, nil)
	_, err := c.GetMany(context.Background(), []string{"x"})
	require.Error(t, err)
	require.Error(t, c.PutMany(context.Background(), map[string]domain.Coordinates{"x": {}}))
}
