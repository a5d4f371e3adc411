package routing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
  "features": [
    {"geometry": {"coordinates": [-112.074, 33.4484]},
     "properties": {"label": "Phoenix, AZ, USA", "name": "Phoenix", "locality": "Phoenix", "region": "Arizona", "country": "United States"}},
    {"geometry": {"coordinates": [-111.9261, 33.4942]},
     "properties": {"label": "Scottsdale, AZ, USA", "name": "Scottsdale", "region": "Arizona", "country": "United States"}},
    {"geometry": {"coordinates": [1]},
     "properties": {"label": "broken"}}
  ]
}`

func TestGeocode(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "Phoenix AZ", r.URL.Query().Get("text"))
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(searchFixture))
	})

	c, err := p.Geocode(context.Background(), "  Phoenix   AZ ")
	require.NoError(t, err)
	assert.InDelta(t, 33.4484, c.Lat, 1e-9)
	assert.InDelta(t, -112.074, c.Lon, 1e-9)
}

func TestGeocodeNoResults(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features": []}`))
	})

	_, err := p.Geocode(context.Background(), "nowhere")
	require.Error(t, err)

	_, err = p.Geocode(context.Background(), "   ")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/autocomplete", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte(searchFixture))
	})

	places, err := p.Search(context.Background(), "pho", 6)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "Phoenix, AZ, USA", places[0].Display)
	assert.Equal(t, "Phoenix, Arizona, United States", places[0].Short)
	assert.Equal(t, "Scottsdale, Arizona, United States", places[1].Short)
}

func TestSearchLimit(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchFixture))
	})

	places, err := p.Search(context.Background(), "pho", 1)
	require.NoError(t, err)
	assert.Len(t, places, 1)

	places, err = p.Search(context.Background(), " ", 6)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestShortLabelFallsBackToTruncatedLabel(t *testing.T) {
	var f geocodeFeature
	f.Properties.Label = "A very long display label that goes on and on past the sixty character limit"
	got := shortLabel(f)
	assert.Len(t, []rune(got), 60)
}
