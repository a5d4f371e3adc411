package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"
)

const shortLabelMaxLen = 60

type geocodeFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Label         string `json:"label"`
		Name          string `json:"name"`
		Street        string `json:"street"`
		Neighbourhood string `json:"neighbourhood"`
		Locality      string `json:"locality"`
		County        string `json:"county"`
		Region        string `json:"region"`
		Country       string `json:"country"`
	} `json:"properties"`
}

type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

// Geocode resolves a free-text place to its best match via /geocode/search.
func (o *ORSProvider) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, o.log, "ors.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	features, err := o.geocodeQuery(ctx, "/geocode/search", norm, 1)
	if err != nil {
		return domain.Coordinates{}, err
	}
	if len(features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", norm)
	}

	coords, ok := featureCoords(features[0])
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", norm)
	}
	return coords, nil
}

// Search returns up to limit suggestions via /geocode/autocomplete.
func (o *ORSProvider) Search(ctx context.Context, query string, limit int) (_ []ports.Place, err error) {
	defer obs.Time(ctx, o.log, "ors.Search")(&err)

	norm := normalize(query)
	if norm == "" || limit <= 0 {
		return []ports.Place{}, nil
	}

	features, err := o.geocodeQuery(ctx, "/geocode/autocomplete", norm, limit)
	if err != nil {
		return nil, err
	}

	places := make([]ports.Place, 0, len(features))
	for _, f := range features {
		coords, ok := featureCoords(f)
		if !ok {
			continue
		}
		places = append(places, ports.Place{
			Display: f.Properties.Label,
			Short:   shortLabel(f),
			Coords:  coords,
		})
		if len(places) == limit {
			break
		}
	}
	return places, nil
}

func (o *ORSProvider) geocodeQuery(ctx context.Context, path, text string, size int) ([]geocodeFeature, error) {
	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("text", text)
	q.Set("size", strconv.Itoa(size))
	req.URL.RawQuery = q.Encode()

	resp, err := o.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	return decoded.Features, nil
}

func featureCoords(f geocodeFeature) (domain.Coordinates, bool) {
	c := f.Geometry.Coordinates
	if len(c) != 2 {
		return domain.Coordinates{}, false
	}
	coords := domain.Coordinates{Lon: c[0], Lat: c[1]}
	return coords, coords.Valid()
}

// shortLabel joins up to three distinct address parts, most specific first.
func shortLabel(f geocodeFeature) string {
	p := f.Properties
	parts := make([]string, 0, 3)
	for _, v := range []string{p.Name, p.Street, p.Neighbourhood, p.Locality, p.County, p.Region, p.Country} {
		if v == "" || slices.Contains(parts, v) {
			continue
		}
		parts = append(parts, v)
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) == 0 {
		label := []rune(p.Label)
		if len(label) > shortLabelMaxLen {
			label = label[:shortLabelMaxLen]
		}
		return string(label)
	}
	return strings.Join(parts, ", ")
}
