// Package geo holds pure geometry helpers: the encoded-polyline codec,
// great-circle distance, bearings and straight-line interpolation.
package geo

import (
	"errors"
	"fmt"

	"ecoroute-service/internal/domain"

	"googlemaps.github.io/maps"
)

// ErrMalformedPolyline reports an encoded polyline that is not a whole
// sequence of (lat, lon) pairs.
var ErrMalformedPolyline = errors.New("malformed polyline")

// ParsePolyline decodes an encoded polyline (5 decimal precision) and rejects
// anything that is not complete: characters outside the polyline alphabet, a
// trailing group without its terminating chunk, a latitude with no longitude,
// or coordinates out of range.
func ParsePolyline(encoded string) ([]domain.Coordinates, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPolyline)
	}

	values := 0
	for i := 0; i < len(encoded); i++ {
		b := encoded[i]
		if b < 63 || b > 126 {
			return nil, fmt.Errorf("%w: byte %d out of range", ErrMalformedPolyline, i)
		}
		if b-63 < 0x20 {
			values++
		}
	}
	if encoded[len(encoded)-1]-63 >= 0x20 {
		return nil, fmt.Errorf("%w: truncated final value", ErrMalformedPolyline)
	}
	if values%2 != 0 {
		return nil, fmt.Errorf("%w: latitude without longitude", ErrMalformedPolyline)
	}

	path, err := maps.DecodePolyline(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPolyline, err)
	}

	out := make([]domain.Coordinates, 0, len(path))
	for _, p := range path {
		c := domain.Coordinates{Lat: p.Lat, Lon: p.Lng}
		if !c.Valid() {
			return nil, fmt.Errorf("%w: coordinate %v,%v out of range", ErrMalformedPolyline, c.Lat, c.Lon)
		}
		out = append(out, c)
	}
	return out, nil
}

// Decode is the permissive form of ParsePolyline: malformed input yields an
// empty sequence, which callers treat as "no geometry available".
func Decode(encoded string) []domain.Coordinates {
	coords, err := ParsePolyline(encoded)
	if err != nil {
		return nil
	}
	return coords
}

// Encode is the inverse of Decode.
func Encode(coords []domain.Coordinates) string {
	path := make([]maps.LatLng, 0, len(coords))
	for _, c := range coords {
		path = append(path, maps.LatLng{Lat: c.Lat, Lng: c.Lon})
	}
	return maps.Encode(path)
}

// RouteCoordinates returns the route's coordinate sequence, decoding the
// encoded geometry when no explicit coordinate list is present. Corrupt
// geometry yields an empty sequence.
func RouteCoordinates(r domain.RawRoute) []domain.Coordinates {
	coords, _ := ParseRouteCoordinates(r)
	return coords
}

// ParseRouteCoordinates is RouteCoordinates with corrupt encoded geometry
// reported as an error. A route with no geometry at all is not an error.
func ParseRouteCoordinates(r domain.RawRoute) ([]domain.Coordinates, error) {
	if len(r.Geometry) > 0 {
		out := make([]domain.Coordinates, len(r.Geometry))
		copy(out, r.Geometry)
		return out, nil
	}
	if r.EncodedGeometry == "" {
		return nil, nil
	}
	return ParsePolyline(r.EncodedGeometry)
}
