package services

import (
	"math"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/geo"
)

// Routes with identical fingerprints are treated as the same path.
// Coordinates are compared at 3 decimals (about 100 m).
const (
	fingerprintScale     = 1000
	fingerprintMinCoords = 4
	distanceBucketM      = 100
)

// RouteFingerprint is comparable so it can key a map. Exactly one of the two
// forms is set: three sampled points, or a distance bucket for short polylines.
type RouteFingerprint struct {
	Points         [3][2]int64
	DistanceBucket int64
	ByDistance     bool
}

// Fingerprint samples the polyline at 25%, 50%, 75% of its coordinate list.
// Routes with fewer than 4 coordinates fall back to their distance in 100 m
// buckets. ok is false when neither form can be computed or the encoded
// geometry is corrupt.
func Fingerprint(r domain.RawRoute) (RouteFingerprint, bool) {
	coords, err := geo.ParseRouteCoordinates(r)
	if err != nil {
		return RouteFingerprint{}, false
	}

	if len(coords) < fingerprintMinCoords {
		d := r.Summary.DistanceM
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return RouteFingerprint{}, false
		}
		return RouteFingerprint{ByDistance: true, DistanceBucket: int64(math.Round(d / distanceBucketM))}, true
	}

	var fp RouteFingerprint
	n := len(coords)
	for i, idx := range [3]int{n / 4, n / 2, 3 * n / 4} {
		c := coords[idx]
		if !c.Valid() {
			return RouteFingerprint{}, false
		}
		fp.Points[i] = [2]int64{
			int64(math.Round(c.Lat * fingerprintScale)),
			int64(math.Round(c.Lon * fingerprintScale)),
		}
	}
	return fp, true
}

// Dedupe keeps the first route seen for each fingerprint, preserving input
// order. Routes whose fingerprint cannot be computed are dropped.
func Dedupe(routes []domain.RawRoute) []domain.RawRoute {
	seen := make(map[RouteFingerprint]struct{}, len(routes))
	out := make([]domain.RawRoute, 0, len(routes))

	for _, r := range routes {
		fp, ok := Fingerprint(r)
		if !ok {
			continue
		}
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, r)
	}

	return out
}
