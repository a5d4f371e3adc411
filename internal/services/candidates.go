package services

import (
	"fmt"
	"math"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/ports"
)

// PinnedFastestKey identifies the single fastest-preference request whose
// result is reported as the fastest route regardless of pool size.
const PinnedFastestKey = "single_fastest"

// Public directions API cap on alternatives per call.
const maxAlternatives = 3

type CandidateOptions struct {
	// Via-point grid: positions along the O->D line and lateral offsets at each.
	ViaAlong int
	ViaPerp  int
	// Lateral spread as a fraction of |D-O| either side of the line.
	ViaSpread float64
}

func DefaultCandidateOptions() CandidateOptions {
	return CandidateOptions{ViaAlong: 4, ViaPerp: 3, ViaSpread: 0.35}
}

// ViaPoints spreads a grid of forced waypoints across the origin->destination
// corridor. Positions sit at i/(nAlong+1) along the line; at each one nPerp
// offsets run evenly from -spread to +spread along the unit perpendicular.
// Coincident endpoints produce no points.
func ViaPoints(origin, dest domain.Coordinates, nAlong, nPerp int, spreadFrac float64) []domain.Coordinates {
	dLat := dest.Lat - origin.Lat
	dLon := dest.Lon - origin.Lon
	mag := math.Hypot(dLat, dLon)
	if mag == 0 || nAlong <= 0 || nPerp <= 0 {
		return nil
	}

	// Unit perpendicular, the direction vector rotated 90 degrees.
	pLat, pLon := -dLon/mag, dLat/mag
	spread := mag * spreadFrac

	pts := make([]domain.Coordinates, 0, nAlong*nPerp)
	for i := 0; i < nAlong; i++ {
		frac := float64(i+1) / float64(nAlong+1)
		baseLat := origin.Lat + frac*dLat
		baseLon := origin.Lon + frac*dLon

		for j := 0; j < nPerp; j++ {
			off := 0.0
			if nPerp > 1 {
				off = (float64(j)/float64(nPerp-1) - 0.5) * 2 * spread
			}
			pts = append(pts, domain.Coordinates{
				Lat: baseLat + off*pLat,
				Lon: baseLon + off*pLon,
			})
		}
	}

	return pts
}

// BuildCandidateRequests returns every directions request for one query:
// alternatives sweeps over preferences and avoidance options, single-result
// preference calls, and one O->via->D call per via-point.
func BuildCandidateRequests(origin, dest domain.Coordinates, opts CandidateOptions) []ports.DirectionsRequest {
	direct := []domain.Coordinates{origin, dest}

	reqs := []ports.DirectionsRequest{
		{Key: "alt_recommended", Waypoints: direct, Preference: ports.PreferenceRecommended, Alternatives: maxAlternatives},
		{Key: "alt_fastest", Waypoints: direct, Preference: ports.PreferenceFastest, Alternatives: maxAlternatives},
		{Key: "alt_shortest", Waypoints: direct, Preference: ports.PreferenceShortest, Alternatives: maxAlternatives},
		{Key: "alt_no_highways", Waypoints: direct, Preference: ports.PreferenceRecommended, AvoidFeatures: []string{"highways"}, Alternatives: maxAlternatives},
		{Key: "alt_no_tollways", Waypoints: direct, Preference: ports.PreferenceRecommended, AvoidFeatures: []string{"tollways"}, Alternatives: maxAlternatives},
		{Key: PinnedFastestKey, Waypoints: direct, Preference: ports.PreferenceFastest},
		{Key: "single_shortest", Waypoints: direct, Preference: ports.PreferenceShortest},
		{Key: "single_recommended", Waypoints: direct, Preference: ports.PreferenceRecommended},
	}

	for i, via := range ViaPoints(origin, dest, opts.ViaAlong, opts.ViaPerp, opts.ViaSpread) {
		reqs = append(reqs, ports.DirectionsRequest{
			Key:        fmt.Sprintf("via_%02d", i),
			Waypoints:  []domain.Coordinates{origin, via, dest},
			Preference: ports.PreferenceRecommended,
		})
	}

	return reqs
}
