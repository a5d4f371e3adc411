package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"go.uber.org/zap"
)

// Public API cap for alternative_routes.target_count.
const maxTargetCount = 3

type directionsOptions struct {
	AvoidFeatures []string `json:"avoid_features,omitempty"`
}

type alternativeRoutes struct {
	TargetCount  int     `json:"target_count"`
	WeightFactor float64 `json:"weight_factor"`
	ShareFactor  float64 `json:"share_factor"`
}

type directionsRequest struct {
	Coordinates       [][]float64        `json:"coordinates"`
	Preference        string             `json:"preference"`
	Units             string             `json:"units"`
	Instructions      bool               `json:"instructions"`
	Language          string             `json:"language"`
	ExtraInfo         []string           `json:"extra_info,omitempty"`
	Options           *directionsOptions `json:"options,omitempty"`
	AlternativeRoutes *alternativeRoutes `json:"alternative_routes,omitempty"`
}

type orsStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Type        *int    `json:"type"`
	Instruction string  `json:"instruction"`
	Name        string  `json:"name"`
	WayPoints   []int   `json:"way_points"`
}

type orsRoute struct {
	Summary struct {
		Distance *float64 `json:"distance"`
		Duration *float64 `json:"duration"`
	} `json:"summary"`
	Segments []struct {
		Steps []orsStep `json:"steps"`
	} `json:"segments"`
	Geometry json.RawMessage `json:"geometry"`
	Extras   struct {
		Surface struct {
			Values [][3]int `json:"values"`
		} `json:"surface"`
	} `json:"extras"`
}

type directionsResponse struct {
	Routes []orsRoute `json:"routes"`
}

func buildDirectionsRequest(req ports.DirectionsRequest) directionsRequest {
	coords := make([][]float64, 0, len(req.Waypoints))
	for _, c := range req.Waypoints {
		coords = append(coords, c.CoordsToList())
	}

	body := directionsRequest{
		Coordinates:  coords,
		Preference:   string(req.Preference),
		Units:        "m",
		Instructions: true,
		Language:     "en",
		ExtraInfo:    []string{"surface"},
	}
	if body.Preference == "" {
		body.Preference = string(ports.PreferenceRecommended)
	}
	if len(req.AvoidFeatures) > 0 {
		body.Options = &directionsOptions{AvoidFeatures: req.AvoidFeatures}
	}
	// Alternatives are only accepted for plain two-point requests.
	if req.Alternatives > 0 && len(req.Waypoints) == 2 {
		body.AlternativeRoutes = &alternativeRoutes{
			TargetCount:  min(req.Alternatives, maxTargetCount),
			WeightFactor: 2.0,
			ShareFactor:  0.3,
		}
	}
	return body
}

// Directions posts one directions request. A non-success status, transport
// failure or undecodable body fails the call; individual malformed routes in
// an otherwise valid response are skipped.
func (o *ORSProvider) Directions(
	ctx context.Context,
	req ports.DirectionsRequest,
) (_ []domain.RawRoute, err error) {
	defer obs.Time(ctx, o.log, "ors.Directions")(&err)

	if len(req.Waypoints) < 2 {
		return nil, errors.New("directions: at least two waypoints are required")
	}

	payload, err := json.Marshal(buildDirectionsRequest(req))
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)
	httpReq, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}

	resp, err := o.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute directions request %s: %w", req.Key, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	routes := make([]domain.RawRoute, 0, len(decoded.Routes))
	for i, r := range decoded.Routes {
		raw, err := convertRoute(r)
		if err != nil {
			o.log.Debug("skipping malformed route",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("key", req.Key),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		routes = append(routes, raw)
	}

	return routes, nil
}

func convertRoute(r orsRoute) (domain.RawRoute, error) {
	if r.Summary.Distance == nil || r.Summary.Duration == nil {
		return domain.RawRoute{}, errors.New("summary distance or duration missing")
	}

	out := domain.RawRoute{
		Summary: domain.RouteSummary{
			DistanceM: *r.Summary.Distance,
			DurationS: *r.Summary.Duration,
		},
	}

	if err := decodeGeometry(r.Geometry, &out); err != nil {
		return domain.RawRoute{}, err
	}

	surfaces := r.Extras.Surface.Values
	for _, seg := range r.Segments {
		for _, st := range seg.Steps {
			step := domain.RouteStep{
				DistanceM:    st.Distance,
				DurationS:    st.Duration,
				Instruction:  st.Instruction,
				Name:         st.Name,
				ManeuverType: st.Type,
				WayPoints:    st.WayPoints,
			}
			if len(st.WayPoints) == 2 {
				step.Surface = surfaceFor(surfaces, st.WayPoints[0], st.WayPoints[1])
			}
			out.Steps = append(out.Steps, step)
		}
	}

	return out, nil
}

// decodeGeometry accepts either an encoded polyline string or a GeoJSON
// LineString object.
func decodeGeometry(raw json.RawMessage, out *domain.RawRoute) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		out.EncodedGeometry = encoded
		return nil
	}

	var line struct {
		Coordinates [][]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &line); err != nil {
		return fmt.Errorf("unrecognized geometry: %w", err)
	}

	coords := make([]domain.Coordinates, 0, len(line.Coordinates))
	for _, c := range line.Coordinates {
		if len(c) < 2 {
			return errors.New("geometry point with fewer than two ordinates")
		}
		coords = append(coords, domain.Coordinates{Lon: c[0], Lat: c[1]})
	}
	out.Geometry = coords
	return nil
}

// OpenRouteService surface codes.
var surfaceCodes = map[int]string{
	1:  "paved",
	2:  "unpaved",
	3:  "asphalt",
	4:  "concrete",
	5:  "cobblestone",
	8:  "compacted",
	9:  "fine_gravel",
	10: "gravel",
	11: "dirt",
	12: "dirt",
	14: "sett",
	17: "grass",
	18: "grass",
}

// surfaceFor returns the surface covering most of the way-point span
// [from, to]. Earlier ranges win ties.
func surfaceFor(values [][3]int, from, to int) string {
	best, bestOverlap := "", -1
	for _, v := range values {
		lo, hi := max(v[0], from), min(v[1], to)
		overlap := hi - lo
		if overlap < 0 || (overlap == 0 && from != to) {
			continue
		}
		if overlap > bestOverlap {
			best, bestOverlap = surfaceCodes[v[2]], overlap
		}
	}
	return best
}
