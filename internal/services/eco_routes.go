package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Input errors. Callers map these to a rejected query.
var (
	ErrMissingLocation   = errors.New("missing locations")
	ErrUnknownVehicle    = errors.New("unknown vehicle")
	ErrGeocodeFailed     = errors.New("could not geocode locations")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// RouteQuery is one eco-route request. Explicit coordinates, when present,
// take precedence over geocoding the labels.
type RouteQuery struct {
	Start       string
	End         string
	StartCoords *domain.Coordinates
	EndCoords   *domain.Coordinates
	Make        string
	Model       string
	Style       domain.DrivingStyle
}

type RouteResult struct {
	Vehicle domain.VehicleSpec
	Style   domain.DrivingStyle
	Trip    Trip
	Selection
}

type EcoRouteService struct {
	catalog    ports.VehicleCatalog
	geocoder   ports.Geocoder
	fetcher    *FetchOrchestrator
	candidates CandidateOptions
	log        *zap.Logger
}

func NewEcoRouteService(
	catalog ports.VehicleCatalog,
	geocoder ports.Geocoder,
	fetcher *FetchOrchestrator,
	candidates CandidateOptions,
	log *zap.Logger,
) *EcoRouteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EcoRouteService{
		catalog:    catalog,
		geocoder:   geocoder,
		fetcher:    fetcher,
		candidates: candidates,
		log:        log,
	}
}

// FindRoutes resolves the query, fans out candidate requests, scores every
// unique route and returns the eco and fastest picks. Provider failures
// degrade the result; only input errors are returned.
func (s *EcoRouteService) FindRoutes(ctx context.Context, q RouteQuery) (_ *RouteResult, err error) {
	defer obs.Time(ctx, s.log, "routes.FindRoutes")(&err)

	startLabel := strings.TrimSpace(q.Start)
	endLabel := strings.TrimSpace(q.End)
	if (startLabel == "" && q.StartCoords == nil) || (endLabel == "" && q.EndCoords == nil) {
		return nil, ErrMissingLocation
	}

	spec, ok := s.catalog.Lookup(q.Make, q.Model)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownVehicle, q.Make, q.Model)
	}
	style := domain.ParseDrivingStyle(string(q.Style))

	start, end, err := s.resolveEndpoints(ctx, startLabel, endLabel, q.StartCoords, q.EndCoords)
	if err != nil {
		return nil, err
	}
	if startLabel == "" {
		startLabel = coordLabel(start)
	}
	if endLabel == "" {
		endLabel = coordLabel(end)
	}

	reqs := BuildCandidateRequests(start, end, s.candidates)
	fetched := s.fetcher.Fetch(ctx, reqs, domain.Midpoint(start, end))

	trip := Trip{
		StartLabel: startLabel,
		EndLabel:   endLabel,
		Start:      start,
		End:        end,
		Weather:    fetched.Weather,
	}
	result := &RouteResult{Vehicle: spec, Style: style, Trip: trip}

	sim := NewSimulator(spec, style)
	unique := Dedupe(fetched.Pool)

	scored := make([]domain.ScoredRoute, 0, len(unique))
	for i, r := range unique {
		scored = append(scored, sim.Score(r, fmt.Sprintf("Route %d", i+1), trip))
	}

	var pinned *domain.ScoredRoute
	if fetched.Pinned != nil {
		p := sim.Score(*fetched.Pinned, FastestRouteName, trip)
		pinned = &p
	}

	sel, ok := Select(scored, pinned)
	if !ok {
		s.log.Warn("no usable route candidates, using straight-line estimate",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Int("requests", len(reqs)),
			zap.Int("failed", len(fetched.Failed)),
			zap.Int("pool", len(fetched.Pool)),
		)
		sel = EstimateSelection(spec, trip)
	}
	result.Selection = sel

	s.log.Info("routes scored",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("vehicle", spec.Make+" "+spec.Model),
		zap.String("style", string(style)),
		zap.Int("pool", len(fetched.Pool)),
		zap.Int("unique", len(unique)),
		zap.Float64("eco_fuel", sel.Eco.Fuel.Total),
		zap.Float64("fastest_fuel", sel.Fastest.Fuel.Total),
		zap.Bool("estimated", sel.Estimated),
	)

	return result, nil
}

// resolveEndpoints geocodes whichever endpoints lack explicit coordinates, in
// parallel. The first failure cancels the other lookup.
func (s *EcoRouteService) resolveEndpoints(
	ctx context.Context,
	startLabel, endLabel string,
	startCoords, endCoords *domain.Coordinates,
) (domain.Coordinates, domain.Coordinates, error) {
	var start, end domain.Coordinates

	g, gctx := errgroup.WithContext(ctx)
	resolve := func(label string, explicit *domain.Coordinates, out *domain.Coordinates) {
		if explicit != nil {
			return
		}
		g.Go(func() error {
			c, err := s.geocoder.Geocode(gctx, label)
			if err != nil {
				return fmt.Errorf("%w: %q: %v", ErrGeocodeFailed, label, err)
			}
			*out = c
			return nil
		})
	}

	if startCoords != nil {
		if !startCoords.Valid() {
			return start, end, fmt.Errorf("%w: start %v,%v", ErrInvalidCoordinate, startCoords.Lat, startCoords.Lon)
		}
		start = *startCoords
	}
	if endCoords != nil {
		if !endCoords.Valid() {
			return start, end, fmt.Errorf("%w: end %v,%v", ErrInvalidCoordinate, endCoords.Lat, endCoords.Lon)
		}
		end = *endCoords
	}

	resolve(startLabel, startCoords, &start)
	resolve(endLabel, endCoords, &end)

	if err := g.Wait(); err != nil {
		return start, end, err
	}
	return start, end, nil
}

func coordLabel(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lon)
}
