package services

import (
	"context"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFetchConcurrency = 25
	DefaultRequestTimeout   = 30 * time.Second
)

type fetchOutcome struct {
	routes []domain.RawRoute
	err    error
}

// FetchResult is the joined outcome of one batch. Failed requests contribute
// nothing to Pool and are listed in Failed.
type FetchResult struct {
	// Every route returned, grouped in request order.
	Pool []domain.RawRoute
	// First route of the fastest-preference request when it succeeded.
	Pinned  *domain.RawRoute
	Failed  map[string]error
	Weather *domain.WeatherSample
}

// FetchOrchestrator issues a batch of directions requests plus one weather
// request with bounded parallelism and waits for all of them. A failing request
// never aborts its siblings.
type FetchOrchestrator struct {
	directions  ports.DirectionsProvider
	weather     ports.WeatherProvider
	log         *zap.Logger
	concurrency int
	timeout     time.Duration
}

// NewFetchOrchestrator wires the providers. weather may be nil; concurrency
// and timeout fall back to defaults when not positive.
func NewFetchOrchestrator(
	directions ports.DirectionsProvider,
	weather ports.WeatherProvider,
	log *zap.Logger,
	concurrency int,
	timeout time.Duration,
) *FetchOrchestrator {
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchOrchestrator{
		directions:  directions,
		weather:     weather,
		log:         log,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// Fetch runs every request to completion or timeout. Each route is stamped
// with the key of the request that produced it.
func (f *FetchOrchestrator) Fetch(ctx context.Context, reqs []ports.DirectionsRequest, weatherAt domain.Coordinates) FetchResult {
	outcomes := make([]fetchOutcome, len(reqs))
	var weather *domain.WeatherSample

	var g errgroup.Group
	g.SetLimit(f.concurrency)

	if f.weather != nil {
		g.Go(func() error {
			w, err := f.currentWeather(ctx, weatherAt)
			if err == nil {
				weather = &w
			}
			return nil
		})
	}

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			routes, err := f.directionsFor(ctx, req)
			outcomes[i] = fetchOutcome{routes: routes, err: err}
			return nil
		})
	}

	// Workers only report through outcomes; Wait never returns an error.
	_ = g.Wait()

	res := FetchResult{Failed: make(map[string]error), Weather: weather}
	for i, out := range outcomes {
		key := reqs[i].Key
		if out.err != nil {
			res.Failed[key] = out.err
			continue
		}
		res.Pool = append(res.Pool, out.routes...)
		if key == PinnedFastestKey && len(out.routes) > 0 {
			pinned := out.routes[0]
			res.Pinned = &pinned
		}
	}

	f.log.Info("fetch batch complete",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.Int("requests", len(reqs)),
		zap.Int("failed", len(res.Failed)),
		zap.Int("pool", len(res.Pool)),
		zap.Bool("weather", weather != nil),
	)

	return res
}

func (f *FetchOrchestrator) directionsFor(ctx context.Context, req ports.DirectionsRequest) (routes []domain.RawRoute, err error) {
	defer obs.Time(ctx, f.log, "directions."+req.Key)(&err)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	routes, err = f.directions.Directions(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range routes {
		routes[i].SourceKey = req.Key
	}
	return routes, nil
}

func (f *FetchOrchestrator) currentWeather(ctx context.Context, at domain.Coordinates) (w domain.WeatherSample, err error) {
	defer obs.Time(ctx, f.log, "weather.current")(&err)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return f.weather.Current(ctx, at)
}
