package weather

import (
	"context"
	"sync/atomic"

	"ecoroute-service/internal/domain"
)

// StaticProvider returns a fixed sample, or Err when set. It counts calls.
type StaticProvider struct {
	Sample domain.WeatherSample
	Err    error

	calls atomic.Int64
}

func (p *StaticProvider) Current(ctx context.Context, at domain.Coordinates) (domain.WeatherSample, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return domain.WeatherSample{}, p.Err
	}
	return p.Sample, nil
}

func (p *StaticProvider) Calls() int { return int(p.calls.Load()) }
