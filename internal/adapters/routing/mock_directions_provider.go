package routing

import (
	"context"
	"sync"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/ports"
)

// MockDirectionsProvider serves canned routes by request key. Keys without an
// entry get Default. Errors take precedence over routes.
type MockDirectionsProvider struct {
	Routes  map[string][]domain.RawRoute
	Default []domain.RawRoute
	Errors  map[string]error
	// FailAll, when set, is returned for every request.
	FailAll error
	// Delay holds each call open, honouring context cancellation.
	Delay time.Duration

	mu          sync.Mutex
	calls       []ports.DirectionsRequest
	inFlight    int
	maxInFlight int
}

func (p *MockDirectionsProvider) Directions(ctx context.Context, req ports.DirectionsRequest) ([]domain.RawRoute, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.inFlight++
	p.maxInFlight = max(p.maxInFlight, p.inFlight)
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
	}()

	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if p.FailAll != nil {
		return nil, p.FailAll
	}
	if err, ok := p.Errors[req.Key]; ok {
		return nil, err
	}

	src, ok := p.Routes[req.Key]
	if !ok {
		src = p.Default
	}
	out := make([]domain.RawRoute, len(src))
	copy(out, src)
	return out, nil
}

// Calls returns the requests received so far.
func (p *MockDirectionsProvider) Calls() []ports.DirectionsRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.DirectionsRequest, len(p.calls))
	copy(out, p.calls)
	return out
}

// MaxInFlight is the highest number of concurrent calls observed.
func (p *MockDirectionsProvider) MaxInFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxInFlight
}
