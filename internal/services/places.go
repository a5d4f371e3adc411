package services

import (
	"context"
	"strings"

	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"go.uber.org/zap"
)

const (
	minAutocompleteLen = 2
	autocompleteLimit  = 6
)

// PlaceService backs the location autocomplete box. Lookups never fail from
// the caller's point of view: short queries and provider errors yield no
// suggestions.
type PlaceService struct {
	searcher ports.PlaceSearcher
	log      *zap.Logger
}

func NewPlaceService(searcher ports.PlaceSearcher, log *zap.Logger) *PlaceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlaceService{searcher: searcher, log: log}
}

func (s *PlaceService) Autocomplete(ctx context.Context, query string) []ports.Place {
	query = strings.TrimSpace(query)
	if s.searcher == nil || len([]rune(query)) < minAutocompleteLen {
		return []ports.Place{}
	}

	places, err := s.searcher.Search(ctx, query, autocompleteLimit)
	if err != nil {
		s.log.Warn("autocomplete failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		return []ports.Place{}
	}
	if places == nil {
		places = []ports.Place{}
	}
	return places
}
