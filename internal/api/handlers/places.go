package handlers

import (
	"context"
	"net/http"

	"ecoroute-service/internal/api/dto"
	"ecoroute-service/internal/ports"

	"github.com/gin-gonic/gin"
)

type PlaceSuggester interface {
	Autocomplete(ctx context.Context, query string) []ports.Place
}

type PlaceHandler struct {
	places PlaceSuggester
}

func NewPlaceHandler(places PlaceSuggester) *PlaceHandler {
	return &PlaceHandler{places: places}
}

// Autocomplete never fails; short queries and provider errors give an empty list.
func (h *PlaceHandler) Autocomplete(c *gin.Context) {
	found := h.places.Autocomplete(c.Request.Context(), c.Query("q"))

	res := dto.AutocompleteResponse{Places: make([]dto.PlaceResponse, 0, len(found))}
	for _, p := range found {
		res.Places = append(res.Places, dto.PlaceResponse{
			Short:   p.Short,
			Display: p.Display,
			Lat:     p.Coords.Lat,
			Lon:     p.Coords.Lon,
		})
	}
	writeJSON(c, http.StatusOK, res)
}
