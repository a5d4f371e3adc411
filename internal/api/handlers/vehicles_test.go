package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"ecoroute-service/internal/adapters/vehicles"
	"ecoroute-service/internal/api/dto"
	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogEngine(t *testing.T) *gin.Engine {
	t.Helper()
	catalog, err := vehicles.Default()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewVehicleHandler(catalog)
	r.GET("/api/vehicles", h.List)
	r.GET("/api/vehicles/makes", h.Makes)
	r.GET("/api/vehicles/models", h.Models)
	return r
}

func TestVehicleEndpoints(t *testing.T) {
	r := catalogEngine(t)

	w := get(r, "/api/vehicles/makes")
	require.Equal(t, http.StatusOK, w.Code)
	var makes dto.MakesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &makes))
	assert.Contains(t, makes.Makes, "Honda")

	w = get(r, "/api/vehicles/models?make=Tesla")
	require.Equal(t, http.StatusOK, w.Code)
	var models dto.ModelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	assert.Contains(t, models.Models, "Model 3")

	w = get(r, "/api/vehicles")
	require.Equal(t, http.StatusOK, w.Code)
	var all dto.ListVehiclesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.NotEmpty(t, all.Vehicles)
	for _, v := range all.Vehicles {
		if v.Make == "Tesla" && v.Model == "Model 3" {
			require.NotNil(t, v.KWhPer100KM)
		}
	}
}

func TestVehicleModelsUnknownOrMissingMake(t *testing.T) {
	r := catalogEngine(t)

	w := get(r, "/api/vehicles/models")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"make":"","models":[]}`, w.Body.String())

	w = get(r, "/api/vehicles/models?make=%20%20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"make":"","models":[]}`, w.Body.String())

	w = get(r, "/api/vehicles/models?make=Zeppelin")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"make":"Zeppelin","models":[]}`, w.Body.String())
}

type fakeSuggester struct{ got string }

func (f *fakeSuggester) Autocomplete(ctx context.Context, q string) []ports.Place {
	f.got = q
	if q == "none" {
		return []ports.Place{}
	}
	return []ports.Place{{Short: "Phoenix, AZ", Display: "Phoenix, Arizona, USA", Coords: domain.Coordinates{Lat: 33.45, Lon: -112.07}}}
}

func TestAutocomplete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &fakeSuggester{}
	r := gin.New()
	r.GET("/api/autocomplete", NewPlaceHandler(s).Autocomplete)

	w := get(r, "/api/autocomplete?q=Phoe")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Phoe", s.got)
	assert.JSONEq(t, `{"places":[{"short":"Phoenix, AZ","display":"Phoenix, Arizona, USA","lat":33.45,"lon":-112.07}]}`, w.Body.String())

	w = get(r, "/api/autocomplete?q=none")
	assert.JSONEq(t, `{"places":[]}`, w.Body.String())
}
