package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ecoroute-service/internal/api/dto"
	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouteFinder interface {
	FindRoutes(ctx context.Context, q services.RouteQuery) (*services.RouteResult, error)
}

type RouteHandler struct {
	routes RouteFinder
	log    *zap.Logger
}

func NewRouteHandler(routes RouteFinder, log *zap.Logger) *RouteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RouteHandler{routes: routes, log: log}
}

// Find answers GET /api/routes. Input problems are 400; anything else is 500.
func (h *RouteHandler) Find(c *gin.Context) {
	startCoords, err := coordsParam(c, "start")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	endCoords, err := coordsParam(c, "end")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	q := services.RouteQuery{
		Start:       c.Query("start"),
		End:         c.Query("end"),
		StartCoords: startCoords,
		EndCoords:   endCoords,
		Make:        strings.TrimSpace(c.Query("make")),
		Model:       strings.TrimSpace(c.Query("model")),
		Style:       domain.ParseDrivingStyle(c.Query("style")),
	}

	res, err := h.routes.FindRoutes(c.Request.Context(), q)
	if err != nil {
		h.writeRouteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, routesResponse(res))
}

func (h *RouteHandler) writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingLocation),
		errors.Is(err, services.ErrUnknownVehicle),
		errors.Is(err, services.ErrGeocodeFailed),
		errors.Is(err, services.ErrInvalidCoordinate):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("find routes failed",
			zap.String("req_id", obs.RequestID(c.Request.Context())),
			zap.Error(err),
		)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

// coordsParam reads <prefix>_lat and <prefix>_lon. Both absent means no
// explicit coordinates; one without the other is rejected.
func coordsParam(c *gin.Context, prefix string) (*domain.Coordinates, error) {
	latRaw := strings.TrimSpace(c.Query(prefix + "_lat"))
	lonRaw := strings.TrimSpace(c.Query(prefix + "_lon"))
	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lonRaw == "" {
		return nil, fmt.Errorf("%s_lat and %s_lon must be given together", prefix, prefix)
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s_lat is not a number", prefix)
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s_lon is not a number", prefix)
	}
	return &domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func routesResponse(res *services.RouteResult) dto.RoutesResponse {
	electric := res.Vehicle.IsElectric()

	cmp := make([]dto.ComparisonRowResponse, 0, len(res.Comparison))
	for _, row := range res.Comparison {
		cmp = append(cmp, dto.ComparisonRowResponse{
			Name:        row.Name,
			Tag:         string(row.Tag),
			DistanceKM:  round(row.DistanceKM, 2),
			DurationMin: round(row.DurationMin, 1),
			TotalFuel:   round(row.TotalFuel, 3),
			CO2Kg:       round(row.CO2Kg, 2),
			Cost:        row.Cost,
		})
	}

	return dto.RoutesResponse{
		Eco:                 routeResponse(res.Eco, electric),
		Fastest:             routeResponse(res.Fastest, electric),
		Comparison:          cmp,
		CandidatesEvaluated: res.CandidatesEvaluated,
		Estimated:           res.Estimated,
		Style:               string(res.Style),
		Trip: dto.TripResponse{
			Start:       res.Trip.StartLabel,
			End:         res.Trip.EndLabel,
			StartCoords: coordPair(res.Trip.Start),
			EndCoords:   coordPair(res.Trip.End),
		},
		Weather: weatherResponse(res.Trip.Weather),
		Vehicle: vehicleResponse(res.Vehicle),
	}
}

func routeResponse(r domain.ScoredRoute, electric bool) dto.RouteResponse {
	coords := make([][2]float64, 0, len(r.Coordinates))
	for _, c := range r.Coordinates {
		coords = append(coords, coordPair(c))
	}

	steps := make([]dto.StepResponse, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, dto.StepResponse{
			Instruction: s.Instruction,
			DistanceKM:  round(s.DistanceKM, 2),
			DurationMin: round(s.DurationMin, 1),
		})
	}

	res := dto.RouteResponse{
		Name:        r.Name,
		Tag:         string(r.Tag),
		DistanceKM:  round(r.DistanceKM, 2),
		DurationMin: round(r.DurationMin, 1),
		AvgSpeedKMH: round(r.AvgSpeedKMH, 1),
		Fuel: dto.FuelResponse{
			Idle:         round(r.Fuel.Idle, 3),
			Acceleration: round(r.Fuel.Acceleration, 3),
			Cruise:       round(r.Fuel.Cruise, 3),
			ColdStart:    round(r.Fuel.ColdStart, 3),
			Climate:      round(r.Fuel.Climate, 3),
			Total:        round(r.Fuel.Total, 3),
		},
		CO2Kg:       round(r.CO2Kg, 2),
		Cost:        r.Cost,
		Start:       coordPair(r.Start),
		End:         coordPair(r.End),
		Coordinates: coords,
		Steps:       steps,
		Weather:     weatherResponse(r.Weather),
		Estimated:   r.Estimated,
	}
	if electric {
		kwh := round(r.EnergyKWh, 2)
		res.EnergyKWh = &kwh
	}
	return res
}

func weatherResponse(w *domain.WeatherSample) *dto.WeatherResponse {
	if w == nil {
		return nil
	}
	return &dto.WeatherResponse{
		TemperatureC:     round(w.TemperatureC, 1),
		WindSpeedKMH:     round(w.WindSpeedKMH, 1),
		WindDirectionDeg: round(w.WindDirectionDeg, 0),
		PrecipitationMM:  round(w.PrecipitationMM, 1),
	}
}
