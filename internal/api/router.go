package api

import (
	"ecoroute-service/internal/api/handlers"
	"ecoroute-service/internal/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog ports.VehicleCatalog
	Routes  handlers.RouteFinder
	Places  handlers.PlaceSuggester
	Log     *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestID(), accessLog(log), recovery(log))

	vehicles := handlers.NewVehicleHandler(d.Catalog)
	places := handlers.NewPlaceHandler(d.Places)
	routes := handlers.NewRouteHandler(d.Routes, log)

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.GET("/vehicles", vehicles.List)
	api.GET("/vehicles/makes", vehicles.Makes)
	api.GET("/vehicles/models", vehicles.Models)
	api.GET("/autocomplete", places.Autocomplete)
	api.GET("/routes", routes.Find)

	return r
}
