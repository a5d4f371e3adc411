package handlers

import (
	"net/http"
	"strings"

	"ecoroute-service/internal/api/dto"
	"ecoroute-service/internal/ports"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes the read-only vehicle catalog.
type VehicleHandler struct {
	catalog ports.VehicleCatalog
}

func NewVehicleHandler(catalog ports.VehicleCatalog) *VehicleHandler {
	return &VehicleHandler{catalog: catalog}
}

func (h *VehicleHandler) List(c *gin.Context) {
	all := h.catalog.All()
	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleResponse, 0, len(all))}
	for _, v := range all {
		res.Vehicles = append(res.Vehicles, vehicleResponse(v))
	}
	writeJSON(c, http.StatusOK, res)
}

func (h *VehicleHandler) Makes(c *gin.Context) {
	writeJSON(c, http.StatusOK, dto.MakesResponse{Makes: h.catalog.Makes()})
}

// Models lists the models of one make. A missing or unknown make yields an
// empty list.
func (h *VehicleHandler) Models(c *gin.Context) {
	vehicleMake := strings.TrimSpace(c.Query("make"))

	var models []string
	if vehicleMake != "" {
		models = h.catalog.Models(vehicleMake)
	}
	if models == nil {
		models = []string{}
	}
	writeJSON(c, http.StatusOK, dto.ModelsResponse{Make: vehicleMake, Models: models})
}
