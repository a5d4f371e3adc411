package ports

import "ecoroute-service/internal/domain"

// Read-only lookup of vehicle specifications, loaded once at startup.
type VehicleCatalog interface {
	Lookup(vehicleMake, model string) (domain.VehicleSpec, bool)
	Makes() []string
	Models(vehicleMake string) []string
	All() []domain.VehicleSpec
}
