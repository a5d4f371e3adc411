package vehicles

import (
	"fmt"
	"slices"

	"ecoroute-service/internal/domain"
)

// StaticCatalog implements VehicleCatalog over an in-memory table.
// It is built once and never mutated, so it is safe for concurrent use.
type StaticCatalog struct {
	byMake map[string]map[string]domain.VehicleSpec
	makes  []string
	all    []domain.VehicleSpec
}

// NewStaticCatalog validates every spec and indexes it by make and model.
func NewStaticCatalog(specs []domain.VehicleSpec) (*StaticCatalog, error) {
	c := &StaticCatalog{
		byMake: make(map[string]map[string]domain.VehicleSpec),
		all:    make([]domain.VehicleSpec, 0, len(specs)),
	}

	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("vehicle catalog: entry %d: %w", i+1, err)
		}

		models, ok := c.byMake[s.Make]
		if !ok {
			models = make(map[string]domain.VehicleSpec)
			c.byMake[s.Make] = models
			c.makes = append(c.makes, s.Make)
		}
		if _, dup := models[s.Model]; dup {
			return nil, fmt.Errorf("vehicle catalog: duplicate entry %s %s", s.Make, s.Model)
		}
		models[s.Model] = s
		c.all = append(c.all, s)
	}

	slices.Sort(c.makes)
	return c, nil
}

// Default returns the catalog built from the reference table.
func Default() (*StaticCatalog, error) {
	return NewStaticCatalog(builtinSpecs)
}

func (c *StaticCatalog) Lookup(vehicleMake, model string) (domain.VehicleSpec, bool) {
	s, ok := c.byMake[vehicleMake][model]
	return s, ok
}

func (c *StaticCatalog) Makes() []string {
	return slices.Clone(c.makes)
}

// Models lists the models of a make in sorted order; unknown makes yield an empty list.
func (c *StaticCatalog) Models(vehicleMake string) []string {
	models := c.byMake[vehicleMake]
	out := make([]string, 0, len(models))
	for m := range models {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

func (c *StaticCatalog) All() []domain.VehicleSpec {
	return slices.Clone(c.all)
}
