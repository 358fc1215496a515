package services

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// RawMaterial is the aggregate inflow of one item that crosses from hidden
// producer kinds into the displayed part of a production line
type RawMaterial struct {
	Name      string
	PerSecond float64
}

// RawMaterialCalculator sums what the displayed producers draw from hidden ones
type RawMaterialCalculator struct {
	catalog production.RecipeCatalog
}

// NewRawMaterialCalculator creates a calculator reading from the given catalog
func NewRawMaterialCalculator(catalog production.RecipeCatalog) *RawMaterialCalculator {
	return &RawMaterialCalculator{catalog: catalog}
}

// Calculate walks the setups of displayed kinds in solve order and aggregates every
// requirement whose own producer kind is not displayed. Results keep the order in
// which each material is first met.
func (c *RawMaterialCalculator) Calculate(
	line *production.ProductionLineSetup,
	displayed recipe.SourceSet,
	speeds production.SpeedConfig,
) ([]RawMaterial, error) {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, setup := range line.Setups() {
		if !displayed.Contains(setup.Recipe.Source) {
			continue
		}

		counted := make(map[string]bool, len(setup.Recipe.Requirements))
		for _, requirement := range setup.Recipe.Requirements {
			// SetupConsumption already sums repeated rows of the same item
			if counted[requirement.Name] {
				continue
			}
			counted[requirement.Name] = true

			input, err := c.catalog.FindRecipe(requirement.Name)
			if err != nil {
				return nil, err
			}
			if displayed.Contains(input.Source) {
				continue
			}

			if _, seen := totals[requirement.Name]; !seen {
				order = append(order, requirement.Name)
			}
			totals[requirement.Name] += production.SetupConsumption(setup, requirement.Name, speeds)
		}
	}

	materials := make([]RawMaterial, 0, len(order))
	for _, name := range order {
		materials = append(materials, RawMaterial{Name: name, PerSecond: totals[name]})
	}
	return materials, nil
}
