package helpers

import (
	"testing"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// NewTestCatalog builds a catalog from recipes and fails the test on invalid input
func NewTestCatalog(t *testing.T, recipes ...recipe.Recipe) *recipe.Catalog {
	t.Helper()

	catalog, err := recipe.NewCatalog(recipes)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return catalog
}

// Raw returns a recipe with no inputs
func Raw(name string, source recipe.Source) recipe.Recipe {
	return recipe.Recipe{Name: name, Time: 1, Yield: 1, Source: source}
}

// Assembled returns an assembler recipe consuming the given requirements
func Assembled(name string, time, yield float64, requirements ...recipe.Requirement) recipe.Recipe {
	return recipe.Recipe{
		Name:         name,
		Time:         time,
		Yield:        yield,
		Source:       recipe.SourceAssembler,
		Requirements: requirements,
	}
}

// Needs is shorthand for a requirement
func Needs(name string, amount float64) recipe.Requirement {
	return recipe.Requirement{Name: name, Amount: amount}
}

// GearCatalog is a small smelting chain:
//
//	Gear (assembler, 0.5s) <- 2 Iron Plate
//	Iron Plate (furnace, 3.2s) <- 1 Iron Ore
//	Iron Ore (mine, 1s)
func GearCatalog(t *testing.T) *recipe.Catalog {
	return NewTestCatalog(t,
		Assembled("Gear", 0.5, 1, Needs("Iron Plate", 2)),
		recipe.Recipe{Name: "Iron Plate", Time: 3.2, Yield: 1, Source: recipe.SourceFurnace, Requirements: []recipe.Requirement{Needs("Iron Ore", 1)}},
		recipe.Recipe{Name: "Iron Ore", Time: 1, Yield: 1, Source: recipe.SourceMine},
	)
}

// DiamondCatalog has a shared input consumed on two paths:
//
//	A <- 1 B, 1 C
//	B <- 2 D
//	C <- 3 D
//	D raw
func DiamondCatalog(t *testing.T) *recipe.Catalog {
	return NewTestCatalog(t,
		Assembled("A", 1, 1, Needs("B", 1), Needs("C", 1)),
		Assembled("B", 1, 1, Needs("D", 2)),
		Assembled("C", 1, 1, Needs("D", 3)),
		Raw("D", recipe.SourceNone),
	)
}
