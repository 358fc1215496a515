package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

func TestAnalyzeSetup_BeltAndInserters(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	gear, _ := catalog.FindRecipe("Gear")
	setup := &production.ProductionSetup{Recipe: gear, Count: 22, Efficiency: 1}

	// Act
	report := services.NewThroughputAnalyzer().AnalyzeSetup(setup, production.DefaultSpeedConfig())

	// Assert
	require.Len(t, report.Flows, 2)
	assert.Equal(t, services.ItemFlow{Name: services.ProductsFlow, PerProducer: 2, Inserter: services.InserterLong, InserterCount: 1}, report.Flows[0])
	assert.Equal(t, services.ItemFlow{Name: "Iron Plate", PerProducer: 4, Inserter: services.InserterFast, InserterCount: 1}, report.Flows[1])
	assert.Equal(t, "Iron Plate", report.ConstrainedBy)
	assert.Equal(t, 11, report.PerRow)
	assert.InDelta(t, 2.0, report.Rows, 1e-9)
}

func TestAnalyzeSetup_StackInsertersForFastFlows(t *testing.T) {
	// Arrange
	fast := &recipe.Recipe{Name: "Cable", Time: 0.1, Yield: 2, Source: recipe.SourceAssembler,
		Requirements: []recipe.Requirement{{Name: "Copper Plate", Amount: 1}}}
	setup := &production.ProductionSetup{Recipe: fast, Count: 1, Efficiency: 1}

	// Act
	report := services.NewThroughputAnalyzer().AnalyzeSetup(setup, production.DefaultSpeedConfig())

	// Assert
	assert.Equal(t, services.InserterStack, report.Flows[0].Inserter)
	assert.Equal(t, 2, report.Flows[0].InserterCount)
	assert.Equal(t, services.ProductsFlow, report.ConstrainedBy)
	assert.Equal(t, 2, report.PerRow)
}

func TestAnalyzeSetup_SkipsFluids(t *testing.T) {
	// Arrange
	plastic := &recipe.Recipe{Name: "Plastic Bar", Time: 1, Yield: 2, Source: recipe.SourceChem,
		Requirements: []recipe.Requirement{{Name: "Petroleum", Amount: 20}, {Name: "Coal", Amount: 1}}}
	setup := &production.ProductionSetup{Recipe: plastic, Count: 3, Efficiency: 1}

	// Act
	report := services.NewThroughputAnalyzer().AnalyzeSetup(setup, production.DefaultSpeedConfig())

	// Assert
	require.Len(t, report.Flows, 2)
	assert.Equal(t, "Coal", report.Flows[1].Name)
	assert.Equal(t, services.ProductsFlow, report.ConstrainedBy)
}

func TestAnalyzeLine_OnlyDisplayedNonRawSetups(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	line := solveRate(t, catalog, "Gear", 2)

	// Act
	reports := services.NewThroughputAnalyzer().AnalyzeLine(line,
		recipe.NewSourceSet(recipe.SourceAssembler, recipe.SourceMine), production.DefaultSpeedConfig())

	// Assert
	require.Len(t, reports, 1)
	assert.Equal(t, "Gear", reports[0].Name)
	assert.Equal(t, 1, reports[0].Count)
}
