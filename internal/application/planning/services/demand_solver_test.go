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

func solveRate(t *testing.T, catalog *recipe.Catalog, name string, rate float64) *production.ProductionLineSetup {
	t.Helper()

	root, err := catalog.FindRecipe(name)
	require.NoError(t, err)
	tree, err := services.NewDependencyTreeBuilder(catalog).BuildDependencyTree(root)
	require.NoError(t, err)

	line, err := services.NewDemandSolver(catalog).SolveSetup(root, rate, tree, production.DefaultSpeedConfig())
	require.NoError(t, err)
	return line
}

func TestSolveSetup_SeedsRootFromRate(t *testing.T) {
	// Arrange
	catalog := helpers.NewTestCatalog(t, helpers.Assembled("Slow", 5, 1))

	// Act
	line := solveRate(t, catalog, "Slow", 2)

	// Assert
	root, ok := line.Get("Slow")
	require.True(t, ok)
	assert.Equal(t, 10, root.Count)
	assert.InDelta(t, 2.0, root.Produced, 1e-9)
	assert.InDelta(t, 2.0, root.Consumed, 1e-9)
	assert.InDelta(t, 1.0, root.Efficiency, 1e-9)
}

func TestSolveSetup_PartialRootEfficiency(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)

	// Act
	line := solveRate(t, catalog, "Gear", 1.5)

	// Assert
	root, _ := line.Get("Gear")
	assert.Equal(t, 1, root.Count)
	assert.InDelta(t, 0.75, root.Efficiency, 1e-9)
	assert.InDelta(t, 2.0, root.Produced, 1e-9)
}

func TestSolveSetup_SmeltingChain(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)

	// Act
	line := solveRate(t, catalog, "Gear", 2)

	// Assert
	assert.Equal(t, []string{"Gear", "Iron Plate", "Iron Ore"}, line.Names())

	plate, _ := line.Get("Iron Plate")
	assert.InDelta(t, 4.0, plate.Consumed, 1e-9)
	assert.Equal(t, 13, plate.Count)
	assert.InDelta(t, 12.8/13, plate.Efficiency, 1e-9)

	ore, _ := line.Get("Iron Ore")
	assert.InDelta(t, 4.0, ore.Consumed, 1e-9)
	assert.Equal(t, 4, ore.Count)
}

func TestSolveSetup_AggregatesDemandFromAllConsumers(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)

	// Act
	line := solveRate(t, catalog, "A", 1)

	// Assert
	d, ok := line.Get("D")
	require.True(t, ok)
	assert.InDelta(t, 5.0, d.Consumed, 1e-9)
	assert.Equal(t, 5, d.Count)
	assert.Equal(t, []string{"A", "B", "C", "D"}, line.Names())
}

func TestSolveSetup_SumsRepeatedRequirementRows(t *testing.T) {
	// Arrange
	catalog := helpers.NewTestCatalog(t,
		helpers.Assembled("Mixer", 1, 1, helpers.Needs("Paste", 2), helpers.Needs("Paste", 5)),
		helpers.Raw("Paste", recipe.SourceNone),
	)

	// Act
	line := solveRate(t, catalog, "Mixer", 1)

	// Assert
	paste, _ := line.Get("Paste")
	assert.InDelta(t, 7.0, paste.Consumed, 1e-9)
	assert.Equal(t, 7, paste.Count)
}

func TestSolveSetup_ProducedCoversConsumed(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	rates := []float64{0.1, 0.7, 1, 2.3, 15, 100}

	for _, rate := range rates {
		// Act
		line := solveRate(t, catalog, "Gear", rate)

		// Assert
		for _, setup := range line.Setups() {
			assert.GreaterOrEqual(t, setup.Produced, setup.Consumed-1e-9, "%s at %v/s", setup.Name(), rate)
			assert.Greater(t, setup.Efficiency, 0.0)
			assert.LessOrEqual(t, setup.Efficiency, 1.0)
		}
	}
}

func TestSolveSetup_TinyRateStillProvisionsProducers(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)

	// Act
	line := solveRate(t, catalog, "Gear", 0.000001/3600)

	// Assert
	for _, setup := range line.Setups() {
		assert.GreaterOrEqual(t, setup.Count, 1, setup.Name())
		assert.GreaterOrEqual(t, setup.Produced, setup.Consumed, setup.Name())
		assert.Greater(t, setup.Efficiency, 0.0, setup.Name())
		assert.LessOrEqual(t, setup.Efficiency, 1.0, setup.Name())
	}
}

func TestSolveSetup_RoundsUpJustAboveWholeCount(t *testing.T) {
	// Arrange
	catalog := helpers.NewTestCatalog(t, helpers.Assembled("Slow", 1, 1))

	// Act
	line := solveRate(t, catalog, "Slow", 3.0000000005)

	// Assert
	slow, ok := line.Get("Slow")
	require.True(t, ok)
	assert.Equal(t, 4, slow.Count)
	assert.GreaterOrEqual(t, slow.Produced, slow.Consumed)
}

func TestSolveSetup_IsDeterministic(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)

	// Act
	first := solveRate(t, catalog, "A", 3)
	second := solveRate(t, catalog, "A", 3)

	// Assert
	require.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		a, _ := first.Get(name)
		b, _ := second.Get(name)
		assert.Equal(t, a.Count, b.Count)
		assert.Equal(t, a.Consumed, b.Consumed)
	}
}

func TestSolveSetup_RejectsNonPositiveRate(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	root, _ := catalog.FindRecipe("Gear")
	solver := services.NewDemandSolver(catalog)

	// Act
	_, err := solver.SolveSetup(root, 0, production.NewDependencyTree(), production.DefaultSpeedConfig())

	// Assert
	var invalid *production.InvalidQuantityError
	assert.ErrorAs(t, err, &invalid)
}

func TestSolveSetup_UnsatisfiableOnCycle(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)
	root, _ := catalog.FindRecipe("A")
	tree := production.NewDependencyTree()
	tree.AddDependent("B", "A")
	tree.AddDependent("C", "B")
	tree.AddDependent("B", "C")

	// Act
	_, err := services.NewDemandSolver(catalog).SolveSetup(root, 1, tree, production.DefaultSpeedConfig())

	// Assert
	var unsatisfiable *production.UnsatisfiableDependencyError
	require.ErrorAs(t, err, &unsatisfiable)
	assert.ElementsMatch(t, []string{"B", "C"}, unsatisfiable.Remaining)
}

func TestSolveSetup_UnsatisfiableWhenRootIsADependency(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)
	root, _ := catalog.FindRecipe("A")
	tree := production.NewDependencyTree()
	tree.AddDependent("B", "A")
	tree.AddDependent("A", "B")

	// Act
	_, err := services.NewDemandSolver(catalog).SolveSetup(root, 1, tree, production.DefaultSpeedConfig())

	// Assert
	var unsatisfiable *production.UnsatisfiableDependencyError
	assert.ErrorAs(t, err, &unsatisfiable)
}

func TestSolveForProducers_SaturatesExactCount(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	root, _ := catalog.FindRecipe("Gear")
	tree, err := services.NewDependencyTreeBuilder(catalog).BuildDependencyTree(root)
	require.NoError(t, err)

	// Act
	line, err := services.NewDemandSolver(catalog).Solve(root, production.ProducerQuantity(3), tree, production.DefaultSpeedConfig())

	// Assert
	require.NoError(t, err)
	gear, _ := line.Get("Gear")
	assert.Equal(t, 3, gear.Count)
	assert.Equal(t, 1.0, gear.Efficiency)
	assert.InDelta(t, 6.0, gear.Consumed, 1e-9)

	plate, _ := line.Get("Iron Plate")
	assert.InDelta(t, 12.0, plate.Consumed, 1e-9)
	assert.Equal(t, 39, plate.Count)

	ore, _ := line.Get("Iron Ore")
	assert.InDelta(t, 12.0, ore.Consumed, 1e-9)
	assert.Equal(t, 12, ore.Count)
}

func TestSolve_SpeedsChangeCounts(t *testing.T) {
	// Arrange
	catalog := helpers.GearCatalog(t)
	root, _ := catalog.FindRecipe("Gear")
	tree, _ := services.NewDependencyTreeBuilder(catalog).BuildDependencyTree(root)
	speeds := production.DefaultSpeedConfig().With(recipe.SourceFurnace, production.SpeedMultiplier{Base: 2})

	// Act
	line, err := services.NewDemandSolver(catalog).Solve(root, production.RateQuantity(2), tree, speeds)

	// Assert
	require.NoError(t, err)
	plate, _ := line.Get("Iron Plate")
	assert.Equal(t, 7, plate.Count)
}
