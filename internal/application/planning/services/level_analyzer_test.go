package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

func TestIdentifyLevels_Diamond(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)
	root, _ := catalog.FindRecipe("A")
	tree, err := services.NewDependencyTreeBuilder(catalog).BuildDependencyTree(root)
	require.NoError(t, err)

	// Act
	levels, err := services.NewLevelAnalyzer().IdentifyLevels("A", tree)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []services.ProductionLevel{
		{Depth: 0, Items: []string{"A"}},
		{Depth: 1, Items: []string{"B", "C"}, Shared: 0},
		{Depth: 2, Items: []string{"D"}, Shared: 1},
	}, levels)
}

func TestIdentifyLevels_StuckTree(t *testing.T) {
	// Arrange
	tree := production.NewDependencyTree()
	tree.AddDependent("B", "A")
	tree.AddDependent("C", "B")
	tree.AddDependent("B", "C")

	// Act
	_, err := services.NewLevelAnalyzer().IdentifyLevels("A", tree)

	// Assert
	var unsatisfiable *production.UnsatisfiableDependencyError
	assert.ErrorAs(t, err, &unsatisfiable)
}

func TestSharedItems(t *testing.T) {
	// Arrange
	catalog := helpers.DiamondCatalog(t)
	root, _ := catalog.FindRecipe("A")
	tree, _ := services.NewDependencyTreeBuilder(catalog).BuildDependencyTree(root)

	// Act
	shared := services.NewLevelAnalyzer().SharedItems(tree)

	// Assert
	assert.Equal(t, []string{"D"}, shared)
}
