package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/cli"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

func diamondGraph(t *testing.T) (*cli.TreeFormatter, *queries.GetDependencyGraphResponse) {
	catalog := helpers.DiamondCatalog(t)
	response, err := queries.NewGetDependencyGraphHandler(catalog).
		Handle(context.Background(), &queries.GetDependencyGraphQuery{Recipe: "A"})
	require.NoError(t, err)
	return cli.NewTreeFormatter(catalog, false), response.(*queries.GetDependencyGraphResponse)
}

func TestFormatTree_MarksIndependentItems(t *testing.T) {
	// Arrange
	formatter, graph := diamondGraph(t)

	// Act
	output := formatter.FormatTree(graph)

	// Assert
	assert.Equal(t, "A [Assembler]\n"+
		"├── B [Assembler] [independent]\n"+
		"│   └── D [Raw]\n"+
		"└── C [Assembler] [independent]\n"+
		"    └── D [Raw]\n", output)
}

func TestFormatTree_RepeatedSubtreeIsNotExpandedTwice(t *testing.T) {
	// Arrange
	catalog := helpers.NewTestCatalog(t,
		helpers.Assembled("A", 1, 1, helpers.Needs("B", 1), helpers.Needs("C", 1)),
		helpers.Assembled("B", 1, 1, helpers.Needs("D", 1)),
		helpers.Assembled("C", 1, 1, helpers.Needs("D", 1)),
		helpers.Assembled("D", 1, 1, helpers.Needs("E", 1)),
		helpers.Raw("E", recipe.SourceMine),
	)
	response, err := queries.NewGetDependencyGraphHandler(catalog).
		Handle(context.Background(), &queries.GetDependencyGraphQuery{Recipe: "A"})
	require.NoError(t, err)

	// Act
	output := cli.NewTreeFormatter(catalog, false).FormatTree(response.(*queries.GetDependencyGraphResponse))

	// Assert
	assert.Contains(t, output, "    └── D [Assembler] [independent] (see above)\n")
	assert.Equal(t, 1, strings.Count(output, "E [Mine]"))
}

func TestFormatLevelsAndSummary(t *testing.T) {
	// Arrange
	formatter, graph := diamondGraph(t)

	// Act
	levels := formatter.FormatLevels(graph.Levels)
	summary := formatter.FormatTreeSummary(graph)

	// Assert
	assert.Equal(t, "Level 0: A\nLevel 1: B, C\nLevel 2 (1 shared): D", levels)
	assert.Equal(t, "Tree: 3 items, 3 levels, 1 shared, 2 independent", summary)
}

func TestFormatLevels_Empty(t *testing.T) {
	formatter := cli.NewTreeFormatter(helpers.DiamondCatalog(t), false)

	assert.Empty(t, formatter.FormatLevels([]services.ProductionLevel{}))
	assert.Equal(t, "(empty tree)", formatter.FormatTree(nil))
}
