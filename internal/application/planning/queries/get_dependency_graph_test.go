package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

func TestGetDependencyGraph_Diamond(t *testing.T) {
	// Arrange
	handler := queries.NewGetDependencyGraphHandler(helpers.DiamondCatalog(t))

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetDependencyGraphQuery{Recipe: "A"})

	// Assert
	require.NoError(t, err)
	graph := response.(*queries.GetDependencyGraphResponse)

	assert.Equal(t, "A", graph.Recipe.Name)
	assert.Equal(t, []string{"B", "C", "D"}, graph.Tree.Names())
	assert.Equal(t, []string{"B", "C"}, graph.Independent)
	assert.Equal(t, []string{"D"}, graph.Shared)
	require.Len(t, graph.Levels, 3)
	assert.True(t, graph.Displayed.Contains(recipe.SourceAssembler))
}

func TestGetDependencyGraph_DisplayedSources(t *testing.T) {
	// Arrange
	handler := queries.NewGetDependencyGraphHandler(helpers.DiamondCatalog(t))

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetDependencyGraphQuery{
		Recipe:           "A",
		DisplayedSources: []recipe.Source{recipe.SourceAssembler, recipe.SourceNone},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, response.(*queries.GetDependencyGraphResponse).Independent)
}

func TestGetDependencyGraph_UnknownRecipe(t *testing.T) {
	// Arrange
	handler := queries.NewGetDependencyGraphHandler(helpers.DiamondCatalog(t))

	// Act
	_, err := handler.Handle(context.Background(), &queries.GetDependencyGraphQuery{Recipe: "Z"})

	// Assert
	var notFound *recipe.RecipeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
