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

func TestListRecipes_All(t *testing.T) {
	// Arrange
	handler := queries.NewListRecipesHandler(helpers.GearCatalog(t))

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListRecipesQuery{})

	// Assert
	require.NoError(t, err)
	recipes := response.(*queries.ListRecipesResponse).Recipes
	require.Len(t, recipes, 3)
	assert.Equal(t, "Gear", recipes[0].Name)
}

func TestListRecipes_BySource(t *testing.T) {
	// Arrange
	handler := queries.NewListRecipesHandler(helpers.GearCatalog(t))

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListRecipesQuery{Source: recipe.SourceFurnace})

	// Assert
	require.NoError(t, err)
	recipes := response.(*queries.ListRecipesResponse).Recipes
	require.Len(t, recipes, 1)
	assert.Equal(t, "Iron Plate", recipes[0].Name)
}

func TestListRecipes_UnknownSource(t *testing.T) {
	handler := queries.NewListRecipesHandler(helpers.GearCatalog(t))

	_, err := handler.Handle(context.Background(), &queries.ListRecipesQuery{Source: "teleporter"})

	assert.Error(t, err)
}
