package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

func TestNewCatalog_IndexesRecipesByName(t *testing.T) {
	// Arrange
	recipes := []recipe.Recipe{
		{Name: "Iron Plate", Time: 3.2, Yield: 1, Source: recipe.SourceFurnace, Requirements: []recipe.Requirement{{Name: "Iron Ore", Amount: 1}}},
		{Name: "Iron Ore", Time: 1, Yield: 1, Source: recipe.SourceMine},
	}

	// Act
	catalog, err := recipe.NewCatalog(recipes)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"Iron Ore", "Iron Plate"}, catalog.Names())

	plate, err := catalog.FindRecipe("Iron Plate")
	require.NoError(t, err)
	assert.Equal(t, recipe.SourceFurnace, plate.Source)
	assert.False(t, plate.IsRaw())
	assert.True(t, catalog.Has("Iron Ore"))
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	// Arrange
	recipes := []recipe.Recipe{
		{Name: "Gear", Time: 0.5, Yield: 1, Source: recipe.SourceAssembler},
		{Name: "Gear", Time: 1, Yield: 1, Source: recipe.SourceAssembler},
	}

	// Act
	_, err := recipe.NewCatalog(recipes)

	// Assert
	var duplicate *recipe.DuplicateRecipeError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "Gear", duplicate.Name)
}

func TestNewCatalog_RejectsInvalidRecipes(t *testing.T) {
	tests := []struct {
		name   string
		recipe recipe.Recipe
	}{
		{"empty name", recipe.Recipe{Time: 1, Yield: 1, Source: recipe.SourceMine}},
		{"zero time", recipe.Recipe{Name: "X", Time: 0, Yield: 1, Source: recipe.SourceMine}},
		{"zero yield", recipe.Recipe{Name: "X", Time: 1, Yield: 0, Source: recipe.SourceMine}},
		{"unknown source", recipe.Recipe{Name: "X", Time: 1, Yield: 1, Source: "teleporter"}},
		{"negative amount", recipe.Recipe{Name: "X", Time: 1, Yield: 1, Source: recipe.SourceAssembler,
			Requirements: []recipe.Requirement{{Name: "Y", Amount: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recipe.NewCatalog([]recipe.Recipe{tt.recipe})

			var invalid *recipe.InvalidRecipeError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestCatalog_FindRecipeMissing(t *testing.T) {
	// Arrange
	catalog, err := recipe.NewCatalog(nil)
	require.NoError(t, err)

	// Act
	_, err = catalog.FindRecipe("Unobtainium")

	// Assert
	var notFound *recipe.RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Unobtainium")
}

func TestCatalog_IsolatedFromCallerSlices(t *testing.T) {
	// Arrange
	requirements := []recipe.Requirement{{Name: "Iron Plate", Amount: 2}}
	catalog, err := recipe.NewCatalog([]recipe.Recipe{
		{Name: "Gear", Time: 0.5, Yield: 1, Source: recipe.SourceAssembler, Requirements: requirements},
	})
	require.NoError(t, err)

	// Act
	requirements[0].Amount = 99

	// Assert
	gear, err := catalog.FindRecipe("Gear")
	require.NoError(t, err)
	assert.Equal(t, 2.0, gear.Requirements[0].Amount)
}

func TestCatalog_BySource(t *testing.T) {
	// Arrange
	catalog, err := recipe.NewCatalog([]recipe.Recipe{
		{Name: "Water", Time: 1, Yield: 1200, Source: recipe.SourcePump},
		{Name: "Gear", Time: 0.5, Yield: 1, Source: recipe.SourceAssembler},
		{Name: "Circuit", Time: 0.5, Yield: 1, Source: recipe.SourceAssembler},
	})
	require.NoError(t, err)

	// Act
	assembled := catalog.BySource(recipe.SourceAssembler)

	// Assert
	require.Len(t, assembled, 2)
	assert.Equal(t, "Circuit", assembled[0].Name)
	assert.Equal(t, "Gear", assembled[1].Name)
	assert.Empty(t, catalog.BySource(recipe.SourceLab))
}

func TestRecipe_AmountOfSumsRepeatedRows(t *testing.T) {
	// Arrange
	r := recipe.Recipe{
		Name: "Mixer", Time: 1, Yield: 1, Source: recipe.SourceAssembler,
		Requirements: []recipe.Requirement{
			{Name: "Gear", Amount: 2},
			{Name: "Plate", Amount: 1},
			{Name: "Gear", Amount: 3},
		},
	}

	// Act & Assert
	assert.Equal(t, 5.0, r.AmountOf("Gear"))
	assert.Equal(t, 0.0, r.AmountOf("Wire"))
	assert.True(t, r.Requires("Plate"))
	assert.False(t, r.Requires("Wire"))
}
