package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		input    string
		expected recipe.Source
	}{
		{"assembler", recipe.SourceAssembler},
		{"Furnace", recipe.SourceFurnace},
		{" mine ", recipe.SourceMine},
		{"rocket silo", recipe.SourceRocketSilo},
		{"rocket-silo", recipe.SourceRocketSilo},
		{"none", recipe.SourceNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			source, err := recipe.ParseSource(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, source)
		})
	}
}

func TestParseSource_Unknown(t *testing.T) {
	_, err := recipe.ParseSource("refinery")

	assert.Error(t, err)
}

func TestSourceSet_SortedFollowsDisplayOrder(t *testing.T) {
	// Arrange
	set := recipe.NewSourceSet(recipe.SourceNone, recipe.SourceAssembler, recipe.SourceLab)

	// Act
	sorted := set.Sorted()

	// Assert
	assert.Equal(t, []recipe.Source{recipe.SourceLab, recipe.SourceAssembler, recipe.SourceNone}, sorted)
	assert.True(t, set.Contains(recipe.SourceLab))
	assert.False(t, set.Contains(recipe.SourceFurnace))
}

func TestSource_Label(t *testing.T) {
	assert.Equal(t, "Chemical Plant", recipe.SourceChem.Label())
	assert.Equal(t, "Rocket Silo", recipe.SourceRocketSilo.Label())
	assert.Equal(t, "Raw", recipe.SourceNone.Label())
}
