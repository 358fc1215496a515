package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

func TestGeneratePlanID(t *testing.T) {
	id := utils.GeneratePlanID("Low Density Structure")

	assert.Regexp(t, `^plan-low-density-structure-[0-9a-f]{8}$`, id)
	assert.NotEqual(t, id, utils.GeneratePlanID("Low Density Structure"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "green-circuit", utils.Slugify("Green  Circuit"))
	assert.Equal(t, "unnamed", utils.Slugify("   "))
}

func TestFormatPossibleFraction(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{0.26, "0.3"},
		{12.8, "12.8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, utils.FormatPossibleFraction(tt.value))
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab  ", utils.PadRight("ab", 4))
	assert.Equal(t, "  ab", utils.PadLeft("ab", 4))
	assert.Equal(t, "abcdef", utils.PadRight("abcdef", 4))
	assert.Equal(t, 3, utils.MaxWidth([]string{"a", "⚡bc", "de"}))
	assert.Equal(t, 2, utils.CeilInt(1.01))
}
