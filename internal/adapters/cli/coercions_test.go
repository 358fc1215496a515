package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/cli"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

func TestParseQuantity_ProducerCount(t *testing.T) {
	// Act
	quantity, err := cli.ParseQuantity("12")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, production.ProducerQuantity(12), quantity)
}

func TestParseQuantity_Rates(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2/s", 2},
		{"30/m", 0.5},
		{"5/2s", 2.5},
		{"1.5/", 1.5},
		{"3600/h", 1},
		{".5/s", 0.5},
		{"6/0.5m", 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			quantity, err := cli.ParseQuantity(tt.input)

			require.NoError(t, err)
			assert.Equal(t, production.QuantityRate, quantity.Kind)
			assert.InDelta(t, tt.expected, quantity.PerSecond, 1e-9)
		})
	}
}

func TestParseQuantity_Errors(t *testing.T) {
	inputs := []string{"1.5", "0", "-3", "two", "2/0s", "0/s", "2/d", "/s"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := cli.ParseQuantity(input)

			var invalid *production.InvalidQuantityError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParseQuantity_RejectsOverflowingProducerCount(t *testing.T) {
	for _, input := range []string{"1e19", "4294967296"} {
		t.Run(input, func(t *testing.T) {
			// Act
			_, err := cli.ParseQuantity(input)

			// Assert
			var invalid *production.InvalidQuantityError
			require.ErrorAs(t, err, &invalid)
			assert.ErrorContains(t, err, "too large")
		})
	}
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		source   recipe.Source
		input    string
		expected production.SpeedMultiplier
	}{
		{recipe.SourceAssembler, "max", production.SpeedMultiplier{Base: 1.25}},
		{recipe.SourceAssembler, "blue", production.SpeedMultiplier{Base: 0.75}},
		{recipe.SourceAssembler, "1.25+40%", production.SpeedMultiplier{Base: 1.25, ProductionBonus: 0.5}},
		{recipe.SourceFurnace, "stone", production.SpeedMultiplier{Base: 1}},
		{recipe.SourceFurnace, "max", production.SpeedMultiplier{Base: 2}},
		{recipe.SourceMine, "max", production.SpeedMultiplier{Base: 0.5, ProductionBonus: 0.15}},
		{recipe.SourceMine, "burner", production.SpeedMultiplier{Base: 0.25}},
		{recipe.SourceMine, "30%", production.SpeedMultiplier{Base: 0.5, ProductionBonus: 0.15}},
		{recipe.SourceMine, "2", production.SpeedMultiplier{Base: 1}},
		{recipe.SourceLab, "max", production.SpeedMultiplier{Base: 3.5}},
		{recipe.SourceLab, "50%", production.SpeedMultiplier{Base: 1.5}},
		{recipe.SourceChem, "base", production.SpeedMultiplier{Base: 1}},
		{recipe.SourceRocketSilo, "1", production.SpeedMultiplier{Base: 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.source)+"/"+tt.input, func(t *testing.T) {
			multiplier, err := cli.ParseSpeed(tt.source, tt.input)

			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Base, multiplier.Base, 1e-9)
			assert.InDelta(t, tt.expected.ProductionBonus, multiplier.ProductionBonus, 1e-9)
		})
	}
}

func TestParseSpeed_Errors(t *testing.T) {
	tests := []struct {
		source recipe.Source
		input  string
	}{
		{recipe.SourceAssembler, "stone"},
		{recipe.SourceFurnace, "blue"},
		{recipe.SourceAssembler, "0"},
		{recipe.SourceAssembler, "-1"},
		{recipe.SourceAssembler, "1+x%"},
		{recipe.SourceLab, "fast"},
		{recipe.SourceNone, "1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.source)+"/"+tt.input, func(t *testing.T) {
			_, err := cli.ParseSpeed(tt.source, tt.input)

			var invalid *production.InvalidSpeedInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParseSpeedConfig_KeepsBaseForMissingKinds(t *testing.T) {
	// Act
	speeds, err := cli.ParseSpeedConfig(map[recipe.Source]string{
		recipe.SourceAssembler: "yellow",
		recipe.SourceFurnace:   "",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1.25, speeds.Assembler.Base)
	assert.Equal(t, production.BaseSpeedMultiplier, speeds.Furnace)
	assert.Equal(t, production.BaseSpeedMultiplier, speeds.Pump)
}
