package production

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// SpeedMultiplier configures one producer kind.
// Base scales the crafting rate (and so input consumption); ProductionBonus
// adds output per cycle without consuming more inputs.
type SpeedMultiplier struct {
	Base            float64
	ProductionBonus float64
}

// BaseSpeedMultiplier is the unmodified producer speed
var BaseSpeedMultiplier = SpeedMultiplier{Base: 1, ProductionBonus: 0}

// Production returns the total output multiplier (base + bonus)
func (m SpeedMultiplier) Production() float64 {
	return m.Base + m.ProductionBonus
}

// Validate checks the multiplier is usable for rate calculations
func (m SpeedMultiplier) Validate() error {
	if m.Base <= 0 {
		return fmt.Errorf("base speed must be positive, got %v", m.Base)
	}
	if m.ProductionBonus < 0 {
		return fmt.Errorf("production bonus must not be negative, got %v", m.ProductionBonus)
	}
	return nil
}

// SpeedConfig holds one multiplier per producer kind. Raw inputs (SourceNone)
// always run at base speed.
type SpeedConfig struct {
	Assembler  SpeedMultiplier
	Mine       SpeedMultiplier
	Chem       SpeedMultiplier
	Furnace    SpeedMultiplier
	Lab        SpeedMultiplier
	Pump       SpeedMultiplier
	RocketSilo SpeedMultiplier
}

// DefaultSpeedConfig returns a configuration where every kind runs at base speed
func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{
		Assembler:  BaseSpeedMultiplier,
		Mine:       BaseSpeedMultiplier,
		Chem:       BaseSpeedMultiplier,
		Furnace:    BaseSpeedMultiplier,
		Lab:        BaseSpeedMultiplier,
		Pump:       BaseSpeedMultiplier,
		RocketSilo: BaseSpeedMultiplier,
	}
}

// For returns the multiplier of a producer kind
func (c SpeedConfig) For(source recipe.Source) SpeedMultiplier {
	switch source {
	case recipe.SourceAssembler:
		return c.Assembler
	case recipe.SourceMine:
		return c.Mine
	case recipe.SourceChem:
		return c.Chem
	case recipe.SourceFurnace:
		return c.Furnace
	case recipe.SourceLab:
		return c.Lab
	case recipe.SourcePump:
		return c.Pump
	case recipe.SourceRocketSilo:
		return c.RocketSilo
	case recipe.SourceNone:
		return BaseSpeedMultiplier
	}
	return BaseSpeedMultiplier
}

// With returns a copy of the configuration with one kind replaced.
// Setting SourceNone is a no-op.
func (c SpeedConfig) With(source recipe.Source, multiplier SpeedMultiplier) SpeedConfig {
	switch source {
	case recipe.SourceAssembler:
		c.Assembler = multiplier
	case recipe.SourceMine:
		c.Mine = multiplier
	case recipe.SourceChem:
		c.Chem = multiplier
	case recipe.SourceFurnace:
		c.Furnace = multiplier
	case recipe.SourceLab:
		c.Lab = multiplier
	case recipe.SourcePump:
		c.Pump = multiplier
	case recipe.SourceRocketSilo:
		c.RocketSilo = multiplier
	case recipe.SourceNone:
	}
	return c
}

// Validate checks every configured multiplier
func (c SpeedConfig) Validate() error {
	for _, source := range recipe.AllSources() {
		if err := c.For(source).Validate(); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}
	return nil
}
