package production

import (
	"math"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// countTolerance is the relative distance to a whole count treated as float
// noise, so a demand of exactly 12 producers computed as 12.000000000000002
// does not round up to 13
const countTolerance = 1e-12

// ProductionRate returns the output of one producer in units per second
func ProductionRate(r *recipe.Recipe, speeds SpeedConfig) float64 {
	return r.Yield * speeds.For(r.Source).Production() / r.Time
}

// TotalProductionRate returns the output of count producers in units per second
func TotalProductionRate(count int, r *recipe.Recipe, speeds SpeedConfig) float64 {
	return float64(count) * ProductionRate(r, speeds)
}

// RequiredProducers returns the real-valued number of producers needed for a rate
func RequiredProducers(rate float64, r *recipe.Recipe, speeds SpeedConfig) float64 {
	return rate * r.Time / r.Yield / speeds.For(r.Source).Production()
}

// ProducerCount rounds a real-valued producer requirement up to whole producers.
// Any positive requirement needs at least one producer.
func ProducerCount(required float64) int {
	if !(required > 0) {
		return 0
	}
	whole := math.Round(required)
	if whole >= 1 && math.Abs(required-whole) <= countTolerance*whole {
		return int(whole)
	}
	return int(math.Ceil(required))
}

// RequirementConsumption returns how fast one saturated producer of r consumes
// amount units per cycle. Only the base multiplier applies: production bonuses
// do not consume extra inputs.
func RequirementConsumption(r *recipe.Recipe, amount float64, speeds SpeedConfig) float64 {
	return amount / r.Time * speeds.For(r.Source).Base
}

// SetupConsumption returns how fast a solved setup consumes the named item,
// scaled by its producer count and saturation
func SetupConsumption(setup *ProductionSetup, name string, speeds SpeedConfig) float64 {
	amount := setup.Recipe.AmountOf(name)
	if amount == 0 {
		return 0
	}
	return setup.Efficiency * float64(setup.Count) * RequirementConsumption(setup.Recipe, amount, speeds)
}
