package production

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// QuantityKind distinguishes the two ways a target can be requested
type QuantityKind string

const (
	// QuantityProducers requests an explicit number of root producers
	QuantityProducers QuantityKind = "PRODUCERS"

	// QuantityRate requests a throughput in units per second
	QuantityRate QuantityKind = "RATE"
)

// Quantity is a requested output: either a producer count or a rate, never both
type Quantity struct {
	Kind      QuantityKind
	Producers int
	PerSecond float64
}

// ProducerQuantity requests an explicit number of root producers
func ProducerQuantity(count int) Quantity {
	return Quantity{Kind: QuantityProducers, Producers: count}
}

// RateQuantity requests a throughput in units per second
func RateQuantity(perSecond float64) Quantity {
	return Quantity{Kind: QuantityRate, PerSecond: perSecond}
}

// Validate checks the quantity can be planned
func (q Quantity) Validate() error {
	switch q.Kind {
	case QuantityProducers:
		if q.Producers <= 0 {
			return &InvalidQuantityError{Input: q.String(), Reason: "producer count must be positive"}
		}
	case QuantityRate:
		if !(q.PerSecond > 0) {
			return &InvalidQuantityError{Input: q.String(), Reason: "rate must be positive"}
		}
	default:
		return &InvalidQuantityError{Input: q.String(), Reason: "unknown quantity kind"}
	}
	return nil
}

// Rate converts the quantity into units per second for the root recipe.
// A producer count N becomes the output of N saturated producers.
func (q Quantity) Rate(root *recipe.Recipe, speeds SpeedConfig) float64 {
	if q.Kind == QuantityProducers {
		return TotalProductionRate(q.Producers, root, speeds)
	}
	return q.PerSecond
}

func (q Quantity) String() string {
	if q.Kind == QuantityProducers {
		return fmt.Sprintf("%d producers", q.Producers)
	}
	return fmt.Sprintf("%g/s", q.PerSecond)
}
