package services

import (
	"math"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

const (
	// ExpressBeltCapacity is the items per second one express belt carries
	ExpressBeltCapacity = 45.0

	// Inserter throughputs in items per second
	LongInserterRate  = 3.46
	FastInserterRate  = 6.43
	StackInserterRate = 15.0

	// ProductsFlow names the output flow of a producer in an IO report
	ProductsFlow = "Products"
)

// fluids are piped rather than belted, so they never constrain a row
var fluids = map[string]bool{
	"Petroleum":     true,
	"Water":         true,
	"Light Oil":     true,
	"Heavy Oil":     true,
	"Lubricant":     true,
	"Sulfuric Acid": true,
}

// InserterKind is the cheapest inserter that keeps up with a flow on its own
type InserterKind string

const (
	InserterLong  InserterKind = "LI"
	InserterFast  InserterKind = "FI"
	InserterStack InserterKind = "SI"
)

// ItemFlow is one belted input (or the output) of a single producer
type ItemFlow struct {
	Name string

	// PerProducer is the rate one saturated producer moves
	PerProducer float64

	Inserter      InserterKind
	InserterCount int
}

// ProducerIO describes how the producers of one setup can be laid out in rows
type ProducerIO struct {
	Name  string
	Count int

	// PerRow is how many producers one express belt per flow can feed
	PerRow int

	// Rows is Count / PerRow
	Rows float64

	// ConstrainedBy names the highest-rate flow, which sets PerRow
	ConstrainedBy string

	Flows []ItemFlow
}

// ThroughputAnalyzer sizes belts and inserters for displayed producers
type ThroughputAnalyzer struct{}

// NewThroughputAnalyzer creates a new throughput analyzer
func NewThroughputAnalyzer() *ThroughputAnalyzer {
	return &ThroughputAnalyzer{}
}

// AnalyzeLine returns an IO report for every setup of a displayed kind that has
// requirements, in solve order
func (a *ThroughputAnalyzer) AnalyzeLine(
	line *production.ProductionLineSetup,
	displayed recipe.SourceSet,
	speeds production.SpeedConfig,
) []ProducerIO {
	reports := make([]ProducerIO, 0)
	for _, setup := range line.Setups() {
		if setup.Recipe.IsRaw() || !displayed.Contains(setup.Recipe.Source) {
			continue
		}
		reports = append(reports, a.AnalyzeSetup(setup, speeds))
	}
	return reports
}

// AnalyzeSetup computes the flows of one setup. The output comes first, followed
// by each non-fluid requirement in recipe order.
func (a *ThroughputAnalyzer) AnalyzeSetup(setup *production.ProductionSetup, speeds production.SpeedConfig) ProducerIO {
	r := setup.Recipe

	flows := []ItemFlow{newItemFlow(ProductsFlow, production.ProductionRate(r, speeds))}
	for _, requirement := range r.Requirements {
		if fluids[requirement.Name] {
			continue
		}
		flows = append(flows, newItemFlow(requirement.Name, production.RequirementConsumption(r, requirement.Amount, speeds)))
	}

	highest := flows[0]
	for _, flow := range flows[1:] {
		if flow.PerProducer > highest.PerProducer {
			highest = flow
		}
	}

	report := ProducerIO{
		Name:          setup.Name(),
		Count:         setup.Count,
		ConstrainedBy: highest.Name,
		Flows:         flows,
	}
	if highest.PerProducer > 0 {
		report.PerRow = int(math.Floor(ExpressBeltCapacity / highest.PerProducer))
	}
	if report.PerRow > 0 {
		report.Rows = float64(setup.Count) / float64(report.PerRow)
	}
	return report
}

func newItemFlow(name string, rate float64) ItemFlow {
	flow := ItemFlow{Name: name, PerProducer: rate}

	switch {
	case math.Ceil(rate/LongInserterRate) <= 1:
		flow.Inserter, flow.InserterCount = InserterLong, 1
	case math.Ceil(rate/FastInserterRate) <= 1:
		flow.Inserter, flow.InserterCount = InserterFast, 1
	default:
		flow.Inserter, flow.InserterCount = InserterStack, int(math.Ceil(rate/StackInserterRate))
	}
	return flow
}
