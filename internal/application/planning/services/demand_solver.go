package services

import (
	"math"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// DemandSolver sizes every producer of a production line, level by level,
// starting from the root item and walking towards raw materials.
type DemandSolver struct {
	catalog production.RecipeCatalog
}

// NewDemandSolver creates a solver reading recipes from the given catalog
func NewDemandSolver(catalog production.RecipeCatalog) *DemandSolver {
	return &DemandSolver{catalog: catalog}
}

// SolveSetup computes the production line that delivers rate units per second of root.
//
// The root is seeded with ceil(rate × time / (yield × speed)) producers. Then, in
// passes, every unsolved node whose dependents are all solved becomes available;
// its demand is the sum of what the solved consumers draw from it
// (efficiency × count × amount / time × base speed), and its producer count is the
// ceiling of that demand converted through its own recipe.
//
// Fails with *production.UnsatisfiableDependencyError if a pass finds nothing
// available while nodes remain (for example a cycle in a hand-built tree).
func (s *DemandSolver) SolveSetup(
	root *recipe.Recipe,
	rate float64,
	tree *production.DependencyTree,
	speeds production.SpeedConfig,
) (*production.ProductionLineSetup, error) {
	if !(rate > 0) {
		return nil, &production.InvalidQuantityError{Input: production.RateQuantity(rate).String(), Reason: "rate must be positive"}
	}

	required := production.RequiredProducers(rate, root, speeds)
	count := production.ProducerCount(required)
	produced := production.TotalProductionRate(count, root, speeds)

	line := production.NewProductionLineSetup(root.Name)
	line.Add(&production.ProductionSetup{
		Recipe:     root,
		Count:      count,
		Efficiency: math.Min(1, rate/produced),
		Consumed:   rate,
		Produced:   produced,
	})

	if err := s.solveLevels(line, tree, speeds); err != nil {
		return nil, err
	}
	return line, nil
}

// SolveForProducers computes the production line for exactly count saturated root
// producers. This is the producer-count request mode; it avoids converting the
// count into a rate and back.
func (s *DemandSolver) SolveForProducers(
	root *recipe.Recipe,
	count int,
	tree *production.DependencyTree,
	speeds production.SpeedConfig,
) (*production.ProductionLineSetup, error) {
	if count <= 0 {
		return nil, &production.InvalidQuantityError{Input: production.ProducerQuantity(count).String(), Reason: "producer count must be positive"}
	}

	produced := production.TotalProductionRate(count, root, speeds)

	line := production.NewProductionLineSetup(root.Name)
	line.Add(&production.ProductionSetup{
		Recipe:     root,
		Count:      count,
		Efficiency: 1,
		Consumed:   produced,
		Produced:   produced,
	})

	if err := s.solveLevels(line, tree, speeds); err != nil {
		return nil, err
	}
	return line, nil
}

// Solve dispatches on the quantity kind
func (s *DemandSolver) Solve(
	root *recipe.Recipe,
	quantity production.Quantity,
	tree *production.DependencyTree,
	speeds production.SpeedConfig,
) (*production.ProductionLineSetup, error) {
	if err := quantity.Validate(); err != nil {
		return nil, err
	}
	if quantity.Kind == production.QuantityProducers {
		return s.SolveForProducers(root, quantity.Producers, tree, speeds)
	}
	return s.SolveSetup(root, quantity.PerSecond, tree, speeds)
}

// solveLevels runs the leveling passes until every tree node is solved
func (s *DemandSolver) solveLevels(
	line *production.ProductionLineSetup,
	tree *production.DependencyTree,
	speeds production.SpeedConfig,
) error {
	remaining := tree.Dependencies()

	for len(remaining) > 0 {
		available, rest := partitionAvailable(remaining, line)
		if len(available) == 0 {
			return &production.UnsatisfiableDependencyError{Remaining: dependencyNames(remaining)}
		}

		for _, dependency := range available {
			setup, err := s.solveDependency(dependency.Name, line, speeds)
			if err != nil {
				return err
			}
			line.Add(setup)
		}

		remaining = rest
	}

	return nil
}

// solveDependency sizes one item from the demand of the already-solved setups
func (s *DemandSolver) solveDependency(
	name string,
	line *production.ProductionLineSetup,
	speeds production.SpeedConfig,
) (*production.ProductionSetup, error) {
	r, err := s.catalog.FindRecipe(name)
	if err != nil {
		return nil, err
	}

	consumed := 0.0
	for _, consumer := range line.Setups() {
		if consumer.Recipe.Requires(name) {
			consumed += production.SetupConsumption(consumer, name, speeds)
		}
	}

	required := production.RequiredProducers(consumed, r, speeds)
	count := production.ProducerCount(required)

	// Zero demand needs no producers; report such a row as saturated
	efficiency := 1.0
	if count > 0 {
		efficiency = math.Min(1, required/float64(count))
	}

	return &production.ProductionSetup{
		Recipe:     r,
		Count:      count,
		Efficiency: efficiency,
		Consumed:   consumed,
		Produced:   production.TotalProductionRate(count, r, speeds),
	}, nil
}

// partitionAvailable splits the remaining nodes into those whose dependents are all
// solved and the rest. A node that is itself already solved (the root listed as a
// dependency) never becomes available.
func partitionAvailable(
	remaining []production.Dependency,
	line *production.ProductionLineSetup,
) (available, rest []production.Dependency) {
	for _, dependency := range remaining {
		if isAvailable(dependency, line) {
			available = append(available, dependency)
		} else {
			rest = append(rest, dependency)
		}
	}
	return available, rest
}

func isAvailable(dependency production.Dependency, line *production.ProductionLineSetup) bool {
	if line.Has(dependency.Name) {
		return false
	}
	for _, dependent := range dependency.Dependents {
		if !line.Has(dependent) {
			return false
		}
	}
	return true
}

func dependencyNames(dependencies []production.Dependency) []string {
	names := make([]string, 0, len(dependencies))
	for _, dependency := range dependencies {
		names = append(names, dependency.Name)
	}
	return names
}
