package production

import "github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"

// ProductionSetup is one row of a solved plan: how many producers of an item
// are needed and how saturated they are.
type ProductionSetup struct {
	// Recipe is a shared read-only back-reference into the catalog
	Recipe *recipe.Recipe

	// Count is the integer number of producers (ceiling of the real requirement)
	Count int

	// Efficiency is real requirement / Count, in (0, 1]
	Efficiency float64

	// Consumed is the demand on this item in units per second
	Consumed float64

	// Produced is Count × per-producer rate, never below Consumed
	Produced float64
}

// Name returns the item name of the setup
func (s *ProductionSetup) Name() string {
	return s.Recipe.Name
}

// Slack returns the surplus output in units per second
func (s *ProductionSetup) Slack() float64 {
	return s.Produced - s.Consumed
}

// ProductionLineSetup is the solved plan keyed by item name.
// Entries keep the order in which they were solved, root first.
type ProductionLineSetup struct {
	root   string
	order  []string
	setups map[string]*ProductionSetup
}

// NewProductionLineSetup creates an empty plan for the given root item
func NewProductionLineSetup(root string) *ProductionLineSetup {
	return &ProductionLineSetup{
		root:   root,
		order:  make([]string, 0),
		setups: make(map[string]*ProductionSetup),
	}
}

// Add records a solved setup. A second setup for the same item replaces the first
// but keeps its position.
func (p *ProductionLineSetup) Add(setup *ProductionSetup) {
	name := setup.Name()
	if _, exists := p.setups[name]; !exists {
		p.order = append(p.order, name)
	}
	p.setups[name] = setup
}

// Root returns the root item name
func (p *ProductionLineSetup) Root() string {
	return p.root
}

// Get returns the setup of an item
func (p *ProductionLineSetup) Get(name string) (*ProductionSetup, bool) {
	setup, exists := p.setups[name]
	return setup, exists
}

// Has reports whether the item has been solved
func (p *ProductionLineSetup) Has(name string) bool {
	_, exists := p.setups[name]
	return exists
}

// Len returns the number of solved items
func (p *ProductionLineSetup) Len() int {
	return len(p.order)
}

// Names returns the solved item names in solve order
func (p *ProductionLineSetup) Names() []string {
	return append([]string(nil), p.order...)
}

// Setups returns all setups in solve order
func (p *ProductionLineSetup) Setups() []*ProductionSetup {
	result := make([]*ProductionSetup, 0, len(p.order))
	for _, name := range p.order {
		result = append(result, p.setups[name])
	}
	return result
}

// BySource returns the setups produced by one producer kind, in solve order
func (p *ProductionLineSetup) BySource(source recipe.Source) []*ProductionSetup {
	result := make([]*ProductionSetup, 0)
	for _, name := range p.order {
		if p.setups[name].Recipe.Source == source {
			result = append(result, p.setups[name])
		}
	}
	return result
}

// ContainsSource reports whether any setup is produced by the kind
func (p *ProductionLineSetup) ContainsSource(source recipe.Source) bool {
	for _, setup := range p.setups {
		if setup.Recipe.Source == source {
			return true
		}
	}
	return false
}

// TotalCount returns the number of producers of one kind
func (p *ProductionLineSetup) TotalCount(source recipe.Source) int {
	total := 0
	for _, setup := range p.BySource(source) {
		total += setup.Count
	}
	return total
}

// MeanEfficiency returns the average efficiency over all setups
func (p *ProductionLineSetup) MeanEfficiency() float64 {
	if len(p.order) == 0 {
		return 0
	}

	sum := 0.0
	for _, name := range p.order {
		sum += p.setups[name].Efficiency
	}
	return sum / float64(len(p.order))
}
