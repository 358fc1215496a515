package recipe

// Requirement is one input of a recipe: an item name and the amount consumed per cycle
type Requirement struct {
	Name   string
	Amount float64
}

// Recipe is the static definition of how one item is produced.
// Recipes are immutable once placed in a Catalog.
type Recipe struct {
	Name         string
	Time         float64 // seconds per production cycle
	Yield        float64 // output units per cycle
	Source       Source
	Requirements []Requirement
}

// IsRaw returns true if the recipe has no inputs
func (r *Recipe) IsRaw() bool {
	return len(r.Requirements) == 0
}

// Requires reports whether the recipe consumes the named item
func (r *Recipe) Requires(name string) bool {
	for _, requirement := range r.Requirements {
		if requirement.Name == name {
			return true
		}
	}
	return false
}

// AmountOf returns the total amount of the named item consumed per cycle.
// Repeated entries for the same item are summed.
func (r *Recipe) AmountOf(name string) float64 {
	total := 0.0
	for _, requirement := range r.Requirements {
		if requirement.Name == name {
			total += requirement.Amount
		}
	}
	return total
}

// validate checks the numeric invariants of a recipe
func (r *Recipe) validate() error {
	if r.Name == "" {
		return &InvalidRecipeError{Name: r.Name, Reason: "name is empty"}
	}
	if r.Time <= 0 {
		return &InvalidRecipeError{Name: r.Name, Reason: "time must be positive"}
	}
	if r.Yield <= 0 {
		return &InvalidRecipeError{Name: r.Name, Reason: "yield must be positive"}
	}
	if !r.Source.IsValid() {
		return &InvalidRecipeError{Name: r.Name, Reason: "unknown source " + string(r.Source)}
	}
	for _, requirement := range r.Requirements {
		if requirement.Name == "" {
			return &InvalidRecipeError{Name: r.Name, Reason: "requirement has no name"}
		}
		if requirement.Amount < 0 {
			return &InvalidRecipeError{Name: r.Name, Reason: "requirement " + requirement.Name + " has a negative amount"}
		}
	}
	return nil
}
