package services

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

// ProductionLevel groups the items solved in the same leveling pass
type ProductionLevel struct {
	Depth int
	Items []string

	// Shared counts the items in this level consumed by more than one dependent
	Shared int
}

// LevelAnalyzer reports the order in which a dependency tree is resolved.
// Items in one level do not consume each other, so they can be built in parallel.
type LevelAnalyzer struct{}

// NewLevelAnalyzer creates a new level analyzer
func NewLevelAnalyzer() *LevelAnalyzer {
	return &LevelAnalyzer{}
}

// IdentifyLevels returns level 0 holding the root followed by one level per
// leveling pass. An item joins a level once all its dependents sit in earlier
// levels, the same availability rule the demand solver uses.
func (a *LevelAnalyzer) IdentifyLevels(root string, tree *production.DependencyTree) ([]ProductionLevel, error) {
	placed := map[string]bool{root: true}
	levels := []ProductionLevel{{Depth: 0, Items: []string{root}}}

	remaining := tree.Dependencies()
	for depth := 1; len(remaining) > 0; depth++ {
		var items []string
		var rest []production.Dependency
		shared := 0

		for _, node := range remaining {
			if !placed[node.Name] && allPlaced(node.Dependents, placed) {
				items = append(items, node.Name)
				if len(node.Dependents) > 1 {
					shared++
				}
			} else {
				rest = append(rest, node)
			}
		}

		if len(items) == 0 {
			return nil, &production.UnsatisfiableDependencyError{Remaining: dependencyNames(remaining)}
		}

		for _, item := range items {
			placed[item] = true
		}
		levels = append(levels, ProductionLevel{Depth: depth, Items: items, Shared: shared})
		remaining = rest
	}

	return levels, nil
}

// SharedItems returns the items consumed by more than one dependent, in tree order
func (a *LevelAnalyzer) SharedItems(tree *production.DependencyTree) []string {
	shared := make([]string, 0)
	for _, node := range tree.Dependencies() {
		if len(node.Dependents) > 1 {
			shared = append(shared, node.Name)
		}
	}
	return shared
}

func allPlaced(names []string, placed map[string]bool) bool {
	for _, name := range names {
		if !placed[name] {
			return false
		}
	}
	return true
}
