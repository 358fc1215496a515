package services

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// DependencyTreeBuilder expands a recipe's requirements into a flattened dependency tree.
type DependencyTreeBuilder struct {
	catalog production.RecipeCatalog
}

// NewDependencyTreeBuilder creates a builder reading from the given catalog
func NewDependencyTreeBuilder(catalog production.RecipeCatalog) *DependencyTreeBuilder {
	return &DependencyTreeBuilder{catalog: catalog}
}

// BuildDependencyTree walks the requirements of root depth-first and returns one
// Dependency per distinct item, holding every item that directly consumes it.
//
// Diamond dependencies are merged: an item reached through several paths appears
// once with the union of its dependents, and its own requirements are expanded
// only the first time it is reached.
//
// Example:
//
//	Green Circuit
//	├── Iron
//	│   └── Iron Ore
//	└── Copper Wire
//	    └── Copper
//	        └── Copper Ore
//
// Result: Iron[Green Circuit], Copper Wire[Green Circuit], Iron Ore[Iron],
// Copper[Copper Wire], Copper Ore[Copper]
//
// Fails with *recipe.RecipeNotFoundError when a requirement has no recipe and with
// *production.CircularDependencyError when an item transitively requires itself.
func (b *DependencyTreeBuilder) BuildDependencyTree(root *recipe.Recipe) (*production.DependencyTree, error) {
	tree := production.NewDependencyTree()
	expanded := make(map[string]bool)
	onPath := map[string]bool{root.Name: true}

	if err := b.expand(root, tree, expanded, onPath, []string{root.Name}); err != nil {
		return nil, err
	}
	return tree, nil
}

// expand records the direct requirements of r, then recurses into each
// requirement that has not been expanded yet
func (b *DependencyTreeBuilder) expand(
	r *recipe.Recipe,
	tree *production.DependencyTree,
	expanded map[string]bool,
	onPath map[string]bool,
	path []string,
) error {
	for _, requirement := range r.Requirements {
		tree.AddDependent(requirement.Name, r.Name)
	}

	for _, requirement := range r.Requirements {
		name := requirement.Name
		if onPath[name] {
			chain := append(append([]string(nil), path...), name)
			return &production.CircularDependencyError{Item: name, Chain: chain}
		}
		if expanded[name] {
			continue
		}

		child, err := b.catalog.FindRecipe(name)
		if err != nil {
			return err
		}

		onPath[name] = true
		err = b.expand(child, tree, expanded, onPath, append(path, name))
		onPath[name] = false
		if err != nil {
			return err
		}
		expanded[name] = true
	}

	return nil
}
