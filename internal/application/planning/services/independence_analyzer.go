package services

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// IndependenceAnalyzer finds the sub-trees of a production line that can be shown
// as self-contained blocks: every item inside is consumed only from within.
type IndependenceAnalyzer struct {
	catalog production.RecipeCatalog
	builder *DependencyTreeBuilder
}

// NewIndependenceAnalyzer creates an analyzer reading from the given catalog
func NewIndependenceAnalyzer(catalog production.RecipeCatalog) *IndependenceAnalyzer {
	return &IndependenceAnalyzer{
		catalog: catalog,
		builder: NewDependencyTreeBuilder(catalog),
	}
}

// FindIndependentTrees builds the dependency tree of root and returns, in tree
// order, the names of items whose whole dependency closure is independent.
func (a *IndependenceAnalyzer) FindIndependentTrees(root *recipe.Recipe, displayed recipe.SourceSet) ([]string, error) {
	tree, err := a.builder.BuildDependencyTree(root)
	if err != nil {
		return nil, err
	}
	return a.ClassifyTree(tree, displayed)
}

// ClassifyTree runs the independence test over an existing tree.
//
// An item qualifies when its own source is displayed and, for every item in its
// closure, each displayed child of that item is consumed only by items in the
// closure. Children produced by hidden sources are ignored: they never break
// independence.
func (a *IndependenceAnalyzer) ClassifyTree(tree *production.DependencyTree, displayed recipe.SourceSet) ([]string, error) {
	independent := make([]string, 0)

	for _, name := range tree.Names() {
		ok, err := a.isIndependent(name, tree, displayed)
		if err != nil {
			return nil, err
		}
		if ok {
			independent = append(independent, name)
		}
	}

	return independent, nil
}

func (a *IndependenceAnalyzer) isIndependent(name string, tree *production.DependencyTree, displayed recipe.SourceSet) (bool, error) {
	r, err := a.catalog.FindRecipe(name)
	if err != nil {
		return false, err
	}
	if !displayed.Contains(r.Source) {
		return false, nil
	}

	closure := dependencyClosure([]string{name}, tree)
	allowed := make(map[string]bool, len(closure))
	for _, item := range closure {
		allowed[item] = true
	}

	for _, item := range closure {
		ok, err := a.isDirectlyIndependent(item, tree, allowed, displayed)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// isDirectlyIndependent checks that every displayed child of name is consumed only
// by allowed items
func (a *IndependenceAnalyzer) isDirectlyIndependent(
	name string,
	tree *production.DependencyTree,
	allowed map[string]bool,
	displayed recipe.SourceSet,
) (bool, error) {
	for _, child := range tree.DependenciesOf(name) {
		r, err := a.catalog.FindRecipe(child)
		if err != nil {
			return false, err
		}
		if !displayed.Contains(r.Source) {
			continue
		}

		node, _ := tree.Get(child)
		for _, dependent := range node.Dependents {
			if !allowed[dependent] {
				return false, nil
			}
		}
	}
	return true, nil
}

// dependencyClosure returns parents plus every tree item reachable by following
// "is consumed by something already in the set", computed to a fixed point
func dependencyClosure(parents []string, tree *production.DependencyTree) []string {
	closure := append([]string(nil), parents...)
	inClosure := make(map[string]bool, len(parents))
	for _, parent := range parents {
		inClosure[parent] = true
	}

	for changed := true; changed; {
		changed = false
		for _, node := range tree.Dependencies() {
			if inClosure[node.Name] {
				continue
			}
			for _, dependent := range node.Dependents {
				if inClosure[dependent] {
					closure = append(closure, node.Name)
					inClosure[node.Name] = true
					changed = true
					break
				}
			}
		}
	}

	return closure
}
