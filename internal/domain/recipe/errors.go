package recipe

import "fmt"

// RecipeNotFoundError indicates an item name has no recipe in the catalog
type RecipeNotFoundError struct {
	Name string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("could not find recipe in catalog: %s", e.Name)
}

// DuplicateRecipeError indicates two recipes share a name
type DuplicateRecipeError struct {
	Name string
}

func (e *DuplicateRecipeError) Error() string {
	return fmt.Sprintf("duplicate recipe in catalog: %s", e.Name)
}

// InvalidRecipeError indicates a recipe violates a catalog invariant
type InvalidRecipeError struct {
	Name   string
	Reason string
}

func (e *InvalidRecipeError) Error() string {
	return fmt.Sprintf("invalid recipe %q: %s", e.Name, e.Reason)
}
