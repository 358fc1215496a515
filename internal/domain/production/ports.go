package production

import "github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"

// RecipeCatalog is the read-only recipe lookup the planner depends on.
// *recipe.Catalog implements it; tests may supply their own.
type RecipeCatalog interface {
	// FindRecipe returns the recipe for an item or a *recipe.RecipeNotFoundError
	FindRecipe(name string) (*recipe.Recipe, error)
}
