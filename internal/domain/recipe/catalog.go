package recipe

import "sort"

// Catalog is an immutable mapping from item name to recipe.
// It is built once at startup and shared read-only by every planning call,
// so concurrent readers need no locking.
type Catalog struct {
	recipes map[string]*Recipe
	names   []string
}

// NewCatalog validates the recipes and builds a catalog from them.
// Requirement names are not resolved here: a missing input only fails the
// computations that actually visit it.
func NewCatalog(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make(map[string]*Recipe, len(recipes)),
		names:   make([]string, 0, len(recipes)),
	}

	for i := range recipes {
		r := recipes[i]
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, exists := c.recipes[r.Name]; exists {
			return nil, &DuplicateRecipeError{Name: r.Name}
		}

		// Copy requirements so callers cannot mutate the catalog through their slice
		r.Requirements = append([]Requirement(nil), r.Requirements...)
		c.recipes[r.Name] = &r
		c.names = append(c.names, r.Name)
	}

	sort.Strings(c.names)
	return c, nil
}

// FindRecipe returns the recipe for an item name
func (c *Catalog) FindRecipe(name string) (*Recipe, error) {
	if r, ok := c.recipes[name]; ok {
		return r, nil
	}
	return nil, &RecipeNotFoundError{Name: name}
}

// Has reports whether the catalog contains a recipe for the name
func (c *Catalog) Has(name string) bool {
	_, ok := c.recipes[name]
	return ok
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns all recipe names sorted alphabetically
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Recipes returns all recipes sorted by name
func (c *Catalog) Recipes() []*Recipe {
	result := make([]*Recipe, 0, len(c.names))
	for _, name := range c.names {
		result = append(result, c.recipes[name])
	}
	return result
}

// BySource returns the recipes produced by the given kind, sorted by name
func (c *Catalog) BySource(source Source) []*Recipe {
	result := make([]*Recipe, 0)
	for _, name := range c.names {
		if c.recipes[name].Source == source {
			result = append(result, c.recipes[name])
		}
	}
	return result
}
