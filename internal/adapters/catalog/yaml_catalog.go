package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

//go:embed data/recipes.yaml
var builtinRecipes []byte

// Document is the on-disk layout of a recipe catalog file
type Document struct {
	Recipes []RecipeEntry `yaml:"recipes"`
}

// RecipeEntry is one recipe in a catalog file
type RecipeEntry struct {
	Name         string             `yaml:"name"`
	Time         float64            `yaml:"time"`
	Yield        float64            `yaml:"yield"`
	Source       string             `yaml:"source"`
	Requirements []RequirementEntry `yaml:"requirements"`
}

// RequirementEntry is one input of a recipe in a catalog file
type RequirementEntry struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
}

// Builtin returns the embedded Factorio recipe catalog
func Builtin() (*recipe.Catalog, error) {
	catalog, err := Parse(builtinRecipes)
	if err != nil {
		return nil, fmt.Errorf("loading builtin catalog: %w", err)
	}
	return catalog, nil
}

// LoadFile reads a recipe catalog from a YAML file
func LoadFile(path string) (*recipe.Catalog, error) {
	recipes, err := ReadRecipes(path)
	if err != nil {
		return nil, err
	}
	return recipe.NewCatalog(recipes)
}

// ReadRecipes reads the recipes of a YAML file without building a catalog
func ReadRecipes(path string) ([]recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Decode(data)
}

// Parse decodes YAML catalog data and validates it into a catalog
func Parse(data []byte) (*recipe.Catalog, error) {
	recipes, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return recipe.NewCatalog(recipes)
}

// Decode converts YAML catalog data into domain recipes
func Decode(data []byte) ([]recipe.Recipe, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	recipes := make([]recipe.Recipe, 0, len(doc.Recipes))
	for _, entry := range doc.Recipes {
		source, err := recipe.ParseSource(entry.Source)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", entry.Name, err)
		}

		requirements := make([]recipe.Requirement, 0, len(entry.Requirements))
		for _, req := range entry.Requirements {
			requirements = append(requirements, recipe.Requirement{Name: req.Name, Amount: req.Amount})
		}

		recipes = append(recipes, recipe.Recipe{
			Name:         entry.Name,
			Time:         entry.Time,
			Yield:        entry.Yield,
			Source:       source,
			Requirements: requirements,
		})
	}
	return recipes, nil
}

// Encode renders recipes in the catalog file layout
func Encode(recipes []*recipe.Recipe) ([]byte, error) {
	doc := Document{Recipes: make([]RecipeEntry, 0, len(recipes))}
	for _, r := range recipes {
		entry := RecipeEntry{
			Name:         r.Name,
			Time:         r.Time,
			Yield:        r.Yield,
			Source:       r.Source.String(),
			Requirements: make([]RequirementEntry, 0, len(r.Requirements)),
		}
		for _, req := range r.Requirements {
			entry.Requirements = append(entry.Requirements, RequirementEntry{Name: req.Name, Amount: req.Amount})
		}
		doc.Recipes = append(doc.Recipes, entry)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return data, nil
}
