package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// GormRecipeRepository stores recipe catalogs using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GORM recipe repository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByName retrieves a single recipe with its requirements
func (r *GormRecipeRepository) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("name = ?", name).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &recipe.RecipeNotFoundError{Name: name}
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}

	return r.modelToRecipe(&model)
}

// ListAll retrieves every stored recipe ordered by name
func (r *GormRecipeRepository) ListAll(ctx context.Context) ([]recipe.Recipe, error) {
	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", result.Error)
	}

	recipes := make([]recipe.Recipe, 0, len(models))
	for i := range models {
		rec, err := r.modelToRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *rec)
	}
	return recipes, nil
}

// LoadCatalog reads every stored recipe into a validated, read-only catalog
func (r *GormRecipeRepository) LoadCatalog(ctx context.Context) (*recipe.Catalog, error) {
	recipes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := recipe.NewCatalog(recipes)
	if err != nil {
		return nil, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	return catalog, nil
}

// SaveRecipes upserts recipes in one transaction. A saved recipe replaces the
// stored one with the same name, including its requirement list.
func (r *GormRecipeRepository) SaveRecipes(ctx context.Context, recipes []*recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range recipes {
			if err := tx.Where("recipe_name = ?", rec.Name).Delete(&RequirementModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear requirements of %s: %w", rec.Name, err)
			}

			model := r.recipeToModel(rec)
			if err := tx.Omit("Requirements").Save(model).Error; err != nil {
				return fmt.Errorf("failed to save recipe %s: %w", rec.Name, err)
			}

			if len(model.Requirements) > 0 {
				if err := tx.Create(&model.Requirements).Error; err != nil {
					return fmt.Errorf("failed to save requirements of %s: %w", rec.Name, err)
				}
			}
		}
		return nil
	})
}

// Count returns the number of stored recipes
func (r *GormRecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// modelToRecipe converts database model to domain recipe
func (r *GormRecipeRepository) modelToRecipe(model *RecipeModel) (*recipe.Recipe, error) {
	source, err := recipe.ParseSource(model.Source)
	if err != nil {
		return nil, fmt.Errorf("invalid source for recipe %s in database: %w", model.Name, err)
	}

	requirements := make([]recipe.Requirement, 0, len(model.Requirements))
	for _, req := range model.Requirements {
		requirements = append(requirements, recipe.Requirement{Name: req.Name, Amount: req.Amount})
	}

	return &recipe.Recipe{
		Name:         model.Name,
		Time:         model.Time,
		Yield:        model.Yield,
		Source:       source,
		Requirements: requirements,
	}, nil
}

// recipeToModel converts domain recipe to database model
func (r *GormRecipeRepository) recipeToModel(rec *recipe.Recipe) *RecipeModel {
	requirements := make([]RequirementModel, 0, len(rec.Requirements))
	for i, req := range rec.Requirements {
		requirements = append(requirements, RequirementModel{
			RecipeName: rec.Name,
			Position:   i,
			Name:       req.Name,
			Amount:     req.Amount,
		})
	}

	return &RecipeModel{
		Name:         rec.Name,
		Time:         rec.Time,
		Yield:        rec.Yield,
		Source:       rec.Source.String(),
		Requirements: requirements,
	}
}
