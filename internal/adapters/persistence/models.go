package persistence

import (
	"time"
)

// RecipeModel represents the recipes table
type RecipeModel struct {
	Name         string             `gorm:"column:name;primaryKey"`
	Time         float64            `gorm:"column:time;not null"`
	Yield        float64            `gorm:"column:yield;not null"`
	Source       string             `gorm:"column:source;not null;index"`
	Requirements []RequirementModel `gorm:"foreignKey:RecipeName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UpdatedAt    time.Time          `gorm:"column:updated_at"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// RequirementModel represents the recipe_requirements table.
// Position keeps the order in which inputs are listed on the recipe.
type RequirementModel struct {
	ID         int     `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeName string  `gorm:"column:recipe_name;not null;index"`
	Position   int     `gorm:"column:position;not null"`
	Name       string  `gorm:"column:name;not null"`
	Amount     float64 `gorm:"column:amount;not null"`
}

func (RequirementModel) TableName() string {
	return "recipe_requirements"
}
