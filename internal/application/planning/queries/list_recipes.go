package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// RecipeLister is the read side of a catalog used for listings
type RecipeLister interface {
	Recipes() []*recipe.Recipe
	BySource(source recipe.Source) []*recipe.Recipe
}

// ListRecipesQuery lists catalog recipes, optionally for one producer kind
type ListRecipesQuery struct {
	// Source filters by producer kind; empty lists everything
	Source recipe.Source
}

// ListRecipesResponse contains recipes sorted by name
type ListRecipesResponse struct {
	Recipes []*recipe.Recipe
}

// ListRecipesHandler handles the ListRecipes query
type ListRecipesHandler struct {
	catalog RecipeLister
}

// NewListRecipesHandler creates a new ListRecipesHandler
func NewListRecipesHandler(catalog RecipeLister) *ListRecipesHandler {
	return &ListRecipesHandler{catalog: catalog}
}

// Handle executes the ListRecipes query
func (h *ListRecipesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListRecipesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if query.Source == "" {
		return &ListRecipesResponse{Recipes: h.catalog.Recipes()}, nil
	}

	if !query.Source.IsValid() {
		return nil, fmt.Errorf("unknown producer kind %q", query.Source)
	}
	return &ListRecipesResponse{Recipes: h.catalog.BySource(query.Source)}, nil
}
