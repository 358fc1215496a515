package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// GetDependencyGraphQuery asks for the dependency structure of one item
type GetDependencyGraphQuery struct {
	Recipe           string
	DisplayedSources []recipe.Source
}

// GetDependencyGraphResponse contains the tree and its display analyses
type GetDependencyGraphResponse struct {
	Recipe      *recipe.Recipe
	Tree        *production.DependencyTree
	Independent []string
	Levels      []services.ProductionLevel
	Shared      []string
	Displayed   recipe.SourceSet
}

// GetDependencyGraphHandler handles the GetDependencyGraph query
type GetDependencyGraphHandler struct {
	catalog     production.RecipeCatalog
	builder     *services.DependencyTreeBuilder
	independent *services.IndependenceAnalyzer
	levels      *services.LevelAnalyzer
}

// NewGetDependencyGraphHandler creates a new GetDependencyGraphHandler
func NewGetDependencyGraphHandler(catalog production.RecipeCatalog) *GetDependencyGraphHandler {
	return &GetDependencyGraphHandler{
		catalog:     catalog,
		builder:     services.NewDependencyTreeBuilder(catalog),
		independent: services.NewIndependenceAnalyzer(catalog),
		levels:      services.NewLevelAnalyzer(),
	}
}

// Handle executes the GetDependencyGraph query
func (h *GetDependencyGraphHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetDependencyGraphQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	root, err := h.catalog.FindRecipe(query.Recipe)
	if err != nil {
		return nil, err
	}

	displayed := recipe.NewSourceSet(query.DisplayedSources...)
	if len(query.DisplayedSources) == 0 {
		displayed = recipe.NewSourceSet(recipe.SourceAssembler)
	}

	tree, err := h.builder.BuildDependencyTree(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency tree for %s: %w", root.Name, err)
	}

	independent, err := h.independent.ClassifyTree(tree, displayed)
	if err != nil {
		return nil, fmt.Errorf("failed to classify independent trees: %w", err)
	}

	levels, err := h.levels.IdentifyLevels(root.Name, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to level dependency tree: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelDebug, "Dependency graph built", map[string]interface{}{
		"recipe":      root.Name,
		"nodes":       tree.Len(),
		"levels":      len(levels),
		"independent": len(independent),
	})

	return &GetDependencyGraphResponse{
		Recipe:      root,
		Tree:        tree,
		Independent: independent,
		Levels:      levels,
		Shared:      h.levels.SharedItems(tree),
		Displayed:   displayed,
	}, nil
}
