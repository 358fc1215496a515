package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

// PlanProductionLineCommand asks for a solved production line for one item
type PlanProductionLineCommand struct {
	Recipe   string `validate:"required"`
	Quantity production.Quantity

	// Speeds holds one multiplier per producer kind
	Speeds production.SpeedConfig

	// DisplayedSources selects which producer kinds are shown; it drives the
	// raw material, IO and independence reports. Defaults to assemblers.
	DisplayedSources []recipe.Source `validate:"dive,required"`
}

// PlanProductionLineResponse is a complete, internally consistent plan
type PlanProductionLineResponse struct {
	PlanID   string
	Recipe   *recipe.Recipe
	Quantity production.Quantity

	// Rate is the requested throughput of the root item in units per second
	Rate float64

	Setup        *production.ProductionLineSetup
	Tree         *production.DependencyTree
	Independent  []string
	RawMaterials []services.RawMaterial
	IO           []services.ProducerIO
	Displayed    recipe.SourceSet
	CreatedAt    time.Time
}

// PlanProductionLineHandler builds the dependency tree, solves demand and runs
// the display analyses for a single request
type PlanProductionLineHandler struct {
	catalog     production.RecipeCatalog
	builder     *services.DependencyTreeBuilder
	solver      *services.DemandSolver
	independent *services.IndependenceAnalyzer
	raw         *services.RawMaterialCalculator
	throughput  *services.ThroughputAnalyzer
	clock       shared.Clock
	validate    *validator.Validate
}

// NewPlanProductionLineHandler creates a new handler; a nil clock means wall time
func NewPlanProductionLineHandler(catalog production.RecipeCatalog, clock shared.Clock) *PlanProductionLineHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &PlanProductionLineHandler{
		catalog:     catalog,
		builder:     services.NewDependencyTreeBuilder(catalog),
		solver:      services.NewDemandSolver(catalog),
		independent: services.NewIndependenceAnalyzer(catalog),
		raw:         services.NewRawMaterialCalculator(catalog),
		throughput:  services.NewThroughputAnalyzer(),
		clock:       clock,
		validate:    validator.New(),
	}
}

// Handle executes the command
func (h *PlanProductionLineHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*PlanProductionLineCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := common.LoggerFromContext(ctx)
	start := h.clock.Now()

	response, err := h.plan(ctx, cmd)

	result := metrics.PlanResult{
		Recipe:   cmd.Recipe,
		Success:  err == nil,
		Duration: h.clock.Now().Sub(start).Seconds(),
	}
	if err != nil {
		metrics.RecordPlan(result)
		logger.Log(common.LevelError, "Production line planning failed", map[string]interface{}{
			"recipe":   cmd.Recipe,
			"quantity": cmd.Quantity.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	result.Nodes = response.Tree.Len()
	result.ProducersBySource = producersBySource(response.Setup)
	metrics.RecordPlan(result)

	logger.Log(common.LevelInfo, "Production line planned", map[string]interface{}{
		"plan_id":   response.PlanID,
		"recipe":    cmd.Recipe,
		"rate":      response.Rate,
		"nodes":     response.Tree.Len(),
		"producers": totalProducers(response.Setup),
	})

	return response, nil
}

func (h *PlanProductionLineHandler) plan(ctx context.Context, cmd *PlanProductionLineCommand) (*PlanProductionLineResponse, error) {
	logger := common.LoggerFromContext(ctx)

	if err := h.validate.Struct(cmd); err != nil {
		return nil, shared.NewValidationError("command", err.Error())
	}
	if err := cmd.Quantity.Validate(); err != nil {
		return nil, err
	}
	if err := cmd.Speeds.Validate(); err != nil {
		return nil, shared.NewValidationError("speeds", err.Error())
	}

	displayed, err := displayedSet(cmd.DisplayedSources)
	if err != nil {
		return nil, err
	}

	root, err := h.catalog.FindRecipe(cmd.Recipe)
	if err != nil {
		return nil, err
	}

	logger.Log(common.LevelInfo, "Planning production line", map[string]interface{}{
		"recipe":    root.Name,
		"quantity":  cmd.Quantity.String(),
		"displayed": displayed.Sorted(),
	})

	tree, err := h.builder.BuildDependencyTree(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency tree for %s: %w", root.Name, err)
	}

	setup, err := h.solver.Solve(root, cmd.Quantity, tree, cmd.Speeds)
	if err != nil {
		return nil, fmt.Errorf("failed to solve production line for %s: %w", root.Name, err)
	}

	for _, s := range setup.Setups() {
		logger.Log(common.LevelDebug, "Solved production setup", map[string]interface{}{
			"item":       s.Name(),
			"count":      s.Count,
			"efficiency": s.Efficiency,
			"consumed":   s.Consumed,
			"produced":   s.Produced,
		})
	}

	independent, err := h.independent.ClassifyTree(tree, displayed)
	if err != nil {
		return nil, fmt.Errorf("failed to classify independent trees: %w", err)
	}

	raw, err := h.raw.Calculate(setup, displayed, cmd.Speeds)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate raw materials: %w", err)
	}

	return &PlanProductionLineResponse{
		PlanID:       utils.GeneratePlanID(root.Name),
		Recipe:       root,
		Quantity:     cmd.Quantity,
		Rate:         cmd.Quantity.Rate(root, cmd.Speeds),
		Setup:        setup,
		Tree:         tree,
		Independent:  independent,
		RawMaterials: raw,
		IO:           h.throughput.AnalyzeLine(setup, displayed, cmd.Speeds),
		Displayed:    displayed,
		CreatedAt:    h.clock.Now(),
	}, nil
}

// displayedSet validates the requested kinds; an empty request shows assemblers
func displayedSet(sources []recipe.Source) (recipe.SourceSet, error) {
	if len(sources) == 0 {
		return recipe.NewSourceSet(recipe.SourceAssembler), nil
	}
	for _, source := range sources {
		if !source.IsValid() {
			return nil, shared.NewValidationError("displayed_sources", fmt.Sprintf("unknown producer kind %q", source))
		}
	}
	return recipe.NewSourceSet(sources...), nil
}

func producersBySource(setup *production.ProductionLineSetup) map[string]int {
	counts := make(map[string]int)
	for _, source := range recipe.AllSources() {
		if setup.ContainsSource(source) {
			counts[source.String()] = setup.TotalCount(source)
		}
	}
	return counts
}

func totalProducers(setup *production.ProductionLineSetup) int {
	total := 0
	for _, s := range setup.Setups() {
		total += s.Count
	}
	return total
}
