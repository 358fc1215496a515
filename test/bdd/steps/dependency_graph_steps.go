package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

type dependencyGraphContext struct {
	catalog   *recipe.Catalog
	displayed []recipe.Source

	response *queries.GetDependencyGraphResponse
	err      error
}

func (ctx *dependencyGraphContext) reset() {
	ctx.catalog = nil
	ctx.displayed = []recipe.Source{recipe.SourceAssembler}
	ctx.response = nil
	ctx.err = nil
}

func (ctx *dependencyGraphContext) aDependencyCatalog(table *godog.Table) error {
	recipes, err := recipesFromTable(table)
	if err != nil {
		return err
	}
	ctx.catalog, err = recipe.NewCatalog(recipes)
	return err
}

func (ctx *dependencyGraphContext) theDisplayedKindsAre(sources string) error {
	parsed, err := parseSources(sources)
	if err != nil {
		return err
	}
	ctx.displayed = parsed
	return nil
}

func (ctx *dependencyGraphContext) iInspectTheDependencyGraphOf(name string) error {
	if ctx.catalog == nil {
		return fmt.Errorf("no recipe catalog configured")
	}

	response, err := queries.NewGetDependencyGraphHandler(ctx.catalog).Handle(context.Background(),
		&queries.GetDependencyGraphQuery{Recipe: name, DisplayedSources: ctx.displayed})
	if err != nil {
		ctx.err = err
		return nil
	}

	graph, ok := response.(*queries.GetDependencyGraphResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}
	ctx.response = graph
	return nil
}

func (ctx *dependencyGraphContext) theGraphShouldFailWithAnErrorContaining(text string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", text)
	}
	if !strings.Contains(ctx.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got %q", text, ctx.err.Error())
	}
	return nil
}

func (ctx *dependencyGraphContext) requireGraph() error {
	if ctx.err != nil {
		return fmt.Errorf("expected a dependency graph, got: %w", ctx.err)
	}
	if ctx.response == nil {
		return fmt.Errorf("expected a dependency graph, got none")
	}
	return nil
}

func (ctx *dependencyGraphContext) shouldBeConsumedBy(name, dependents string) error {
	if err := ctx.requireGraph(); err != nil {
		return err
	}

	node, ok := ctx.response.Tree.Get(name)
	if !ok {
		return fmt.Errorf("%s is not in the dependency tree", name)
	}
	expected := strings.Join(splitList(dependents), ", ")
	actual := strings.Join(node.Dependents, ", ")
	if expected != actual {
		return fmt.Errorf("expected %s to be consumed by [%s], got [%s]", name, expected, actual)
	}
	return nil
}

func (ctx *dependencyGraphContext) theIndependentItemsShouldBe(names string) error {
	if err := ctx.requireGraph(); err != nil {
		return err
	}

	expected := strings.Join(splitList(names), ", ")
	actual := strings.Join(ctx.response.Independent, ", ")
	if expected != actual {
		return fmt.Errorf("expected independent items [%s], got [%s]", expected, actual)
	}
	return nil
}

func (ctx *dependencyGraphContext) theLevelsShouldBe(table *godog.Table) error {
	if err := ctx.requireGraph(); err != nil {
		return err
	}

	if len(ctx.response.Levels) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d levels, got %d: %v", len(table.Rows)-1, len(ctx.response.Levels), ctx.response.Levels)
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		level := ctx.response.Levels[i-1]

		depth, err := strconv.Atoi(getCellValue(table, row, "level"))
		if err != nil {
			return fmt.Errorf("invalid level: %w", err)
		}
		if level.Depth != depth {
			return fmt.Errorf("expected level %d at row %d, got %d", depth, i, level.Depth)
		}

		expected := strings.Join(splitList(getCellValue(table, row, "items")), ", ")
		actual := strings.Join(level.Items, ", ")
		if expected != actual {
			return fmt.Errorf("expected level %d to hold [%s], got [%s]", depth, expected, actual)
		}
	}
	return nil
}

func (ctx *dependencyGraphContext) theSharedItemsShouldBe(names string) error {
	if err := ctx.requireGraph(); err != nil {
		return err
	}

	expected := strings.Join(splitList(names), ", ")
	actual := strings.Join(ctx.response.Shared, ", ")
	if expected != actual {
		return fmt.Errorf("expected shared items [%s], got [%s]", expected, actual)
	}
	return nil
}

// InitializeDependencyGraphScenario registers the dependency tree inspection steps
func InitializeDependencyGraphScenario(sc *godog.ScenarioContext) {
	graphCtx := &dependencyGraphContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		graphCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the recipes:$`, graphCtx.aDependencyCatalog)
	sc.Step(`^the displayed producer kinds are "([^"]*)"$`, graphCtx.theDisplayedKindsAre)
	sc.Step(`^I inspect the dependency graph of "([^"]*)"$`, graphCtx.iInspectTheDependencyGraphOf)
	sc.Step(`^inspecting the graph should fail with an error containing "([^"]*)"$`, graphCtx.theGraphShouldFailWithAnErrorContaining)
	sc.Step(`^"([^"]*)" should be consumed by "([^"]*)"$`, graphCtx.shouldBeConsumedBy)
	sc.Step(`^the independent items should be "([^"]*)"$`, graphCtx.theIndependentItemsShouldBe)
	sc.Step(`^the levels should be:$`, graphCtx.theLevelsShouldBe)
	sc.Step(`^the shared items should be "([^"]*)"$`, graphCtx.theSharedItemsShouldBe)
}
