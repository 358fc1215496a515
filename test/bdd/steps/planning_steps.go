package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	yamlcatalog "github.com/andrescamacho/factoryplanner-go/internal/adapters/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/cli"
	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/commands"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

type planningContext struct {
	catalog   *recipe.Catalog
	speeds    production.SpeedConfig
	displayed []recipe.Source

	clock  *shared.MockClock
	logger *helpers.RecordingLogger

	response *commands.PlanProductionLineResponse
	err      error
}

func (ctx *planningContext) reset() {
	ctx.catalog = nil
	ctx.speeds = production.DefaultSpeedConfig()
	ctx.displayed = []recipe.Source{recipe.SourceAssembler}
	ctx.clock = shared.NewMockClock(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx.logger = helpers.NewRecordingLogger()
	ctx.response = nil
	ctx.err = nil
}

// Given steps

func (ctx *planningContext) aRecipeCatalog(table *godog.Table) error {
	recipes, err := recipesFromTable(table)
	if err != nil {
		return err
	}
	ctx.catalog, err = recipe.NewCatalog(recipes)
	return err
}

func (ctx *planningContext) theBuiltinRecipeCatalog() error {
	catalog, err := yamlcatalog.Builtin()
	if err != nil {
		return err
	}
	ctx.catalog = catalog
	return nil
}

func (ctx *planningContext) producersRunAtSpeed(sourceName, input string) error {
	source, err := recipe.ParseSource(sourceName)
	if err != nil {
		return err
	}
	multiplier, err := cli.ParseSpeed(source, input)
	if err != nil {
		return err
	}
	ctx.speeds = ctx.speeds.With(source, multiplier)
	return nil
}

func (ctx *planningContext) onlyProducersAreDisplayed(sources string) error {
	parsed, err := parseSources(sources)
	if err != nil {
		return err
	}
	ctx.displayed = parsed
	return nil
}

// When steps

func (ctx *planningContext) iPlanAt(name, quantityInput string) error {
	if ctx.catalog == nil {
		return fmt.Errorf("no recipe catalog configured")
	}

	quantity, err := cli.ParseQuantity(quantityInput)
	if err != nil {
		ctx.err = err
		return nil
	}

	med := mediator.NewMediator()
	if err := mediator.RegisterHandler[*commands.PlanProductionLineCommand](med,
		commands.NewPlanProductionLineHandler(ctx.catalog, ctx.clock)); err != nil {
		return err
	}

	runCtx := common.WithLogger(context.Background(), ctx.logger)
	response, err := med.Send(runCtx, &commands.PlanProductionLineCommand{
		Recipe:           name,
		Quantity:         quantity,
		Speeds:           ctx.speeds,
		DisplayedSources: ctx.displayed,
	})
	if err != nil {
		ctx.err = err
		return nil
	}

	plan, ok := response.(*commands.PlanProductionLineResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}
	ctx.response = plan
	return nil
}

// Then steps

func (ctx *planningContext) thePlanShouldSucceed() error {
	if ctx.err != nil {
		return fmt.Errorf("expected plan to succeed, got: %w", ctx.err)
	}
	if ctx.response == nil {
		return fmt.Errorf("expected a plan, got none")
	}
	return nil
}

func (ctx *planningContext) thePlanShouldFailWithAnErrorContaining(text string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", text)
	}
	if !strings.Contains(ctx.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got %q", text, ctx.err.Error())
	}
	return nil
}

func (ctx *planningContext) thePlanShouldNeed(table *godog.Table) error {
	if err := ctx.thePlanShouldSucceed(); err != nil {
		return err
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}

		item := getCellValue(table, row, "item")
		setup, ok := ctx.response.Setup.Get(item)
		if !ok {
			return fmt.Errorf("plan has no setup for %s; setups: %v", item, ctx.response.Setup.Names())
		}

		expectedCount, err := strconv.Atoi(getCellValue(table, row, "producers"))
		if err != nil {
			return fmt.Errorf("invalid producers value for %s: %w", item, err)
		}
		if setup.Count != expectedCount {
			return fmt.Errorf("expected %d producers for %s, got %d", expectedCount, item, setup.Count)
		}

		if expected := getCellValue(table, row, "efficiency"); expected != "" {
			actual := fmt.Sprintf("%.0f%%", setup.Efficiency*100)
			if actual != expected {
				return fmt.Errorf("expected %s efficiency for %s, got %s", expected, item, actual)
			}
		}
	}
	return nil
}

func (ctx *planningContext) thePlanShouldListItemsInOrder(names string) error {
	if err := ctx.thePlanShouldSucceed(); err != nil {
		return err
	}

	expected := splitList(names)
	actual := ctx.response.Setup.Names()
	if strings.Join(expected, ", ") != strings.Join(actual, ", ") {
		return fmt.Errorf("expected solve order %v, got %v", expected, actual)
	}
	return nil
}

func (ctx *planningContext) theRawMaterialsShouldBe(table *godog.Table) error {
	if err := ctx.thePlanShouldSucceed(); err != nil {
		return err
	}

	rates := make(map[string]float64, len(ctx.response.RawMaterials))
	for _, material := range ctx.response.RawMaterials {
		rates[material.Name] = material.PerSecond
	}

	if len(rates) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d raw materials, got %v", len(table.Rows)-1, ctx.response.RawMaterials)
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}

		item := getCellValue(table, row, "item")
		expected, err := strconv.ParseFloat(getCellValue(table, row, "per second"), 64)
		if err != nil {
			return fmt.Errorf("invalid rate for %s: %w", item, err)
		}
		actual, ok := rates[item]
		if !ok {
			return fmt.Errorf("raw material %s not found in %v", item, ctx.response.RawMaterials)
		}
		if math.Abs(actual-expected) > 1e-9 {
			return fmt.Errorf("expected %s at %v/s, got %v/s", item, expected, actual)
		}
	}
	return nil
}

func (ctx *planningContext) everySetupShouldProduceAtLeastWhatIsConsumed() error {
	if err := ctx.thePlanShouldSucceed(); err != nil {
		return err
	}

	for _, setup := range ctx.response.Setup.Setups() {
		if setup.Produced+1e-9 < setup.Consumed {
			return fmt.Errorf("%s produces %v/s but %v/s is consumed", setup.Name(), setup.Produced, setup.Consumed)
		}
		if setup.Efficiency <= 0 || setup.Efficiency > 1 {
			return fmt.Errorf("%s has efficiency %v outside (0, 1]", setup.Name(), setup.Efficiency)
		}
	}
	return nil
}

func (ctx *planningContext) thePlanShouldBeLogged() error {
	if !ctx.logger.HasMessage(common.LevelInfo, "Production line planned") {
		return fmt.Errorf("expected plan to be logged, got entries: %v", ctx.logger.Entries())
	}
	return nil
}

// InitializePlanningScenario registers the production line planning steps
func InitializePlanningScenario(sc *godog.ScenarioContext) {
	planCtx := &planningContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		planCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a recipe catalog:$`, planCtx.aRecipeCatalog)
	sc.Step(`^the builtin recipe catalog$`, planCtx.theBuiltinRecipeCatalog)
	sc.Step(`^([a-z-]+) producers run at speed "([^"]*)"$`, planCtx.producersRunAtSpeed)
	sc.Step(`^only "([^"]*)" producers are displayed$`, planCtx.onlyProducersAreDisplayed)
	sc.Step(`^I plan "([^"]*)" at "([^"]*)"$`, planCtx.iPlanAt)
	sc.Step(`^the plan should succeed$`, planCtx.thePlanShouldSucceed)
	sc.Step(`^the plan should fail with an error containing "([^"]*)"$`, planCtx.thePlanShouldFailWithAnErrorContaining)
	sc.Step(`^the plan should need:$`, planCtx.thePlanShouldNeed)
	sc.Step(`^the plan should solve "([^"]*)" in that order$`, planCtx.thePlanShouldListItemsInOrder)
	sc.Step(`^the raw materials should be:$`, planCtx.theRawMaterialsShouldBe)
	sc.Step(`^every setup should produce at least what is consumed$`, planCtx.everySetupShouldProduceAtLeastWhatIsConsumed)
	sc.Step(`^the plan should be logged$`, planCtx.thePlanShouldBeLogged)
}
