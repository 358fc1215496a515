package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	yamlcatalog "github.com/andrescamacho/factoryplanner-go/internal/adapters/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/commands"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/database"
)

type recipeDatabaseContext struct {
	db   *gorm.DB
	repo *persistence.GormRecipeRepository

	catalog *recipe.Catalog
	plan    *commands.PlanProductionLineResponse
	err     error
}

func (ctx *recipeDatabaseContext) reset() {
	if ctx.db != nil {
		database.Close(ctx.db)
	}
	ctx.db = nil
	ctx.repo = nil
	ctx.catalog = nil
	ctx.plan = nil
	ctx.err = nil
}

func (ctx *recipeDatabaseContext) anEmptyRecipeDatabase() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}
	ctx.db = db
	ctx.repo = persistence.NewGormRecipeRepository(db)
	return nil
}

func (ctx *recipeDatabaseContext) iImportTheCatalogFile(doc *godog.DocString) error {
	imported, err := yamlcatalog.Parse([]byte(doc.Content))
	if err != nil {
		ctx.err = err
		return nil
	}
	ctx.err = ctx.repo.SaveRecipes(context.Background(), imported.Recipes())
	return nil
}

func (ctx *recipeDatabaseContext) theDatabaseShouldHoldRecipes(expected int) error {
	count, err := ctx.repo.Count(context.Background())
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d stored recipes, got %d", expected, count)
	}
	return nil
}

func (ctx *recipeDatabaseContext) theImportShouldFailWithAnErrorContaining(text string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", text)
	}
	if !strings.Contains(ctx.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got %q", text, ctx.err.Error())
	}
	return nil
}

func (ctx *recipeDatabaseContext) theImportShouldSucceed() error {
	if ctx.err != nil {
		return fmt.Errorf("import failed: %w", ctx.err)
	}
	return nil
}

func (ctx *recipeDatabaseContext) storedRecipeShouldRequire(name, requirement string, amount float64) error {
	r, err := ctx.repo.FindByName(context.Background(), name)
	if err != nil {
		return err
	}
	if got := r.AmountOf(requirement); got != amount {
		return fmt.Errorf("expected %s to require %v %s, got %v", name, amount, requirement, got)
	}
	return nil
}

func (ctx *recipeDatabaseContext) iPlanFromTheDatabaseAtPerSecond(name string, rate float64) error {
	catalog, err := ctx.repo.LoadCatalog(context.Background())
	if err != nil {
		return err
	}
	ctx.catalog = catalog

	response, err := commands.NewPlanProductionLineHandler(catalog, nil).Handle(context.Background(),
		&commands.PlanProductionLineCommand{
			Recipe:   name,
			Quantity: production.RateQuantity(rate),
			Speeds:   production.DefaultSpeedConfig(),
		})
	if err != nil {
		return err
	}

	plan, ok := response.(*commands.PlanProductionLineResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}
	ctx.plan = plan
	return nil
}

func (ctx *recipeDatabaseContext) theDatabasePlanShouldNeedProducers(expected int, name string) error {
	if ctx.plan == nil {
		return fmt.Errorf("no plan computed")
	}
	setup, ok := ctx.plan.Setup.Get(name)
	if !ok {
		return fmt.Errorf("plan has no setup for %s", name)
	}
	if setup.Count != expected {
		return fmt.Errorf("expected %d %s producers, got %d", expected, name, setup.Count)
	}
	return nil
}

// InitializeRecipeDatabaseScenario registers the recipe import and storage steps
func InitializeRecipeDatabaseScenario(sc *godog.ScenarioContext) {
	dbCtx := &recipeDatabaseContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		dbCtx.reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		dbCtx.reset()
		return ctx, nil
	})

	sc.Step(`^an empty recipe database$`, dbCtx.anEmptyRecipeDatabase)
	sc.Step(`^I import the catalog file:$`, dbCtx.iImportTheCatalogFile)
	sc.Step(`^the import should succeed$`, dbCtx.theImportShouldSucceed)
	sc.Step(`^the database should hold (\d+) recipes$`, dbCtx.theDatabaseShouldHoldRecipes)
	sc.Step(`^the import should fail with an error containing "([^"]*)"$`, dbCtx.theImportShouldFailWithAnErrorContaining)
	sc.Step(`^the stored recipe "([^"]*)" should require "([^"]*)" x([\d.]+)$`, dbCtx.storedRecipeShouldRequire)
	sc.Step(`^I plan "([^"]*)" from the database at ([\d.]+) per second$`, dbCtx.iPlanFromTheDatabaseAtPerSecond)
	sc.Step(`^the database plan should need (\d+) "([^"]*)" producers$`, dbCtx.theDatabasePlanShouldNeedProducers)
}
