package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	yamlcatalog "github.com/andrescamacho/factoryplanner-go/internal/adapters/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/logging"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/commands"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/database"
)

// application holds everything a command needs once configuration is loaded.
// The catalog is read once and stays read-only for the life of the process.
type application struct {
	cfg      *config.Config
	catalog  *recipe.Catalog
	mediator mediator.Mediator
	logger   *logging.StdLogger
}

// newApplication opens the logger, loads the catalog and registers handlers
func newApplication(ctx context.Context, cfg *config.Config) (*application, context.Context, error) {
	logger, err := logging.NewStdLoggerFromConfig(cfg.Logging)
	if err != nil {
		return nil, ctx, err
	}
	ctx = common.WithLogger(ctx, logger)

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Close()
		return nil, ctx, err
	}

	med := mediator.NewMediator()
	if cfg.Metrics.Enabled {
		if err := enableMetrics(med); err != nil {
			logger.Close()
			return nil, ctx, err
		}
	}

	if err := registerHandlers(med, catalog, shared.NewRealClock()); err != nil {
		logger.Close()
		return nil, ctx, err
	}

	logger.Log(common.LevelDebug, "Catalog loaded", map[string]interface{}{
		"source":  cfg.Catalog.Source,
		"recipes": catalog.Len(),
	})

	return &application{
		cfg:      cfg,
		catalog:  catalog,
		mediator: med,
		logger:   logger,
	}, ctx, nil
}

// registerHandlers wires every planning command and query into the mediator
func registerHandlers(med mediator.Mediator, catalog *recipe.Catalog, clock shared.Clock) error {
	if err := mediator.RegisterHandler[*commands.PlanProductionLineCommand](med, commands.NewPlanProductionLineHandler(catalog, clock)); err != nil {
		return fmt.Errorf("failed to register PlanProductionLine handler: %w", err)
	}
	if err := mediator.RegisterHandler[*queries.GetDependencyGraphQuery](med, queries.NewGetDependencyGraphHandler(catalog)); err != nil {
		return fmt.Errorf("failed to register GetDependencyGraph handler: %w", err)
	}
	if err := mediator.RegisterHandler[*queries.ListRecipesQuery](med, queries.NewListRecipesHandler(catalog)); err != nil {
		return fmt.Errorf("failed to register ListRecipes handler: %w", err)
	}
	return nil
}

func enableMetrics(med mediator.Mediator) error {
	metrics.InitRegistry()

	planCollector := metrics.NewPlanMetricsCollector()
	if err := planCollector.Register(); err != nil {
		return fmt.Errorf("failed to register plan metrics: %w", err)
	}
	metrics.SetGlobalPlanCollector(planCollector)

	commandCollector := metrics.NewCommandMetricsCollector()
	if err := commandCollector.Register(); err != nil {
		return fmt.Errorf("failed to register command metrics: %w", err)
	}
	med.RegisterMiddleware(metrics.PrometheusMiddleware(commandCollector))
	return nil
}

// loadCatalog reads recipes from the configured source
func loadCatalog(ctx context.Context, cfg *config.Config) (*recipe.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return yamlcatalog.Builtin()

	case config.CatalogSourceFile:
		catalog, err := yamlcatalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog file %s: %w", cfg.Catalog.Path, err)
		}
		return catalog, nil

	case config.CatalogSourceDatabase:
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate recipe tables: %w", err)
		}
		return persistence.NewGormRecipeRepository(db).LoadCatalog(ctx)

	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Catalog.Source)
	}
}

// close writes metrics, if enabled, and releases the log output
func (a *application) close() error {
	defer a.logger.Close()

	if !metrics.IsEnabled() {
		return nil
	}
	defer metrics.Reset()

	var out io.Writer
	switch a.cfg.Metrics.Output {
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		return nil
	}
	return metrics.WriteText(out)
}

// send dispatches a request through the mediator
func (a *application) send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return a.mediator.Send(ctx, request)
}
