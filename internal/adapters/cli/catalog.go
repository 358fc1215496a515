package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	yamlcatalog "github.com/andrescamacho/factoryplanner-go/internal/adapters/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/logging"
	"github.com/andrescamacho/factoryplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/database"
	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the recipe catalog",
		Long: `Inspect and manage the recipe catalog.

Examples:
  factory-planner catalog list
  factory-planner catalog list --source furnace
  factory-planner catalog show "Green Circuit"
  factory-planner catalog import my-recipes.yaml
  factory-planner catalog export > recipes.yaml`,
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogImportCommand())
	cmd.AddCommand(newCatalogExportCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally for one producer kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &queries.ListRecipesQuery{}
			if source != "" {
				parsed, err := recipe.ParseSource(source)
				if err != nil {
					return err
				}
				query.Source = parsed
			}

			return runWithApplication(func(ctx context.Context, app *application) error {
				response, err := app.send(ctx, query)
				if err != nil {
					return err
				}
				list, ok := response.(*queries.ListRecipesResponse)
				if !ok {
					return fmt.Errorf("unexpected response type %T", response)
				}

				rows := make([][]string, 0, len(list.Recipes))
				for _, r := range list.Recipes {
					rows = append(rows, []string{
						r.Name,
						r.Source.Label(),
						fmt.Sprintf("%ss", utils.FormatPossibleFraction(r.Time)),
						fmt.Sprintf("x%s", utils.FormatPossibleFraction(r.Yield)),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatTable(rows))
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d recipes\n", len(list.Recipes))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Only list recipes of this producer kind")
	return cmd
}

func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApplication(func(ctx context.Context, app *application) error {
				r, err := app.catalog.FindRecipe(args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Recipe:    %s\n", r.Name)
				fmt.Fprintf(out, "Producer:  %s\n", r.Source.Label())
				fmt.Fprintf(out, "Time:      %ss\n", utils.FormatPossibleFraction(r.Time))
				fmt.Fprintf(out, "Yield:     %s\n", utils.FormatPossibleFraction(r.Yield))
				if r.IsRaw() {
					fmt.Fprintln(out, "Inputs:    none (raw resource)")
					return nil
				}

				inputs := make([]string, 0, len(r.Requirements))
				for _, req := range r.Requirements {
					inputs = append(inputs, fmt.Sprintf("%s x%s", req.Name, utils.FormatPossibleFraction(req.Amount)))
				}
				fmt.Fprintf(out, "Inputs:    %s\n", strings.Join(inputs, ", "))
				return nil
			})
		},
	}
}

func newCatalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Write recipes from a YAML file into the recipe database",
		Long: `Write recipes from a YAML file into the recipe database configured in
the database section. Recipes replace stored recipes with the same name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := yamlcatalog.ReadRecipes(args[0])
			if err != nil {
				return err
			}

			// Validate the file on its own before touching the database
			imported, err := recipe.NewCatalog(recipes)
			if err != nil {
				return fmt.Errorf("invalid catalog file: %w", err)
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate recipe tables: %w", err)
			}

			logger, err := logging.NewStdLoggerFromConfig(cfg.Logging)
			if err != nil {
				return err
			}
			defer logger.Close()
			ctx := common.WithLogger(context.Background(), logger)

			repo := persistence.NewGormRecipeRepository(db)
			if err := repo.SaveRecipes(ctx, imported.Recipes()); err != nil {
				return err
			}

			count, err := repo.Count(ctx)
			if err != nil {
				return err
			}

			common.LoggerFromContext(ctx).Log(common.LevelInfo, "Catalog imported", map[string]interface{}{
				"file":     args[0],
				"imported": imported.Len(),
				"stored":   count,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d recipes (%d stored)\n", imported.Len(), count)
			return nil
		},
	}
}

func newCatalogExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the active catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApplication(func(ctx context.Context, app *application) error {
				data, err := yamlcatalog.Encode(app.catalog.Recipes())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}
