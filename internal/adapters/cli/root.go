package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
)

var (
	// Global flags
	configPath    string
	catalogSource string
	catalogPath   string
	verbose       bool
	noColor       bool
	showMetrics   bool

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factory-planner",
		Short: "Factory planner - size production lines from recipe dependencies",
		Long: `Factory planner computes how many producers of each item a production
line needs to deliver a target rate, walking the recipe dependency graph down
to raw materials.

Examples:
  factory-planner plan "Green Circuit" -q 2/s
  factory-planner plan "Red Science" -q 10 --display-furnaces --assembler-speed blue
  factory-planner plan "Rocket Part" -q 1/m --display-io --display-dependency-data
  factory-planner tree "Blue Science"
  factory-planner catalog list --source chem
  factory-planner catalog import recipes.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyGlobalOverrides(cmd, loaded)
			if err := config.ValidateConfig(loaded); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg = loaded
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: planner.yaml in ., ./configs or ~/.factory-planner)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog-source", "",
		"Recipe catalog source: builtin, file or database")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog-path", "",
		"Path to a YAML recipe catalog (implies --catalog-source file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false,
		"Print Prometheus metrics after the command")

	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewTreeCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// applyGlobalOverrides lets explicit flags win over file and environment values
func applyGlobalOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("catalog-path") {
		c.Catalog.Path = catalogPath
		c.Catalog.Source = config.CatalogSourceFile
	}
	if flags.Changed("catalog-source") {
		c.Catalog.Source = catalogSource
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if flags.Changed("metrics") {
		c.Metrics.Enabled = showMetrics
	}
}

// runWithApplication builds the application for one command and tears it down after
func runWithApplication(run func(ctx context.Context, app *application) error) error {
	app, ctx, err := newApplication(context.Background(), cfg)
	if err != nil {
		return err
	}

	runErr := run(ctx, app)
	if err := app.close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
