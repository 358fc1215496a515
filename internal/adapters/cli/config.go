package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect factory planner configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command line flags
2. Environment variables (FP_* prefix, e.g. FP_CATALOG_SOURCE)
3. Config file (planner.yaml)
4. Default values

Example:
  factory-planner config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func writeConfig(out io.Writer, c *config.Config) {
	fmt.Fprintln(out, "Factory Planner Configuration")
	fmt.Fprintln(out, "=============================")

	fmt.Fprintln(out, "\nCatalog:")
	fmt.Fprintf(out, "  Source:           %s\n", c.Catalog.Source)
	if c.Catalog.Path != "" {
		fmt.Fprintf(out, "  Path:             %s\n", c.Catalog.Path)
	}

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type:             %s\n", c.Database.Type)
	switch {
	case c.Database.URL != "":
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(c.Database.URL))
	case c.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", c.Database.Path)
	default:
		fmt.Fprintf(out, "  Host:             %s\n", c.Database.Host)
		fmt.Fprintf(out, "  Port:             %d\n", c.Database.Port)
		fmt.Fprintf(out, "  Database:         %s\n", c.Database.Name)
		fmt.Fprintf(out, "  User:             %s\n", c.Database.User)
	}

	fmt.Fprintln(out, "\nPlanner speeds:")
	fmt.Fprintf(out, "  Assembler:        %s\n", c.Planner.AssemblerSpeed)
	fmt.Fprintf(out, "  Furnace:          %s\n", c.Planner.FurnaceSpeed)
	fmt.Fprintf(out, "  Mine:             %s\n", c.Planner.MineSpeed)
	fmt.Fprintf(out, "  Lab:              %s\n", c.Planner.LabSpeed)
	fmt.Fprintf(out, "  Chemical Plant:   %s\n", c.Planner.ChemSpeed)
	fmt.Fprintf(out, "  Pump:             %s\n", c.Planner.PumpSpeed)
	fmt.Fprintf(out, "  Rocket Silo:      %s\n", c.Planner.RocketSiloSpeed)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", c.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", c.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", c.Logging.Output)

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %v\n", c.Metrics.Enabled)
	fmt.Fprintf(out, "  Output:           %s\n", c.Metrics.Output)
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	if _, ok := parsed.User.Password(); !ok {
		return raw
	}
	parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
	return parsed.String()
}
