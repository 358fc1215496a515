package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/commands"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
)

// planOptions holds the flags of the plan command
type planOptions struct {
	quantity string

	assemblerSpeed  string
	furnaceSpeed    string
	mineSpeed       string
	labSpeed        string
	chemSpeed       string
	pumpSpeed       string
	rocketSiloSpeed string

	displayRaw            bool
	displayAssemblers     bool
	displayRocketSilos    bool
	displayFurnaces       bool
	displayChemicals      bool
	displayMines          bool
	displayLabs           bool
	displayDependencyData bool
	displayIO             bool
}

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <recipe>",
		Short: "Compute the producers needed for a target output",
		Long: `Compute the producers needed for a target output.

The quantity is either a producer count for the requested item ("12") or a rate:
"<amount>/<time><unit>" where unit is s, m or h ("2/s", "30/m", "5/2s").

Speeds accept presets, numbers and a "+P%" productivity suffix:
  assembler: max, grey, blue, yellow    furnace: max, stone, steel, electric
  mine:      max, burner, electric, N%  lab:     max, N%
  chem, pump, rocket silo: max, base, N%

Examples:
  factory-planner plan "Green Circuit" -q 2/s
  factory-planner plan "Blue Science" -q 1/s --display-chemicals --display-furnaces
  factory-planner plan "Low Density Structure" -q 4 --assembler-speed 1.25+40%`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApplication(func(ctx context.Context, app *application) error {
				return runPlan(ctx, app, args[0], opts, cmd.OutOrStdout())
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.quantity, "quantity", "q", "", "Producer count or rate, e.g. 10 or 2/s (required)")
	_ = cmd.MarkFlagRequired("quantity")

	flags.StringVar(&opts.assemblerSpeed, "assembler-speed", "", "Assembler speed (default from config: max)")
	flags.StringVar(&opts.furnaceSpeed, "furnace-speed", "", "Furnace speed (default from config: max)")
	flags.StringVar(&opts.mineSpeed, "mine-speed", "", "Mining drill speed (default from config: max)")
	flags.StringVar(&opts.labSpeed, "lab-speed", "", "Lab speed (default from config: max)")
	flags.StringVar(&opts.chemSpeed, "chem-speed", "", "Chemical plant speed (default from config: 1)")
	flags.StringVar(&opts.pumpSpeed, "pump-speed", "", "Pump speed (default from config: 1)")
	flags.StringVar(&opts.rocketSiloSpeed, "rocket-silo-speed", "", "Rocket silo speed (default from config: 1)")

	flags.BoolVar(&opts.displayRaw, "display-raw", true, "Show raw materials flowing into the displayed producers")
	flags.BoolVar(&opts.displayAssemblers, "display-assemblers", true, "Show assembler setups")
	flags.BoolVar(&opts.displayRocketSilos, "display-rocket-silos", true, "Show rocket silo setups")
	flags.BoolVar(&opts.displayFurnaces, "display-furnaces", false, "Show furnace setups")
	flags.BoolVar(&opts.displayChemicals, "display-chemicals", false, "Show chemical plant setups")
	flags.BoolVar(&opts.displayMines, "display-mines", false, "Show mining setups")
	flags.BoolVar(&opts.displayLabs, "display-labs", false, "Show lab setups")
	flags.BoolVar(&opts.displayDependencyData, "display-dependency-data", false, "Print vis.js dependency graph data")
	flags.BoolVar(&opts.displayIO, "display-io", false, "Show per-producer inputs, outputs and belts")

	return cmd
}

// speedInputs merges explicit flags over the configured defaults
func (o *planOptions) speedInputs(planner config.PlannerConfig) map[recipe.Source]string {
	pick := func(flag, fallback string) string {
		if flag != "" {
			return flag
		}
		return fallback
	}

	return map[recipe.Source]string{
		recipe.SourceAssembler:  pick(o.assemblerSpeed, planner.AssemblerSpeed),
		recipe.SourceFurnace:    pick(o.furnaceSpeed, planner.FurnaceSpeed),
		recipe.SourceMine:       pick(o.mineSpeed, planner.MineSpeed),
		recipe.SourceLab:        pick(o.labSpeed, planner.LabSpeed),
		recipe.SourceChem:       pick(o.chemSpeed, planner.ChemSpeed),
		recipe.SourcePump:       pick(o.pumpSpeed, planner.PumpSpeed),
		recipe.SourceRocketSilo: pick(o.rocketSiloSpeed, planner.RocketSiloSpeed),
	}
}

// displayedSources lists the producer kinds selected by the display flags
func (o *planOptions) displayedSources() []recipe.Source {
	selected := map[recipe.Source]bool{
		recipe.SourceAssembler:  o.displayAssemblers,
		recipe.SourceRocketSilo: o.displayRocketSilos,
		recipe.SourceFurnace:    o.displayFurnaces,
		recipe.SourceLab:        o.displayLabs,
		recipe.SourceMine:       o.displayMines,
		recipe.SourceChem:       o.displayChemicals,
	}

	sources := make([]recipe.Source, 0, len(selected))
	for _, source := range recipe.AllSources() {
		if selected[source] {
			sources = append(sources, source)
		}
	}
	return sources
}

func runPlan(ctx context.Context, app *application, recipeName string, opts *planOptions, out io.Writer) error {
	quantity, err := ParseQuantity(opts.quantity)
	if err != nil {
		return err
	}

	speeds, err := ParseSpeedConfig(opts.speedInputs(app.cfg.Planner))
	if err != nil {
		return err
	}

	displayed := opts.displayedSources()
	if len(displayed) == 0 {
		return fmt.Errorf("nothing to display: enable at least one --display-<kind> flag")
	}

	response, err := app.send(ctx, &commands.PlanProductionLineCommand{
		Recipe:           recipeName,
		Quantity:         quantity,
		Speeds:           speeds,
		DisplayedSources: displayed,
	})
	if err != nil {
		return err
	}

	plan, ok := response.(*commands.PlanProductionLineResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}

	return writePlan(out, plan, opts, app)
}

// writePlan prints the sections in the same order as the display flags
func writePlan(out io.Writer, plan *commands.PlanProductionLineResponse, opts *planOptions, app *application) error {
	formatter := NewPlanFormatter(!noColor)

	for _, source := range recipe.AllSources() {
		if !plan.Displayed.Contains(source) || !plan.Setup.ContainsSource(source) {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s Setup\n", source.Label())
		fmt.Fprintln(out, formatter.FormatSetup(plan.Setup, source))
	}

	if opts.displayRaw {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Raw materials")
		fmt.Fprintln(out, formatter.FormatRawMaterials(plan.RawMaterials))
	}

	if opts.displayDependencyData {
		data, err := formatter.FormatDependencyData(plan.Recipe.Name, plan.Tree, plan.Independent, plan.Displayed, app.catalog)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Dependency Data")
		fmt.Fprintln(out, data)
	}

	if opts.displayIO {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Inputs and Outputs")
		fmt.Fprintln(out, formatter.FormatIO(plan.IO))
	}

	return nil
}
