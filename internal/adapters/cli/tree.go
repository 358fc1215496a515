package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// NewTreeCommand creates the tree command
func NewTreeCommand() *cobra.Command {
	var displayed []string
	var showLevels bool

	cmd := &cobra.Command{
		Use:   "tree <recipe>",
		Short: "Show the dependency tree of a recipe",
		Long: `Show the dependency tree of a recipe down to raw materials.

Items whose whole sub-tree is consumed only from within are marked
[independent] for the displayed producer kinds.

Examples:
  factory-planner tree "Green Circuit"
  factory-planner tree "Blue Science" --display assembler,chem --levels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := parseSources(displayed)
			if err != nil {
				return err
			}

			return runWithApplication(func(ctx context.Context, app *application) error {
				response, err := app.send(ctx, &queries.GetDependencyGraphQuery{
					Recipe:           args[0],
					DisplayedSources: sources,
				})
				if err != nil {
					return err
				}

				graph, ok := response.(*queries.GetDependencyGraphResponse)
				if !ok {
					return fmt.Errorf("unexpected response type %T", response)
				}

				formatter := NewTreeFormatter(app.catalog, !noColor)
				out := cmd.OutOrStdout()
				fmt.Fprint(out, formatter.FormatTree(graph))
				fmt.Fprintln(out, formatter.FormatTreeSummary(graph))
				if showLevels {
					fmt.Fprintln(out)
					fmt.Fprintln(out, formatter.FormatLevels(graph.Levels))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&displayed, "display", []string{string(recipe.SourceAssembler)},
		"Producer kinds considered displayed for independence")
	cmd.Flags().BoolVar(&showLevels, "levels", false, "List the leveling passes")

	return cmd
}

func parseSources(values []string) ([]recipe.Source, error) {
	sources := make([]recipe.Source, 0, len(values))
	for _, value := range values {
		source, err := recipe.ParseSource(value)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
