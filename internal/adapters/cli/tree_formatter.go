package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/queries"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// TreeFormatter provides rich visualization of recipe dependency trees
type TreeFormatter struct {
	useColors bool
	catalog   production.RecipeCatalog
}

// NewTreeFormatter creates a new tree formatter; the catalog supplies producer kinds
func NewTreeFormatter(catalog production.RecipeCatalog, useColors bool) *TreeFormatter {
	return &TreeFormatter{
		useColors: useColors,
		catalog:   catalog,
	}
}

// FormatTree renders the dependency tree from the root down. An item reached a
// second time is printed once more but not expanded again.
func (f *TreeFormatter) FormatTree(graph *queries.GetDependencyGraphResponse) string {
	if graph == nil || graph.Recipe == nil {
		return "(empty tree)"
	}

	independent := make(map[string]bool, len(graph.Independent))
	for _, name := range graph.Independent {
		independent[name] = true
	}

	var builder strings.Builder
	expanded := make(map[string]bool)
	f.formatNode(&builder, graph.Tree, graph.Recipe.Name, "", true, true, independent, expanded)
	return builder.String()
}

// formatNode recursively formats a node and its children
func (f *TreeFormatter) formatNode(
	builder *strings.Builder,
	tree *production.DependencyTree,
	name string,
	prefix string,
	isLast bool,
	isRoot bool,
	independent map[string]bool,
	expanded map[string]bool,
) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	children := tree.DependenciesOf(name)
	repeated := expanded[name] && len(children) > 0

	markers := ""
	if independent[name] {
		markers += " [independent]"
	}
	if repeated {
		markers += " (see above)"
	}

	source := f.sourceOf(name)
	builder.WriteString(fmt.Sprintf("%s%s [%s%s%s]%s\n",
		linePrefix,
		name,
		f.sourceColor(source),
		source.Label(),
		f.colorReset(),
		markers,
	))

	if repeated {
		return
	}
	expanded[name] = true

	var childPrefix string
	if isRoot {
		childPrefix = ""
	} else if isLast {
		childPrefix = prefix + "    "
	} else {
		childPrefix = prefix + "│   "
	}

	for i, child := range children {
		f.formatNode(builder, tree, child, childPrefix, i == len(children)-1, false, independent, expanded)
	}
}

func (f *TreeFormatter) sourceOf(name string) recipe.Source {
	r, err := f.catalog.FindRecipe(name)
	if err != nil {
		return recipe.SourceNone
	}
	return r.Source
}

// sourceColor returns ANSI color code for a producer kind
func (f *TreeFormatter) sourceColor(source recipe.Source) string {
	if !f.useColors {
		return ""
	}

	switch source {
	case recipe.SourceAssembler, recipe.SourceRocketSilo:
		return colorBlue
	case recipe.SourceFurnace, recipe.SourceChem:
		return colorYellow
	case recipe.SourceMine, recipe.SourcePump, recipe.SourceNone:
		return colorGreen
	default:
		return ""
	}
}

// colorReset returns ANSI reset code
func (f *TreeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return colorReset
}

// FormatLevels lists the leveling passes, one line per level
func (f *TreeFormatter) FormatLevels(levels []services.ProductionLevel) string {
	lines := make([]string, 0, len(levels))
	for _, level := range levels {
		shared := ""
		if level.Shared > 0 {
			shared = fmt.Sprintf(" (%d shared)", level.Shared)
		}
		lines = append(lines, fmt.Sprintf("Level %d%s: %s", level.Depth, shared, strings.Join(level.Items, ", ")))
	}
	return strings.Join(lines, "\n")
}

// FormatTreeSummary creates a compact summary of the tree
func (f *TreeFormatter) FormatTreeSummary(graph *queries.GetDependencyGraphResponse) string {
	if graph == nil || graph.Tree == nil {
		return "No dependency tree"
	}

	return fmt.Sprintf(
		"Tree: %d items, %d levels, %d shared, %d independent",
		graph.Tree.Len(), len(graph.Levels), len(graph.Shared), len(graph.Independent),
	)
}
