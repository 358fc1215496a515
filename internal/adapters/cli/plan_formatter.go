package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planning/services"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorReset  = "\033[0m"

	// A cargo wagon pair moving 40 stacks of 100 once per minute
	trainItemsPerMinute = 40 * 100
	trainThreshold      = 70.0
)

var beltLevels = []string{"", "▂", "▄", "▆", "█"}

// PlanFormatter renders solved production lines as console tables
type PlanFormatter struct {
	useColors bool
}

// NewPlanFormatter creates a new plan formatter
func NewPlanFormatter(useColors bool) *PlanFormatter {
	return &PlanFormatter{useColors: useColors}
}

// FormatSetup renders the setups of one producer kind, in solve order, followed
// by a Total row. Example:
//
//	 Green Circuit  10  100% (2/2)
//	   Copper Wire  15  100% (6/6)
//	Total           25
func (f *PlanFormatter) FormatSetup(line *production.ProductionLineSetup, source recipe.Source) string {
	setups := line.BySource(source)
	if len(setups) == 0 {
		return ""
	}

	names := make([]string, 0, len(setups))
	counts := make([]string, 0, len(setups))
	for _, setup := range setups {
		names = append(names, setup.Name())
		counts = append(counts, fmt.Sprintf("%d", setup.Count))
	}
	nameWidth := utils.MaxWidth(names)
	countWidth := utils.MaxWidth(counts)

	lines := make([]string, 0, len(setups)+1)
	for i, setup := range setups {
		lines = append(lines, fmt.Sprintf("%s  %s  %.0f%% (%s/%s)",
			utils.PadLeft(names[i], nameWidth),
			utils.PadRight(counts[i], countWidth),
			setup.Efficiency*100,
			utils.FormatPossibleFraction(setup.Consumed),
			utils.FormatPossibleFraction(setup.Produced),
		))
	}
	lines = append(lines, fmt.Sprintf("%s  %d", utils.PadRight("Total", nameWidth), line.TotalCount(source)))

	return strings.Join(lines, "\n")
}

// FormatRawMaterials renders aggregate inflows with a belt indicator
func (f *PlanFormatter) FormatRawMaterials(materials []services.RawMaterial) string {
	rows := make([][]string, 0, len(materials))
	for _, material := range materials {
		rows = append(rows, []string{
			material.Name,
			fmt.Sprintf("%d/s", utils.CeilInt(material.PerSecond)),
			f.FormatBeltCapacity(material.PerSecond),
		})
	}
	return formatTable(rows)
}

// FormatIO renders row layout, inserters and belts for each displayed producer
func (f *PlanFormatter) FormatIO(reports []services.ProducerIO) string {
	lines := make([]string, 0)
	for _, report := range reports {
		lines = append(lines, fmt.Sprintf("  %s x%d", report.Name, report.Count))
		lines = append(lines, fmt.Sprintf("    Per row %d (%.1f) constrained by %s", report.PerRow, report.Rows, report.ConstrainedBy))

		for _, flow := range report.Flows {
			lines = append(lines, fmt.Sprintf("    %s %s %s (%s)",
				flow.Name,
				f.formatInserter(flow),
				f.FormatBeltCapacity(flow.PerProducer*float64(report.PerRow)),
				f.FormatBeltCapacity(flow.PerProducer*float64(report.Count)),
			))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatBeltCapacity picks the slowest belt tier that carries the flow and draws
// its fill level; flows above a blue belt show the number of belts, and large
// flows add a train estimate
func (f *PlanFormatter) FormatBeltCapacity(itemsPerSecond float64) string {
	switch {
	case itemsPerSecond <= 15:
		return f.colorize(colorYellow, beltIcon(15, itemsPerSecond))
	case itemsPerSecond <= 30:
		return f.colorize(colorRed, beltIcon(30, itemsPerSecond))
	}

	blue := f.colorize(colorBlue, beltIcon(services.ExpressBeltCapacity, itemsPerSecond))
	if itemsPerSecond < trainThreshold {
		return blue
	}
	trains := utils.CeilInt(itemsPerSecond * 60 / trainItemsPerMinute)
	return fmt.Sprintf("%s %d x \U0001F685/m", blue, trains)
}

func beltIcon(capacity, items float64) string {
	if items > capacity {
		return fmt.Sprintf("%d x %s", utils.CeilInt(items/capacity), beltLevels[4])
	}
	level := int(math.Min(4, math.Ceil(items*4/capacity)))
	if level < 0 {
		level = 0
	}
	return beltLevels[level]
}

func (f *PlanFormatter) formatInserter(flow services.ItemFlow) string {
	switch flow.Inserter {
	case services.InserterLong:
		return f.colorize(colorRed, "LI")
	case services.InserterFast:
		return f.colorize(colorBlue, "FI")
	}
	if flow.InserterCount <= 1 {
		return f.colorize(colorGreen, "SI")
	}
	return f.colorize(colorGreen, fmt.Sprintf("%dxSI", flow.InserterCount))
}

func (f *PlanFormatter) colorize(color, text string) string {
	if !f.useColors || text == "" {
		return text
	}
	return color + text + colorReset
}

// formatTable left-aligns every column, two spaces apart
func formatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, value := range row {
			if n := visibleWidth(value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = value + strings.Repeat(" ", widths[i]-visibleWidth(value))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	return strings.Join(lines, "\n")
}

// visibleWidth counts runes outside ANSI escape sequences
func visibleWidth(value string) int {
	width, inEscape := 0, false
	for _, r := range value {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}

type graphNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type graphEdge struct {
	To   int `json:"to"`
	From int `json:"from"`
}

// FormatDependencyData renders a vis.js DataSet literal for the displayed part of
// the dependency tree. The root has id -1; other nodes are displayed-kind
// dependencies that are shared or not independent, with at most four dependents.
// Each edge points from a consumer to the item it consumes.
func (f *PlanFormatter) FormatDependencyData(
	root string,
	tree *production.DependencyTree,
	independent []string,
	displayed recipe.SourceSet,
	catalog production.RecipeCatalog,
) (string, error) {
	isIndependent := make(map[string]bool, len(independent))
	for _, name := range independent {
		isIndependent[name] = true
	}

	shown := make([]production.Dependency, 0)
	index := make(map[string]int)
	for _, node := range tree.Dependencies() {
		r, err := catalog.FindRecipe(node.Name)
		if err != nil {
			return "", err
		}
		if !displayed.Contains(r.Source) {
			continue
		}
		if isIndependent[node.Name] && len(node.Dependents) <= 1 {
			continue
		}
		if len(node.Dependents) > 4 {
			continue
		}
		index[node.Name] = len(shown)
		shown = append(shown, node)
	}

	nodes := []graphNode{{ID: -1, Label: root}}
	for i, node := range shown {
		nodes = append(nodes, graphNode{ID: i, Label: node.Name})
	}

	edges := make([]graphEdge, 0)
	seen := make(map[graphEdge]bool)
	for i, node := range shown {
		for _, dependent := range node.Dependents {
			from, ok := index[dependent]
			if dependent == root {
				from, ok = -1, true
			}
			if !ok {
				continue
			}
			edge := graphEdge{To: i, From: from}
			if !seen[edge] {
				seen[edge] = true
				edges = append(edges, edge)
			}
		}
	}

	nodeJSON, err := json.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("failed to encode graph nodes: %w", err)
	}
	edgeJSON, err := json.Marshal(edges)
	if err != nil {
		return "", fmt.Errorf("failed to encode graph edges: %w", err)
	}

	return fmt.Sprintf("const nodes = new vis.DataSet(%s), edges = new vis.DataSet(%s);", nodeJSON, edgeJSON), nil
}
