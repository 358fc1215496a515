package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

// getCellValue finds a cell by column name, using the first row as the header
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, cell := range table.Rows[0].Cells {
		if cell.Value == columnName && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

// recipesFromTable reads rows of name | time | yield | source | requirements,
// where requirements is a comma separated list of "Item:amount"
func recipesFromTable(table *godog.Table) ([]recipe.Recipe, error) {
	recipes := make([]recipe.Recipe, 0, len(table.Rows))

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}

		name := getCellValue(table, row, "name")
		timeValue, err := strconv.ParseFloat(getCellValue(table, row, "time"), 64)
		if err != nil {
			return nil, fmt.Errorf("recipe %s: invalid time: %w", name, err)
		}
		yield, err := strconv.ParseFloat(getCellValue(table, row, "yield"), 64)
		if err != nil {
			return nil, fmt.Errorf("recipe %s: invalid yield: %w", name, err)
		}
		source, err := recipe.ParseSource(getCellValue(table, row, "source"))
		if err != nil {
			return nil, fmt.Errorf("recipe %s: %w", name, err)
		}
		requirements, err := parseRequirements(getCellValue(table, row, "requirements"))
		if err != nil {
			return nil, fmt.Errorf("recipe %s: %w", name, err)
		}

		recipes = append(recipes, recipe.Recipe{
			Name:         name,
			Time:         timeValue,
			Yield:        yield,
			Source:       source,
			Requirements: requirements,
		})
	}

	return recipes, nil
}

func parseRequirements(value string) ([]recipe.Requirement, error) {
	requirements := make([]recipe.Requirement, 0)
	if strings.TrimSpace(value) == "" {
		return requirements, nil
	}

	for _, part := range strings.Split(value, ",") {
		name, amount, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return nil, fmt.Errorf("requirement %q must look like Item:amount", part)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
		if err != nil {
			return nil, fmt.Errorf("requirement %q: %w", part, err)
		}
		requirements = append(requirements, recipe.Requirement{Name: strings.TrimSpace(name), Amount: parsed})
	}
	return requirements, nil
}

// splitList turns "A, B, C" into its items; an empty string gives no items
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseSources(value string) ([]recipe.Source, error) {
	sources := make([]recipe.Source, 0)
	for _, item := range splitList(value) {
		source, err := recipe.ParseSource(item)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
