package recipe

import (
	"fmt"
	"strings"
)

// Source is the kind of producer that executes a recipe
type Source string

const (
	SourceAssembler  Source = "assembler"
	SourceMine       Source = "mine"
	SourceChem       Source = "chem"
	SourceFurnace    Source = "furnace"
	SourceLab        Source = "lab"
	SourcePump       Source = "pump"
	SourceRocketSilo Source = "rocket-silo"

	// SourceNone marks a raw input with no recipe-level producer
	SourceNone Source = "none"
)

// AllSources lists every producer kind in display order
func AllSources() []Source {
	return []Source{
		SourceLab,
		SourceRocketSilo,
		SourceAssembler,
		SourceChem,
		SourceFurnace,
		SourceMine,
		SourcePump,
		SourceNone,
	}
}

// ParseSource converts a string into a Source.
// "rocket silo" is accepted as an alias of "rocket-silo".
func ParseSource(value string) (Source, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "rocket silo" || normalized == "rocket_silo" {
		normalized = string(SourceRocketSilo)
	}

	for _, source := range AllSources() {
		if string(source) == normalized {
			return source, nil
		}
	}

	return "", fmt.Errorf("unknown producer source: %q", value)
}

// IsValid returns true if the source is one of the known producer kinds
func (s Source) IsValid() bool {
	for _, source := range AllSources() {
		if s == source {
			return true
		}
	}
	return false
}

// Label returns the human-readable producer name used in headings
func (s Source) Label() string {
	switch s {
	case SourceAssembler:
		return "Assembler"
	case SourceMine:
		return "Mine"
	case SourceChem:
		return "Chemical Plant"
	case SourceFurnace:
		return "Furnace"
	case SourceLab:
		return "Lab"
	case SourcePump:
		return "Pump"
	case SourceRocketSilo:
		return "Rocket Silo"
	case SourceNone:
		return "Raw"
	}
	return string(s)
}

func (s Source) String() string {
	return string(s)
}

// SourceSet is a set of producer kinds, used to select which kinds are displayed
type SourceSet map[Source]bool

// NewSourceSet builds a set from the given sources
func NewSourceSet(sources ...Source) SourceSet {
	set := make(SourceSet, len(sources))
	for _, source := range sources {
		set[source] = true
	}
	return set
}

// Contains reports whether the source is in the set
func (s SourceSet) Contains(source Source) bool {
	return s[source]
}

// Sorted returns the members in AllSources order
func (s SourceSet) Sorted() []Source {
	result := make([]Source, 0, len(s))
	for _, source := range AllSources() {
		if s[source] {
			result = append(result, source)
		}
	}
	return result
}
