package production

import (
	"fmt"
	"strings"
)

// UnsatisfiableDependencyError indicates the solver found no available node while
// nodes remained unsolved. The dependency tree is malformed relative to a DAG.
type UnsatisfiableDependencyError struct {
	Remaining []string
}

func (e *UnsatisfiableDependencyError) Error() string {
	return fmt.Sprintf("no available dependencies could be found; unsolved: %s", strings.Join(e.Remaining, ", "))
}

// CircularDependencyError indicates a cycle was detected while expanding recipes
type CircularDependencyError struct {
	Item  string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected for %s: %s", e.Item, strings.Join(e.Chain, " -> "))
}

// InvalidQuantityError indicates a requested quantity could not be understood
type InvalidQuantityError struct {
	Input  string
	Reason string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %q: %s", e.Input, e.Reason)
}

// InvalidSpeedInputError indicates a speed setting could not be understood
type InvalidSpeedInputError struct {
	Source string
	Input  string
}

func (e *InvalidSpeedInputError) Error() string {
	return fmt.Sprintf("could not handle %s speed input: %q", e.Source, e.Input)
}
