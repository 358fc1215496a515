package production

// Dependency is a node of a flattened dependency tree: an item and the items
// that directly consume it somewhere in the tree.
type Dependency struct {
	Name       string
	Dependents []string
}

// HasDependent reports whether the named item directly consumes this dependency
func (d Dependency) HasDependent(name string) bool {
	for _, dependent := range d.Dependents {
		if dependent == name {
			return true
		}
	}
	return false
}

// DependencyTree is the flattened map from item name to its dependents.
// Each item appears once; entries keep the order in which they were discovered.
type DependencyTree struct {
	order []string
	nodes map[string]*Dependency
}

// NewDependencyTree creates an empty tree
func NewDependencyTree() *DependencyTree {
	return &DependencyTree{
		order: make([]string, 0),
		nodes: make(map[string]*Dependency),
	}
}

// AddDependent records that dependent directly consumes name.
// The node is created on first use; repeated dependents are merged.
func (t *DependencyTree) AddDependent(name, dependent string) {
	node, exists := t.nodes[name]
	if !exists {
		node = &Dependency{Name: name, Dependents: make([]string, 0, 1)}
		t.nodes[name] = node
		t.order = append(t.order, name)
	}

	if !node.HasDependent(dependent) {
		node.Dependents = append(node.Dependents, dependent)
	}
}

// Get returns a copy of the named dependency
func (t *DependencyTree) Get(name string) (Dependency, bool) {
	node, exists := t.nodes[name]
	if !exists {
		return Dependency{}, false
	}
	return copyDependency(node), true
}

// Contains reports whether the item is part of the tree
func (t *DependencyTree) Contains(name string) bool {
	_, exists := t.nodes[name]
	return exists
}

// Len returns the number of distinct items in the tree
func (t *DependencyTree) Len() int {
	return len(t.order)
}

// Names returns the item names in discovery order
func (t *DependencyTree) Names() []string {
	return append([]string(nil), t.order...)
}

// Dependencies returns copies of all nodes in discovery order
func (t *DependencyTree) Dependencies() []Dependency {
	result := make([]Dependency, 0, len(t.order))
	for _, name := range t.order {
		result = append(result, copyDependency(t.nodes[name]))
	}
	return result
}

// DependenciesOf returns the items that the named item directly consumes, in discovery order
func (t *DependencyTree) DependenciesOf(name string) []string {
	result := make([]string, 0)
	for _, candidate := range t.order {
		if t.nodes[candidate].HasDependent(name) {
			result = append(result, candidate)
		}
	}
	return result
}

func copyDependency(node *Dependency) Dependency {
	return Dependency{
		Name:       node.Name,
		Dependents: append([]string(nil), node.Dependents...),
	}
}
