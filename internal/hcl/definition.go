package hcl

import (
	"github.com/vk/amazego/internal/maze"
)

// Kinds of definitions.
const (
	KindMaze  = "maze"
	KindGraph = "graph"
)

// Definition is one loaded maze or graph. Exactly one of Grid and Graph is set.
type Definition struct {
	Name      string
	Kind      string
	ForkAfter *int
	Source    string

	Grid  *maze.Grid
	Graph *maze.Adjacency
}

// Manifest holds every definition in load order.
type Manifest struct {
	Definitions []*Definition
}

// Lookup finds a definition by name.
func (m *Manifest) Lookup(name string) (*Definition, bool) {
	for _, d := range m.Definitions {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Names lists the definition names in load order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Definitions))
	for i, d := range m.Definitions {
		names[i] = d.Name
	}
	return names
}
