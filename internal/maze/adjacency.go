package maze

import (
	"fmt"
	"sort"

	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
)

// Adjacency is a graph given as explicit, ordered neighbor lists.
type Adjacency struct {
	*player.Registry

	start nodeid.ID
	edges map[nodeid.ID][]nodeid.ID
	goals map[nodeid.ID]struct{}
}

// NewAdjacency creates a graph containing only the start node.
func NewAdjacency(start nodeid.ID, goals ...nodeid.ID) *Adjacency {
	a := &Adjacency{
		Registry: player.NewRegistry(false),
		start:    start,
		edges:    map[nodeid.ID][]nodeid.ID{start: nil},
		goals:    make(map[nodeid.ID]struct{}, len(goals)),
	}
	for _, g := range goals {
		a.goals[g] = struct{}{}
	}
	return a
}

// AddNode declares id and appends neighbors to its list.
func (a *Adjacency) AddNode(id nodeid.ID, neighbors ...nodeid.ID) {
	a.edges[id] = append(a.edges[id], neighbors...)
}

// AddEdge adds the directed edge from -> to, declaring both nodes.
func (a *Adjacency) AddEdge(from, to nodeid.ID) {
	a.edges[from] = append(a.edges[from], to)
	if _, ok := a.edges[to]; !ok {
		a.edges[to] = nil
	}
}

// AddUndirectedEdge adds both a -> b and b -> a.
func (a *Adjacency) AddUndirectedEdge(x, y nodeid.ID) {
	a.AddEdge(x, y)
	a.AddEdge(y, x)
}

// MakeUndirected adds every missing reverse edge, keeping existing order.
func (a *Adjacency) MakeUndirected() {
	has := func(from, to nodeid.ID) bool {
		for _, n := range a.edges[from] {
			if n == to {
				return true
			}
		}
		return false
	}
	for _, from := range a.Nodes() {
		for _, to := range a.edges[from] {
			if !has(to, from) {
				a.edges[to] = append(a.edges[to], from)
			}
		}
	}
}

// Validate checks that every neighbor and goal is a declared node.
func (a *Adjacency) Validate() error {
	for _, from := range a.Nodes() {
		for _, to := range a.edges[from] {
			if _, ok := a.edges[to]; !ok {
				return fmt.Errorf("node %d lists undeclared neighbor %d", from, to)
			}
		}
	}
	for g := range a.goals {
		if _, ok := a.edges[g]; !ok {
			return fmt.Errorf("goal %d is not a declared node", g)
		}
	}
	return nil
}

// Nodes returns every declared node in ascending order.
func (a *Adjacency) Nodes() []nodeid.ID {
	out := make([]nodeid.ID, 0, len(a.edges))
	for id := range a.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NodeCount returns the number of distinct nodes the graph mentions:
// declared nodes plus any neighbor or goal that was never declared. On a
// validated graph this equals len(Nodes()).
func (a *Adjacency) NodeCount() int {
	seen := make(map[nodeid.ID]struct{}, len(a.edges))
	for from, tos := range a.edges {
		seen[from] = struct{}{}
		for _, to := range tos {
			seen[to] = struct{}{}
		}
	}
	for g := range a.goals {
		seen[g] = struct{}{}
	}
	return len(seen)
}

// Start returns the start node.
func (a *Adjacency) Start() nodeid.ID { return a.start }

// HasGoal reports whether id is a goal.
func (a *Adjacency) HasGoal(id nodeid.ID) bool {
	_, ok := a.goals[id]
	return ok
}

// Neighbors returns the neighbor list of id in declaration order. The slice
// is shared and must not be modified.
func (a *Adjacency) Neighbors(id nodeid.ID) []nodeid.ID {
	return a.edges[id]
}

// HasEdge reports whether to is listed as a neighbor of from.
func (a *Adjacency) HasEdge(from, to nodeid.ID) bool {
	for _, n := range a.edges[from] {
		if n == to {
			return true
		}
	}
	return false
}
