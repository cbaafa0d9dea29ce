package hcl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/amazego/internal/maze"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateMaze turns a maze block into a grid definition.
func translateMaze(b *mazeBlock, filename string) (*Definition, error) {
	var layout string
	switch {
	case b.Layout != nil && b.LayoutFile != nil:
		return nil, fmt.Errorf("maze %q in %s: layout and layout_file are mutually exclusive", b.Name, filename)
	case b.Layout != nil:
		layout = *b.Layout
	case b.LayoutFile != nil:
		path := *b.LayoutFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("maze %q in %s: failed to read layout_file: %w", b.Name, filename, err)
		}
		layout = string(src)
	default:
		return nil, fmt.Errorf("maze %q in %s: one of layout or layout_file is required", b.Name, filename)
	}

	grid, err := maze.ParseGrid(layout)
	if err != nil {
		return nil, fmt.Errorf("maze %q in %s: %w", b.Name, filename, err)
	}
	return &Definition{
		Name:      b.Name,
		Kind:      KindMaze,
		ForkAfter: b.ForkAfter,
		Source:    filename,
		Grid:      grid,
	}, nil
}

// translateGraph turns a graph block into an adjacency definition.
func translateGraph(b *graphBlock, filename string) (*Definition, error) {
	if b.Start < 0 {
		return nil, fmt.Errorf("graph %q in %s: start must not be negative", b.Name, filename)
	}

	goals, diags := decodeIDList(b.Goals)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graph %q in %s: %w", b.Name, filename, diags)
	}

	g := maze.NewAdjacency(nodeid.ID(b.Start), goals...)
	declared := make(map[nodeid.ID]bool, len(b.Nodes))
	for _, n := range b.Nodes {
		id, err := nodeid.Parse(n.ID)
		if err != nil {
			return nil, fmt.Errorf("graph %q in %s: node %q: %w", b.Name, filename, n.ID, err)
		}
		if declared[id] {
			return nil, fmt.Errorf("graph %q in %s: duplicate node %d", b.Name, filename, id)
		}
		declared[id] = true

		neighbors, diags := decodeIDList(n.Neighbors)
		if diags.HasErrors() {
			return nil, fmt.Errorf("graph %q in %s: node %d: %w", b.Name, filename, id, diags)
		}
		g.AddNode(id, neighbors...)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph %q in %s: %w", b.Name, filename, err)
	}
	if b.Undirected != nil && *b.Undirected {
		g.MakeUndirected()
	}

	return &Definition{
		Name:      b.Name,
		Kind:      KindGraph,
		ForkAfter: b.ForkAfter,
		Source:    filename,
		Graph:     g,
	}, nil
}

// decodeIDList evaluates a list of node IDs. Missing attributes arrive as a
// null expression and decode to an empty list.
func decodeIDList(expr hcl.Expression) ([]nodeid.ID, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, errorAt("Invalid node list", fmt.Sprintf("Expected a list of node numbers: %s.", err), expr.Range().Ptr())
	}
	if !listVal.IsWhollyKnown() {
		return nil, errorAt("Invalid node list", "Node lists must be known values.", expr.Range().Ptr())
	}

	var ints []int
	if err := gocty.FromCtyValue(listVal, &ints); err != nil {
		return nil, errorAt("Invalid node list", fmt.Sprintf("Node numbers must be whole numbers: %s.", err), expr.Range().Ptr())
	}
	ids, err := nodeid.FromInts(ints)
	if err != nil {
		return nil, errorAt("Invalid node list", err.Error(), expr.Range().Ptr())
	}
	return ids, nil
}
