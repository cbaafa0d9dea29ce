package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is used to decode all top-level blocks from any manifest file.
// Unknown blocks and attributes are rejected.
type fileRoot struct {
	Mazes  []*mazeBlock  `hcl:"maze,block"`
	Graphs []*graphBlock `hcl:"graph,block"`
}

// mazeBlock is a grid maze given as a text layout, inline or in a file.
type mazeBlock struct {
	Name       string  `hcl:"name,label"`
	ForkAfter  *int    `hcl:"fork_after,optional"`
	Layout     *string `hcl:"layout,optional"`
	LayoutFile *string `hcl:"layout_file,optional"`
}

// graphBlock is an explicit graph.
type graphBlock struct {
	Name       string         `hcl:"name,label"`
	Start      int            `hcl:"start"`
	Goals      hcl.Expression `hcl:"goals,optional"`
	ForkAfter  *int           `hcl:"fork_after,optional"`
	Undirected *bool          `hcl:"undirected,optional"`
	Nodes      []*nodeBlock   `hcl:"node,block"`
}

// nodeBlock declares one node and its ordered neighbors.
type nodeBlock struct {
	ID        string         `hcl:"id,label"`
	Neighbors hcl.Expression `hcl:"neighbors,optional"`
}
