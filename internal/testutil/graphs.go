package testutil

import (
	"strings"

	"github.com/vk/amazego/internal/maze"
	"github.com/vk/amazego/internal/nodeid"
)

// Cycle returns the undirected ring 0-1-...-(n-1)-0 starting at 0.
func Cycle(n int, goals ...nodeid.ID) *maze.Adjacency {
	g := maze.NewAdjacency(0, goals...)
	for i := 0; i < n; i++ {
		g.AddUndirectedEdge(nodeid.ID(i), nodeid.ID((i+1)%n))
	}
	return g
}

// Chain returns the undirected line 0-1-...-(n-1) with the goal at the end.
func Chain(n int) *maze.Adjacency {
	g := maze.NewAdjacency(0, nodeid.ID(n-1))
	for i := 0; i+1 < n; i++ {
		g.AddUndirectedEdge(nodeid.ID(i), nodeid.ID(i+1))
	}
	return g
}

// Disconnected returns two components, {0,1} holding the start and {2,3}
// holding the only goal.
func Disconnected() *maze.Adjacency {
	g := maze.NewAdjacency(0, 3)
	g.AddUndirectedEdge(0, 1)
	g.AddUndirectedEdge(2, 3)
	return g
}

// BinaryTree returns a complete binary tree of the given depth rooted at 0,
// with edges in both directions and the given goals.
func BinaryTree(depth int, goals ...nodeid.ID) *maze.Adjacency {
	g := maze.NewAdjacency(0, goals...)
	last := (1 << (depth + 1)) - 1
	for parent := 0; ; parent++ {
		left, right := 2*parent+1, 2*parent+2
		if left >= last {
			break
		}
		g.AddUndirectedEdge(nodeid.ID(parent), nodeid.ID(left))
		g.AddUndirectedEdge(nodeid.ID(parent), nodeid.ID(right))
	}
	return g
}

// OpenLayout returns a walled w x h room with the start in the top-left
// corner and a goal in the bottom-right corner.
func OpenLayout(w, h int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("*", w+2))
	sb.WriteByte('\n')
	for r := 0; r < h; r++ {
		row := []byte(strings.Repeat(" ", w))
		if r == 0 {
			row[0] = 'S'
		}
		if r == h-1 {
			row[w-1] = 'G'
		}
		sb.WriteByte('*')
		sb.Write(row)
		sb.WriteString("*\n")
	}
	sb.WriteString(strings.Repeat("*", w+2))
	sb.WriteByte('\n')
	return sb.String()
}
