package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/amazego/internal/nodeid"
)

// Graph is the read-only view of a maze the assertions need.
type Graph interface {
	Neighbors(node nodeid.ID) []nodeid.ID
	HasGoal(node nodeid.ID) bool
}

// RequireValidPath checks that path starts at start, ends on a goal, never
// repeats a node, and only follows edges of g.
func RequireValidPath(t *testing.T, g Graph, start nodeid.ID, path nodeid.Path) {
	t.Helper()

	require.NotEmpty(t, path, "expected a path")
	require.Equal(t, start, path[0], "path must begin at the start node: %s", path)

	last := path[len(path)-1]
	require.True(t, g.HasGoal(last), "path must end on a goal, ends on %d: %s", last, path)

	seen := make(map[nodeid.ID]bool, len(path))
	for i, n := range path {
		require.False(t, seen[n], "node %d repeated in path %s", n, path)
		seen[n] = true
		if i == 0 {
			continue
		}
		require.Contains(t, g.Neighbors(path[i-1]), n, "step %d -> %d is not an edge: %s", path[i-1], n, path)
	}
}
