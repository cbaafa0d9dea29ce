package solver

import (
	"fmt"
	"slices"

	"github.com/vk/amazego/internal/nodeid"
)

// predecessors is the read side of the shared predecessor map.
type predecessors interface {
	Predecessor(node nodeid.ID) (nodeid.ID, bool)
}

// reconstructPath walks the predecessor chain back from end to start. The
// chain may hold at most limit nodes; a longer chain can only be a cycle.
func reconstructPath(preds predecessors, start, end nodeid.ID, limit int) (nodeid.Path, error) {
	path := nodeid.Path{end}
	current := end
	for current != start {
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: no route from %d back to %d within %d nodes", ErrInvalidPredecessorChain, end, start, limit)
		}
		prev, ok := preds.Predecessor(current)
		if !ok {
			return nil, fmt.Errorf("%w: node %d has no predecessor (end %d, start %d)", ErrInvalidPredecessorChain, current, end, start)
		}
		path = append(path, prev)
		current = prev
	}

	slices.Reverse(path)
	return path, nil
}
