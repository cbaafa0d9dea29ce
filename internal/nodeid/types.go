// internal/nodeid/types.go
package nodeid

import (
	"strconv"
	"strings"
)

// ID identifies a single node. Equality and ordering are by value.
type ID int

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Path is an ordered sequence of node identifiers, start first.
type Path []ID

// String renders the path as `a -> b -> c`.
func (p Path) String() string {
	if len(p) == 0 {
		return "<empty>"
	}

	var sb strings.Builder
	for i, id := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(id.String())
	}
	return sb.String()
}

// First returns the first node of the path and whether the path is non-empty.
func (p Path) First() (ID, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// Last returns the last node of the path and whether the path is non-empty.
func (p Path) Last() (ID, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}
