// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse creates an ID from its canonical decimal representation.
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("identifier cannot be empty")
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid node identifier %q: must be a decimal integer", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid node identifier %q: must not be negative", raw)
	}
	return ID(n), nil
}

// FromInts converts a plain int slice into identifiers, rejecting negatives.
func FromInts(values []int) ([]ID, error) {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("invalid node identifier %d: must not be negative", v)
		}
		ids = append(ids, ID(v))
	}
	return ids, nil
}
