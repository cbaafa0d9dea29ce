package searchstate

import (
	"sync"
	"sync/atomic"

	"github.com/vk/amazego/internal/nodeid"
)

// State is the visited set, predecessor map and goal flag of one search.
// All methods are safe for concurrent use.
type State struct {
	visited     sync.Map // Key: nodeid.ID, Value: struct{}
	predecessor sync.Map // Key: nodeid.ID, Value: nodeid.ID
	foundGoal   atomic.Bool

	visitedCount atomic.Int64
}

// New creates an empty search state.
func New() *State {
	return &State{}
}

// TryVisit claims node for the calling task. It returns true for exactly
// one caller per node; every later or concurrent caller gets false and must
// skip the node.
func (s *State) TryVisit(node nodeid.ID) bool {
	if _, loaded := s.visited.LoadOrStore(node, struct{}{}); loaded {
		return false
	}
	s.visitedCount.Add(1)
	return true
}

// IsVisited reports whether node has already been claimed.
func (s *State) IsVisited(node nodeid.ID) bool {
	_, ok := s.visited.Load(node)
	return ok
}

// RecordPredecessorIfAbsent stores from as the predecessor of node unless
// node already has one. The first writer wins and entries are never
// overwritten. It reports whether this call stored the entry.
func (s *State) RecordPredecessorIfAbsent(node, from nodeid.ID) bool {
	_, loaded := s.predecessor.LoadOrStore(node, from)
	return !loaded
}

// Predecessor returns the recorded predecessor of node.
func (s *State) Predecessor(node nodeid.ID) (nodeid.ID, bool) {
	v, ok := s.predecessor.Load(node)
	if !ok {
		return 0, false
	}
	return v.(nodeid.ID), true
}

// MarkGoalFound raises the goal flag. It returns true only for the call
// that moved the flag from false to true.
func (s *State) MarkGoalFound() bool {
	return s.foundGoal.CompareAndSwap(false, true)
}

// IsGoalFound is the cooperative cancellation signal checked by every task.
func (s *State) IsGoalFound() bool {
	return s.foundGoal.Load()
}

// VisitedCount returns how many distinct nodes have been claimed so far.
func (s *State) VisitedCount() int64 {
	return s.visitedCount.Load()
}
