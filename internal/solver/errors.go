package solver

import "errors"

var (
	// ErrInvalidPredecessorChain means path reconstruction found a missing or
	// cyclic predecessor entry. It indicates broken visited/predecessor
	// bookkeeping and aborts the whole search.
	ErrInvalidPredecessorChain = errors.New("invalid predecessor chain")

	// ErrNilMaze is returned when Solve is called without a maze.
	ErrNilMaze = errors.New("maze must not be nil")
)
