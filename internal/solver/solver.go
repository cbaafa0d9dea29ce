package solver

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vk/amazego/internal/ctxlog"
	"github.com/vk/amazego/internal/metrics"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
	"github.com/vk/amazego/internal/searchstate"
	"golang.org/x/sync/errgroup"
)

// Maze is everything a search needs from the graph it runs on.
// Neighbors and HasGoal are called concurrently. NewPlayer and Move are
// called concurrently for distinct players.
type Maze interface {
	Start() nodeid.ID
	Neighbors(node nodeid.ID) []nodeid.ID
	HasGoal(node nodeid.ID) bool
	NewPlayer(start nodeid.ID) player.ID
	Move(p player.ID, node nodeid.ID)
}

// nodeCounter is implemented by mazes that know their size. It bounds path
// reconstruction.
type nodeCounter interface {
	NodeCount() int
}

// Result is the outcome of a search.
type Result struct {
	Path     nodeid.Path
	Found    bool
	Tasks    int64 // tasks started, the root included
	Steps    int64 // frontier pops across all tasks
	Visited  int64 // distinct nodes claimed
	Duration time.Duration
}

// Options defines parameters for the search.
type Options struct {
	Start   *nodeid.ID
	Metrics *metrics.Recorder
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStart searches from node instead of the maze's own start.
func WithStart(node nodeid.ID) Option {
	return func(o *Options) { o.Start = &node }
}

// WithMetrics records the search on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// search is the state behind one Solve call.
type search struct {
	maze      Maze
	state     *searchstate.State
	start     nodeid.ID
	forkAfter int
	group     *errgroup.Group
	metrics   *metrics.Recorder

	nextTask atomic.Int64
	steps    atomic.Int64
}

// Solve searches m for a path from its start to any goal. forkAfter is the
// fork threshold; a value <= 0 disables forking and the search runs as a
// single sequential task.
//
// When no goal is reachable the result has Found == false and a nil Path,
// and the error is nil. A non-nil error means the search was aborted,
// either by ctx or by ErrInvalidPredecessorChain.
func Solve(ctx context.Context, m Maze, forkAfter int, options ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	opts := Options{}
	for _, option := range options {
		option(&opts)
	}

	start := m.Start()
	if opts.Start != nil {
		start = *opts.Start
	}

	logger := ctxlog.FromContext(ctx).With("start", start, "fork_after", forkAfter)
	logger.Debug("Search starting.")
	began := time.Now()

	group, groupCtx := errgroup.WithContext(ctx)
	s := &search{
		maze:      m,
		state:     searchstate.New(),
		start:     start,
		forkAfter: forkAfter,
		group:     group,
		metrics:   opts.Metrics,
	}

	root := s.spawn(ctxlog.WithLogger(groupCtx, logger), start)
	err := group.Wait()

	result := &Result{
		Tasks:    s.nextTask.Load(),
		Steps:    s.steps.Load(),
		Visited:  s.state.VisitedCount(),
		Duration: time.Since(began),
	}

	if err != nil {
		s.metrics.ObserveSearch(metrics.ResultError, result.Duration, result.Visited, 0)
		if errors.Is(err, ErrInvalidPredecessorChain) {
			logger.Error("Search aborted on corrupt predecessor chain.", "error", err)
		} else {
			logger.Debug("Search aborted.", "error", err)
		}
		return result, fmt.Errorf("search aborted: %w", err)
	}

	result.Path = root.path
	result.Found = len(root.path) > 0

	outcome := metrics.ResultNotFound
	if result.Found {
		outcome = metrics.ResultFound
	}
	s.metrics.ObserveSearch(outcome, result.Duration, result.Visited, len(result.Path))

	logger.Debug("Search finished.",
		"found", result.Found,
		"path_len", len(result.Path),
		"tasks", result.Tasks,
		"visited", result.Visited,
		"duration", result.Duration,
	)
	return result, nil
}

// pathLimit is the longest chain path reconstruction may follow.
func (s *search) pathLimit() int {
	if nc, ok := s.maze.(nodeCounter); ok {
		return nc.NodeCount()
	}
	return int(s.state.VisitedCount())
}

// pathTo rebuilds the path from the search start to end.
func (s *search) pathTo(end nodeid.ID) (nodeid.Path, error) {
	return reconstructPath(s.state, s.start, end, s.pathLimit())
}
