package solver

import (
	"context"

	"github.com/vk/amazego/internal/ctxlog"
	"github.com/vk/amazego/internal/nodeid"
)

// fork is the join handle of a spawned task.
type fork struct {
	start nodeid.ID
	done  chan struct{}
	path  nodeid.Path
	err   error
}

// join blocks until the task finishes and returns its outcome.
func (f *fork) join() (nodeid.Path, error) {
	<-f.done
	return f.path, f.err
}

// spawn starts a task exploring from start on the search's group.
func (s *search) spawn(ctx context.Context, start nodeid.ID) *fork {
	f := &fork{start: start, done: make(chan struct{})}
	t := &task{
		id:     s.nextTask.Add(1),
		search: s,
		start:  start,
	}
	s.metrics.TaskStarted()

	s.group.Go(func() error {
		defer close(f.done)
		f.path, f.err = t.run(ctx)
		return f.err
	})
	return f
}

// task is one unit of depth-first exploration.
type task struct {
	id       int64
	search   *search
	start    nodeid.ID
	frontier []nodeid.ID
	steps    int
	children []*fork
	joined   int
}

// run explores from t.start until the frontier is empty, a goal is found
// by this task or one of its children, or another task raises the goal
// flag. It returns a nil path when this task has nothing to report.
func (t *task) run(ctx context.Context) (nodeid.Path, error) {
	s := t.search
	if s.state.IsVisited(t.start) {
		return nil, nil
	}

	logger := ctxlog.FromContext(ctx).With("task", t.id)
	player := s.maze.NewPlayer(t.start)
	t.frontier = append(t.frontier, t.start)

	for !s.state.IsGoalFound() && len(t.frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := t.pop()
		t.steps++
		s.steps.Add(1)

		if !s.state.TryVisit(current) {
			continue
		}
		s.maze.Move(player, current)

		if s.maze.HasGoal(current) {
			if s.state.MarkGoalFound() {
				logger.Debug("Goal found.", "node", current, "task_steps", t.steps)
			}
			return s.pathTo(current)
		}

		forking := s.forkAfter > 0 && t.steps%s.forkAfter == 0
		for _, nb := range s.maze.Neighbors(current) {
			if s.state.IsVisited(nb) {
				continue
			}
			s.state.RecordPredecessorIfAbsent(nb, current)

			if forking {
				t.children = append(t.children, s.spawn(ctx, nb))
			} else {
				t.frontier = append(t.frontier, nb)
			}
		}

		path, err := t.joinChildren()
		if err != nil || path != nil {
			return path, err
		}
	}
	return nil, nil
}

// pop removes the most recently pushed frontier node.
func (t *task) pop() nodeid.ID {
	last := len(t.frontier) - 1
	n := t.frontier[last]
	t.frontier = t.frontier[:last]
	return n
}

// joinChildren waits for every child not joined yet, in spawn order, and
// stops at the first one that returns a path or an error.
func (t *task) joinChildren() (nodeid.Path, error) {
	for t.joined < len(t.children) {
		child := t.children[t.joined]
		t.joined++

		path, err := child.join()
		if err != nil {
			return nil, err
		}
		if len(path) > 0 {
			return path, nil
		}
	}
	return nil, nil
}
