package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/amazego/internal/broadcast"
	"github.com/vk/amazego/internal/ctxlog"
	"github.com/vk/amazego/internal/render"
	"github.com/vk/amazego/internal/solver"
)

// Run solves every configured maze in order and writes one summary line per
// maze. It returns ErrNoPath when RequirePath is set and a maze has no path.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if port := a.config.HealthcheckPort; port > 0 {
		if err := a.startHealthcheckServer(ctx, port); err != nil {
			return err
		}
		defer func() {
			if cerr := a.closeHealthcheckServer(ctx); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	targets, err := a.loadTargets(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Mazes loaded.", "count", len(targets))

	var bc broadcaster
	if a.config.SocketIOURL != "" {
		bc, err = a.connect(ctx, broadcast.Config{URL: a.config.SocketIOURL})
		if err != nil {
			return fmt.Errorf("failed to connect broadcaster: %w", err)
		}
		defer bc.Close()
	}

	a.logger.Info("🚀 Solving mazes...", "count", len(targets))
	missing := 0
	for _, t := range targets {
		found, err := a.solveTarget(ctx, t, bc)
		if err != nil {
			return err
		}
		if !found {
			missing++
		}
	}
	a.logger.Info("🏁 All mazes processed.", "count", len(targets), "without_path", missing)

	if a.config.RequirePath && missing > 0 {
		return fmt.Errorf("%d of %d mazes: %w", missing, len(targets), ErrNoPath)
	}
	return nil
}

// solveTarget runs one search and reports it.
func (a *App) solveTarget(ctx context.Context, t *target, bc broadcaster) (bool, error) {
	forkAfter := a.config.forkAfterFor(t.forkAfter)
	ctx = ctxlog.With(ctx, "run_id", uuid.NewString(), "maze", t.name)
	logger := ctxlog.FromContext(ctx)

	if bc != nil {
		bc.SetMaze(t.name)
		t.observe(bc)
	}

	opts := []solver.Option{solver.WithMetrics(a.metrics)}
	if start := a.config.Start; start != nil {
		if t.grid != nil && (!t.grid.Contains(*start) || t.grid.IsWall(*start)) {
			return false, fmt.Errorf("start node %d is not an open cell of %s", *start, t.name)
		}
		opts = append(opts, solver.WithStart(*start))
	}

	res, err := solver.Solve(ctx, t.maze(), forkAfter, opts...)
	if err != nil {
		return false, fmt.Errorf("failed to solve %s: %w", t.name, err)
	}
	logger.Debug("Maze solved.", "found", res.Found, "tasks", res.Tasks, "duration", res.Duration)

	if bc != nil {
		bc.Done(res.Found, res.Path, res.Tasks, res.Visited)
	}

	if res.Found {
		fmt.Fprintf(a.outW, "%s: path of %d nodes (tasks=%d visited=%d)\n", t.name, len(res.Path), res.Tasks, res.Visited)
	} else {
		fmt.Fprintf(a.outW, "%s: no path\n", t.name)
	}

	if a.config.Render {
		if t.grid != nil {
			fmt.Fprint(a.outW, render.Grid(t.grid, res.Path, t.grid.Players(), render.Options{Plain: a.config.NoColor, Trails: true}))
		} else if res.Found {
			fmt.Fprintln(a.outW, render.Path(res.Path, a.config.NoColor))
		}
	}
	return res.Found, nil
}
