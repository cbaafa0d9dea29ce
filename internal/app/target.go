package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/amazego/internal/generator"
	"github.com/vk/amazego/internal/hcl"
	"github.com/vk/amazego/internal/maze"
	"github.com/vk/amazego/internal/player"
	"github.com/vk/amazego/internal/solver"
)

// target is one maze to solve.
type target struct {
	name      string
	forkAfter *int
	grid      *maze.Grid
	graph     *maze.Adjacency
}

func (t *target) maze() solver.Maze {
	if t.grid != nil {
		return t.grid
	}
	return t.graph
}

func (t *target) observe(o player.Observer) {
	if t.grid != nil {
		t.grid.Observe(o)
		return
	}
	t.graph.Observe(o)
}

// loadTargets generates a maze or loads the configured manifests.
func (a *App) loadTargets(ctx context.Context) ([]*target, error) {
	if a.config.Generate != "" {
		return a.generateTarget()
	}

	manifest, err := a.loader.Load(ctx, a.config.MazePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mazes: %w", err)
	}

	defs := manifest.Definitions
	if a.config.Name != "" {
		def, ok := manifest.Lookup(a.config.Name)
		if !ok {
			return nil, fmt.Errorf("maze %q not found (available: %s)", a.config.Name, strings.Join(manifest.Names(), ", "))
		}
		defs = []*hcl.Definition{def}
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no mazes found in %s", a.config.MazePath)
	}

	targets := make([]*target, 0, len(defs))
	for _, d := range defs {
		targets = append(targets, &target{name: d.Name, forkAfter: d.ForkAfter, grid: d.Grid, graph: d.Graph})
	}
	return targets, nil
}

func (a *App) generateTarget() ([]*target, error) {
	width, height, err := generator.ParseSize(a.config.Generate)
	if err != nil {
		return nil, err
	}
	layout, err := generator.Generate(width, height, a.config.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}
	grid, err := maze.ParseGrid(layout)
	if err != nil {
		return nil, fmt.Errorf("generated maze is invalid: %w", err)
	}
	name := fmt.Sprintf("generated-%dx%d-seed%d", grid.Width(), grid.Height(), a.config.Seed)
	return []*target{{name: name, grid: grid}}, nil
}
