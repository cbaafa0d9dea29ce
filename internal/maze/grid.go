package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
)

// Layout characters.
const (
	CellWall    = '*'
	CellWallAlt = '#'
	CellStart   = 'S'
	CellGoal    = 'G'
	CellGoalAlt = '$'
	CellOpen    = ' '
	CellOpenAlt = '.'
)

var (
	// ErrEmptyLayout is returned when a layout has no rows.
	ErrEmptyLayout = errors.New("maze layout is empty")
	// ErrNoStart is returned when a layout has no start cell.
	ErrNoStart = errors.New("maze layout has no start cell")
)

// Grid is a rectangular maze. Node IDs are row*width + col.
type Grid struct {
	*player.Registry

	width, height int
	walls         []bool
	goals         map[nodeid.ID]struct{}
	start         nodeid.ID
}

// ParseGrid builds a Grid from a text layout. Rows shorter than the widest
// row are padded with walls. Leading and trailing blank lines are ignored.
func ParseGrid(layout string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(layout, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(strings.TrimRight(line, " \t"))
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	g := &Grid{
		Registry: player.NewRegistry(true),
		width:    width,
		height:   len(rows),
		walls:    make([]bool, width*len(rows)),
		goals:    make(map[nodeid.ID]struct{}),
	}

	startFound := false
	for r, row := range rows {
		for c := 0; c < width; c++ {
			id := g.ID(r, c)
			if c >= len(row) {
				g.walls[id] = true
				continue
			}
			switch row[c] {
			case CellWall, CellWallAlt:
				g.walls[id] = true
			case CellStart:
				if startFound {
					return nil, fmt.Errorf("maze layout has more than one start cell (row %d, col %d)", r, c)
				}
				startFound = true
				g.start = id
			case CellGoal, CellGoalAlt:
				g.goals[id] = struct{}{}
			}
		}
	}
	if !startFound {
		return nil, ErrNoStart
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// NodeCount returns the number of cells, walls included.
func (g *Grid) NodeCount() int { return g.width * g.height }

// ID converts a cell position to its node ID.
func (g *Grid) ID(row, col int) nodeid.ID {
	return nodeid.ID(row*g.width + col)
}

// Cell converts a node ID back to its row and column.
func (g *Grid) Cell(id nodeid.ID) (row, col int) {
	return int(id) / g.width, int(id) % g.width
}

// Contains reports whether id is inside the grid.
func (g *Grid) Contains(id nodeid.ID) bool {
	return id >= 0 && int(id) < len(g.walls)
}

// IsWall reports whether id is a wall. IDs outside the grid count as walls.
func (g *Grid) IsWall(id nodeid.ID) bool {
	if !g.Contains(id) {
		return true
	}
	return g.walls[id]
}

// Start returns the start cell.
func (g *Grid) Start() nodeid.ID { return g.start }

// HasGoal reports whether id is a goal cell.
func (g *Grid) HasGoal(id nodeid.ID) bool {
	_, ok := g.goals[id]
	return ok
}

// Goals returns the number of goal cells.
func (g *Grid) Goals() int { return len(g.goals) }

// Neighbors returns the open cells adjacent to id in the order up, right,
// down, left.
func (g *Grid) Neighbors(id nodeid.ID) []nodeid.ID {
	if g.IsWall(id) {
		return nil
	}
	row, col := g.Cell(id)
	out := make([]nodeid.ID, 0, 4)
	for _, d := range [...][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= g.height || c < 0 || c >= g.width {
			continue
		}
		if nb := g.ID(r, c); !g.walls[nb] {
			out = append(out, nb)
		}
	}
	return out
}
