// Package render draws solved grid mazes as text.
package render

import (
	"strings"

	"github.com/gookit/color"
	"github.com/vk/amazego/internal/maze"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
)

// Glyphs used for each kind of cell.
const (
	GlyphWall  = "█"
	GlyphOpen  = " "
	GlyphPath  = "•"
	GlyphTrail = "·"
	GlyphStart = "S"
	GlyphGoal  = "G"
)

// Options controls rendering.
type Options struct {
	// Plain disables colours.
	Plain bool
	// Trails marks every cell some player walked over.
	Trails bool
}

var (
	wallStyle  = color.New(color.FgGray)
	pathStyle  = color.New(color.FgGreen, color.OpBold)
	trailStyle = color.New(color.FgCyan)
	markStyle  = color.New(color.FgYellow, color.OpBold)
)

// Grid renders g with path and player trails overlaid, one line per row.
// Start and goal markers win over path marks, path marks over trails.
func Grid(g *maze.Grid, path nodeid.Path, players []player.Player, opts Options) string {
	onPath := make(map[nodeid.ID]bool, len(path))
	for _, n := range path {
		onPath[n] = true
	}

	walked := make(map[nodeid.ID]bool)
	if opts.Trails {
		for _, p := range players {
			for _, n := range p.Trail {
				walked[n] = true
			}
		}
	}

	paint := func(style color.Style, glyph string) string {
		if opts.Plain {
			return glyph
		}
		return style.Sprint(glyph)
	}

	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			id := g.ID(r, c)
			switch {
			case g.IsWall(id):
				sb.WriteString(paint(wallStyle, GlyphWall))
			case id == g.Start():
				sb.WriteString(paint(markStyle, GlyphStart))
			case g.HasGoal(id):
				sb.WriteString(paint(markStyle, GlyphGoal))
			case onPath[id]:
				sb.WriteString(paint(pathStyle, GlyphPath))
			case walked[id]:
				sb.WriteString(paint(trailStyle, GlyphTrail))
			default:
				sb.WriteString(GlyphOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Path renders a path for graphs without geometry.
func Path(path nodeid.Path, plain bool) string {
	if plain || len(path) == 0 {
		return path.String()
	}
	return pathStyle.Sprint(path.String())
}
