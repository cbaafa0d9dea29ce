// Package generator builds random perfect mazes in the text layout that
// maze.ParseGrid reads.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// MinSize is the smallest accepted width or height.
const MinSize = 5

// Generate returns a width x height layout carved by an iterative
// recursive-backtracker walk. Even dimensions are rounded up to the next odd
// number so the maze has a wall border. The start is the top-left cell and
// the goal the bottom-right cell; every open cell is reachable. The same
// seed always yields the same layout.
func Generate(width, height int, seed uint64) (string, error) {
	if width < MinSize || height < MinSize {
		return "", fmt.Errorf("maze must be at least %dx%d, got %dx%d", MinSize, MinSize, width, height)
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cells := make([][]byte, height)
	for r := range cells {
		cells[r] = []byte(strings.Repeat("*", width))
	}

	type pos struct{ r, c int }
	dirs := []pos{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}

	stack := []pos{{1, 1}}
	cells[1][1] = ' '
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []pos
		for _, d := range dirs {
			next := pos{cur.r + d.r, cur.c + d.c}
			if next.r > 0 && next.r < height-1 && next.c > 0 && next.c < width-1 && cells[next.r][next.c] == '*' {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[rng.IntN(len(options))]
		cells[(cur.r+next.r)/2][(cur.c+next.c)/2] = ' '
		cells[next.r][next.c] = ' '
		stack = append(stack, next)
	}

	cells[1][1] = 'S'
	cells[height-2][width-2] = 'G'

	var sb strings.Builder
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ParseSize reads a "WxH" size such as "41x21".
func ParseSize(raw string) (width, height int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(raw)), "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("invalid maze size %q: expected WIDTHxHEIGHT", raw)
	}
	if width < MinSize || height < MinSize {
		return 0, 0, fmt.Errorf("invalid maze size %q: minimum is %dx%d", raw, MinSize, MinSize)
	}
	return width, height, nil
}
