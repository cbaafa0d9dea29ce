package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/amazego/internal/maze"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
)

const layout = `
*****
*S  *
*** *
*G  *
*****
`

func TestGrid_Plain(t *testing.T) {
	g, err := maze.ParseGrid(layout)
	require.NoError(t, err)

	path := nodeid.Path{g.ID(1, 1), g.ID(1, 2), g.ID(1, 3), g.ID(2, 3), g.ID(3, 3), g.ID(3, 2), g.ID(3, 1)}
	out := Grid(g, path, nil, Options{Plain: true})

	want := strings.Join([]string{
		"█████",
		"█S••█",
		"███•█",
		"█G••█",
		"█████",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestGrid_Trails(t *testing.T) {
	g, err := maze.ParseGrid(layout)
	require.NoError(t, err)

	players := []player.Player{{ID: 1, Trail: []nodeid.ID{g.ID(1, 1), g.ID(1, 2)}}}

	out := Grid(g, nil, players, Options{Plain: true, Trails: true})
	rows := strings.Split(out, "\n")
	assert.Equal(t, "█S· █", rows[1])

	noTrails := Grid(g, nil, players, Options{Plain: true})
	assert.Equal(t, "█S  █", strings.Split(noTrails, "\n")[1])
}

func TestPath(t *testing.T) {
	assert.Equal(t, "0 -> 1", Path(nodeid.Path{0, 1}, true))
	assert.Equal(t, "<empty>", Path(nil, false))
	assert.Contains(t, Path(nodeid.Path{0, 1}, false), "0 -> 1")
}
