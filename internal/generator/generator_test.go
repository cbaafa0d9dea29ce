package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(21, 11, 7)
	require.NoError(t, err)
	b, err := Generate(21, 11, 7)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different mazes (-a +b):\n%s", diff)
	}

	c, err := Generate(21, 11, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Shape(t *testing.T) {
	layout, err := Generate(10, 6, 1)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	require.Len(t, rows, 7, "even height is rounded up")
	for _, row := range rows {
		require.Len(t, row, 11, "even width is rounded up")
	}

	assert.Equal(t, strings.Repeat("*", 11), rows[0])
	assert.Equal(t, strings.Repeat("*", 11), rows[6])
	assert.Equal(t, byte('S'), rows[1][1])
	assert.Equal(t, byte('G'), rows[5][9])
	assert.Equal(t, 1, strings.Count(layout, "S"))
	assert.Equal(t, 1, strings.Count(layout, "G"))
}

func TestGenerate_AllCellsCarved(t *testing.T) {
	layout, err := Generate(15, 9, 3)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	for r := 1; r < len(rows)-1; r += 2 {
		for c := 1; c < len(rows[r])-1; c += 2 {
			assert.NotEqual(t, byte('*'), rows[r][c], "cell (%d,%d) was never carved", r, c)
		}
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	_, err := Generate(3, 9, 1)
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("41x21")
	require.NoError(t, err)
	assert.Equal(t, 41, w)
	assert.Equal(t, 21, h)

	w, h, err = ParseSize(" 9X7 ")
	require.NoError(t, err)
	assert.Equal(t, 9, w)
	assert.Equal(t, 7, h)

	_, _, err = ParseSize("big")
	require.Error(t, err)
	_, _, err = ParseSize("4x4")
	require.Error(t, err)
}
