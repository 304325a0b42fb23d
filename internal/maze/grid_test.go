package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridAllWalls(t *testing.T) {
	g := NewGrid(4, 3)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Zero(t, g.CountOpen())
	assert.Empty(t, g.OpenCells())
	assert.Equal(t, "####\n####\n####\n", g.String())
}

func TestParseGrid(t *testing.T) {
	rows := []string{
		"#####",
		"#...#",
		"#.###",
		"#####",
	}
	g, err := ParseGrid(rows...)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 4, g.CountOpen())
	assert.Equal(t, "#####\n#...#\n#.###\n#####\n", g.String())
	assert.Equal(t, []Position{{1, 1}, {2, 1}, {3, 1}, {1, 2}}, g.OpenCells())
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "##"}},
		{"bad char", []string{"#x#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.rows...)
			assert.Error(t, err)
		})
	}
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	g, err := ParseGrid("...", "...", "...")
	require.NoError(t, err)

	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		assert.False(t, g.InBounds(p), "%s should be out of bounds", p)
		assert.Equal(t, CellWall, g.At(p))
		assert.False(t, g.IsOpen(p))
	}
}

func TestReachable(t *testing.T) {
	g, err := ParseGrid(
		"#####",
		"#..##",
		"###.#",
		"#####",
	)
	require.NoError(t, err)

	assert.Equal(t, []Position{{1, 1}, {2, 1}}, g.Reachable(Position{X: 1, Y: 1}))
	assert.Equal(t, []Position{{3, 2}}, g.Reachable(Position{X: 3, Y: 2}))
	assert.Nil(t, g.Reachable(Position{X: 0, Y: 0}))
}

func TestCellRune(t *testing.T) {
	assert.Equal(t, '#', CellWall.Rune())
	assert.Equal(t, '.', CellOpen.Rune())
	assert.True(t, CellOpen.IsOpen())
	assert.False(t, CellWall.IsOpen())
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction{DX: 2, DY: 2}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction%v.String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}

func TestPositionAdd(t *testing.T) {
	p := Position{X: 3, Y: 4}
	assert.Equal(t, Position{X: 3, Y: 3}, p.Add(Up))
	assert.Equal(t, Position{X: 3, Y: 5}, p.Add(Down))
	assert.Equal(t, Position{X: 2, Y: 4}, p.Add(Left))
	assert.Equal(t, Position{X: 4, Y: 4}, p.Add(Right))
	assert.Equal(t, "(3,4)", p.String())
}

func TestStartIsFixed(t *testing.T) {
	assert.Equal(t, Position{X: 1, Y: 1}, Start())
	assert.Equal(t, "(1,1)", Start().String())
}
