package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze of cells indexed [y][x].
// A grid is never modified once generation has finished.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates a grid of the given size filled with walls.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = CellWall
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (open) characters.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse grid: %w: empty", ErrInvalidDimensions)
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("parse grid: row %d has length %d, want %d", y, len(row), g.width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[y][x] = CellWall
			case '.':
				g.cells[y][x] = CellOpen
			default:
				return nil, fmt.Errorf("parse grid: unexpected %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Positions outside the grid read as walls.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen returns true if p is inside the grid and walkable.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p).IsOpen()
}

// OpenCells returns every open position in row-major order.
func (g *Grid) OpenCells() []Position {
	open := make([]Position, 0, g.CountOpen())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].IsOpen() {
				open = append(open, Position{X: x, Y: y})
			}
		}
	}
	return open
}

// CountOpen returns the number of open cells.
func (g *Grid) CountOpen() int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c.IsOpen() {
				n++
			}
		}
	}
	return n
}

// String renders the grid with one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := range g.cells {
		for _, c := range g.cells[y] {
			b.WriteRune(c.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) carve(p Position) {
	g.cells[p.Y][p.X] = CellOpen
}
