// Package maze provides maze generation and goal placement on a wall/open grid.
package maze

// Cell represents a single maze cell.
type Cell bool

const (
	// CellWall represents an impassable wall cell.
	CellWall Cell = true
	// CellOpen represents a carved, walkable cell.
	CellOpen Cell = false
)

// IsOpen returns true if the cell can be walked on.
func (c Cell) IsOpen() bool {
	return c == CellOpen
}

// Rune returns the cell's plain-text character.
func (c Cell) Rune() rune {
	if c == CellWall {
		return '#'
	}
	return '.'
}
