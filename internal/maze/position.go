package maze

import "fmt"

// Position is a zero-based (x, y) grid coordinate.
type Position struct {
	X, Y int
}

// Start returns the cell every maze is carved from and every player
// begins on.
func Start() Position { return Position{X: 1, Y: 1} }

// Add returns the position one step in the given direction.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit step along one axis.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions returns the four axis-aligned directions in a fixed order.
// Callers own the returned array and may shuffle it.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
