// Package entity provides the things that occupy maze cells: the player and the goal.
package entity

import "github.com/samdwyer/mazerunner/internal/maze"

// Player is the walker controlled by the arrow keys.
type Player struct {
	Pos    maze.Position // Current cell
	Symbol rune          // Display symbol
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos maze.Position) *Player {
	return &Player{
		Pos:    pos,
		Symbol: '@',
	}
}

// Move steps the player one cell in the given direction.
// Callers check the destination first.
func (p *Player) Move(d maze.Direction) {
	p.Pos = p.Pos.Add(d)
}

// Reset puts the player back at pos.
func (p *Player) Reset(pos maze.Position) {
	p.Pos = pos
}

// Position returns the current cell.
func (p *Player) Position() maze.Position {
	return p.Pos
}
