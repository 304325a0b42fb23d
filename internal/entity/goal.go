package entity

import "github.com/samdwyer/mazerunner/internal/maze"

// Goal is the target cell the player must reach to score.
type Goal struct {
	Pos    maze.Position
	Symbol rune
}

// NewGoal creates a goal at the given position.
func NewGoal(pos maze.Position) *Goal {
	return &Goal{
		Pos:    pos,
		Symbol: '*',
	}
}

// Relocate moves the goal to pos.
func (g *Goal) Relocate(pos maze.Position) {
	g.Pos = pos
}

// ReachedBy returns true if the player stands on the goal.
func (g *Goal) ReachedBy(p *Player) bool {
	return g.Pos == p.Pos
}
