// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateStart shows the title screen before the first maze.
	StateStart State = iota
	// StatePromptWidth asks for the maze width.
	StatePromptWidth
	// StatePromptHeight asks for the maze height.
	StatePromptHeight
	// StatePlaying is the maze walk itself.
	StatePlaying
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePromptWidth:
		return "prompt_width"
	case StatePromptHeight:
		return "prompt_height"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
