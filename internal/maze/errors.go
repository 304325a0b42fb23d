package maze

import "errors"

var (
	// ErrInvalidDimensions is returned when a maze is too small to carve.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// ErrPlacementExhausted is returned when no open cell other than the
	// player's is available for the goal.
	ErrPlacementExhausted = errors.New("no open cell available for goal")
)
