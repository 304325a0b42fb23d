package maze

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/telemetry"
)

// MaxPlacementAttempts bounds the random draws PlaceGoal makes before it
// falls back to enumerating the open cells.
const MaxPlacementAttempts = 1000

// PlaceGoal picks a random open cell inside the border that is not the
// player's position. The result satisfies 1 <= x <= width-2 and
// 1 <= y <= height-2.
func PlaceGoal(ctx context.Context, g *Grid, player Position, rng *rand.Rand) (Position, error) {
	if err := Validate(g.Width(), g.Height()); err != nil {
		return Position{}, fmt.Errorf("place goal: %w", err)
	}

	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.place_goal")
	defer span.End()

	for attempt := 1; attempt <= MaxPlacementAttempts; attempt++ {
		candidate := Position{
			X: rng.Intn(g.Width()-2) + 1,
			Y: rng.Intn(g.Height()-2) + 1,
		}
		if g.IsOpen(candidate) && candidate != player {
			span.SetAttributes(
				attribute.Int("goal.attempts", attempt),
				attribute.Bool("goal.fallback", false),
			)
			return candidate, nil
		}
	}

	candidates := g.goalCandidates(player)
	span.SetAttributes(
		attribute.Int("goal.attempts", MaxPlacementAttempts),
		attribute.Bool("goal.fallback", true),
		attribute.Int("goal.candidates", len(candidates)),
	)
	if len(candidates) == 0 {
		return Position{}, fmt.Errorf("place goal in %dx%d maze, player at %s: %w",
			g.Width(), g.Height(), player, ErrPlacementExhausted)
	}

	return candidates[rng.Intn(len(candidates))], nil
}

// goalCandidates lists the interior open cells other than player.
func (g *Grid) goalCandidates(player Position) []Position {
	var candidates []Position
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			p := Position{X: x, Y: y}
			if g.cells[y][x].IsOpen() && p != player {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
