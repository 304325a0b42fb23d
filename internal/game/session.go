package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/mazerunner/internal/entity"
	"github.com/samdwyer/mazerunner/internal/maze"
	"github.com/samdwyer/mazerunner/internal/telemetry"
)

var goalsCounter, _ = telemetry.Meter("game").Int64Counter(
	"maze.goals_reached",
	metric.WithDescription("Number of goals reached by players"),
)

// MoveResult describes the outcome of a move attempt.
type MoveResult int

const (
	// MoveBlocked means the destination was a wall or outside the maze.
	MoveBlocked MoveResult = iota
	// MoveOK means the player moved.
	MoveOK
	// MoveScored means the player moved onto the goal.
	MoveScored
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "blocked"
	case MoveOK:
		return "ok"
	case MoveScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one game: the maze, the player, the goal
// and the score. The maze is replaced only by Restart.
type Session struct {
	ID     uuid.UUID
	Grid   *maze.Grid
	Player *entity.Player
	Goal   *entity.Goal
	Score  int

	rng *rand.Rand
	log logrus.FieldLogger
}

// NewSession generates a width x height maze with the player at the start
// cell and a freshly placed goal.
func NewSession(ctx context.Context, width, height int, rng *rand.Rand, log logrus.FieldLogger) (*Session, error) {
	s := &Session{
		ID:     uuid.New(),
		Player: entity.NewPlayer(maze.Start()),
		Goal:   entity.NewGoal(maze.Start()),
		rng:    rng,
	}
	s.log = log.WithField("session", s.ID.String())

	if err := s.Restart(ctx, width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart replaces the maze and resets the player, goal and score. On error
// the session is left unchanged.
func (s *Session) Restart(ctx context.Context, width, height int) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.restart")
	defer span.End()

	if err := validateDimensions(width, height); err != nil {
		return err
	}

	grid, err := maze.Generate(ctx, width, height, s.rng)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}

	goal, err := maze.PlaceGoal(ctx, grid, maze.Start(), s.rng)
	if err != nil {
		return err
	}

	s.Grid = grid
	s.Player.Reset(maze.Start())
	s.Goal.Relocate(goal)
	s.Score = 0

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int("goal.x", goal.X),
		attribute.Int("goal.y", goal.Y),
	)
	s.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"goal":   goal.String(),
	}).Info("maze generated")

	return nil
}

// TryMove moves the player one cell if the destination is open. Reaching
// the goal increments the score by one and relocates the goal away from
// the player.
func (s *Session) TryMove(ctx context.Context, d maze.Direction) (MoveResult, error) {
	next := s.Player.Pos.Add(d)
	if !s.Grid.IsOpen(next) {
		return MoveBlocked, nil
	}

	s.Player.Move(d)
	if !s.Goal.ReachedBy(s.Player) {
		return MoveOK, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.goal_reached")
	defer span.End()

	// On failure the goal stays on the player's cell and the score is not
	// bumped. PlaceGoal only fails when no other open interior cell exists,
	// which a generated maze of 4x4 or larger always has.
	goal, err := maze.PlaceGoal(ctx, s.Grid, s.Player.Pos, s.rng)
	if err != nil {
		span.RecordError(err)
		return MoveOK, fmt.Errorf("relocate goal: %w", err)
	}

	s.Goal.Relocate(goal)
	s.Score++
	goalsCounter.Add(ctx, 1)

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("score", s.Score),
	)
	s.log.WithFields(logrus.Fields{
		"score": s.Score,
		"goal":  goal.String(),
	}).Debug("goal reached")

	return MoveScored, nil
}

// Dimensions returns the current maze width and height.
func (s *Session) Dimensions() (width, height int) {
	return s.Grid.Width(), s.Grid.Height()
}
