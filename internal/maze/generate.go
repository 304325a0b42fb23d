package maze

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gammazero/deque"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/mazerunner/internal/telemetry"
)

const (
	// Default maze dimensions offered when the player starts a game.
	DefaultWidth  = 10
	DefaultHeight = 10

	// MinDimension is the smallest width or height that leaves an interior to carve.
	MinDimension = 3
)

var generatedCounter, _ = telemetry.Meter("maze").Int64Counter(
	"maze.generated",
	metric.WithDescription("Number of mazes generated"),
)

// Validate reports whether a width x height maze can be generated.
// Even dimensions are accepted; the carving stride of 2 then reaches the
// last row or column, which stays part of the maze.
func Validate(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: %dx%d, minimum is %dx%d",
			ErrInvalidDimensions, width, height, MinDimension, MinDimension)
	}
	return nil
}

// Generate carves a width x height maze from Start using randomized
// depth-first backtracking. Every open cell is reachable from Start and the
// carved passages form a tree.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) (*Grid, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("maze")
	ctx, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(width, height)
	depth := g.carveFrom(Start(), rng)

	generatedCounter.Add(ctx, 1)
	span.SetAttributes(
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int("maze.open_cells", g.CountOpen()),
		attribute.Int("maze.max_depth", depth),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)

	return g, nil
}

// frame is one pending cell of the carve: its shuffled directions and how
// many of them have been tried.
type frame struct {
	pos  Position
	dirs [4]Direction
	next int
}

func newFrame(pos Position, rng *rand.Rand) *frame {
	f := &frame{pos: pos, dirs: Directions()}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carveFrom runs the backtracker with an explicit stack and returns the
// deepest stack reached. Cells are visited in the same order as the
// recursive formulation.
func (g *Grid) carveFrom(start Position, rng *rand.Rand) int {
	var stack deque.Deque[*frame]

	g.carve(start)
	stack.PushBack(newFrame(start, rng))
	maxDepth := 1

	for stack.Len() > 0 {
		top := stack.Back()
		if top.next == len(top.dirs) {
			stack.PopBack()
			continue
		}

		d := top.dirs[top.next]
		top.next++

		between := top.pos.Add(d)
		far := between.Add(d)
		if !g.InBounds(far) || g.At(far).IsOpen() {
			continue
		}

		g.carve(between)
		g.carve(far)
		stack.PushBack(newFrame(far, rng))
		maxDepth = max(maxDepth, stack.Len())
	}

	return maxDepth
}
