package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/maze"
	"github.com/samdwyer/mazerunner/internal/telemetry"
	"github.com/samdwyer/mazerunner/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	log      logrus.FieldLogger
	rng      *rand.Rand
	session  *Session
	state    State
	prompt   *ui.Prompt
	width    int // accepted from the width prompt, awaiting a height
	message  string
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theme, err := gamedata.MustLoadThemeRegistry().Resolve(cfg.Theme)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	return newGame(screen, theme, cfg, log), nil
}

func newGame(screen *ui.Screen, theme *gamedata.ThemeDef, cfg Config, log logrus.FieldLogger) *Game {
	seed := cfg.ResolveSeed()
	log.WithField("seed", seed).Info("game created")

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		cfg:      cfg,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateStart,
		running:  true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("config.width", g.cfg.Width),
		attribute.Int("config.height", g.cfg.Height),
		attribute.String("config.theme", g.cfg.Theme),
	)
	if g.cfg.SkipPrompt {
		if err := g.startSession(ctx, g.cfg.Width, g.cfg.Height); err != nil {
			initSpan.RecordError(err)
			initSpan.End()
			g.screen.Close()
			return err
		}
	}
	initSpan.End()

	for g.running {
		g.render()
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.screen.Close()
	return nil
}

// render draws the screen for the current state.
func (g *Game) render() {
	switch g.state {
	case StateStart:
		g.renderer.RenderTitle()
	case StatePromptWidth, StatePromptHeight:
		g.renderer.RenderPrompt(g.prompt)
	case StatePlaying:
		g.renderer.Render(ui.Frame{
			Grid:    g.session.Grid,
			Player:  g.session.Player,
			Goal:    g.session.Goal,
			Score:   g.session.Score,
			Message: g.message,
		})
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent dispatches keyboard input by state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.state {
	case StateStart:
		g.handleStartKey(ev)
	case StatePromptWidth, StatePromptHeight:
		g.handlePromptKey(ctx, ev)
	case StatePlaying:
		g.handlePlayKey(ctx, ev)
	}
}

func (g *Game) handleStartKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		g.openWidthPrompt("")
	case tcell.KeyEscape:
		g.running = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

func (g *Game) handlePlayKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, maze.Up)
	case tcell.KeyDown:
		g.tryMove(ctx, maze.Down)
	case tcell.KeyLeft:
		g.tryMove(ctx, maze.Left)
	case tcell.KeyRight:
		g.tryMove(ctx, maze.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.openWidthPrompt("")
		}
	}
}

// tryMove attempts to move the player; walls silently block.
func (g *Game) tryMove(ctx context.Context, d maze.Direction) {
	result, err := g.session.TryMove(ctx, d)
	if err != nil {
		g.log.WithError(err).Error("move failed")
		g.message = err.Error()
		return
	}

	switch result {
	case MoveScored:
		g.message = "Goal reached!"
	case MoveOK:
		g.message = ""
	}
}

// openWidthPrompt starts the dimension prompts, defaulting to the current
// maze size.
func (g *Game) openWidthPrompt(reason string) {
	width, _ := g.dimensions()
	g.prompt = ui.NewPrompt("Maze width", width)
	g.prompt.Error = reason
	g.state = StatePromptWidth
}

func (g *Game) handlePromptKey(ctx context.Context, ev *tcell.EventKey) {
	switch g.prompt.HandleKey(ev) {
	case ui.PromptCancelled:
		g.cancelPrompt()
	case ui.PromptAccepted:
		g.acceptPrompt(ctx)
	}
}

func (g *Game) cancelPrompt() {
	g.prompt = nil
	if g.session != nil {
		g.state = StatePlaying
	} else {
		g.state = StateStart
	}
}

func (g *Game) acceptPrompt(ctx context.Context) {
	value, err := g.prompt.Value()
	if err != nil {
		g.prompt.Reject(err.Error())
		return
	}
	if value < maze.MinDimension || value > MaxDimension {
		g.prompt.Reject(fmt.Sprintf("must be between %d and %d", maze.MinDimension, MaxDimension))
		return
	}

	if g.state == StatePromptWidth {
		g.width = value
		_, height := g.dimensions()
		g.prompt = ui.NewPrompt("Maze height", height)
		g.state = StatePromptHeight
		return
	}

	if err := g.startSession(ctx, g.width, value); err != nil {
		if errors.Is(err, maze.ErrPlacementExhausted) {
			g.openWidthPrompt("maze too small to place a goal, try a larger size")
			return
		}
		g.openWidthPrompt(err.Error())
	}
}

// startSession creates the first session or restarts the current one.
func (g *Game) startSession(ctx context.Context, width, height int) error {
	var err error
	if g.session == nil {
		var s *Session
		s, err = NewSession(ctx, width, height, g.rng, g.log)
		if err == nil {
			g.session = s
		}
	} else {
		err = g.session.Restart(ctx, width, height)
	}
	if err != nil {
		g.log.WithError(err).WithFields(logrus.Fields{
			"width":  width,
			"height": height,
		}).Warn("could not start maze")
		return err
	}

	g.prompt = nil
	g.message = ""
	g.state = StatePlaying
	return nil
}

// dimensions returns the current maze size, or the configured one before
// the first maze exists.
func (g *Game) dimensions() (width, height int) {
	if g.session != nil {
		return g.session.Dimensions()
	}
	return g.cfg.Width, g.cfg.Height
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
