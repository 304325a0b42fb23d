package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/entity"
	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/maze"
)

const (
	title    = "MazeRunner"
	helpLine = "arrows: move   r: restart   q: quit"

	// mazeTop is the first screen row of the maze; the score sits above it.
	mazeTop = 2
)

// Frame is everything drawn for one turn of play.
type Frame struct {
	Grid    *maze.Grid
	Player  *entity.Player
	Goal    *entity.Goal
	Score   int
	Message string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the score, maze, goal and player.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	textStyle := r.theme.Text.Style()

	r.drawText(0, 0, fmt.Sprintf("Score: %d", f.Score), textStyle.Bold(true))
	if cols, rows := r.needed(f.Grid); !r.fits(cols, rows) {
		r.drawText(0, 1, fmt.Sprintf("terminal too small, maze needs %dx%d", cols, rows),
			textStyle.Foreground(tcell.ColorRed))
	}

	for y := 0; y < f.Grid.Height(); y++ {
		for x := 0; x < f.Grid.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			glyph := r.theme.Path
			if !f.Grid.IsOpen(p) {
				glyph = r.theme.Wall
			}
			r.drawCell(p, glyph.Rune(), glyph.Style())
		}
	}

	// Player drawn last so it stays visible when standing on the goal.
	r.drawCell(f.Goal.Pos, r.theme.Goal.Rune(), r.theme.Goal.Style().Bold(true))
	r.drawCell(f.Player.Pos, r.theme.Player.Rune(), r.theme.Player.Style().Bold(true))

	below := mazeTop + f.Grid.Height() + 1
	r.drawText(0, below, helpLine, textStyle)
	if f.Message != "" {
		r.drawText(0, below+1, f.Message, textStyle)
	}

	r.screen.Show()
}

// RenderTitle draws the start screen.
func (r *Renderer) RenderTitle() {
	r.screen.Clear()
	style := r.theme.Text.Style()
	r.drawText(0, 0, title, style.Bold(true))
	r.drawText(0, 2, "Press Enter to start, q to quit", style)
	r.screen.Show()
}

// RenderPrompt draws a dimension prompt with any rejection message.
func (r *Renderer) RenderPrompt(p *Prompt) {
	r.screen.Clear()
	style := r.theme.Text.Style()
	r.drawText(0, 0, title, style.Bold(true))
	r.drawText(0, 2, p.Text(), style)
	if p.Error != "" {
		r.drawText(0, 3, p.Error, style.Foreground(tcell.ColorRed))
	}
	r.drawText(0, 5, "Enter: accept   Esc: cancel", style)
	r.screen.Show()
}

// needed returns the screen columns and rows a frame of g occupies,
// counting the score above and the help line below the maze.
func (r *Renderer) needed(g *maze.Grid) (cols, rows int) {
	return g.Width() * r.theme.Columns(), mazeTop + g.Height() + 2
}

func (r *Renderer) fits(cols, rows int) bool {
	width, height := r.screen.Size()
	return cols <= width && rows <= height
}

// drawCell fills the screen columns belonging to maze cell p.
func (r *Renderer) drawCell(p maze.Position, ch rune, style tcell.Style) {
	cols := r.theme.Columns()
	for i := 0; i < cols; i++ {
		r.screen.SetContent(p.X*cols+i, mazeTop+p.Y, ch, style)
	}
}

// drawText writes msg starting at column x of row y.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
