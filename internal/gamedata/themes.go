package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef is the character and colour used to draw one kind of cell.
type GlyphDef struct {
	Glyph string `json:"glyph"` // Single character (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#808080")
}

// Rune returns the glyph's first rune, or '?' when it is empty.
func (g GlyphDef) Rune() rune {
	r, size := utf8.DecodeRuneInString(g.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (g GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Style returns a foreground style for the glyph.
func (g GlyphDef) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(g.TCellColor())
}

// ThemeDef defines how the maze is drawn, loaded from JSON.
type ThemeDef struct {
	ID        string   `json:"id"`        // Unique identifier (e.g., "classic")
	Name      string   `json:"name"`      // Display name
	CellWidth int      `json:"cellWidth"` // Terminal columns per maze cell
	Wall      GlyphDef `json:"wall"`
	Path      GlyphDef `json:"path"`
	Player    GlyphDef `json:"player"`
	Goal      GlyphDef `json:"goal"`
	Text      GlyphDef `json:"text"` // HUD and prompt text; only the color is used
}

// Columns returns the terminal columns per cell, at least 1.
func (t *ThemeDef) Columns() int {
	if t.CellWidth < 1 {
		return 1
	}
	return t.CellWidth
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
