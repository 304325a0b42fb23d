package gamedata

import (
	"errors"
	"fmt"
)

// DefaultThemeID is the theme used when none is requested.
const DefaultThemeID = "classic"

// ErrUnknownTheme is returned when a theme ID is not in the registry.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeRegistry holds loaded theme definitions.
type ThemeRegistry struct {
	themes map[string]*ThemeDef
	all    []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes: make(map[string]*ThemeDef),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *ThemeDef {
	return r.themes[id]
}

// Resolve returns the theme with the given ID. An empty ID selects the
// default theme.
func (r *ThemeRegistry) Resolve(id string) (*ThemeDef, error) {
	if id == "" {
		return r.Default(), nil
	}
	if theme := r.themes[id]; theme != nil {
		return theme, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, id, r.IDs())
}

// Default returns the default theme, or the first loaded one if it is missing.
func (r *ThemeRegistry) Default() *ThemeDef {
	if theme := r.themes[DefaultThemeID]; theme != nil {
		return theme
	}
	return &r.all[0]
}

// IDs returns the theme identifiers in file order.
func (r *ThemeRegistry) IDs() []string {
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].ID
	}
	return ids
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.all)
}
