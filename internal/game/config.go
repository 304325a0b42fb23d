package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/maze"
)

// MaxDimension caps the maze width and height a player may request.
const MaxDimension = 999

// Config holds game configuration options.
type Config struct {
	// Width and height of the first maze, also the prompt defaults.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Theme is a theme ID from the embedded themes.json.
	Theme string `yaml:"theme"`

	// SkipPrompt starts play straight away with Width x Height instead of
	// showing the start screen.
	SkipPrompt bool `yaml:"skip_prompt"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:  maze.DefaultWidth,
		Height: maze.DefaultHeight,
		Theme:  gamedata.DefaultThemeID,
	}
}

// LoadConfigFile overlays the YAML file at path onto base. Keys missing
// from the file keep their value from base; unknown keys are an error.
func LoadConfigFile(path string, base Config) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := base
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the dimensions are playable.
func (c Config) Validate() error {
	if err := validateDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func validateDimensions(width, height int) error {
	if err := maze.Validate(width, height); err != nil {
		return err
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d, maximum is %dx%d",
			maze.ErrInvalidDimensions, width, height, MaxDimension, MaxDimension)
	}
	return nil
}
