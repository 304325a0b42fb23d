package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazerunner/internal/maze"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazerunner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, maze.DefaultWidth, cfg.Width)
	assert.Equal(t, maze.DefaultHeight, cfg.Height)
	assert.Equal(t, "classic", cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "width: 31\nseed: 77\ntheme: ascii\n")

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 31, cfg.Width)
	assert.Equal(t, maze.DefaultHeight, cfg.Height, "missing keys keep the base value")
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "ascii", cfg.Theme)
	assert.False(t, cfg.SkipPrompt)
}

func TestLoadConfigFileErrors(t *testing.T) {
	base := DefaultConfig()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"), base)
		assert.Error(t, err)
		assert.Equal(t, base, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		cfg, err := LoadConfigFile(writeConfig(t, "widht: 31\n"), base)
		assert.Error(t, err)
		assert.Equal(t, base, cfg)
	})

	t.Run("bad type", func(t *testing.T) {
		_, err := LoadConfigFile(writeConfig(t, "width: wide\n"), base)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		valid         bool
	}{
		{"default", 10, 10, true},
		{"minimum", 3, 3, true},
		{"maximum", MaxDimension, MaxDimension, true},
		{"too narrow", 2, 10, false},
		{"too tall", 10, MaxDimension + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = tt.width, tt.height

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	assert.Equal(t, int64(1234), cfg.ResolveSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.ResolveSeed())
}
