package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *options {
	t.Helper()
	opts := newOptions()
	require.NoError(t, newRootCmd(opts).ParseFlags(args))
	return opts
}

func TestFlagDefaults(t *testing.T) {
	opts := parse(t)

	assert.Equal(t, 10, opts.cfg.Width)
	assert.Equal(t, 10, opts.cfg.Height)
	assert.Equal(t, "classic", opts.cfg.Theme)
	assert.Zero(t, opts.cfg.Seed)
	assert.False(t, opts.cfg.SkipPrompt)
	assert.Equal(t, "mazerunner.log", opts.logFile)
}

func TestFlagShorthands(t *testing.T) {
	opts := parse(t, "-w", "31", "-H", "21", "-s", "42", "-t", "ascii", "-q")

	assert.Equal(t, 31, opts.cfg.Width)
	assert.Equal(t, 21, opts.cfg.Height)
	assert.Equal(t, int64(42), opts.cfg.Seed)
	assert.Equal(t, "ascii", opts.cfg.Theme)
	assert.True(t, opts.cfg.SkipPrompt)
}

func TestHelpKeepsShorthand(t *testing.T) {
	cmd := newRootCmd(newOptions())
	cmd.InitDefaultHelpFlag()

	help := cmd.Flags().Lookup("help")
	require.NotNil(t, help)
	assert.Equal(t, "h", help.Shorthand)
	assert.Equal(t, "H", cmd.Flags().Lookup("height").Shorthand)
}

func TestResolveConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 25\nheight: 15\ntheme: neon\n"), 0o600))

	opts := newOptions()
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--height", "9"}))

	cfg, err := resolveConfig(cmd, opts)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Width, "file overrides default")
	assert.Equal(t, 9, cfg.Height, "explicit flag overrides file")
	assert.Equal(t, "neon", cfg.Theme)
}

func TestResolveConfigWithoutFile(t *testing.T) {
	opts := newOptions()
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "13"}))

	cfg, err := resolveConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 13, cfg.Width)
}

func TestResolveConfigMissingFile(t *testing.T) {
	opts := newOptions()
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}))

	_, err := resolveConfig(cmd, opts)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log, closeLog, err := newLogger(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("width", 11).Info("maze generated")
	closeLog()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "maze generated")
	assert.Contains(t, string(content), "width=11")
}

func TestNewLoggerDisabled(t *testing.T) {
	log, closeLog, err := newLogger("", "info")
	require.NoError(t, err)
	defer closeLog()

	assert.NotPanics(t, func() { log.Info("discarded") })
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger("", "loud")
	assert.Error(t, err)
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("HONEYCOMB_MAZERUNNER_API_KEY", "key123")
	t.Setenv("HONEYCOMB_MAZERUNNER_DATASET", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	setupOTelEnv()

	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=key123,x-honeycomb-dataset=mazerunner", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestSetupOTelEnvWithoutKey(t *testing.T) {
	t.Setenv("HONEYCOMB_MAZERUNNER_API_KEY", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	setupOTelEnv()

	assert.Empty(t, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
}
