package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/samdwyer/mazerunner/internal/game"
	"github.com/samdwyer/mazerunner/internal/telemetry"
)

type options struct {
	cfg        game.Config
	configFile string
	logFile    string
	logLevel   string
}

func newOptions() *options {
	return &options{cfg: game.DefaultConfig()}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mazerunner",
		Short: "Walk randomly generated mazes in the terminal",
		Long: `mazerunner generates a maze, drops you at its top-left corner and
places a goal somewhere inside. Reach the goal to score; a new goal appears.

Play with the default 10x10 maze
	mazerunner

Start straight away on a reproducible 31x21 maze
	mazerunner --width 31 --height 21 --seed 42 --quick
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.cfg.Width, "width", "w", opts.cfg.Width, "Maze width, in cells")
	flags.IntVarP(&opts.cfg.Height, "height", "H", opts.cfg.Height, "Maze height, in cells")
	flags.Int64VarP(&opts.cfg.Seed, "seed", "s", 0, "Random seed (0 picks one from the clock)")
	flags.StringVarP(&opts.cfg.Theme, "theme", "t", opts.cfg.Theme, "Display theme: classic, ascii or neon")
	flags.BoolVarP(&opts.cfg.SkipPrompt, "quick", "q", false, "Skip the start screen and size prompts")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML config file; flags override its values")
	flags.StringVar(&opts.logFile, "log-file", "mazerunner.log", "Log file path (empty disables logging)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	log, closeLog, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Load .env file for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded")
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	ctx := context.Background()

	setupOTelEnv()
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		log.Debug("no OTLP endpoint configured, telemetry disabled")
	} else {
		// The exporter would otherwise report errors on stderr, under the game.
		otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
			log.WithError(err).Warn("telemetry error")
		}))

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// resolveConfig layers defaults, the optional config file and flags the
// user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command, opts *options) (game.Config, error) {
	if opts.configFile == "" {
		return opts.cfg, nil
	}

	cfg, err := game.LoadConfigFile(opts.configFile, game.DefaultConfig())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.cfg.Width
	}
	if flags.Changed("height") {
		cfg.Height = opts.cfg.Height
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.cfg.Seed
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.cfg.Theme
	}
	if flags.Changed("quick") {
		cfg.SkipPrompt = opts.cfg.SkipPrompt
	}
	return cfg, nil
}

// newLogger returns a logger writing to path. tcell owns the terminal, so
// logs never go to stdout or stderr while the game runs.
func newLogger(path, level string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}
