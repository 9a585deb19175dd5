package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-knock/internal/config"
	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/level"
)

// loadConfig builds the game config: file, then environment, then flags.
func loadConfig(cmd *cobra.Command) (config.GameConfig, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return config.GameConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = flagLanguage
	}
	if flags.Changed("start-level") {
		cfg.StartLevel = flagStartLevel
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = config.DifficultyPreset(flagDifficulty)
	}

	preset, ok := config.ParseDifficulty(string(cfg.Difficulty))
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", cfg.Difficulty)
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, nil
}

// loadLevels loads the config and parses its levels.
func loadLevels(cmd *cobra.Command, logger *log.Logger) (config.GameConfig, []level.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	levels, err := cfg.ToLevels(logger)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, levels, nil
}

// newLogger returns a logger writing to --log-file. The terminal belongs to
// the game, so without a log file everything is discarded.
// The returned close function is never nil.
func newLogger() (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockknock",
		Level:           lvl,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// playerName identifies the local player in stored results.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
