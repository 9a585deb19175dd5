package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-knock/internal/game"
	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/platform/tui"
	"github.com/vovakirdan/block-knock/internal/storage"
)

var flagSelect bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Block Knock",
	Long: `Start playing from the start level.

Controls:
  Left/Right  - Aim
  Space/Up    - Throw a ball
  Enter       - Start / continue
  R           - Retry the level
  N           - Next level
  X           - Start over
  L           - Switch language
  ?           - Full help
  Q/Ctrl+C    - Quit

Examples:
  blockknock play
  blockknock play --start-level 4
  blockknock play --select
  blockknock play --difficulty easy --lang ru
  blockknock play --config ./my-levels.yaml --log-file knock.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the start level from a menu first")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, levels, err := loadLevels(cmd, logger)
	if err != nil {
		fail("%v", err)
	}
	rt := runtimeConfig()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	player := playerName()

	if flagSelect {
		selected, menuErr := tui.RunMenu(levels, store, player, rt.ScreenW, rt.ScreenH)
		if menuErr != nil {
			fail("%v", menuErr)
		}
		// User quit the menu
		if selected == 0 {
			return
		}
		cfg.StartLevel = selected
	}

	var rec gameplay.Recorder
	if store != nil {
		r := storage.NewRunRecorder(store, player)
		logger.Info("run started", "run", r.RunID(), "player", player)
		rec = r
	}

	g, err := game.New(cfg, game.Options{Recorder: rec, Logger: logger})
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(g, rt); err != nil {
		fail("running game: %v", err)
	}
}
