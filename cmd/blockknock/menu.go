package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-knock/internal/platform/tui"
	"github.com/vovakirdan/block-knock/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from a menu",
	Long: `Start Block Knock in interactive menu mode.

Use arrow keys or j/k to pick a level, Enter to play it.
Press Esc during a game to return to the menu. The menu shows
your best rank for every level you have cleared.

Examples:
  blockknock menu
  blockknock menu --fps 20
  blockknock menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, levels, err := loadLevels(cmd, logger)
	if err != nil {
		fail("%v", err)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	deps := tui.SessionDeps{
		Store:  store,
		Levels: levels,
		Game:   cfg,
		Logger: logger,
	}
	if err := tui.RunSession(deps, runtimeConfig(), playerName()); err != nil {
		fail("running menu: %v", err)
	}
}
