// blockknock is a terminal puzzle game: throw balls up the table to knock the
// green blocks off the far edge while keeping the red ones on it.
//
// Usage:
//
//	blockknock play          - Play from the start level
//	blockknock menu          - Pick a level from a menu
//	blockknock levels        - List configured levels
//	blockknock scores        - Browse finished levels
//	blockknock serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--fps <rate>         - Set tick rate (default: 30)
//	--db <path>          - Set database path (default: ~/.blockknock/results.db)
//	--difficulty <name>  - easy, normal or hard
//	--lang <code>        - Interface language (en, ru)
//	--start-level <n>    - First level to play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	flagConfig     string
	flagEnvFile    string
	flagFPS        int
	flagDBPath     string
	flagDifficulty string
	flagLanguage   string
	flagStartLevel int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockknock",
	Short: "Block Knock - knock the green blocks off the table",
	Long: `Block Knock is a terminal puzzle game. Throw balls up the table to push
the green blocks off the far edge. A red block falling off ends the level.
Fewer throws earn a better rank: Gold, Silver or Bronze.

Available commands:
  play     - Play from the start level
  menu     - Pick a level, come back to the menu after playing
  levels   - Show the configured levels and rank thresholds
  scores   - Browse finished levels
  serve    - Start SSH server for remote play

Configuration is read from --config, ~/.blockknock/blockknock.yaml,
./configs/blockknock.yaml or the built-in levels, in that order.
BLOCKKNOCK_* environment variables (also read from .env) override it.

Examples:
  blockknock play
  blockknock play --start-level 3 --difficulty hard
  blockknock menu --lang ru
  blockknock serve --ssh :2222
  blockknock scores`,
	SilenceUsage: true,
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// addGlobalFlags registers the flags every subcommand shares.
func addGlobalFlags(pf *pflag.FlagSet) {
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Path to a .env file with BLOCKKNOCK_* variables")
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.blockknock/results.db", "Path to results database")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLanguage, "lang", "", "Interface language: en, ru")
	pf.IntVar(&flagStartLevel, "start-level", 0, "First level to play (1-based)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
