package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-knock/internal/platform/tui"
	"github.com/vovakirdan/block-knock/internal/storage"
)

var (
	flagStats  bool
	flagClear  bool
	flagPlayer string
	flagRecent int
	flagPlain  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse finished levels",
	Long: `Display the best rank per level and the latest finished levels.

By default opens an interactive scoreboard. Use --plain for a text
listing, --stats for totals over all players, or --clear to delete
every stored result.

Examples:
  blockknock scores
  blockknock scores --plain --recent 20
  blockknock scores --player alice
  blockknock scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals over all players")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Player to show (default: current user)")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent results in the plain listing")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the scoreboard")
}

func runScores(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(); err != nil {
			fail("%v", err)
		}
		fmt.Println("All results deleted.")
		return
	case flagStats:
		printStats(store)
		return
	}

	_, levels, err := loadLevels(cmd, nil)
	if err != nil {
		fail("%v", err)
	}

	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	if flagPlain {
		printScores(store, player)
		return
	}

	rt := runtimeConfig()
	if err := tui.RunScoreboard(store, levels, player, rt.ScreenW, rt.ScreenH); err != nil {
		fail("running scoreboard: %v", err)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Block Knock statistics")
	fmt.Println()
	fmt.Printf("  Runs:           %d\n", stats.Runs)
	fmt.Printf("  Levels played:  %d\n", stats.Levels)
	fmt.Printf("  Levels cleared: %d\n", stats.Wins)
	fmt.Printf("  Gold ranks:     %d\n", stats.Golds)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printScores(store *storage.Store, player string) {
	best, err := store.BestResults(player)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Best results - %s\n", player)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Println("Play 'blockknock play' to set the first result!")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "Level", "Rank", "Throws", "Clears")
	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "-----", "----", "------", "------")
	for _, b := range best {
		fmt.Printf("  %-5d  %-6s  %-6d  %d\n", b.Level, b.Rank, b.Throws, b.Clears)
	}

	recent, err := store.RecentResults(player, flagRecent)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println()
	fmt.Println("Recent")
	fmt.Println()
	for _, e := range recent {
		fmt.Printf("  %s  level %-3d %-14s %-6s %d throws\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Level, e.Outcome, e.Rank, e.Throws)
	}
}
