package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-knock/internal/entity"
)

var flagShowLayout bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long: `Shows every level with its rank thresholds after the difficulty
preset is applied. Use --layout to print the block layouts too.

Examples:
  blockknock levels
  blockknock levels --difficulty hard
  blockknock levels --config ./my-levels.yaml --layout`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowLayout, "layout", false, "Print block layouts")
}

func runLevels(cmd *cobra.Command, _ []string) {
	cfg, levels, err := loadLevels(cmd, nil)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Levels (difficulty: %s)\n", cfg.Difficulty)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, lv := range levels {
		maxNameLen = max(maxNameLen, len(lv.Name))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-4s  %-6s  %-5s  %s\n", "#", maxNameLen, "Name", "Gold", "Silver", "Green", "Red")
	fmt.Printf("  %-3s  %-*s  %-4s  %-6s  %-5s  %s\n", "-", maxNameLen, "----", "----", "------", "-----", "---")

	for i, lv := range levels {
		fmt.Printf("  %-3d  %-*s  %-4d  %-6d  %-5d  %d\n",
			i+1, maxNameLen, lv.Name,
			lv.GoldThreshold, lv.SilverThreshold,
			lv.Layout.Count(entity.GoodBlock), lv.Layout.Count(entity.BadBlock),
		)
		if flagShowLayout {
			for _, row := range cfg.Levels[i].Layout {
				fmt.Printf("       %s\n", strings.ReplaceAll(row, ".", "·"))
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'blockknock play --start-level <#>' to play a level.")
}
