// Package config provides YAML-based configuration loading for Block Knock:
// table geometry, level layouts and rank thresholds, and session options.
package config

import (
	"time"

	"github.com/vovakirdan/block-knock/internal/table"
)

// GameConfig contains all configuration for a Block Knock session.
type GameConfig struct {
	Language    string           `yaml:"language"`
	StartLevel  int              `yaml:"start_level"`
	SettleDelay time.Duration    `yaml:"settle_delay"`
	Difficulty  DifficultyPreset `yaml:"difficulty"`
	Table       TableConfig      `yaml:"table"`
	Sound       SoundConfig      `yaml:"sound"`
	Levels      []LevelConfig    `yaml:"levels"`
}

// TableConfig defines the table grid and ball behaviour.
type TableConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	SpawnX        int `yaml:"spawn_x"`
	SpawnY        int `yaml:"spawn_y"`
	BallStepTicks int `yaml:"ball_step_ticks"`
	Strength      int `yaml:"strength"`
}

// Table converts to the table package's config.
func (c TableConfig) Table() table.Config {
	return table.Config{
		Width:         c.Width,
		Height:        c.Height,
		SpawnX:        c.SpawnX,
		SpawnY:        c.SpawnY,
		BallStepTicks: c.BallStepTicks,
		Strength:      c.Strength,
	}
}

// SoundConfig controls how cues are shown in the terminal.
type SoundConfig struct {
	Bell     bool `yaml:"bell"`      // Ring the terminal bell on hits
	CueTicks int  `yaml:"cue_ticks"` // How long a cue stays on screen
}

// LevelConfig defines one level: its layout and the throw thresholds for each rank.
type LevelConfig struct {
	Name   string   `yaml:"name"`
	Gold   int      `yaml:"gold"`   // Max throws for Gold
	Silver int      `yaml:"silver"` // Max throws for Silver
	Layout []string `yaml:"layout"` // Rows of G, B and .
}
