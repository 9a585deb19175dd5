package config

import "github.com/vovakirdan/block-knock/internal/core"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy balls push two cells and every threshold gets one spare throw.
// Hard balls roll slower and every threshold loses one throw.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	slack := 0
	switch preset {
	case DifficultyEasy:
		cfg.Table.Strength = core.Max(cfg.Table.Strength, 2)
		slack = 1
	case DifficultyHard:
		cfg.Table.BallStepTicks++
		slack = -1
	}
	if slack == 0 {
		return
	}

	for i := range cfg.Levels {
		lv := &cfg.Levels[i]
		lv.Gold = core.Max(lv.Gold+slack, 1)
		lv.Silver = core.Max(lv.Silver+slack, lv.Gold)
	}
}
