package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockknock.yaml
var defaultYAML []byte

// DefaultGameConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Language:    "en",
		StartLevel:  1,
		SettleDelay: 500 * time.Millisecond,
		Difficulty:  DifficultyNormal,
		Table: TableConfig{
			Width:         14,
			Height:        10,
			SpawnX:        3,
			SpawnY:        1,
			BallStepTicks: 4,
			Strength:      1,
		},
		Sound: SoundConfig{
			CueTicks: 30,
		},
		Levels: []LevelConfig{
			{Name: "Warm Up", Gold: 4, Silver: 6, Layout: []string{"..G..G.."}},
			{Name: "Mind the Red", Gold: 4, Silver: 6, Layout: []string{".G.B.G."}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
