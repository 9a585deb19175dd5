package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/block-knock/internal/level"
)

// FileName is the config file looked up in the user and local config directories.
const FileName = "blockknock.yaml"

// Environment variables that override file values.
const (
	EnvLanguage    = "BLOCKKNOCK_LANGUAGE"
	EnvStartLevel  = "BLOCKKNOCK_START_LEVEL"
	EnvSettleDelay = "BLOCKKNOCK_SETTLE_DELAY"
	EnvDifficulty  = "BLOCKKNOCK_DIFFICULTY"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.blockknock/blockknock.yaml -> ./configs/blockknock.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockknock", filename)
}

// LoadEnvFile loads variables from a .env file into the environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from BLOCKKNOCK_* environment variables.
func ApplyEnv(cfg *GameConfig) error {
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv(EnvStartLevel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvStartLevel, err)
		}
		cfg.StartLevel = n
	}
	if v := os.Getenv(EnvSettleDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSettleDelay, err)
		}
		cfg.SettleDelay = d
	}
	if v := os.Getenv(EnvDifficulty); v != "" {
		p, ok := ParseDifficulty(v)
		if !ok {
			return fmt.Errorf("config: %s: unknown difficulty %q", EnvDifficulty, v)
		}
		cfg.Difficulty = p
	}
	return nil
}

// ToLevels parses every level layout. A level whose gold threshold exceeds its
// silver threshold is accepted with a warning; logger may be nil.
func (c GameConfig) ToLevels(logger *log.Logger) ([]level.Config, error) {
	if len(c.Levels) == 0 {
		return nil, errors.New("config: no levels defined")
	}

	levels := make([]level.Config, 0, len(c.Levels))
	for i, lc := range c.Levels {
		tpl, err := level.ParseTemplate(lc.Layout)
		if err != nil {
			return nil, fmt.Errorf("config: level %d (%s): %w", i+1, lc.Name, err)
		}
		if lc.Gold > lc.Silver && logger != nil {
			logger.Warn("gold threshold above silver",
				"level", i+1,
				"name", lc.Name,
				"gold", lc.Gold,
				"silver", lc.Silver,
			)
		}
		levels = append(levels, level.Config{
			Name:            lc.Name,
			GoldThreshold:   lc.Gold,
			SilverThreshold: lc.Silver,
			Layout:          tpl,
		})
	}
	return levels, nil
}
