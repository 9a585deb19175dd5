package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/block-knock/internal/entity"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SettleDelay != 500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 500ms", cfg.SettleDelay)
	}
	if len(cfg.Levels) != 6 {
		t.Errorf("levels = %d, want 6", len(cfg.Levels))
	}
	if cfg.Table.Width != 14 || cfg.Table.Height != 10 {
		t.Errorf("table = %dx%d", cfg.Table.Width, cfg.Table.Height)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	work := t.TempDir()
	home := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", home)

	writeConfig(t, filepath.Join(work, "configs", FileName), "language: local\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "local" {
		t.Errorf("Language = %q, want local config", cfg.Language)
	}

	writeConfig(t, filepath.Join(home, ".blockknock", FileName), "language: user\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "user" {
		t.Errorf("Language = %q, want user config", cfg.Language)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeConfig(t, custom, "language: custom\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "custom" {
		t.Errorf("Language = %q, want custom config", cfg.Language)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeConfig(t, bad, "levels: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLanguage, "ru")
	t.Setenv(EnvStartLevel, "3")
	t.Setenv(EnvSettleDelay, "1s")
	t.Setenv(EnvDifficulty, "hard")

	cfg := DefaultGameConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Language != "ru" || cfg.StartLevel != 3 || cfg.SettleDelay != time.Second || cfg.Difficulty != DifficultyHard {
		t.Errorf("unexpected config after env: %+v", cfg)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvStartLevel, "two"},
		{EnvSettleDelay, "soon"},
		{EnvDifficulty, "nightmare"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := DefaultGameConfig()
			if err := ApplyEnv(&cfg); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}

	path := filepath.Join(dir, ".env")
	writeConfig(t, path, EnvLanguage+"=ru\n")
	t.Setenv(EnvLanguage, "") // restores the variable after the test
	os.Unsetenv(EnvLanguage)

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if got := os.Getenv(EnvLanguage); got != "ru" {
		t.Errorf("%s = %q, want ru", EnvLanguage, got)
	}
}

func TestToLevels(t *testing.T) {
	cfg := DefaultGameConfig()
	levels, err := cfg.ToLevels(nil)
	if err != nil {
		t.Fatalf("ToLevels: %v", err)
	}
	if len(levels) != len(cfg.Levels) {
		t.Fatalf("levels = %d, want %d", len(levels), len(cfg.Levels))
	}
	if got := levels[1].Layout.Count(entity.BadBlock); got != 1 {
		t.Errorf("bad blocks in level 2 = %d, want 1", got)
	}
	if levels[0].GoldThreshold != 4 || levels[0].SilverThreshold != 6 {
		t.Errorf("thresholds = %d/%d", levels[0].GoldThreshold, levels[0].SilverThreshold)
	}
}

func TestToLevelsErrors(t *testing.T) {
	empty := GameConfig{}
	if _, err := empty.ToLevels(nil); err == nil {
		t.Error("expected error for no levels")
	}

	bad := GameConfig{Levels: []LevelConfig{{Name: "x", Layout: []string{"GQ"}}}}
	if _, err := bad.ToLevels(nil); err == nil {
		t.Error("expected error for bad layout rune")
	}
}

func TestEmbeddedLevelsParse(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	levels, err := cfg.ToLevels(nil)
	if err != nil {
		t.Fatalf("embedded levels: %v", err)
	}
	for i, lv := range levels {
		if lv.Layout.Count(entity.GoodBlock) == 0 {
			t.Errorf("level %d has no good blocks", i+1)
		}
		if lv.GoldThreshold > lv.SilverThreshold {
			t.Errorf("level %d gold %d > silver %d", i+1, lv.GoldThreshold, lv.SilverThreshold)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		strength     int
		stepTicks    int
		gold, silver int
	}{
		{DifficultyNormal, 1, 4, 4, 6},
		{DifficultyEasy, 2, 4, 5, 7},
		{DifficultyHard, 1, 5, 3, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Table.Strength != tt.strength {
				t.Errorf("strength = %d, want %d", cfg.Table.Strength, tt.strength)
			}
			if cfg.Table.BallStepTicks != tt.stepTicks {
				t.Errorf("step ticks = %d, want %d", cfg.Table.BallStepTicks, tt.stepTicks)
			}
			if cfg.Levels[0].Gold != tt.gold || cfg.Levels[0].Silver != tt.silver {
				t.Errorf("thresholds = %d/%d, want %d/%d", cfg.Levels[0].Gold, cfg.Levels[0].Silver, tt.gold, tt.silver)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, ok := ParseDifficulty(""); !ok || p != DifficultyNormal {
		t.Errorf("empty = %q, %v", p, ok)
	}
	if _, ok := ParseDifficulty("insane"); ok {
		t.Error("expected unknown preset")
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
