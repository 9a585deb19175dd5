package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostKeyFile(t *testing.T) {
	dir := t.TempDir()

	custom := filepath.Join(dir, "keys", "nested", "host_key")
	got, err := hostKeyFile(custom)
	if err != nil {
		t.Fatalf("hostKeyFile: %v", err)
	}
	if got != custom {
		t.Errorf("path = %q, want %q", got, custom)
	}
	if info, err := os.Stat(filepath.Dir(custom)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = hostKeyFile("")
	if err != nil {
		t.Fatalf("hostKeyFile: %v", err)
	}
	if want := filepath.Join(dir, ".blockknock", "host_key"); got != want {
		t.Errorf("default path = %q, want %q", got, want)
	}
}

func TestNewSSHServerRejectsEmptyLevels(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Levels = nil
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected error for config without levels")
	}
}

func TestNewSSHServerShutdownBeforeServe(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "results.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr = %q", srv.Addr())
	}
	if srv.Online() != 0 {
		t.Errorf("Online = %d before any player", srv.Online())
	}
	if len(srv.levels) != len(cfg.Game.Levels) {
		t.Errorf("levels = %d, want %d", len(srv.levels), len(cfg.Game.Levels))
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	if srv.store != nil {
		t.Error("results database should be closed")
	}
}
