package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/block-knock/internal/config"
	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/level"
	"github.com/vovakirdan/block-knock/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures remote play over SSH.
type SSHServerConfig struct {
	Address     string        // Listen address, e.g. ":23234"
	HostKeyPath string        // Empty means ~/.blockknock/host_key, created on first start
	DBPath      string        // Results shared by every remote player
	IdleTimeout time.Duration // Disconnect players who stop pressing keys

	// TickRate and Game apply to every session.
	TickRate int
	Game     config.GameConfig
}

// DefaultSSHServerConfig listens on :23234 with the built-in levels.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.blockknock/results.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		Game:        config.DefaultGameConfig(),
	}
}

// SSHServer serves one level menu and game per SSH connection. Results are
// stored under the SSH user name.
type SSHServer struct {
	config SSHServerConfig
	levels []level.Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer validates the levels, opens the results database and prepares
// the listener. A database that cannot be opened only disables result history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockknock-ssh",
	})

	levels, err := cfg.Game.ToLevels(logger)
	if err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	keyPath, err := hostKeyFile(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, levels: levels, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("playing without result history", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			srv.trackSession,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyFile returns where the host key lives and makes sure its directory
// exists. Wish generates the key there when the file is missing.
func hostKeyFile(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".blockknock", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession starts at the level menu, sized to the player's PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("refusing session without a terminal", "user", sess.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	model := NewSessionModel(SessionDeps{
		Store:  s.store,
		Levels: s.levels,
		Game:   s.config.Game,
		Logger: s.logger.With("user", sess.User()),
	}, rt, sess.User())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSession logs who connected, for how long, and how many players are on.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		user, remote := sess.User(), sess.RemoteAddr().String()

		s.logger.Info("player connected", "user", user, "remote", remote, "online", s.active.Add(1))
		next(sess)
		s.logger.Info("player left",
			"user", user,
			"remote", remote,
			"played", time.Since(start).Round(time.Second),
			"online", s.active.Add(-1),
		)
	}
}

// Online returns the number of connected players.
func (s *SSHServer) Online() int {
	return int(s.active.Load())
}

// ListenAndServe accepts players until SIGINT or SIGTERM, then shuts down.
// A listener that fails to start is returned as an error.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("accepting players", "address", s.config.Address, "levels", len(s.levels))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("stopping, waiting for players to leave", "online", s.Online())
	return s.Shutdown()
}

// Shutdown stops accepting players, waits up to ten seconds for open sessions
// and closes the results database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing results database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
