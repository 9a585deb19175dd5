package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-knock/internal/config"
	"github.com/vovakirdan/block-knock/internal/core"
	"github.com/vovakirdan/block-knock/internal/game"
	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/level"
	"github.com/vovakirdan/block-knock/internal/storage"
)

// SessionDeps are the collaborators a session needs. A server shares one
// set between all its sessions.
type SessionDeps struct {
	Store  *storage.Store // May be nil
	Levels []level.Config
	Game   config.GameConfig
	Logger *log.Logger
}

// SessionModel manages a full session: level menu -> game -> level menu.
// This is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	deps      SessionDeps
	config    core.RuntimeConfig
	username  string
	menu      MenuModel
	gameModel *Model
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(deps.Levels, deps.Store, username, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The menu quits the program on selection; intercept that here.
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected > 0 {
		g, err := m.newGame(selected)
		if err != nil {
			m.deps.Logger.Error("cannot start game", "error", err)
			m.err = err
			m.menu.selected = 0
			return m, nil
		}

		gm := NewModel(g, m.config).withBack()
		m.gameModel = &gm
		m.inGame = true
		m.err = nil
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// newGame builds a game starting at the chosen level.
func (m SessionModel) newGame(startLevel int) (*game.Game, error) {
	cfg := m.deps.Game
	cfg.StartLevel = startLevel

	var rec gameplay.Recorder
	if m.deps.Store != nil {
		r := storage.NewRunRecorder(m.deps.Store, m.username)
		m.deps.Logger.Debug("run started", "run", r.RunID(), "level", startLevel)
		rec = r
	}

	return game.New(cfg, game.Options{Recorder: rec, Logger: m.deps.Logger})
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		// Rebuild so the menu shows fresh best results.
		m.menu = NewMenuModel(m.deps.Levels, m.deps.Store, m.username, m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	if m.err != nil {
		return m.menu.View() + "\n" + centerText(helpStyle.Render("Error: "+m.err.Error()), m.config.ScreenW)
	}
	return m.menu.View()
}

// RunSession runs a menu-driven session in the local terminal.
func RunSession(deps SessionDeps, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, player),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
