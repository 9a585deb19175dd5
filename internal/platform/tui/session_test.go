package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-knock/internal/config"
	"github.com/vovakirdan/block-knock/internal/core"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()

	cfg := config.DefaultGameConfig()
	levels, err := cfg.ToLevels(nil)
	if err != nil {
		t.Fatalf("ToLevels: %v", err)
	}

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10}
	return NewSessionModel(SessionDeps{Levels: levels, Game: cfg}, rt, "tester")
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuListsLevels(t *testing.T) {
	m := newTestSession(t)

	view := m.View()
	for _, name := range []string{"Warm Up", "Mind the Red"} {
		if !strings.Contains(view, name) {
			t.Errorf("menu view missing level %q", name)
		}
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.menu.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.menu.cursor)
	}
	for range 5 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if want := len(m.deps.Levels) - 1; m.menu.cursor != want {
		t.Errorf("cursor = %d, want %d", m.menu.cursor, want)
	}
}

func TestSessionStartsSelectedLevel(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inGame || m.gameModel == nil {
		t.Fatal("Enter should start a game")
	}

	m = send(t, m, TickMsg{})
	if got := m.gameModel.State().Level; got != 2 {
		t.Errorf("level = %d, want 2", got)
	}
}

func TestSessionBackToMenu(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inGame {
		t.Fatal("Enter should start a game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.inGame {
		t.Error("Esc should return to the menu")
	}
	if m.quitting {
		t.Error("Esc should not quit the session")
	}
	if m.menu.Selected() != 0 {
		t.Error("menu should be rebuilt without a selection")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in game should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestStandaloneModelIgnoresBack(t *testing.T) {
	m := newTestSession(t)
	g, err := m.newGame(1)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}

	model := NewModel(g, m.config)
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if next.(Model).BackToMenu() {
		t.Error("Back should be disabled outside a session")
	}
}
