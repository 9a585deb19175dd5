package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-knock/internal/level"
	"github.com/vovakirdan/block-knock/internal/storage"
)

// MenuKeyMap defines the key bindings for the level menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuItem is a level in the menu.
type MenuItem struct {
	Level  int
	Name   string
	Best   level.Rank
	Clears int // Zero when never cleared
}

var rankStyles = map[level.Rank]lipgloss.Style{
	level.Gold:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	level.Silver: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	level.Bronze: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	quitting bool
	selected int // Level chosen, zero until the player picks one
}

// NewMenuModel creates a level menu. The best results of player are shown
// next to each level; store may be nil.
func NewMenuModel(levels []level.Config, store *storage.Store, player string, width, height int) MenuModel {
	best := make(map[int]storage.BestEntry)
	if store != nil {
		if entries, err := store.BestResults(player); err == nil {
			for _, e := range entries {
				best[e.Level] = e
			}
		}
	}

	items := make([]MenuItem, len(levels))
	for i, lv := range levels {
		b := best[i+1]
		items[i] = MenuItem{Level: i + 1, Name: lv.Name, Best: b.Rank, Clears: b.Clears}
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].Level
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
		Render("B L O C K   K N O C K")
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := helpStyle.Render("  -   ")
		if item.Clears > 0 {
			best = rankStyles[item.Best].Render(fmt.Sprintf("%-6s", item.Best))
		}

		line := fmt.Sprintf("%s%2d. %-18s %s", cursor, item.Level, item.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or zero if none was chosen.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs the level menu and returns the chosen level, or zero if the
// player quit.
func RunMenu(levels []level.Config, store *storage.Store, player string, width, height int) (int, error) {
	model := NewMenuModel(levels, store, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
