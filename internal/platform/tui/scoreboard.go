package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-knock/internal/level"
	"github.com/vovakirdan/block-knock/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the view list sidebar
	sidebarWidth       = 20  // Width of the view list sidebar
	maxResults         = 100 // Max recent results to load
)

// ScoreView is one of the scoreboard tables.
type ScoreView int

const (
	ViewBest   ScoreView = iota // Best clear per level
	ViewRecent                  // Latest finished levels
)

var scoreViews = []ScoreView{ViewBest, ViewRecent}

func (v ScoreView) String() string {
	if v == ViewRecent {
		return "Recent"
	}
	return "Best per level"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the result history screen.
type ScoreboardModel struct {
	store       *storage.Store
	levelNames  []string // Indexed by level number - 1
	player      string   // Empty shows everyone
	view        ScoreView
	best        []storage.BestEntry
	recent      []storage.ResultEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, levels []level.Config, player string, width, height int) ScoreboardModel {
	names := make([]string, len(levels))
	for i, lv := range levels {
		names[i] = lv.Name
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		levelNames:  names,
		player:      player,
		view:        ViewBest,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// load reads both views from storage.
func (m *ScoreboardModel) load() {
	m.best, m.recent, m.loadErr = nil, nil, nil
	if m.store == nil {
		return
	}

	best, err := m.store.BestResults(m.player)
	if err != nil {
		m.loadErr = err
		return
	}
	recent, err := m.store.RecentResults(m.player, maxResults)
	if err != nil {
		m.loadErr = err
		return
	}
	m.best, m.recent = best, recent
}

// columns returns the table columns for the current view.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == ViewRecent {
		return []table.Column{
			{Title: "When", Width: 13},
			{Title: "Player", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Throws", Width: 7},
			{Title: "Rank", Width: 7},
			{Title: "Result", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Rank", Width: 7},
		{Title: "Throws", Width: 7},
		{Title: "Clears", Width: 7},
	}
}

// createTable creates a new table for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the current view's rows.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == ViewRecent {
		rows = make([]table.Row, len(m.recent))
		for i, r := range m.recent {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Player,
				fmt.Sprintf("%d", r.Level),
				fmt.Sprintf("%d", r.Throws),
				rankCell(r.Rank, r.Won),
				strings.ReplaceAll(r.Outcome, "_", " "),
			}
		}
	} else {
		rows = make([]table.Row, len(m.best))
		for i, b := range m.best {
			rows[i] = table.Row{
				fmt.Sprintf("%d", b.Level),
				m.levelName(b.Level),
				b.Rank.String(),
				fmt.Sprintf("%d", b.Throws),
				fmt.Sprintf("%d", b.Clears),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) levelName(n int) string {
	if n < 1 || n > len(m.levelNames) {
		return "?"
	}
	return m.levelNames[n-1]
}

func rankCell(r level.Rank, won bool) string {
	if !won {
		return "-"
	}
	return r.String()
}

// switchView moves to another view and rebuilds the table.
func (m *ScoreboardModel) switchView(delta int) {
	n := len(scoreViews)
	m.view = scoreViews[((int(m.view)+delta)%n+n)%n]
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BLOCK KNOCK - " + strings.ToUpper(m.view.String())
	if m.player != "" {
		title += " - " + m.player
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar listing the views.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for _, v := range scoreViews {
		cursor := "  "
		style := lipgloss.NewStyle()
		if v == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.String()))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with view tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(scoreViews))
	for i, v := range scoreViews {
		if v == m.view {
			tabs[i] = activeTabStyle.Render(v.String())
		} else {
			tabs[i] = tabStyle.Render(" " + v.String() + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is unavailable.\nThe results database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case m.view == ViewBest && len(m.best) == 0,
		m.view == ViewRecent && len(m.recent) == 0:
		return emptyStyle.Render("No levels finished yet.\nClear a level to see it here!")
	}

	return m.table.View()
}

// centerText pads every line of text to center it in width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, levels []level.Config, player string, width, height int) error {
	model := NewScoreboardModel(store, levels, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
