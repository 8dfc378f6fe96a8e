package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// History layout constants
const (
	maxMatches = 100 // Max matches to load
)

// historyFilter selects which matches the table shows.
type historyFilter int

const (
	filterAll historyFilter = iota
	filterPlayer
)

// HistoryKeyMap defines the key bindings for the match history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all/mine"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store    *storage.Store
	player   string
	filter   historyFilter
	matches  []storage.Match
	stats    *storage.PlayerStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model. player selects the
// "mine" filter and the stats line.
func NewHistoryModel(store *storage.Store, player string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		player: player,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 7},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the player column
	if spare := m.width - 4 - 13 - 12 - 7 - 7 - 8 - 10; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats, help and margins
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

// load reads matches for the current filter.
func (m *HistoryModel) load() {
	m.matches, m.stats, m.loadErr = nil, nil, nil

	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.filter == filterPlayer {
		m.matches, m.loadErr = m.store.PlayerMatches(m.player, maxMatches)
	} else {
		m.matches, m.loadErr = m.store.RecentMatches(maxMatches)
	}
	if m.loadErr == nil && m.player != "" {
		m.stats, m.loadErr = m.store.PlayerStats(m.player)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, mt := range m.matches {
		rows[i] = MatchRow(mt)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// MatchRow formats a match as a table row.
func MatchRow(mt storage.Match) table.Row {
	return table.Row{
		mt.CreatedAt.Format("Jan 02 15:04"),
		mt.Player,
		fmt.Sprintf("%d:%d", mt.ScoreLeft, mt.ScoreRight),
		mt.Winner(),
		mt.Duration.Truncate(time.Second).String(),
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			if m.filter == filterAll && m.player != "" {
				m.filter = filterPlayer
			} else {
				m.filter = filterAll
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "MATCH HISTORY - all players"
	if m.filter == filterPlayer {
		title = fmt.Sprintf("MATCH HISTORY - %s", m.player)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.Matches > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"%s: %d matches, points %d:%d, longest %ds",
			m.stats.Player, m.stats.Matches, m.stats.LeftPoints, m.stats.RightPoints, m.stats.LongestSecs,
		)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot load history:\n" + m.loadErr.Error())
	case len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nScore a point and quit to save one!")
	}

	return m.table.View()
}

// RunHistory runs the match history screen.
func RunHistory(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, player, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
