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

	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/leaderboard"
)

// Scoreboard layout constants
const (
	recentRunsLimit = 20
	tableMinHeight  = 5
)

// RunHistory is the read side of the run store.
type RunHistory interface {
	RecentRuns(limit int) ([]core.RunRecord, error)
}

// scoreboardTab selects the table being shown.
type scoreboardTab int

const (
	tabTopScores scoreboardTab = iota
	tabRecentRuns
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
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
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "top 10 / recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "l"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboard and, when a run store is
// available, the recent run history.
type ScoreboardModel struct {
	board     *leaderboard.Store
	history   RunHistory
	tab       scoreboardTab
	entries   []leaderboard.Entry
	runs      []core.RunRecord
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. history may be nil.
func NewScoreboardModel(board *leaderboard.Store, history RunHistory, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		board:   board,
		history: history,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.reload()
	return m
}

// reload refreshes data and rebuilds the table for the current tab.
func (m *ScoreboardModel) reload() {
	m.entries = nil
	if m.board != nil {
		m.entries = m.board.Entries()
	}

	m.runs = nil
	if m.history != nil {
		if runs, err := m.history.RecentRuns(recentRunsLimit); err == nil {
			m.runs = runs
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabRecentRuns:
		columns = []table.Column{
			{Title: "Ended", Width: 14},
			{Title: "Score", Width: 8},
			{Title: "Combo", Width: 6},
			{Title: "Acc", Width: 5},
			{Title: "Time", Width: 8},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: 16},
			{Title: "Score", Width: 8},
			{Title: "Combo", Width: 6},
			{Title: "Date", Width: 10},
		}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table for the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabRecentRuns:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				r.EndedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.MaxCombo),
				fmt.Sprintf("%d%%", r.Accuracy()),
				r.Duration.Round(time.Second).String(),
			}
		}
	default:
		rows = make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				e.Name,
				fmt.Sprintf("%d", e.Score),
				fmt.Sprintf("%d", e.MaxCombo),
				e.Date,
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.history != nil {
				if m.tab == tabTopScores {
					m.tab = tabRecentRuns
				} else {
					m.tab = tabTopScores
				}
				m.table = m.createTable()
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
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

	title := "HIGH SCORES"
	if m.tab == tabRecentRuns {
		title = "RECENT RUNS"
	}
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.entries) == 0
	msg := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.tab == tabRecentRuns {
		empty = len(m.runs) == 0
		msg = "No finished runs yet."
	}
	if empty {
		return faintStyle.Italic(true).Padding(2, 4).Render(msg)
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(board *leaderboard.Store, history RunHistory, width, height int) (goBack bool, err error) {
	model := standaloneScoreboard{NewScoreboardModel(board, history, width, height)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(standaloneScoreboard)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

// standaloneScoreboard ends the program when the user goes back, since
// there is no parent model to return to.
type standaloneScoreboard struct {
	ScoreboardModel
}

func (s standaloneScoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	s.ScoreboardModel = next.(ScoreboardModel)
	if s.IsGoingBack() {
		return s, tea.Quit
	}
	return s, cmd
}

func (s standaloneScoreboard) View() string {
	if s.IsGoingBack() {
		return ""
	}
	return s.ScoreboardModel.View()
}
