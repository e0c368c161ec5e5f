package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/engine"
	"github.com/vovakirdan/chromapulse/internal/leaderboard"
)

const maxNameLength = 16

// Model is the Bubble Tea model for a ChromaPulse session. It owns no game
// state: every tick it polls an engine snapshot and renders it.
type Model struct {
	engine    *engine.Engine
	history   RunHistory
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	nameInput textinput.Model
	snap      engine.Snapshot

	scoreboard   *ScoreboardModel
	enteringName bool
	promptedFor  string // Session ID the high score prompt was handled for
	quitting     bool
}

// NewModel creates a model driving eng. history may be nil.
func NewModel(eng *engine.Engine, history RunHistory, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	keys := DefaultKeyMap()

	input := textinput.New()
	input.Placeholder = leaderboard.DefaultName
	input.CharLimit = maxNameLength
	input.Width = maxNameLength

	return Model{
		engine:    eng,
		history:   history,
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys, eng.Palette()),
		help:      help.New(),
		nameInput: input,
		snap:      eng.Snapshot(),
	}
}

// Init starts the snapshot poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.scoreboard != nil {
			sb, _ := m.scoreboard.Update(msg)
			board := sb.(ScoreboardModel)
			m.scoreboard = &board
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.enteringName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick refreshes the snapshot and opens the name prompt on a new high score.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.engine.Snapshot()

	if m.snap.State == engine.StateGameOver && m.promptedFor != m.snap.ID {
		m.promptedFor = m.snap.ID
		if m.engine.IsHighScore() {
			m.enteringName = true
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, tea.Batch(textinput.Blink, tickCmd(m.config.TickRate))
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.enteringName {
		return m.handleNameKey(msg)
	}

	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.Update(msg)
		board := sb.(ScoreboardModel)
		switch {
		case board.IsQuitting():
			return m.quit()
		case board.IsGoingBack():
			m.scoreboard = nil
			return m, nil
		}
		m.scoreboard = &board
		return m, cmd
	}

	action := m.keyMapper.MapKey(msg)
	switch m.snap.State {
	case engine.StateCountdown, engine.StatePlaying:
		switch action {
		case ActionColor:
			m.engine.HandleKeyPress(msg.String())
		case ActionBack:
			m.engine.ReturnToMenu()
		case ActionRestart:
			m.engine.Restart()
		case ActionQuit:
			return m.quit()
		}

	default:
		switch action {
		case ActionStart:
			m.engine.StartGame()
		case ActionLeaderboard:
			board := NewScoreboardModel(m.engine.Leaderboard(), m.history, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &board
		case ActionBack:
			m.engine.ReturnToMenu()
		case ActionQuit:
			return m.quit()
		}
	}

	m.snap = m.engine.Snapshot()
	return m, nil
}

// handleNameKey drives the high score name prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.engine.AddToLeaderboard(m.nameInput.Value())
		m.enteringName = false
		m.nameInput.Blur()
		return m, nil
	case "esc":
		m.enteringName = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.engine.Shutdown()
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	var body string
	switch m.snap.State {
	case engine.StateMenu:
		body = m.viewMenu()
	case engine.StateGameOver:
		body = m.viewGameOver()
	default:
		body = m.viewGame()
	}

	footer := faintStyle.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, "", centerText(footer, m.config.ScreenW))
}

func (m Model) viewMenu() string {
	lines := []string{
		titleStyle.Render("C H R O M A P U L S E"),
		"",
		"Press the key of the lit color before time runs out.",
		renderLegend(m.engine.Palette(), 1),
		"",
	}
	if best := m.snap.HighScore; best > 0 {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("Best: %d", best)), "")
	}
	lines = append(lines, popStyle.Render("press space to start"))
	return m.center(lines)
}

func (m Model) viewGame() string {
	parts := []string{
		centerText(renderHUD(m.snap), m.config.ScreenW),
		"",
		centerBlock(renderBoard(m.snap), m.config.ScreenW),
		"",
	}
	if legend := renderLegend(m.engine.Palette(), m.snap.LegendOpacity); legend != "" {
		parts = append(parts, centerText(legend, m.config.ScreenW))
	}
	return strings.Join(parts, "\n")
}

func (m Model) viewGameOver() string {
	s := m.snap
	lines := []string{
		failureStyle.Render("GAME OVER"),
		"",
		titleStyle.Render(fmt.Sprintf("Score %d", s.Score)),
		faintStyle.Render(fmt.Sprintf("max combo %d   accuracy %d%%   hits %d/%d",
			s.MaxCombo, s.Accuracy, s.CorrectHits, s.TotalAttempts)),
		"",
	}
	if m.enteringName {
		lines = append(lines,
			popStyle.Render("New high score! Enter your name:"),
			m.nameInput.View(),
		)
	} else {
		lines = append(lines, "space: play again   l: leaderboard   esc: menu")
	}
	return m.center(lines)
}

func (m Model) center(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = centerText(l, m.config.ScreenW)
	}
	top := (m.config.ScreenH - len(lines)) / 3
	if top < 0 {
		top = 0
	}
	return strings.Repeat("\n", top) + strings.Join(out, "\n")
}

// Run starts the Bubble Tea program for eng and blocks until the player quits.
func Run(eng *engine.Engine, history RunHistory, cfg core.RuntimeConfig) error {
	model := NewModel(eng, history, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	eng.Shutdown()
	return err
}
