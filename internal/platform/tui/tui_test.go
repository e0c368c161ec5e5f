package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromapulse/internal/config"
	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/engine"
	"github.com/vovakirdan/chromapulse/internal/leaderboard"
	"github.com/vovakirdan/chromapulse/internal/round"
	"github.com/vovakirdan/chromapulse/internal/sched"
	"github.com/vovakirdan/chromapulse/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), nil)

	tests := []struct {
		msg      tea.KeyMsg
		expected Action
	}{
		{runes("r"), ActionColor},
		{runes("B"), ActionColor},
		{runes("p"), ActionColor},
		{runes("l"), ActionLeaderboard},
		{runes("q"), ActionQuit},
		{runes("x"), ActionNone},
		{tea.KeyMsg{Type: tea.KeySpace}, ActionStart},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionStart},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, ActionRestart},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func newTestModel(t *testing.T) (Model, *engine.Engine, *sched.FakeClock) {
	t.Helper()
	clock := sched.NewFakeClock()
	mem := storage.NewMemory()
	eng := engine.NewEngine(engine.Config{Seed: 7, Clock: clock}, leaderboard.NewStore(mem, nil))
	eng.SetRunRecorder(mem)
	t.Cleanup(eng.Shutdown)

	cfg := core.DefaultConfig()
	return NewModel(eng, mem, cfg), eng, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelPlaysARound(t *testing.T) {
	m, eng, clock := newTestModel(t)

	if !strings.Contains(m.View(), "C H R O M A") {
		t.Error("menu view should show the title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if s := eng.Snapshot(); s.State != engine.StateCountdown {
		t.Fatalf("State = %s after space, expected countdown", s.State)
	}

	clock.Advance(2700 * time.Millisecond)
	m = update(t, m, TickMsg(time.Now()))
	s := eng.Snapshot()
	if s.ActiveRound == nil {
		t.Fatal("expected a live round")
	}

	if view := m.View(); !strings.Contains(view, liveCircle) && s.ActiveRound.Slot.Kind == round.SlotCircle {
		t.Error("game view should draw the live circle")
	}

	m = update(t, m, runes(s.ActiveRound.Color.Key))
	if got := eng.Snapshot(); got.CorrectHits != 1 {
		t.Errorf("CorrectHits = %d after pressing the target key, expected 1", got.CorrectHits)
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := eng.Snapshot(); got.State != engine.StateMenu {
		t.Errorf("State = %s after esc, expected menu", got.State)
	}
}

func TestModelHighScorePrompt(t *testing.T) {
	m, eng, clock := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	clock.Advance(2700 * time.Millisecond)
	s := eng.Snapshot()
	eng.HandleKeyPress(s.ActiveRound.Color.Key)
	clock.Advance(30 * time.Second)

	m = update(t, m, TickMsg(time.Now()))
	if !m.enteringName {
		t.Fatal("expected the name prompt after a high score")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view should be shown")
	}

	for _, r := range "Ada" {
		m = update(t, m, runes(string(r)))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.enteringName {
		t.Error("prompt should close on enter")
	}
	entries := eng.Leaderboard().Entries()
	if len(entries) != 1 || entries[0].Name != "Ada" {
		t.Errorf("leaderboard = %+v, expected one entry for Ada", entries)
	}

	// The prompt is not reopened for the same session.
	m = update(t, m, TickMsg(time.Now()))
	if m.enteringName {
		t.Error("prompt reopened for an already handled session")
	}

	m = update(t, m, runes("l"))
	if m.scoreboard == nil || !strings.Contains(m.View(), "Ada") {
		t.Error("leaderboard view should list the saved entry")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the leaderboard")
	}
}

func TestModelQuitShutsDownEngine(t *testing.T) {
	m, eng, clock := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if n := clock.Pending(); n != 0 {
		t.Errorf("Pending() = %d after quit, expected 0", n)
	}
	eng.StartGame()
	if s := eng.Snapshot(); s.State != engine.StateCountdown {
		t.Errorf("State = %s, expected countdown to be frozen after shutdown", s.State)
	}
}

func TestRenderLegendFades(t *testing.T) {
	if got := renderLegend(core.DefaultPalette, 0); got != "" {
		t.Errorf("renderLegend(0) = %q, expected empty", got)
	}
	got := renderLegend(core.DefaultPalette, 1)
	for _, c := range core.DefaultPalette {
		if !strings.Contains(got, "["+c.Key+"]") {
			t.Errorf("legend missing key %q", c.Key)
		}
	}
}

func TestCirclePositionsFitBoard(t *testing.T) {
	seen := make(map[[2]int]bool)
	for i := 0; i < round.CircleCount; i++ {
		x, y := circlePos(i)
		if x <= 0 || x >= boardW-1 || y < 0 || y >= boardH {
			t.Errorf("circle %d at (%d,%d) is outside the board", i, x, y)
		}
		if seen[[2]int{x, y}] {
			t.Errorf("circle %d overlaps another circle at (%d,%d)", i, x, y)
		}
		seen[[2]int{x, y}] = true
	}
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		preset     config.DifficultyPreset
		scoreboard bool
		quit       bool
	}{
		{"enter picks default", []tea.KeyMsg{{Type: tea.KeyEnter}}, config.DifficultyNormal, false, false},
		{"down then enter", []tea.KeyMsg{runes("j"), {Type: tea.KeyEnter}}, config.DifficultyHard, false, false},
		{"up stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeySpace}}, config.DifficultyEasy, false, false},
		{"down stops at bottom", []tea.KeyMsg{runes("j"), runes("j"), runes("j"), runes("j"), {Type: tea.KeyEnter}}, config.DifficultyFixed, false, false},
		{"tab opens scoreboard", []tea.KeyMsg{{Type: tea.KeyTab}}, "", true, false},
		{"q quits", []tea.KeyMsg{runes("q")}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(core.DefaultConfig())
			for _, msg := range tt.keys {
				m, _ = m.Update(msg)
			}
			menu := m.(MenuModel)

			if menu.WantsScoreboard() != tt.scoreboard {
				t.Errorf("WantsScoreboard() = %v, expected %v", menu.WantsScoreboard(), tt.scoreboard)
			}
			if menu.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, expected %v", menu.IsQuitting(), tt.quit)
			}
			var got config.DifficultyPreset
			if sel := menu.Selected(); sel != nil {
				got = sel.Preset
			}
			if got != tt.preset {
				t.Errorf("Selected() preset = %q, expected %q", got, tt.preset)
			}
		})
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m, _ := NewMenuModel(core.DefaultConfig()).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := m.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
