package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromapulse/internal/core"
)

// Action is a screen-level command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionColor
	ActionStart
	ActionLeaderboard
	ActionBack
	ActionRestart
	ActionQuit
)

// KeyMap defines the non-color key bindings. Color keys come from the
// palette, so none of these may use r, b, g, y or p.
type KeyMap struct {
	Start       key.Binding
	Leaderboard key.Binding
	Back        key.Binding
	Restart     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Leaderboard, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Leaderboard},
		{k.Back, k.Restart, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
type KeyMapper struct {
	keys    KeyMap
	palette core.Palette
}

// NewKeyMapper creates a mapper for the given palette.
func NewKeyMapper(keys KeyMap, palette core.Palette) *KeyMapper {
	if len(palette) == 0 {
		palette = core.DefaultPalette
	}
	return &KeyMapper{keys: keys, palette: palette}
}

// MapKey translates a key message. Color keys are checked first so they
// are never shadowed by a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	if km.palette.IsGameKey(msg.String()) {
		return ActionColor
	}
	switch {
	case key.Matches(msg, km.keys.Quit):
		return ActionQuit
	case key.Matches(msg, km.keys.Start):
		return ActionStart
	case key.Matches(msg, km.keys.Leaderboard):
		return ActionLeaderboard
	case key.Matches(msg, km.keys.Back):
		return ActionBack
	case key.Matches(msg, km.keys.Restart):
		return ActionRestart
	}
	return ActionNone
}
