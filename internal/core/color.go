// Package core provides the value types shared by the ChromaPulse engine,
// its storage adapters and the presentation layer. It has no dependencies on
// Bubble Tea or SQLite so game logic stays pure and testable.
package core

// GameColor is one entry of the target palette.
type GameColor struct {
	Name string // Display name ("Red")
	Key  string // Lower-case key that answers this color
	Hex  string // Foreground color, "#RRGGBB"
	Glow string // Softer glow color used around an active target
}

// IsZero reports whether c is the zero value (no color assigned).
func (c GameColor) IsZero() bool {
	return c.Key == ""
}

// Palette is an ordered set of colors. Round generation draws indices into it.
type Palette []GameColor

// DefaultPalette is the five-color palette the game is played with.
var DefaultPalette = Palette{
	{Name: "Red", Key: "r", Hex: "#FF3B5C", Glow: "#FF8FA3"},
	{Name: "Blue", Key: "b", Hex: "#4D9FFF", Glow: "#A6CCFF"},
	{Name: "Green", Key: "g", Hex: "#00E676", Glow: "#80F2BA"},
	{Name: "Yellow", Key: "y", Hex: "#FFD740", Glow: "#FFEB9F"},
	{Name: "Purple", Key: "p", Hex: "#AA46FF", Glow: "#D4A2FF"},
}

// Keys returns the answer keys of the palette in order.
func (p Palette) Keys() []string {
	keys := make([]string, len(p))
	for i, c := range p {
		keys[i] = c.Key
	}
	return keys
}
