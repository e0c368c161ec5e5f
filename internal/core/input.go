package core

import "strings"

// NormalizeKey converts a raw key identifier to the form used by the palette.
// Input is case-insensitive, so "R" and " r" both become "r".
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// ByKey returns the palette color answered by key.
// The key is normalized first; ok is false for keys outside the palette.
func (p Palette) ByKey(key string) (c GameColor, ok bool) {
	k := NormalizeKey(key)
	if k == "" {
		return GameColor{}, false
	}
	for _, c := range p {
		if c.Key == k {
			return c, true
		}
	}
	return GameColor{}, false
}

// IsGameKey returns true if key answers one of the palette colors.
func (p Palette) IsGameKey(key string) bool {
	_, ok := p.ByKey(key)
	return ok
}
