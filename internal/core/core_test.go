package core

import (
	"testing"
	"time"
)

func TestPaletteByKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
		ok       bool
	}{
		{"r", "Red", true},
		{"B", "Blue", true},
		{" g ", "Green", true},
		{"Y", "Yellow", true},
		{"p", "Purple", true},
		{"x", "", false},
		{"", "", false},
		{"rb", "", false},
	}

	for _, tt := range tests {
		c, ok := DefaultPalette.ByKey(tt.key)
		if ok != tt.ok || c.Name != tt.expected {
			t.Errorf("ByKey(%q) = %q, %v, expected %q, %v", tt.key, c.Name, ok, tt.expected, tt.ok)
		}
		if DefaultPalette.IsGameKey(tt.key) != tt.ok {
			t.Errorf("IsGameKey(%q) = %v, expected %v", tt.key, !tt.ok, tt.ok)
		}
	}
}

func TestPaletteKeys(t *testing.T) {
	keys := DefaultPalette.Keys()
	expected := []string{"r", "b", "g", "y", "p"}
	if len(keys) != len(expected) {
		t.Fatalf("Keys() len = %d, expected %d", len(keys), len(expected))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("Keys()[%d] = %q, expected %q", i, keys[i], expected[i])
		}
	}
}

func TestRunRecordAccuracy(t *testing.T) {
	tests := []struct {
		hits, attempts, expected int
	}{
		{0, 0, 100},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{5, 5, 100},
	}

	for _, tt := range tests {
		r := RunRecord{CorrectHits: tt.hits, TotalAttempts: tt.attempts, Duration: time.Second}
		if got := r.Accuracy(); got != tt.expected {
			t.Errorf("Accuracy(%d/%d) = %d, expected %d", tt.hits, tt.attempts, got, tt.expected)
		}
	}
}
