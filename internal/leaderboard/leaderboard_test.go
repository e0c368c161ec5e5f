package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

type mapKV struct {
	data     map[string][]byte
	getErr   error
	putErr   error
	putCalls int
}

func newMapKV() *mapKV {
	return &mapKV{data: make(map[string][]byte)}
}

func (m *mapKV) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapKV) Put(key string, value []byte) error {
	m.putCalls++
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func entry(name string, score int) Entry {
	return Entry{Name: name, Score: score, Date: "1/2/2026", MaxCombo: 1}
}

func TestAddKeepsTopTenSorted(t *testing.T) {
	kv := newMapKV()
	s := NewStore(kv, nil)

	for i := 1; i <= 10; i++ {
		s.Add(entry(fmt.Sprintf("p%d", i), i*100))
	}
	got := s.Add(entry("late", 550))

	if len(got) != MaxEntries {
		t.Fatalf("len(entries) = %d, expected %d", len(got), MaxEntries)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("entries not sorted at %d: %d < %d", i, got[i-1].Score, got[i].Score)
		}
	}
	if got[len(got)-1].Score != 200 {
		t.Errorf("lowest score = %d, expected 200 after 100 is evicted", got[len(got)-1].Score)
	}
	found := false
	for _, e := range got {
		if e.Name == "late" {
			found = true
		}
	}
	if !found {
		t.Error("expected the 550 entry to be on the table")
	}
}

func TestAddPersistsJSON(t *testing.T) {
	kv := newMapKV()
	s := NewStore(kv, nil)
	s.Add(Entry{Name: "Ada", Score: 42, Date: "3/4/2026", MaxCombo: 7})

	raw, ok := kv.data[StorageKey]
	if !ok {
		t.Fatal("expected the table to be written under the storage key")
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("stored payload is not JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d entries, expected 1", len(decoded))
	}
	for _, field := range []string{"name", "score", "date", "maxCombo"} {
		if _, ok := decoded[0][field]; !ok {
			t.Errorf("stored entry is missing field %q", field)
		}
	}

	reloaded := NewStore(kv, nil)
	if got := reloaded.Entries(); len(got) != 1 || got[0].Name != "Ada" || got[0].MaxCombo != 7 {
		t.Errorf("reloaded entries = %+v", got)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	s := NewStore(newMapKV(), nil)
	s.Add(entry("first", 100))
	s.Add(entry("second", 100))
	got := s.Add(entry("third", 100))

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("entries[%d].Name = %q, expected %q", i, got[i].Name, name)
		}
	}
}

func TestEmptyNameBecomesAnonymous(t *testing.T) {
	s := NewStore(newMapKV(), nil)
	got := s.Add(Entry{Name: "  ", Score: 5})
	if got[0].Name != DefaultName {
		t.Errorf("Name = %q, expected %q", got[0].Name, DefaultName)
	}

	e := NewEntry("", 9, 2, time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC))
	if e.Name != DefaultName {
		t.Errorf("NewEntry name = %q, expected %q", e.Name, DefaultName)
	}
	if e.Date != "3/7/2026" {
		t.Errorf("NewEntry date = %q, expected 3/7/2026", e.Date)
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		kv   *mapKV
	}{
		{"missing", newMapKV()},
		{"malformed", &mapKV{data: map[string][]byte{StorageKey: []byte("{not json")}}},
		{"wrong shape", &mapKV{data: map[string][]byte{StorageKey: []byte(`{"name":"x"}`)}}},
		{"read error", &mapKV{data: map[string][]byte{}, getErr: errors.New("disk gone")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(tc.kv, nil)
			if got := s.Entries(); len(got) != 0 {
				t.Errorf("Entries() = %+v, expected empty", got)
			}
		})
	}
}

func TestLoadNormalizesStoredTable(t *testing.T) {
	var stored []Entry
	for i := 0; i < 12; i++ {
		stored = append(stored, entry(fmt.Sprintf("p%d", i), i))
	}
	raw, _ := json.Marshal(stored)
	kv := &mapKV{data: map[string][]byte{StorageKey: raw}}

	got := NewStore(kv, nil).Entries()
	if len(got) != MaxEntries {
		t.Fatalf("len(entries) = %d, expected %d", len(got), MaxEntries)
	}
	if got[0].Score != 11 || got[MaxEntries-1].Score != 2 {
		t.Errorf("entries not sorted/truncated: first %d last %d", got[0].Score, got[MaxEntries-1].Score)
	}
}

func TestWriteFailureKeepsMemoryTable(t *testing.T) {
	kv := newMapKV()
	kv.putErr = errors.New("quota exceeded")
	s := NewStore(kv, nil)

	got := s.Add(entry("x", 10))
	if len(got) != 1 {
		t.Fatalf("len(entries) = %d, expected 1 despite write failure", len(got))
	}
	if kv.putCalls != 1 {
		t.Errorf("putCalls = %d, expected 1", kv.putCalls)
	}
}

func TestIsHighScore(t *testing.T) {
	s := NewStore(newMapKV(), nil)

	if s.IsHighScore(0) {
		t.Error("IsHighScore(0) on empty table should be false")
	}
	if !s.IsHighScore(1) {
		t.Error("IsHighScore(1) on empty table should be true")
	}

	for i := 1; i <= MaxEntries; i++ {
		s.Add(entry("p", i*10))
	}

	tests := []struct {
		score    int
		expected bool
	}{
		{5, false},
		{10, false},
		{11, true},
		{1000, true},
		{-3, false},
	}
	for _, tc := range tests {
		if got := s.IsHighScore(tc.score); got != tc.expected {
			t.Errorf("IsHighScore(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewStore(newMapKV(), nil)
	s.Add(entry("a", 1))

	got := s.Entries()
	got[0].Name = "mutated"

	if s.Entries()[0].Name != "a" {
		t.Error("mutating Entries() result changed the store")
	}
	if s.Best() != 1 {
		t.Errorf("Best() = %d, expected 1", s.Best())
	}
}

func TestNilKV(t *testing.T) {
	s := NewStore(nil, nil)
	if got := s.Add(entry("solo", 3)); len(got) != 1 {
		t.Errorf("Add() on nil KV = %+v", got)
	}
}
