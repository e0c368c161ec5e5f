// Package leaderboard keeps the top-ten score table and persists it
// through a small key/value port.
package leaderboard

import (
	"encoding/json"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// StorageKey is the key the table is persisted under.
	StorageKey = "chromapulse_lb"
	// MaxEntries is the table capacity.
	MaxEntries = 10
	// DefaultName replaces an empty player name.
	DefaultName = "Anonymous"
	// DateLayout renders entry dates as M/D/YYYY.
	DateLayout = "1/2/2006"
)

// KV is the persistence port used by Store.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Entry is one leaderboard row.
type Entry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
	MaxCombo int    `json:"maxCombo"`
}

// NewEntry builds an entry dated at the given time.
func NewEntry(name string, score, maxCombo int, at time.Time) Entry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return Entry{
		Name:     name,
		Score:    score,
		Date:     at.Format(DateLayout),
		MaxCombo: maxCombo,
	}
}

// Store holds the sorted, capped table in memory and writes it through on
// every change. It is safe for concurrent use, so one Store can be shared
// by every SSH session.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	logger  *log.Logger
	entries []Entry
}

// NewStore creates a store over kv and loads whatever it already holds.
// A nil logger discards output.
func NewStore(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{kv: kv, logger: logger}
	s.Load()
	return s
}

// Load re-reads the table from storage. Missing or malformed data yields
// an empty table; it never fails.
func (s *Store) Load() []Entry {
	entries := s.read()

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	return s.Entries()
}

func (s *Store) read() []Entry {
	if s.kv == nil {
		return nil
	}
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warn("leaderboard read failed", "err", err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("leaderboard payload malformed, starting empty", "err", err)
		return nil
	}
	return normalize(entries)
}

// normalize enforces the table invariants on data read from storage.
func normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Add inserts an entry, keeps the table sorted and capped, and persists it.
// Write failures are logged; the in-memory table is updated regardless.
// Returns the updated table.
func (s *Store) Add(entry Entry) []Entry {
	if strings.TrimSpace(entry.Name) == "" {
		entry.Name = DefaultName
	}

	s.mu.Lock()
	entries := append(s.entries, entry)
	// Stable sort keeps earlier entries ahead of a later tie.
	s.entries = normalize(entries)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.persist(snapshot)
	return snapshot
}

func (s *Store) persist(entries []Entry) {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Error("leaderboard encode failed", "err", err)
		return
	}
	if err := s.kv.Put(StorageKey, data); err != nil {
		s.logger.Error("leaderboard write failed", "err", err)
	}
}

// IsHighScore reports whether score would earn a place on the table.
func (s *Store) IsHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) < MaxEntries {
		return true
	}
	return score > s.entries[MaxEntries-1].Score
}

// Entries returns a copy of the table, highest score first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Best returns the top score, or 0 for an empty table.
func (s *Store) Best() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Score
}

func (s *Store) copyLocked() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
