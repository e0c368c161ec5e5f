package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/chromapulse/internal/core"
)

// Memory is an in-process Backend. Nothing survives a restart.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	runs   []core.RunRecord
	nextID int64
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

// Get retrieves a value by key
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put stores a value
func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// RecordRun appends a run to the history
func (m *Memory) RecordRun(run core.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	m.nextID++
	run.ID = m.nextID
	m.runs = append(m.runs, run)
	return nil
}

// RecentRuns returns the newest runs first
func (m *Memory) RecentRuns(limit int) ([]core.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	runs := make([]core.RunRecord, len(m.runs))
	copy(runs, m.runs)
	m.mu.RUnlock()

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].EndedAt.Equal(runs[j].EndedAt) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].EndedAt.After(runs[j].EndedAt)
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Stats aggregates the run history
func (m *Memory) Stats() (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &Stats{GamesCount: len(m.runs)}
	total := 0
	for _, r := range m.runs {
		total += r.Score
		stats.TotalHits += r.CorrectHits
		if r.Score > stats.HighScore {
			stats.HighScore = r.Score
		}
		if r.MaxCombo > stats.BestCombo {
			stats.BestCombo = r.MaxCombo
		}
		if r.EndedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.EndedAt
		}
	}
	if len(m.runs) > 0 {
		stats.AvgScore = float64(total) / float64(len(m.runs))
	}
	return stats, nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
