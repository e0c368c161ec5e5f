// Package storage provides persistence for the leaderboard table and the
// run history. Store uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies; Memory is the process-local fallback.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/chromapulse/internal/core"
)

// Backend is implemented by both Store and Memory.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	RecordRun(run core.RunRecord) error
	RecentRuns(limit int) ([]core.RunRecord, error)
	Stats() (*Stats, error)
	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*Memory)(nil)
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Stats contains aggregated statistics over the run history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestCombo  int
	TotalHits  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_combo INTEGER NOT NULL DEFAULT 0,
			correct_hits INTEGER NOT NULL DEFAULT 0,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			final_interval_ms INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key. The bool is false when the key
// has never been written.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read key %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %s: %w", key, err)
	}
	return nil
}

// RecordRun appends a finished run to the history.
func (s *Store) RecordRun(run core.RunRecord) error {
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (session_id, score, max_combo, correct_hits, total_attempts, final_interval_ms, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.SessionID,
		run.Score,
		run.MaxCombo,
		run.CorrectHits,
		run.TotalAttempts,
		run.FinalInterval.Milliseconds(),
		run.Duration.Milliseconds(),
		run.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]core.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, score, max_combo, correct_hits, total_attempts,
		        final_interval_ms, duration_ms, ended_at
		 FROM runs
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []core.RunRecord
	for rows.Next() {
		var r core.RunRecord
		var intervalMS, durationMS, endedAt int64
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Score,
			&r.MaxCombo,
			&r.CorrectHits,
			&r.TotalAttempts,
			&intervalMS,
			&durationMS,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinalInterval = time.Duration(intervalMS) * time.Millisecond
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats aggregates the whole run history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_combo), 0), COALESCE(SUM(correct_hits), 0), MAX(ended_at)
		 FROM runs`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestCombo, &stats.TotalHits, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return stats, nil
}
