package storage

import (
	"testing"
	"time"

	"github.com/vovakirdan/chromapulse/internal/core"
)

func backends(t *testing.T) map[string]Backend {
	return map[string]Backend{
		"sqlite": openTestStore(t),
		"memory": NewMemory(),
	}
}

func TestBackendKV(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := b.Get("missing"); ok || err != nil {
				t.Errorf("Get(missing) = ok %v, err %v; expected not found", ok, err)
			}

			if err := b.Put("lb", []byte(`[1]`)); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			if err := b.Put("lb", []byte(`[2]`)); err != nil {
				t.Fatalf("Put() overwrite failed: %v", err)
			}

			v, ok, err := b.Get("lb")
			if err != nil || !ok {
				t.Fatalf("Get() = ok %v, err %v", ok, err)
			}
			if string(v) != `[2]` {
				t.Errorf("Get() = %q, expected [2]", v)
			}
		})
	}
}

func TestBackendRuns(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			runs := []core.RunRecord{
				{SessionID: "a", Score: 100, MaxCombo: 4, CorrectHits: 10, TotalAttempts: 12, FinalInterval: 2500 * time.Millisecond, Duration: 40 * time.Second, EndedAt: base},
				{SessionID: "b", Score: 300, MaxCombo: 9, CorrectHits: 20, TotalAttempts: 22, FinalInterval: 1800 * time.Millisecond, Duration: 70 * time.Second, EndedAt: base.Add(time.Minute)},
				{SessionID: "c", Score: 50, MaxCombo: 2, CorrectHits: 3, TotalAttempts: 6, FinalInterval: 3000 * time.Millisecond, Duration: 15 * time.Second, EndedAt: base.Add(2 * time.Minute)},
			}
			for _, r := range runs {
				if err := b.RecordRun(r); err != nil {
					t.Fatalf("RecordRun() failed: %v", err)
				}
			}

			recent, err := b.RecentRuns(2)
			if err != nil {
				t.Fatalf("RecentRuns() failed: %v", err)
			}
			if len(recent) != 2 {
				t.Fatalf("len(RecentRuns(2)) = %d, expected 2", len(recent))
			}
			if recent[0].SessionID != "c" || recent[1].SessionID != "b" {
				t.Errorf("RecentRuns order = %s, %s; expected c, b", recent[0].SessionID, recent[1].SessionID)
			}
			if recent[1].FinalInterval != 1800*time.Millisecond || recent[1].Duration != 70*time.Second {
				t.Errorf("durations not preserved: %+v", recent[1])
			}
			if !recent[0].EndedAt.Equal(base.Add(2 * time.Minute)) {
				t.Errorf("EndedAt = %v, expected %v", recent[0].EndedAt, base.Add(2*time.Minute))
			}
			if recent[0].ID == 0 {
				t.Error("expected recorded runs to get an ID")
			}

			stats, err := b.Stats()
			if err != nil {
				t.Fatalf("Stats() failed: %v", err)
			}
			if stats.GamesCount != 3 {
				t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
			}
			if stats.HighScore != 300 {
				t.Errorf("HighScore = %d, expected 300", stats.HighScore)
			}
			if stats.AvgScore != 150 {
				t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
			}
			if stats.BestCombo != 9 {
				t.Errorf("BestCombo = %d, expected 9", stats.BestCombo)
			}
			if stats.TotalHits != 33 {
				t.Errorf("TotalHits = %d, expected 33", stats.TotalHits)
			}
			if !stats.LastPlayed.Equal(base.Add(2 * time.Minute)) {
				t.Errorf("LastPlayed = %v", stats.LastPlayed)
			}
		})
	}
}

func TestBackendEmptyStats(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			stats, err := b.Stats()
			if err != nil {
				t.Fatalf("Stats() failed: %v", err)
			}
			if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
				t.Errorf("empty Stats() = %+v", stats)
			}
			runs, err := b.RecentRuns(0)
			if err != nil || len(runs) != 0 {
				t.Errorf("RecentRuns(0) = %v, %v", runs, err)
			}
		})
	}
}
