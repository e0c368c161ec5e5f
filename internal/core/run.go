package core

import "time"

// RunRecord summarizes one completed session for the run history.
// Unlike leaderboard entries, every finished run is recorded.
type RunRecord struct {
	ID            int64
	SessionID     string
	Score         int
	MaxCombo      int
	CorrectHits   int
	TotalAttempts int
	FinalInterval time.Duration
	Duration      time.Duration
	EndedAt       time.Time
}

// Accuracy returns the hit percentage of the run, 100 when nothing was attempted.
func (r RunRecord) Accuracy() int {
	if r.TotalAttempts == 0 {
		return 100
	}
	return int(float64(r.CorrectHits)/float64(r.TotalAttempts)*100 + 0.5)
}
