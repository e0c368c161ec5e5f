package engine

import "github.com/vovakirdan/chromapulse/internal/scoring"

// Snapshot is a point-in-time copy of the session with the derived
// values the presentation layer needs.
type Snapshot struct {
	Session

	Accuracy         int     // Hit percentage, 100 before any attempt
	SpeedMultiplier  float64 // 3000ms / interval, one decimal
	ComboText        string
	ComboLevel       string
	LegendOpacity    float64
	CircleKeyOpacity float64
	HighScore        int // Best leaderboard score, 0 without a leaderboard
}

// Snapshot returns the current state. The result shares nothing with the engine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	sess := e.session.clone()
	e.mu.Unlock()

	speed := scoring.SpeedMultiplier(sess.Interval, sess.SpeedReductionFactor)
	tier := scoring.ComboTier(sess.Combo, speed)

	snap := Snapshot{
		Session:          sess,
		Accuracy:         scoring.Accuracy(sess.CorrectHits, sess.TotalAttempts),
		SpeedMultiplier:  speed,
		ComboText:        tier.Text,
		ComboLevel:       tier.Level,
		LegendOpacity:    scoring.LegendOpacity(sess.CorrectHits),
		CircleKeyOpacity: scoring.CircleKeyOpacity(sess.CorrectHits),
	}
	if e.board != nil {
		snap.HighScore = e.board.Best()
	}
	return snap
}
