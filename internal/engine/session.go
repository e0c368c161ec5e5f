package engine

import (
	"time"

	"github.com/vovakirdan/chromapulse/internal/round"
)

// State represents the current phase of a game.
type State int

const (
	StateMenu State = iota
	StateCountdown
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Result is how a round was resolved.
type Result int

const (
	ResultCorrect Result = iota
	ResultWrong
)

// String returns the result name.
func (r Result) String() string {
	if r == ResultCorrect {
		return "correct"
	}
	return "wrong"
}

// Failure banners.
const (
	FailureWrongKey = "MISS"
	FailureTimeout  = "OUT OF TIME"
)

// Outcome describes the most recently resolved round.
type Outcome struct {
	Result      Result
	Target      round.Round
	FailureText string // Cleared once the failure settle delay ends
	Points      int    // Points awarded, 0 for wrong and timeout
}

// Session is the mutable state of one game. It is owned by an Engine and
// replaced on every start.
type Session struct {
	ID                   string
	State                State
	Countdown            int
	Score                int
	DisplayScore         int // Animates toward Score
	Combo                int
	MaxCombo             int
	Lives                int
	CorrectHits          int
	TotalAttempts        int
	Interval             time.Duration
	SpeedReductionFactor float64
	ActiveRound          *round.Round
	AwaitingInput        bool // True exactly while ActiveRound is live and unresolved
	LastOutcome          *Outcome
	Decor                round.Decor
	StartedAt            time.Time
	EndedAt              time.Time
}

// clone returns a deep copy safe to hand out.
func (s *Session) clone() Session {
	c := *s
	if s.ActiveRound != nil {
		r := *s.ActiveRound
		c.ActiveRound = &r
	}
	if s.LastOutcome != nil {
		o := *s.LastOutcome
		c.LastOutcome = &o
	}
	return c
}
