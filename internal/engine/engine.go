// Package engine implements the ChromaPulse state machine: countdown,
// round lifecycle, scoring, difficulty and game over. All mutation happens
// under one mutex shared with the timer scheduler, so key presses and timer
// callbacks are strictly serialized.
package engine

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/chromapulse/internal/config"
	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/leaderboard"
	"github.com/vovakirdan/chromapulse/internal/round"
	"github.com/vovakirdan/chromapulse/internal/sched"
)

// timerKind names the timer categories. Each has at most one live timer.
type timerKind int

const (
	timerCountdown timerKind = iota
	timerDeadline
	timerAdvance // inter-round, settle and failure delays
	timerScore
)

// RunRecorder receives a summary of every finished session.
type RunRecorder interface {
	RecordRun(run core.RunRecord) error
}

// Config holds engine construction options. Zero values select defaults.
type Config struct {
	Game    config.GameConfig
	Palette core.Palette
	Seed    int64 // 0 means time-based
	Clock   sched.Clock
	Logger  *log.Logger
	Now     func() time.Time
}

// Engine runs one game at a time. It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	cfg        config.GameConfig
	difficulty *config.DifficultyController
	generator  *round.Generator
	rng        *rand.Rand
	timers     *sched.Scheduler[timerKind]
	board      *leaderboard.Store
	recorder   RunRecorder
	logger     *log.Logger
	now        func() time.Time

	session *Session
	closed  bool
}

// NewEngine creates an engine in the menu state. board may be nil, in which
// case leaderboard calls are no-ops.
func NewEngine(cfg Config, board *leaderboard.Store) *Engine {
	game := cfg.Game
	if game == (config.GameConfig{}) {
		game = config.DefaultGameConfig()
	}
	game = game.Normalized()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	rng := rand.New(rand.NewSource(seed))

	e := &Engine{
		cfg:        game,
		difficulty: config.NewDifficultyController(game.Difficulty),
		generator:  round.NewGenerator(rng.Int63(), cfg.Palette),
		rng:        rng,
		board:      board,
		logger:     logger,
		now:        now,
	}
	e.timers = sched.New[timerKind](cfg.Clock, &e.mu)
	e.session = e.newSession(StateMenu)
	return e
}

// SetRunRecorder installs the run history sink. nil disables recording.
func (e *Engine) SetRunRecorder(r RunRecorder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recorder = r
}

// Palette returns the colors rounds are drawn from.
func (e *Engine) Palette() core.Palette {
	return e.generator.Palette()
}

// Leaderboard returns the store the engine reports to, possibly nil.
func (e *Engine) Leaderboard() *leaderboard.Store {
	return e.board
}

func (e *Engine) newSession(state State) *Session {
	lives := e.cfg.Gameplay.Lives
	if lives <= 0 || lives > config.MaxLives {
		lives = config.MaxLives
	}
	return &Session{
		ID:                   uuid.NewString(),
		State:                state,
		Lives:                lives,
		Interval:             e.difficulty.StartInterval(),
		SpeedReductionFactor: e.cfg.Gameplay.SpeedReductionFactor,
	}
}

// StartGame begins a new session from the menu or game over screen.
// It is ignored during countdown and play.
func (e *Engine) StartGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if s := e.session.State; s != StateMenu && s != StateGameOver {
		return
	}
	e.begin()
}

// Restart abandons whatever is running and starts a new session.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.begin()
}

// begin resets the session and arms the countdown. Caller holds e.mu.
func (e *Engine) begin() {
	e.timers.CancelAll()
	e.generator.Reset(e.rng.Int63())

	s := e.newSession(StateCountdown)
	s.Countdown = e.cfg.Timing.CountdownFrom
	s.StartedAt = e.now()
	e.session = s

	e.logger.Debug("game started", "session", s.ID, "interval", s.Interval)

	e.timers.Every(timerCountdown, e.cfg.Timing.CountdownTick(), e.countdownTick)
}

func (e *Engine) countdownTick() {
	s := e.session
	if s.State != StateCountdown {
		e.timers.Cancel(timerCountdown)
		return
	}
	if s.Countdown <= 1 {
		e.timers.Cancel(timerCountdown)
		s.Countdown = 0
		s.State = StatePlaying
		e.scheduleRound()
		return
	}
	s.Countdown--
}

// ReturnToMenu hard-resets to the menu from any state.
// The leaderboard is untouched.
func (e *Engine) ReturnToMenu() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.timers.CancelAll()
	e.session = e.newSession(StateMenu)
}

// Shutdown cancels every pending timer. Afterwards the engine ignores all
// calls that would change the session. Safe to call repeatedly.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.timers.Close()
	e.logger.Debug("engine shut down", "session", e.session.ID)
}

// AddToLeaderboard records the current score under name. Calling it twice
// inserts twice.
func (e *Engine) AddToLeaderboard(name string) {
	e.mu.Lock()
	if e.closed || e.board == nil {
		e.mu.Unlock()
		return
	}
	entry := leaderboard.NewEntry(name, e.session.Score, e.session.MaxCombo, e.now())
	e.mu.Unlock()

	e.board.Add(entry)
	e.logger.Info("leaderboard entry added", "name", entry.Name, "score", entry.Score)
}

// IsHighScore reports whether the current score qualifies for the leaderboard.
func (e *Engine) IsHighScore() bool {
	e.mu.Lock()
	score := e.session.Score
	e.mu.Unlock()

	if e.board == nil {
		return false
	}
	return e.board.IsHighScore(score)
}

// endGame finalizes the session. Caller holds e.mu.
func (e *Engine) endGame() {
	e.timers.CancelAll()

	s := e.session
	s.ActiveRound = nil
	s.AwaitingInput = false
	s.DisplayScore = s.Score
	s.State = StateGameOver
	s.EndedAt = e.now()

	e.logger.Info("game over",
		"session", s.ID,
		"score", s.Score,
		"maxCombo", s.MaxCombo,
		"hits", s.CorrectHits,
		"attempts", s.TotalAttempts,
	)

	if e.recorder == nil {
		return
	}
	run := core.RunRecord{
		SessionID:     s.ID,
		Score:         s.Score,
		MaxCombo:      s.MaxCombo,
		CorrectHits:   s.CorrectHits,
		TotalAttempts: s.TotalAttempts,
		FinalInterval: s.Interval,
		Duration:      s.EndedAt.Sub(s.StartedAt),
		EndedAt:       s.EndedAt,
	}
	if err := e.recorder.RecordRun(run); err != nil {
		e.logger.Error("failed to record run", "session", s.ID, "err", err)
	}
}
