package engine

import (
	"github.com/vovakirdan/chromapulse/internal/round"
	"github.com/vovakirdan/chromapulse/internal/scoring"
)

// HandleKeyPress answers the live round. Keys outside the palette, and any
// key while no round is awaiting input, are ignored.
func (e *Engine) HandleKeyPress(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	s := e.session
	if s.State != StatePlaying || !s.AwaitingInput || s.ActiveRound == nil {
		return
	}
	pressed, ok := e.generator.Palette().ByKey(key)
	if !ok {
		return
	}

	s.AwaitingInput = false
	s.TotalAttempts++
	e.timers.Cancel(timerDeadline)

	target := *s.ActiveRound
	s.ActiveRound = nil

	if pressed.Key == target.Color.Key {
		e.resolveCorrect(target)
	} else {
		e.resolveWrong(target)
	}
}

// scheduleRound shows the next round after the settle delay.
func (e *Engine) scheduleRound() {
	e.timers.After(timerAdvance, e.cfg.Timing.RoundSettle(), e.nextRound)
}

func (e *Engine) nextRound() {
	s := e.session
	if s.State != StatePlaying {
		return
	}

	r, decor := e.generator.Next()
	s.ActiveRound = &r
	s.Decor = decor
	s.LastOutcome = nil
	s.AwaitingInput = true

	e.timers.After(timerDeadline, s.Interval, e.onDeadline)
}

func (e *Engine) onDeadline() {
	s := e.session
	if s.State != StatePlaying || !s.AwaitingInput {
		return
	}
	e.resolveMiss()
}

func (e *Engine) resolveCorrect(target round.Round) {
	s := e.session

	s.Combo++
	s.CorrectHits++
	points := scoring.Points(s.Combo, s.Interval, s.SpeedReductionFactor)
	s.Score += points
	e.animateScore()

	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	if e.difficulty.ShouldSpeedUp(s.CorrectHits, s.Interval) {
		s.Interval = e.difficulty.SpeedUp(s.Interval)
	}

	s.LastOutcome = &Outcome{Result: ResultCorrect, Target: target, Points: points}

	delay := e.generator.AdvanceDelay(scoring.SpeedMultiplier(s.Interval, s.SpeedReductionFactor))
	e.timers.After(timerAdvance, delay, e.scheduleRound)
}

func (e *Engine) resolveWrong(target round.Round) {
	s := e.session

	s.Combo = 0
	e.loseLife()
	s.LastOutcome = &Outcome{Result: ResultWrong, Target: target, FailureText: FailureWrongKey}
	e.animateScore()

	e.timers.After(timerAdvance, e.cfg.Timing.FailureSettle(), e.afterFailure)
}

func (e *Engine) resolveMiss() {
	s := e.session

	s.AwaitingInput = false
	s.TotalAttempts++
	s.Combo = 0
	e.loseLife()

	var target round.Round
	if s.ActiveRound != nil {
		target = *s.ActiveRound
	}
	s.ActiveRound = nil
	s.LastOutcome = &Outcome{Result: ResultWrong, Target: target, FailureText: FailureTimeout}
	s.Interval = e.difficulty.SlowDown(s.Interval)

	e.timers.After(timerAdvance, e.cfg.Timing.FailureSettle(), e.afterFailure)
}

func (e *Engine) loseLife() {
	if e.session.Lives > 0 {
		e.session.Lives--
	}
}

// afterFailure ends the game or moves on once the failure banner has shown.
func (e *Engine) afterFailure() {
	s := e.session
	if s.Lives <= 0 {
		e.endGame()
		return
	}
	if s.LastOutcome != nil {
		s.LastOutcome.FailureText = ""
	}
	e.scheduleRound()
}

// animateScore restarts the display tween toward the current score.
func (e *Engine) animateScore() {
	s := e.session
	tw := scoring.NewTween(s.DisplayScore, s.Score, e.cfg.Timing.ScoreAnimSteps)
	e.timers.Every(timerScore, e.cfg.Timing.ScoreAnimTick(), func() {
		v, done := tw.Next()
		s.DisplayScore = v
		if done {
			e.timers.Cancel(timerScore)
		}
	})
}
