// Package config provides YAML-based game tuning, difficulty presets and the
// interval controller for ChromaPulse.
package config

import "time"

// GameConfig contains all tuning for a ChromaPulse session.
type GameConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines per-session starting values.
type GameplayConfig struct {
	Lives                int     `yaml:"lives"`
	SpeedReductionFactor float64 `yaml:"speed_reduction_factor"`
}

// TimingConfig defines the fixed delays of the round lifecycle.
type TimingConfig struct {
	CountdownFrom   int `yaml:"countdown_from"`
	CountdownTickMS int `yaml:"countdown_tick_ms"`
	RoundSettleMS   int `yaml:"round_settle_ms"`   // Pause before a new round appears
	FailureSettleMS int `yaml:"failure_settle_ms"` // Pause after a wrong key or timeout
	ScoreAnimSteps  int `yaml:"score_anim_steps"`
	ScoreAnimTickMS int `yaml:"score_anim_tick_ms"`
}

// DifficultyConfig defines how the round interval evolves.
type DifficultyConfig struct {
	Enabled         bool `yaml:"enabled"`
	StartIntervalMS int  `yaml:"start_interval_ms"`
	BaseIntervalMS  int  `yaml:"base_interval_ms"` // Reference the ramp converges away from
	MinIntervalMS   int  `yaml:"min_interval_ms"`
	SpeedUpEvery    int  `yaml:"speed_up_every"` // Correct hits between speed-ups
	SpeedUpStepMS   int  `yaml:"speed_up_step_ms"`
	RampDivisor     int  `yaml:"ramp_divisor"`
	SlowDownStepMS  int  `yaml:"slow_down_step_ms"`
}

// CountdownTick returns the countdown tick period.
func (t TimingConfig) CountdownTick() time.Duration {
	return ms(t.CountdownTickMS)
}

// RoundSettle returns the pause before a new round is generated.
func (t TimingConfig) RoundSettle() time.Duration {
	return ms(t.RoundSettleMS)
}

// FailureSettle returns the pause after a wrong answer or a timeout.
func (t TimingConfig) FailureSettle() time.Duration {
	return ms(t.FailureSettleMS)
}

// ScoreAnimTick returns the score animation frame period.
func (t TimingConfig) ScoreAnimTick() time.Duration {
	return ms(t.ScoreAnimTickMS)
}

// StartInterval returns the round interval a new session begins with.
func (d DifficultyConfig) StartInterval() time.Duration {
	return ms(d.StartIntervalMS)
}

// MinInterval returns the interval floor.
func (d DifficultyConfig) MinInterval() time.Duration {
	return ms(d.MinIntervalMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartIntervalForPreset returns the starting interval in milliseconds for a preset.
// Unknown presets start at the normal interval.
func StartIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3600
	case DifficultyHard:
		return 2200
	default:
		return 3000
	}
}

// IsFixedPreset returns true if the preset disables interval changes.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
