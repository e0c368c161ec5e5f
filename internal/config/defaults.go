package config

import (
	_ "embed"
)

//go:embed defaults/chromapulse.yaml
var defaultGameYAML []byte

// MaxLives is the most lives a session can start with.
const MaxLives = 3

// FloorIntervalMS is the lowest round interval any configuration may use.
const FloorIntervalMS = 600

// DefaultGameConfig returns the default ChromaPulse configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Gameplay: GameplayConfig{
			Lives:                3,
			SpeedReductionFactor: 1.0,
		},
		Timing: TimingConfig{
			CountdownFrom:   3,
			CountdownTickMS: 800,
			RoundSettleMS:   300,
			FailureSettleMS: 600,
			ScoreAnimSteps:  30,
			ScoreAnimTickMS: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StartIntervalMS: 3000,
			BaseIntervalMS:  3000,
			MinIntervalMS:   600,
			SpeedUpEvery:    5,
			SpeedUpStepMS:   80,
			RampDivisor:     60,
			SlowDownStepMS:  500,
		},
	}
}

// Normalized returns a copy of c with zero or out-of-range fields replaced,
// so configs built in code get the same treatment as loaded ones.
func (c GameConfig) Normalized() GameConfig {
	c.normalize()
	return c
}

// normalize fills zero or out-of-range fields from the defaults so a partial
// YAML file still yields a playable configuration.
func (c *GameConfig) normalize() {
	d := DefaultGameConfig()

	if c.Gameplay.Lives <= 0 || c.Gameplay.Lives > MaxLives {
		c.Gameplay.Lives = d.Gameplay.Lives
	}
	if c.Gameplay.SpeedReductionFactor <= 0 {
		c.Gameplay.SpeedReductionFactor = d.Gameplay.SpeedReductionFactor
	}

	t := &c.Timing
	if t.CountdownFrom <= 0 {
		t.CountdownFrom = d.Timing.CountdownFrom
	}
	if t.CountdownTickMS <= 0 {
		t.CountdownTickMS = d.Timing.CountdownTickMS
	}
	if t.RoundSettleMS <= 0 {
		t.RoundSettleMS = d.Timing.RoundSettleMS
	}
	if t.FailureSettleMS <= 0 {
		t.FailureSettleMS = d.Timing.FailureSettleMS
	}
	if t.ScoreAnimSteps <= 0 {
		t.ScoreAnimSteps = d.Timing.ScoreAnimSteps
	}
	if t.ScoreAnimTickMS <= 0 {
		t.ScoreAnimTickMS = d.Timing.ScoreAnimTickMS
	}

	df := &c.Difficulty
	if df.MinIntervalMS < FloorIntervalMS {
		df.MinIntervalMS = FloorIntervalMS
	}
	if df.BaseIntervalMS <= 0 {
		df.BaseIntervalMS = d.Difficulty.BaseIntervalMS
	}
	if df.StartIntervalMS <= 0 {
		df.StartIntervalMS = d.Difficulty.StartIntervalMS
	}
	if df.StartIntervalMS < df.MinIntervalMS {
		df.StartIntervalMS = df.MinIntervalMS
	}
	if df.SpeedUpEvery <= 0 {
		df.SpeedUpEvery = d.Difficulty.SpeedUpEvery
	}
	if df.SpeedUpStepMS < 0 {
		df.SpeedUpStepMS = d.Difficulty.SpeedUpStepMS
	}
	if df.SlowDownStepMS < 0 {
		df.SlowDownStepMS = d.Difficulty.SlowDownStepMS
	}
	if df.RampDivisor <= 0 {
		df.RampDivisor = d.Difficulty.RampDivisor
	}
}
