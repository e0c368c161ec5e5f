package config

import (
	"math"
	"time"
)

// DifficultyController computes the evolving round interval.
// It holds no session state: callers pass the current interval and counters.
type DifficultyController struct {
	cfg DifficultyConfig
}

// NewDifficultyController creates a controller for the given tuning.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	return &DifficultyController{cfg: cfg}
}

// SetEnabled enables or disables interval changes.
func (d *DifficultyController) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the interval reacts to hits and misses.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartInterval returns the interval a new session begins with.
func (d *DifficultyController) StartInterval() time.Duration {
	return d.cfg.StartInterval()
}

// Floor returns the minimum interval, never below FloorIntervalMS.
func (d *DifficultyController) Floor() time.Duration {
	return max(d.cfg.MinInterval(), ms(FloorIntervalMS))
}

// ShouldSpeedUp reports whether the hit count triggers a speed-up step.
func (d *DifficultyController) ShouldSpeedUp(correctHits int, interval time.Duration) bool {
	if !d.cfg.Enabled || correctHits <= 0 || d.cfg.SpeedUpEvery <= 0 {
		return false
	}
	return correctHits%d.cfg.SpeedUpEvery == 0 && interval > d.Floor()
}

// SpeedUp shortens the interval. The step shrinks as the interval moves
// away from the base: i - step + (base - i)/divisor, floored.
func (d *DifficultyController) SpeedUp(interval time.Duration) time.Duration {
	if !d.cfg.Enabled {
		return interval
	}
	i := toMS(interval)
	next := i - float64(d.cfg.SpeedUpStepMS)
	if d.cfg.RampDivisor > 0 {
		next += (float64(d.cfg.BaseIntervalMS) - i) / float64(d.cfg.RampDivisor)
	}
	return d.clamp(next)
}

// SlowDown lengthens the interval after a timeout.
func (d *DifficultyController) SlowDown(interval time.Duration) time.Duration {
	if !d.cfg.Enabled {
		return interval
	}
	return d.clamp(toMS(interval) + float64(d.cfg.SlowDownStepMS))
}

// clamp rounds to whole milliseconds and applies the floor.
func (d *DifficultyController) clamp(msValue float64) time.Duration {
	rounded := time.Duration(math.Round(msValue)) * time.Millisecond
	if floor := d.Floor(); rounded < floor {
		return floor
	}
	return rounded
}

func toMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
