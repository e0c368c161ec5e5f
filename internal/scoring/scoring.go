// Package scoring holds the pure scoring math: speed multiplier, points per
// hit, combo tiers and the score display tween.
package scoring

import (
	"math"
	"time"
)

// Scoring constants
const (
	ReferenceInterval = 3000 * time.Millisecond // Interval at which the speed multiplier is 1.0
	BasePoints        = 2
	ComboCap          = 50  // Combo beyond this adds no bonus
	ComboStep         = 0.1 // Bonus per combo level
	SpeedBonusCap     = 128
)

// SpeedMultiplier returns ReferenceInterval/interval scaled by factor,
// rounded to one decimal place.
func SpeedMultiplier(interval time.Duration, factor float64) float64 {
	if interval <= 0 {
		return 0
	}
	raw := float64(ReferenceInterval) / float64(interval) * factor
	return math.Round(raw*10) / 10
}

// ComboBonus returns the multiplier contributed by the current combo.
func ComboBonus(combo int) float64 {
	if combo < 0 {
		combo = 0
	}
	return 1 + float64(min(combo, ComboCap))*ComboStep
}

// SpeedBonus returns the capped square root of the speed multiplier.
func SpeedBonus(speedMultiplier float64) float64 {
	return math.Min(math.Sqrt(speedMultiplier), SpeedBonusCap)
}

// Points returns the score awarded for a correct hit.
// combo is the value after the hit was counted.
func Points(combo int, interval time.Duration, factor float64) int {
	speed := SpeedBonus(SpeedMultiplier(interval, factor))
	return int(math.Round(BasePoints * ComboBonus(combo) * speed * speed))
}

// Accuracy returns the hit percentage, 100 when nothing was attempted.
func Accuracy(correctHits, totalAttempts int) int {
	if totalAttempts == 0 {
		return 100
	}
	return int(math.Round(float64(correctHits) / float64(totalAttempts) * 100))
}
