package scoring

import "math"

// Tween linearly animates a displayed score toward its target over a fixed
// number of steps. Intermediate values are rounded; the last step lands
// exactly on the target.
type Tween struct {
	from  int
	to    int
	steps int
	step  int
}

// NewTween creates a tween from the currently displayed value to target.
func NewTween(from, to, steps int) *Tween {
	if steps < 1 {
		steps = 1
	}
	return &Tween{from: from, to: to, steps: steps}
}

// Next advances one step and returns the value to display.
// done is true once the target has been reached.
func (t *Tween) Next() (value int, done bool) {
	if t.step >= t.steps {
		return t.to, true
	}
	t.step++
	if t.step >= t.steps {
		return t.to, true
	}
	increment := float64(t.to-t.from) / float64(t.steps)
	return int(math.Round(float64(t.from) + increment*float64(t.step))), false
}

// Target returns the value the tween converges to.
func (t *Tween) Target() int {
	return t.to
}
