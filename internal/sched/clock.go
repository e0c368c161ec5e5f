// Package sched provides the timer plumbing for single-logical-loop game
// engines: a Clock that can run on wall time or a virtual timeline, and a
// Scheduler that keeps at most one live timer per category.
package sched

import "time"

// Timer is a pending callback created by a Clock.
type Timer interface {
	// Stop prevents the timer from firing.
	// Returns false if the timer already fired or was stopped.
	Stop() bool
}

// Clock creates timers. Implementations call f on their own goroutine
// (Real) or synchronously from Advance (FakeClock).
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by time.AfterFunc.
func Real() Clock {
	return realClock{}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
