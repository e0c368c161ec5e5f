package sched

import (
	"sync"
	"time"
)

// Scheduler keeps at most one live timer per key.
//
// All methods must be called with mu held. Fired callbacks acquire mu before
// running, so they never overlap each other or the owner's own methods. A
// callback whose timer was cancelled or replaced after it fired but before
// it acquired mu is dropped.
type Scheduler[K comparable] struct {
	clock  Clock
	mu     sync.Locker
	slots  map[K]*slot
	nextID uint64
	closed bool
}

type slot struct {
	id    uint64
	timer Timer
}

// New creates a scheduler on clock whose callbacks serialize on mu.
func New[K comparable](clock Clock, mu sync.Locker) *Scheduler[K] {
	if clock == nil {
		clock = Real()
	}
	return &Scheduler[K]{
		clock: clock,
		mu:    mu,
		slots: make(map[K]*slot),
	}
}

// After arms a one-shot timer for key, replacing any pending timer with the same key.
func (s *Scheduler[K]) After(key K, d time.Duration, fn func()) {
	if s.closed {
		return
	}
	s.Cancel(key)

	sl := s.newSlot(key)
	id := sl.id
	sl.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.current(key, id) {
			return
		}
		delete(s.slots, key)
		fn()
	})
}

// Every arms a repeating timer for key. The next tick is armed before fn
// runs, so fn may Cancel(key) to stop the repetition.
func (s *Scheduler[K]) Every(key K, d time.Duration, fn func()) {
	if s.closed {
		return
	}
	s.Cancel(key)

	sl := s.newSlot(key)
	id := sl.id

	var arm func()
	arm = func() {
		sl.timer = s.clock.AfterFunc(d, func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if !s.current(key, id) {
				return
			}
			arm()
			fn()
		})
	}
	arm()
}

// Cancel stops the pending timer for key, if any.
func (s *Scheduler[K]) Cancel(key K) {
	sl, ok := s.slots[key]
	if !ok {
		return
	}
	if sl.timer != nil {
		sl.timer.Stop()
	}
	delete(s.slots, key)
}

// CancelAll stops every pending timer.
func (s *Scheduler[K]) CancelAll() {
	for key := range s.slots {
		s.Cancel(key)
	}
}

// Close cancels every timer and refuses new ones.
func (s *Scheduler[K]) Close() {
	s.CancelAll()
	s.closed = true
}

// Pending reports whether key has a live timer.
func (s *Scheduler[K]) Pending(key K) bool {
	_, ok := s.slots[key]
	return ok
}

// Len returns the number of live timers.
func (s *Scheduler[K]) Len() int {
	return len(s.slots)
}

func (s *Scheduler[K]) newSlot(key K) *slot {
	s.nextID++
	sl := &slot{id: s.nextID}
	s.slots[key] = sl
	return sl
}

func (s *Scheduler[K]) current(key K, id uint64) bool {
	sl, ok := s.slots[key]
	return ok && sl.id == id
}
