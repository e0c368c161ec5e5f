package sched

import (
	"sync"
	"testing"
	"time"
)

func TestFakeClockFiresInDeadlineOrder(t *testing.T) {
	c := NewFakeClock()
	var order []string

	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a2") })

	c.Advance(250 * time.Millisecond)
	if got := len(order); got != 3 {
		t.Fatalf("fired %d timers after 250ms, expected 3", got)
	}
	want := []string{"a", "a2", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], want[i])
		}
	}
	if c.Now() != 250*time.Millisecond {
		t.Errorf("Now() = %v, expected 250ms", c.Now())
	}

	c.Advance(50 * time.Millisecond)
	if len(order) != 4 || order[3] != "c" {
		t.Errorf("expected c to fire at 300ms, got %v", order)
	}
}

func TestFakeClockStop(t *testing.T) {
	c := NewFakeClock()
	fired := false
	tm := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !tm.Stop() {
		t.Error("Stop() on pending timer should return true")
	}
	if tm.Stop() {
		t.Error("second Stop() should return false")
	}
	c.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestFakeClockChainedTimersFireWithinWindow(t *testing.T) {
	c := NewFakeClock()
	var at []time.Duration

	c.AfterFunc(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.AfterFunc(100*time.Millisecond, func() {
			at = append(at, c.Now())
		})
	})

	c.Advance(500 * time.Millisecond)
	if len(at) != 2 {
		t.Fatalf("expected 2 firings, got %d", len(at))
	}
	if at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("fired at %v, expected [100ms 200ms]", at)
	}
}

type key int

const (
	keyA key = iota
	keyB
)

func TestSchedulerReplacesSameKey(t *testing.T) {
	var mu sync.Mutex
	c := NewFakeClock()
	s := New[key](c, &mu)

	var fired []int
	mu.Lock()
	s.After(keyA, 100*time.Millisecond, func() { fired = append(fired, 1) })
	s.After(keyA, 200*time.Millisecond, func() { fired = append(fired, 2) })
	mu.Unlock()

	c.Advance(time.Second)
	if len(fired) != 1 || fired[0] != 2 {
		t.Errorf("fired = %v, expected only the replacement timer", fired)
	}
}

func TestSchedulerKeysAreIndependent(t *testing.T) {
	var mu sync.Mutex
	c := NewFakeClock()
	s := New[key](c, &mu)

	count := 0
	mu.Lock()
	s.After(keyA, 10*time.Millisecond, func() { count++ })
	s.After(keyB, 10*time.Millisecond, func() { count++ })
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	mu.Unlock()

	c.Advance(10 * time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}

	mu.Lock()
	defer mu.Unlock()
	if s.Pending(keyA) || s.Pending(keyB) {
		t.Error("fired one-shot timers should not be pending")
	}
}

func TestSchedulerEveryAndCancelFromCallback(t *testing.T) {
	var mu sync.Mutex
	c := NewFakeClock()
	s := New[key](c, &mu)

	ticks := 0
	mu.Lock()
	s.Every(keyA, 800*time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			s.Cancel(keyA)
		}
	})
	mu.Unlock()

	c.Advance(800 * time.Millisecond)
	if ticks != 1 {
		t.Fatalf("ticks = %d after 800ms, expected 1", ticks)
	}
	c.Advance(10 * time.Second)
	if ticks != 3 {
		t.Errorf("ticks = %d, expected repetition to stop at 3", ticks)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestSchedulerCloseDropsEverything(t *testing.T) {
	var mu sync.Mutex
	c := NewFakeClock()
	s := New[key](c, &mu)

	fired := false
	mu.Lock()
	s.After(keyA, time.Millisecond, func() { fired = true })
	s.Every(keyB, time.Millisecond, func() { fired = true })
	s.Close()
	s.After(keyA, time.Millisecond, func() { fired = true })
	mu.Unlock()

	c.Advance(time.Second)
	if fired {
		t.Error("no callback should run after Close")
	}
}

func TestSchedulerRealClock(t *testing.T) {
	var mu sync.Mutex
	s := New[key](nil, &mu)

	done := make(chan struct{})
	mu.Lock()
	s.After(keyA, 5*time.Millisecond, func() { close(done) })
	mu.Unlock()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("real timer did not fire")
	}
}
