package game

import (
	"sync"
	"time"
)

// Countdown tracks a fixed window of whole seconds ending at a deadline.
// It holds no goroutines or channels; remaining time is computed against
// a caller-supplied now, so game logic stays deterministic under test.
type Countdown struct {
	window   time.Duration
	deadline time.Time
}

func NewCountdown(window time.Duration, now time.Time) Countdown {
	return Countdown{window: window, deadline: now.Add(window)}
}

// Remaining returns the time left in the window, floored at zero.
func (c Countdown) Remaining(now time.Time) time.Duration {
	if rem := c.deadline.Sub(now); rem > 0 {
		return rem
	}
	return 0
}

// RemainingSeconds is Remaining truncated to whole seconds.
func (c Countdown) RemainingSeconds(now time.Time) int {
	return int(c.Remaining(now) / time.Second)
}

func (c Countdown) Expired(now time.Time) bool {
	return !now.Before(c.deadline)
}

// WindowSeconds returns the full window length in whole seconds.
func (c Countdown) WindowSeconds() int {
	return int(c.window / time.Second)
}

// Timer fires fn at most once when the duration elapses. Stop prevents
// any future fire, but a callback that has already passed the stopped
// check may still be running when Stop returns; callers that need
// stronger ordering check a generation counter under their own lock.
// Each mini-game step owns its own Timer; they share no state.
type Timer struct {
	mu      sync.Mutex
	t       *time.Timer
	stopped bool
}

func StartTimer(d time.Duration, fn func()) *Timer {
	tm := &Timer{}
	tm.t = time.AfterFunc(d, func() {
		tm.mu.Lock()
		if tm.stopped {
			tm.mu.Unlock()
			return
		}
		tm.stopped = true
		tm.mu.Unlock()
		fn()
	})
	return tm
}

// Stop cancels the timer. Safe to call multiple times and on nil.
func (tm *Timer) Stop() {
	if tm == nil {
		return
	}
	tm.mu.Lock()
	tm.stopped = true
	tm.mu.Unlock()
	tm.t.Stop()
}
