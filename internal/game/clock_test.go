package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdownRemaining(t *testing.T) {
	now := time.Now()
	c := NewCountdown(30*time.Second, now)

	if got := c.RemainingSeconds(now); got != 30 {
		t.Errorf("remaining at start = %d, want 30", got)
	}
	if got := c.RemainingSeconds(now.Add(12 * time.Second)); got != 18 {
		t.Errorf("remaining after 12s = %d, want 18", got)
	}
	if got := c.RemainingSeconds(now.Add(45 * time.Second)); got != 0 {
		t.Errorf("remaining after expiry = %d, want 0", got)
	}
	if c.Expired(now.Add(29 * time.Second)) {
		t.Error("expired before deadline")
	}
	if !c.Expired(now.Add(30 * time.Second)) {
		t.Error("not expired at deadline")
	}
}

func TestTimerFiresOnce(t *testing.T) {
	var fired int32
	tm := StartTimer(10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	defer tm.Stop()

	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}
}

func TestTimerStopPreventsFire(t *testing.T) {
	var fired int32
	tm := StartTimer(20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	tm.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Errorf("fired %d times after Stop, want 0", n)
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	tm := StartTimer(time.Hour, func() {})
	tm.Stop()
	tm.Stop()

	var nilTimer *Timer
	nilTimer.Stop() // must not panic
}

func TestIndependentTimers(t *testing.T) {
	var a, b int32
	ta := StartTimer(10*time.Millisecond, func() { atomic.AddInt32(&a, 1) })
	tb := StartTimer(20*time.Millisecond, func() { atomic.AddInt32(&b, 1) })
	defer tb.Stop()

	ta.Stop()
	time.Sleep(60 * time.Millisecond)

	if atomic.LoadInt32(&a) != 0 {
		t.Error("stopped timer fired")
	}
	if atomic.LoadInt32(&b) != 1 {
		t.Error("independent timer did not fire")
	}
}
