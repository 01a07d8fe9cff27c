package server

import (
	"errors"
	"testing"
	"time"

	"github.com/gramquest/villagegame/internal/game"
)

func TestSessionsSweepRemovesIdle(t *testing.T) {
	s := NewSessions(NewBroker())
	defer s.Close()

	sector := game.Sector{ID: 1, Name: "Agriculture"}
	idle := s.Create(1, 1, sector)
	fresh := s.Create(1, 2, sector)

	// Age the first session past the idle timeout.
	s.mu.Lock()
	s.sessions[idle.ID].touched = time.Now().Add(-sessionIdleTimeout - time.Minute)
	s.mu.Unlock()

	s.sweep(time.Now())

	if _, ok := s.Get(idle.ID); ok {
		t.Error("idle session should have been swept")
	}
	if _, ok := s.Get(fresh.ID); !ok {
		t.Error("fresh session should survive the sweep")
	}

	// The swept session is closed: further play is rejected.
	if _, err := idle.StartAllocation(); !errors.Is(err, game.ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed on swept session, got %v", err)
	}
}

func TestSessionsGetRefreshesIdleDeadline(t *testing.T) {
	s := NewSessions(NewBroker())
	defer s.Close()

	sess := s.Create(1, 1, game.Sector{ID: 1, Name: "Health"})

	s.mu.Lock()
	s.sessions[sess.ID].touched = time.Now().Add(-sessionIdleTimeout - time.Minute)
	s.mu.Unlock()

	// Touching the session through Get keeps it alive.
	if _, ok := s.Get(sess.ID); !ok {
		t.Fatal("expected session before sweep")
	}
	s.sweep(time.Now())

	if _, ok := s.Get(sess.ID); !ok {
		t.Error("recently touched session should survive the sweep")
	}
}

func TestSessionsCloseIsIdempotent(t *testing.T) {
	s := NewSessions(NewBroker())
	s.Create(1, 1, game.Sector{ID: 1, Name: "Education"})

	s.Close()
	s.Close() // must not panic on double close
}
