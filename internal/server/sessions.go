package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gramquest/villagegame/internal/game"
)

const (
	// sessionIdleTimeout bounds how long an untouched session survives
	// a player who walks away without finishing or abandoning.
	sessionIdleTimeout   = 30 * time.Minute
	sessionSweepInterval = 5 * time.Minute
)

// Sessions holds the live sector sessions. They are in-memory only: a
// session exists between its explicit create and its finish/abandon,
// and only its final score record is ever persisted. Idle sessions are
// swept out after sessionIdleTimeout.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	broker   *Broker

	done      chan struct{}
	closeOnce sync.Once
}

type sessionEntry struct {
	sess    *game.SectorSession
	touched time.Time
}

func NewSessions(broker *Broker) *Sessions {
	s := &Sessions{
		sessions: make(map[string]*sessionEntry),
		broker:   broker,
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Create starts a new sector session for a user and wires its events
// into the SSE broker.
func (s *Sessions) Create(userID, villageID int64, sector game.Sector) *game.SectorSession {
	id := uuid.NewString()
	sess := game.NewSectorSession(id, userID, villageID, sector,
		game.WithNotify(func(ev game.Event) {
			s.broker.Publish(id, ev)
		}),
	)

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{sess: sess, touched: time.Now()}
	s.mu.Unlock()
	return sess
}

// Get returns a live session by id and refreshes its idle deadline.
func (s *Sessions) Get(id string) (*game.SectorSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.touched = time.Now()
	return e.sess, true
}

// Remove drops a session from the registry and cancels its timers.
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		e.sess.Close()
	}
}

func (s *Sessions) janitor() {
	t := time.NewTicker(sessionSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.sweep(time.Now())
		}
	}
}

// sweep abandons sessions whose last touch is older than the idle
// timeout, exactly as if the player had deleted them.
func (s *Sessions) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if now.Sub(e.touched) > sessionIdleTimeout {
			e.sess.Close()
			delete(s.sessions, id)
		}
	}
}

// Close stops the janitor and tears down every live session.
func (s *Sessions) Close() {
	s.closeOnce.Do(func() { close(s.done) })

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		e.sess.Close()
		delete(s.sessions, id)
	}
}
