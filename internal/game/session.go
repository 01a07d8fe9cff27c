package game

import (
	"errors"
	"sync"
	"time"
)

// Kind identifies one of the three mini-games.
type Kind string

const (
	KindAllocation Kind = "allocation"
	KindChallenge  Kind = "challenge"
	KindQuiz       Kind = "quiz"
)

// foldOrder fixes the order per-kind scores are folded in, so the
// recomputed triple is deterministic.
var foldOrder = []Kind{KindAllocation, KindChallenge, KindQuiz}

var (
	ErrSessionFinished = errors.New("session already finished")
	ErrSessionClosed   = errors.New("session closed")
	ErrNoActiveGame    = errors.New("no active mini-game of that kind")
)

// Fold applies one completed mini-game score to the running triple.
// Environmental impact only upgrades, never downgrades.
func Fold(s SectorScore, score int) SectorScore {
	s.DevelopmentScore += score / 5
	if score > 70 {
		s.BudgetEfficiency += 10
	} else {
		s.BudgetEfficiency += 5
	}
	switch {
	case score > 80:
		s.EnvironmentalImpact = upgradeEnv(s.EnvironmentalImpact, EnvExcellent)
	case score > 60:
		s.EnvironmentalImpact = upgradeEnv(s.EnvironmentalImpact, EnvGood)
	}
	return s
}

// Recompute folds the latest score of each played kind from zero.
// Replaying a mini-game therefore overwrites its previous contribution
// instead of accumulating it.
func Recompute(scores map[Kind]int) SectorScore {
	s := ZeroScore()
	for _, k := range foldOrder {
		if v, ok := scores[k]; ok {
			s = Fold(s, v)
		}
	}
	return s
}

// Event is published to session subscribers as mini-games progress.
type Event struct {
	Type  string      `json:"type"`
	Game  Kind        `json:"game,omitempty"`
	Score int         `json:"score,omitempty"`
	Total SectorScore `json:"total"`
}

// SectorSession orchestrates one user's play of a sector: it runs at
// most one mini-game at a time, owns that game's timers, folds each
// terminal score into the triple, and settles exactly once on Finish.
type SectorSession struct {
	ID        string
	UserID    int64
	VillageID int64
	Sector    Sector

	mu     sync.Mutex
	now    func() time.Time
	rng    Rand
	notify func(Event)

	allocation *AllocationGame
	challenge  *ChallengeGame
	quiz       *QuizGame
	active     Kind

	timer *Timer
	step  int // generation counter; stale timer callbacks bail out

	scores    map[Kind]int
	completed map[Kind]bool
	score     SectorScore
	finished  bool
	closed    bool
}

// Option configures a SectorSession.
type Option func(*SectorSession)

// WithClock overrides the session's notion of now.
func WithClock(now func() time.Time) Option {
	return func(s *SectorSession) { s.now = now }
}

// WithRand overrides the session's randomness.
func WithRand(rng Rand) Option {
	return func(s *SectorSession) { s.rng = rng }
}

// WithNotify registers an event callback. It runs with the session
// lock held, so it must be non-blocking and must not reenter the
// session.
func WithNotify(fn func(Event)) Option {
	return func(s *SectorSession) { s.notify = fn }
}

func NewSectorSession(id string, userID, villageID int64, sector Sector, opts ...Option) *SectorSession {
	s := &SectorSession{
		ID:        id,
		UserID:    userID,
		VillageID: villageID,
		Sector:    sector,
		now:       time.Now,
		rng:       NewRand(),
		scores:    make(map[Kind]int),
		completed: make(map[Kind]bool),
		score:     ZeroScore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish delivers an event in order, while the lock is held. The
// notify callback must not call back into the session and must not
// block (the SSE broker drops events for slow subscribers).
func (s *SectorSession) publish(ev Event) {
	if s.notify != nil {
		s.notify(ev)
	}
}

// arm replaces the current step timer. The callback runs with the lock
// held and is dropped if the session moved on before it fired.
func (s *SectorSession) arm(d time.Duration, fn func()) {
	s.timer.Stop()
	gen := s.step
	s.timer = StartTimer(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.step != gen || s.finished || s.closed {
			return
		}
		fn()
	})
}

func (s *SectorSession) checkOpen() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.finished {
		return ErrSessionFinished
	}
	return nil
}

// discardActive abandons whatever mini-game is running without scoring
// it and cancels its timer.
func (s *SectorSession) discardActive() {
	s.timer.Stop()
	s.timer = nil
	s.step++
	s.allocation = nil
	s.challenge = nil
	s.quiz = nil
	s.active = ""
}

// recordScore folds a terminal mini-game score into the triple,
// overwriting that kind's previous contribution if it was replayed.
func (s *SectorSession) recordScore(kind Kind, score int) {
	s.scores[kind] = score
	s.completed[kind] = true
	s.score = Recompute(s.scores)
	s.publish(Event{Type: "minigame_completed", Game: kind, Score: score, Total: s.score})
}

// --- Resource allocation ---

// StartAllocation begins a fresh allocation game, discarding any other
// running mini-game without scoring it.
func (s *SectorSession) StartAllocation() (*AllocationGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.discardActive()
	g := NewAllocationGame(s.Sector.Name, s.rng)
	if err := g.Start(s.now()); err != nil {
		return nil, err
	}
	s.allocation = g
	s.active = KindAllocation
	s.arm(AllocationWindow, func() { s.settleAllocation() })
	s.publish(Event{Type: "minigame_started", Game: KindAllocation, Total: s.score})
	return g, nil
}

func (s *SectorSession) AllocationPrioritize(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.allocation == nil {
		return ErrNoActiveGame
	}
	return s.allocation.Prioritize(id)
}

func (s *SectorSession) AllocationReorder(id string, pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.allocation == nil {
		return ErrNoActiveGame
	}
	return s.allocation.Reorder(id, pos)
}

// AllocationFinish is the explicit done action.
func (s *SectorSession) AllocationFinish() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	if s.allocation == nil {
		return 0, ErrNoActiveGame
	}
	s.timer.Stop()
	s.step++
	score := s.allocation.Finish()
	s.recordScore(KindAllocation, score)
	s.active = ""
	return score, nil
}

// settleAllocation is the timer-expiry path; lock already held.
func (s *SectorSession) settleAllocation() {
	if s.allocation == nil || s.allocation.Terminal() {
		return
	}
	s.step++
	score := s.allocation.Finish()
	s.recordScore(KindAllocation, score)
	s.active = ""
}

// --- Sector challenge ---

func (s *SectorSession) StartChallenge() (*ChallengeGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.discardActive()
	g := NewChallengeGame(s.Sector.Name, s.rng)
	g.Start(s.now())
	s.challenge = g
	s.active = KindChallenge
	s.arm(ChallengeWindow, func() { s.expireChallengeStep() })
	s.publish(Event{Type: "minigame_started", Game: KindChallenge, Total: s.score})
	return g, nil
}

func (s *SectorSession) ChallengeSelect(optionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.challenge == nil {
		return ErrNoActiveGame
	}
	if err := s.challenge.Select(optionID, s.now()); err != nil {
		return err
	}
	s.step++
	s.arm(ChallengeRevealDelay, func() { s.advanceChallenge() })
	return nil
}

// expireChallengeStep auto-picks on timeout; lock held.
func (s *SectorSession) expireChallengeStep() {
	if s.challenge == nil {
		return
	}
	s.challenge.Expire()
	s.step++
	s.arm(ChallengeRevealDelay, func() { s.advanceChallenge() })
}

// advanceChallenge runs after the reveal delay; lock held.
func (s *SectorSession) advanceChallenge() {
	if s.challenge == nil {
		return
	}
	s.step++
	finished, err := s.challenge.Advance(s.now())
	if err != nil {
		return
	}
	if finished {
		s.timer.Stop()
		s.recordScore(KindChallenge, s.challenge.FinalScore())
		s.active = ""
		return
	}
	s.arm(ChallengeWindow, func() { s.expireChallengeStep() })
}

// --- Knowledge quiz ---

func (s *SectorSession) StartQuiz() (*QuizGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.discardActive()
	g := NewQuizGame(s.Sector.Name, s.rng)
	g.Start(s.now())
	s.quiz = g
	s.active = KindQuiz
	s.arm(QuizWindow, func() { s.expireQuizStep() })
	s.publish(Event{Type: "minigame_started", Game: KindQuiz, Total: s.score})
	return g, nil
}

func (s *SectorSession) QuizSelect(optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.quiz == nil {
		return ErrNoActiveGame
	}
	if err := s.quiz.Select(optionID, s.now()); err != nil {
		return err
	}
	s.step++
	s.arm(QuizRevealDelay, func() { s.advanceQuiz() })
	return nil
}

func (s *SectorSession) expireQuizStep() {
	if s.quiz == nil {
		return
	}
	s.quiz.Expire()
	s.step++
	s.arm(QuizRevealDelay, func() { s.advanceQuiz() })
}

func (s *SectorSession) advanceQuiz() {
	if s.quiz == nil {
		return
	}
	s.step++
	finished, err := s.quiz.Advance(s.now())
	if err != nil {
		return
	}
	if finished {
		s.timer.Stop()
		s.recordScore(KindQuiz, s.quiz.FinalScore())
		s.active = ""
		return
	}
	s.arm(QuizWindow, func() { s.expireQuizStep() })
}

// --- Lifecycle ---

// Score returns the current triple.
func (s *SectorSession) Score() SectorScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Completed reports which mini-game kinds have produced a score.
func (s *SectorSession) Completed() []Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Kind, 0, len(s.completed))
	for _, k := range foldOrder {
		if s.completed[k] {
			out = append(out, k)
		}
	}
	return out
}

// Finish settles the session exactly once, returning the final triple.
// All timers are cancelled; further calls return ErrSessionFinished.
func (s *SectorSession) Finish() (SectorScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return SectorScore{}, err
	}
	s.discardActive()
	s.finished = true
	s.publish(Event{Type: "session_finished", Total: s.score})
	return s.score, nil
}

// Close abandons the session without scoring (mid-game cancellation).
func (s *SectorSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.discardActive()
	s.closed = true
}
