package game

import (
	"errors"
	"time"
)

// Allocation game phases.
type AllocationPhase string

const (
	AllocationInstructions AllocationPhase = "instructions"
	AllocationSorting      AllocationPhase = "sorting"
	AllocationResult       AllocationPhase = "result"
)

// AllocationWindow is the sorting time limit.
const AllocationWindow = 60 * time.Second

var (
	ErrNotSorting     = errors.New("allocation game is not in the sorting phase")
	ErrUnknownItem    = errors.New("unknown resource item")
	ErrBadPosition    = errors.New("position out of range")
	ErrAlreadyStarted = errors.New("game already started")
)

// AllocationGame is the resource allocation mini-game: rank a dealt
// subset of resources within the time window. It is a plain state
// machine; the caller supplies now and drives expiry.
type AllocationGame struct {
	sector      string
	available   []ResourceItem
	prioritized []ResourceItem
	phase       AllocationPhase
	countdown   Countdown
	score       int
}

func NewAllocationGame(sector string, rng Rand) *AllocationGame {
	return &AllocationGame{
		sector:    sector,
		available: DrawResources(sector, rng),
		phase:     AllocationInstructions,
	}
}

func (g *AllocationGame) Phase() AllocationPhase      { return g.phase }
func (g *AllocationGame) Available() []ResourceItem   { return g.available }
func (g *AllocationGame) Prioritized() []ResourceItem { return g.prioritized }
func (g *AllocationGame) Countdown() Countdown        { return g.countdown }

// Start moves from instructions to sorting and opens the 60 s window.
func (g *AllocationGame) Start(now time.Time) error {
	if g.phase != AllocationInstructions {
		return ErrAlreadyStarted
	}
	g.phase = AllocationSorting
	g.countdown = NewCountdown(AllocationWindow, now)
	return nil
}

// Prioritize moves an available item to the end of the priority order.
func (g *AllocationGame) Prioritize(id string) error {
	if g.phase != AllocationSorting {
		return ErrNotSorting
	}
	for i, it := range g.available {
		if it.ID == id {
			g.available = append(g.available[:i], g.available[i+1:]...)
			g.prioritized = append(g.prioritized, it)
			return nil
		}
	}
	return ErrUnknownItem
}

// Reorder moves an already-prioritized item to position pos (0 = top).
func (g *AllocationGame) Reorder(id string, pos int) error {
	if g.phase != AllocationSorting {
		return ErrNotSorting
	}
	if pos < 0 || pos >= len(g.prioritized) {
		return ErrBadPosition
	}
	cur := rankOf(g.prioritized, id)
	if cur < 0 {
		return ErrUnknownItem
	}
	it := g.prioritized[cur]
	g.prioritized = append(g.prioritized[:cur], g.prioritized[cur+1:]...)
	g.prioritized = append(g.prioritized[:pos], append([]ResourceItem{it}, g.prioritized[pos:]...)...)
	return nil
}

// Finish scores the current order and makes the game terminal. It is
// triggered by either the explicit done action or timer expiry; calling
// it again returns the already-computed score.
func (g *AllocationGame) Finish() int {
	if g.phase == AllocationResult {
		return g.score
	}
	g.phase = AllocationResult
	g.score = AllocationScore(g.sector, g.prioritized)
	return g.score
}

// Terminal reports whether the game has produced its final score.
func (g *AllocationGame) Terminal() bool { return g.phase == AllocationResult }
