package game

import (
	"errors"
	"math"
	"time"
)

const (
	// ChallengeWindow is the decision time per challenge.
	ChallengeWindow = 30 * time.Second
	// ChallengeRevealDelay is the pause after a selection before the
	// session advances to the next challenge.
	ChallengeRevealDelay = 1500 * time.Millisecond
	// challengeCompletionBonus is added once when the last challenge is done.
	challengeCompletionBonus = 20
)

var (
	ErrAlreadySelected = errors.New("option already selected for this challenge")
	ErrGameOver        = errors.New("game is already over")
	ErrUnknownOption   = errors.New("unknown option")
	ErrNotRevealed     = errors.New("no selection to advance past")
)

// ChallengeOptionScore scores one selected option: the rounded mean of
// the three impact axes, a balance bonus when every axis is non-zero,
// and a time bonus proportional to the seconds left, floored at zero.
func ChallengeOptionScore(im Impact, remainingSeconds int) int {
	mean := math.Round(float64(im.Development+im.Budget+im.Environment) / 3)

	balance := 0
	if im.Development != 0 && im.Budget != 0 && im.Environment != 0 {
		balance = 5
	}

	timeBonus := 10 * remainingSeconds / int(ChallengeWindow/time.Second)

	score := int(mean) + balance + timeBonus
	if score < 0 {
		score = 0
	}
	return score
}

// ChallengeGame runs the sector challenge sequence. Exactly one option
// is selectable per challenge; expiry auto-selects uniformly at random
// and scores identically to a manual pick.
type ChallengeGame struct {
	challenges []Challenge
	index      int
	selected   map[int]int // challenge index -> option id
	revealed   bool
	score      int
	countdown  Countdown
	ended      bool
	finalScore int
	rng        Rand
}

func NewChallengeGame(sector string, rng Rand) *ChallengeGame {
	return &ChallengeGame{
		challenges: ChallengesFor(sector),
		selected:   make(map[int]int),
		rng:        rng,
	}
}

func (g *ChallengeGame) Start(now time.Time) {
	g.countdown = NewCountdown(ChallengeWindow, now)
}

func (g *ChallengeGame) Current() Challenge    { return g.challenges[g.index] }
func (g *ChallengeGame) Index() int            { return g.index }
func (g *ChallengeGame) Total() int            { return len(g.challenges) }
func (g *ChallengeGame) Score() int            { return g.score }
func (g *ChallengeGame) Terminal() bool        { return g.ended }
func (g *ChallengeGame) Countdown() Countdown  { return g.countdown }
func (g *ChallengeGame) Revealed() bool        { return g.revealed }
func (g *ChallengeGame) SelectedOption() (int, bool) {
	id, ok := g.selected[g.index]
	return id, ok
}

// Select locks in an option for the current challenge and accumulates
// its score. A second selection on the same challenge is a no-op.
func (g *ChallengeGame) Select(optionID int, now time.Time) error {
	if g.ended {
		return ErrGameOver
	}
	if _, ok := g.selected[g.index]; ok {
		return ErrAlreadySelected
	}

	cur := g.challenges[g.index]
	var opt *ChallengeOption
	for i := range cur.Options {
		if cur.Options[i].ID == optionID {
			opt = &cur.Options[i]
			break
		}
	}
	if opt == nil {
		return ErrUnknownOption
	}

	g.selected[g.index] = optionID
	g.revealed = true
	g.score += ChallengeOptionScore(opt.Impact, g.countdown.RemainingSeconds(now))
	return nil
}

// Expire handles timer expiry on the current challenge: if nothing was
// selected yet, a uniformly random option is picked with zero time left.
func (g *ChallengeGame) Expire() {
	if g.ended {
		return
	}
	if _, ok := g.selected[g.index]; ok {
		return
	}
	cur := g.challenges[g.index]
	opt := cur.Options[g.rng.Intn(len(cur.Options))]
	g.selected[g.index] = opt.ID
	g.revealed = true
	g.score += ChallengeOptionScore(opt.Impact, 0)
}

// Advance moves past a revealed challenge after the post-selection
// delay. On the last challenge it makes the game terminal and settles
// the final score (sum of per-challenge scores plus completion bonus).
func (g *ChallengeGame) Advance(now time.Time) (finished bool, err error) {
	if g.ended {
		return true, ErrGameOver
	}
	if !g.revealed {
		return false, ErrNotRevealed
	}
	if g.index < len(g.challenges)-1 {
		g.index++
		g.revealed = false
		g.countdown = NewCountdown(ChallengeWindow, now)
		return false, nil
	}
	g.ended = true
	g.finalScore = g.score + challengeCompletionBonus
	return true, nil
}

// FinalScore is valid once Terminal() is true.
func (g *ChallengeGame) FinalScore() int { return g.finalScore }
