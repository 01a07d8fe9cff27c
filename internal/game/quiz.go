package game

import (
	"math"
	"time"
)

const (
	// QuizWindow is the answer time per question.
	QuizWindow = 20 * time.Second
	// QuizRevealDelay is the pause showing the explanation before the
	// session advances.
	QuizRevealDelay = 3 * time.Second
	// quizCompletionBonus is added once when the last question is done.
	quizCompletionBonus = 15
	// quizCorrectBase is the flat score for a correct answer.
	quizCorrectBase = 10
)

// QuizQuestionScore scores one answered question: a flat base plus a
// rounded time bonus for correct answers, zero otherwise.
func QuizQuestionScore(correct bool, remainingSeconds int) int {
	if !correct {
		return 0
	}
	bonus := math.Round(10 * float64(remainingSeconds) / float64(QuizWindow/time.Second))
	return quizCorrectBase + int(bonus)
}

// QuizGame runs the knowledge quiz: a drawn sample of questions, one
// locked answer each, correctness and speed scored.
type QuizGame struct {
	questions  []QuizQuestion
	index      int
	answers    map[int]string // question index -> option id
	revealed   bool
	score      int
	countdown  Countdown
	ended      bool
	finalScore int
	rng        Rand
}

func NewQuizGame(sector string, rng Rand) *QuizGame {
	return &QuizGame{
		questions: DrawQuestions(sector, rng),
		answers:   make(map[int]string),
		rng:       rng,
	}
}

func (g *QuizGame) Start(now time.Time) {
	g.countdown = NewCountdown(QuizWindow, now)
}

func (g *QuizGame) Current() QuizQuestion { return g.questions[g.index] }
func (g *QuizGame) Index() int            { return g.index }
func (g *QuizGame) Total() int            { return len(g.questions) }
func (g *QuizGame) Score() int            { return g.score }
func (g *QuizGame) Terminal() bool        { return g.ended }
func (g *QuizGame) Countdown() Countdown  { return g.countdown }
func (g *QuizGame) Revealed() bool        { return g.revealed }
func (g *QuizGame) Answer(idx int) (string, bool) {
	id, ok := g.answers[idx]
	return id, ok
}

// Select locks in an answer for the current question. A second attempt
// on the same question is a no-op.
func (g *QuizGame) Select(optionID string, now time.Time) error {
	if g.ended {
		return ErrGameOver
	}
	if _, ok := g.answers[g.index]; ok {
		return ErrAlreadySelected
	}

	cur := g.questions[g.index]
	var opt *QuizOption
	for i := range cur.Options {
		if cur.Options[i].ID == optionID {
			opt = &cur.Options[i]
			break
		}
	}
	if opt == nil {
		return ErrUnknownOption
	}

	g.answers[g.index] = optionID
	g.revealed = true
	g.score += QuizQuestionScore(opt.Correct, g.countdown.RemainingSeconds(now))
	return nil
}

// Expire auto-picks a uniformly random option with no time left.
func (g *QuizGame) Expire() {
	if g.ended {
		return
	}
	if _, ok := g.answers[g.index]; ok {
		return
	}
	cur := g.questions[g.index]
	opt := cur.Options[g.rng.Intn(len(cur.Options))]
	g.answers[g.index] = opt.ID
	g.revealed = true
	g.score += QuizQuestionScore(opt.Correct, 0)
}

// Advance moves past a revealed question; on the last one it makes the
// game terminal and settles the final score.
func (g *QuizGame) Advance(now time.Time) (finished bool, err error) {
	if g.ended {
		return true, ErrGameOver
	}
	if !g.revealed {
		return false, ErrNotRevealed
	}
	if g.index < len(g.questions)-1 {
		g.index++
		g.revealed = false
		g.countdown = NewCountdown(QuizWindow, now)
		return false, nil
	}
	g.ended = true
	g.finalScore = g.score + quizCompletionBonus
	return true, nil
}

// FinalScore is valid once Terminal() is true.
func (g *QuizGame) FinalScore() int { return g.finalScore }
