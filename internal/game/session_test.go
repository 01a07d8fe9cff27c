package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var testSector = Sector{ID: 1, Name: "Agriculture", Budget: 250000}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		start SectorScore
		score int
		want  SectorScore
	}{
		{
			name:  "high score upgrades to excellent",
			start: ZeroScore(),
			score: 85,
			want:  SectorScore{DevelopmentScore: 17, BudgetEfficiency: 10, EnvironmentalImpact: EnvExcellent},
		},
		{
			name:  "mid score upgrades to good",
			start: ZeroScore(),
			score: 65,
			want:  SectorScore{DevelopmentScore: 13, BudgetEfficiency: 5, EnvironmentalImpact: EnvGood},
		},
		{
			name:  "low score leaves impact unchanged",
			start: ZeroScore(),
			score: 30,
			want:  SectorScore{DevelopmentScore: 6, BudgetEfficiency: 5, EnvironmentalImpact: EnvNeutral},
		},
		{
			name:  "impact never downgrades",
			start: SectorScore{DevelopmentScore: 17, BudgetEfficiency: 10, EnvironmentalImpact: EnvExcellent},
			score: 65,
			want:  SectorScore{DevelopmentScore: 30, BudgetEfficiency: 15, EnvironmentalImpact: EnvExcellent},
		},
		{
			name:  "boundary 70 earns the small efficiency step",
			start: ZeroScore(),
			score: 70,
			want:  SectorScore{DevelopmentScore: 14, BudgetEfficiency: 5, EnvironmentalImpact: EnvGood},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.start, tt.score); got != tt.want {
				t.Errorf("Fold(%+v, %d) = %+v, want %+v", tt.start, tt.score, got, tt.want)
			}
		})
	}
}

func TestRecomputeOverwritesReplayedKind(t *testing.T) {
	scores := map[Kind]int{KindQuiz: 85}
	first := Recompute(scores)

	// Replaying the quiz with a worse score replaces the contribution
	// rather than stacking a second fold.
	scores[KindQuiz] = 40
	second := Recompute(scores)

	if second.DevelopmentScore != 8 {
		t.Errorf("development after replay = %d, want 8", second.DevelopmentScore)
	}
	if second.DevelopmentScore >= first.DevelopmentScore {
		t.Errorf("replay did not overwrite: %d -> %d", first.DevelopmentScore, second.DevelopmentScore)
	}
	if second.BudgetEfficiency != 5 {
		t.Errorf("budget efficiency after replay = %d, want 5", second.BudgetEfficiency)
	}
}

func TestSectorSessionQuizFold(t *testing.T) {
	now := time.Now()
	s := NewSectorSession("s1", 1, 1, testSector,
		WithClock(fixedClock(now)),
		WithRand(rand.New(rand.NewSource(21))))
	defer s.Close()

	q, err := s.StartQuiz()
	if err != nil {
		t.Fatal(err)
	}

	total := q.Total()
	for i := 0; i < total; i++ {
		if err := s.QuizSelect(correctOption(q.Current())); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		// Drive the reveal-delay advance directly instead of waiting.
		s.mu.Lock()
		s.advanceQuiz()
		s.mu.Unlock()
	}

	want := Fold(ZeroScore(), total*20+15)
	if got := s.Score(); got != want {
		t.Errorf("session score = %+v, want %+v", got, want)
	}
	if kinds := s.Completed(); len(kinds) != 1 || kinds[0] != KindQuiz {
		t.Errorf("completed = %v, want [quiz]", kinds)
	}
}

func TestSectorSessionAllocationFold(t *testing.T) {
	now := time.Now()
	s := NewSectorSession("s2", 1, 1, testSector,
		WithClock(fixedClock(now)),
		WithRand(rand.New(rand.NewSource(33))))
	defer s.Close()

	g, err := s.StartAllocation()
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range append([]ResourceItem(nil), g.Available()...) {
		if err := s.AllocationPrioritize(it.ID); err != nil {
			t.Fatal(err)
		}
	}

	score, err := s.AllocationFinish()
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Score(); got != Fold(ZeroScore(), score) {
		t.Errorf("session score = %+v, want fold of %d", got, score)
	}

	// Mini-game is done; further moves must fail.
	if err := s.AllocationPrioritize("water"); !errors.Is(err, ErrNotSorting) && !errors.Is(err, ErrNoActiveGame) {
		t.Errorf("move after finish: err = %v", err)
	}
}

func TestSectorSessionSwitchDiscardsWithoutScoring(t *testing.T) {
	s := NewSectorSession("s3", 1, 1, testSector,
		WithRand(rand.New(rand.NewSource(2))))
	defer s.Close()

	if _, err := s.StartChallenge(); err != nil {
		t.Fatal(err)
	}
	if err := s.ChallengeSelect(1); err != nil {
		t.Fatal(err)
	}

	// Opening another mini-game abandons the challenge mid-session:
	// no partial-credit fold.
	if _, err := s.StartQuiz(); err != nil {
		t.Fatal(err)
	}
	if got := s.Score(); got != ZeroScore() {
		t.Errorf("abandoned game folded a score: %+v", got)
	}
	if len(s.Completed()) != 0 {
		t.Errorf("abandoned game marked completed: %v", s.Completed())
	}

	// The challenge's reveal timer must not fire into the quiz.
	time.Sleep(ChallengeRevealDelay + 100*time.Millisecond)
	if got := s.Score(); got != ZeroScore() {
		t.Errorf("stale challenge timer mutated score: %+v", got)
	}
}

func TestSectorSessionFinishOnce(t *testing.T) {
	s := NewSectorSession("s4", 1, 1, testSector,
		WithRand(rand.New(rand.NewSource(14))))

	if _, err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Finish(); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("second finish: err = %v, want ErrSessionFinished", err)
	}
	if _, err := s.StartQuiz(); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("start after finish: err = %v, want ErrSessionFinished", err)
	}
}

func TestSectorSessionCloseAbandons(t *testing.T) {
	s := NewSectorSession("s5", 1, 1, testSector,
		WithRand(rand.New(rand.NewSource(18))))

	if _, err := s.StartChallenge(); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if err := s.ChallengeSelect(1); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("select after close: err = %v, want ErrSessionClosed", err)
	}
	if _, err := s.Finish(); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("finish after close: err = %v, want ErrSessionClosed", err)
	}
}

func TestSectorSessionEvents(t *testing.T) {
	events := make(chan Event, 8)
	s := NewSectorSession("s6", 1, 1, testSector,
		WithRand(rand.New(rand.NewSource(25))),
		WithNotify(func(ev Event) { events <- ev }))
	defer s.Close()

	if _, err := s.StartAllocation(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AllocationFinish(); err != nil {
		t.Fatal(err)
	}

	want := []string{"minigame_started", "minigame_completed"}
	for _, typ := range want {
		select {
		case ev := <-events:
			if ev.Type != typ {
				t.Errorf("event = %q, want %q", ev.Type, typ)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q event", typ)
		}
	}
}
