package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestChallengeOptionScore(t *testing.T) {
	tests := []struct {
		name      string
		impact    Impact
		remaining int
		want      int
	}{
		{
			// mean -3.33 -> -3, balance 5, time 10
			name:      "instant pick of mixed option",
			impact:    Impact{Development: 10, Budget: -15, Environment: -5},
			remaining: 30,
			want:      12,
		},
		{
			// mean 1.67 -> 2, no balance (env zero), time 10
			name:      "zero axis forfeits balance bonus",
			impact:    Impact{Development: 5, Budget: 0, Environment: 0},
			remaining: 30,
			want:      12,
		},
		{
			// mean -5, no balance, no time -> floored at 0
			name:      "negative raw floors at zero",
			impact:    Impact{Development: -10, Budget: -5, Environment: 0},
			remaining: 0,
			want:      0,
		},
		{
			// mean 5, balance 5, floor(10*17/30)=5
			name:      "partial time bonus",
			impact:    Impact{Development: 10, Budget: -5, Environment: 10},
			remaining: 17,
			want:      15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChallengeOptionScore(tt.impact, tt.remaining)
			if got != tt.want {
				t.Errorf("ChallengeOptionScore(%+v, %d) = %d, want %d", tt.impact, tt.remaining, got, tt.want)
			}
			if got < 0 {
				t.Errorf("per-challenge score %d below zero", got)
			}
		})
	}
}

func TestChallengesForConcatenatesBaseFirst(t *testing.T) {
	agri := ChallengesFor("Agriculture")
	if len(agri) != 3 {
		t.Fatalf("agriculture challenges = %d, want 3", len(agri))
	}
	if agri[0].ID != 1 || agri[1].ID != 2 {
		t.Error("base challenges must come first")
	}

	unknown := ChallengesFor("Sanitation")
	if len(unknown) != 3 {
		t.Fatalf("fallback challenges = %d, want 3", len(unknown))
	}
	if unknown[2].ID != 601 {
		t.Errorf("fallback sector challenge id = %d, want 601", unknown[2].ID)
	}
}

func TestChallengeGameTotalIsSumPlusBonus(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := NewChallengeGame("Agriculture", rng)
	now := time.Now()
	g.Start(now)

	picks := []int{3, 2, 3}
	wantPerChallenge := []int{
		ChallengeOptionScore(Impact{Development: 10, Budget: -15, Environment: -5}, 30),
		ChallengeOptionScore(Impact{Development: 5, Budget: 0, Environment: 0}, 30),
		ChallengeOptionScore(Impact{Development: 10, Budget: -5, Environment: 10}, 30),
	}

	sum := 0
	for i, pick := range picks {
		if err := g.Select(pick, now); err != nil {
			t.Fatalf("challenge %d: %v", i, err)
		}
		sum += wantPerChallenge[i]
		if g.Score() != sum {
			t.Errorf("challenge %d: running score = %d, want %d", i, g.Score(), sum)
		}
		finished, err := g.Advance(now)
		if err != nil {
			t.Fatal(err)
		}
		if finished != (i == len(picks)-1) {
			t.Errorf("challenge %d: finished = %v", i, finished)
		}
	}

	if !g.Terminal() {
		t.Fatal("game not terminal")
	}
	if got, want := g.FinalScore(), sum+20; got != want {
		t.Errorf("final score = %d, want sum+completion = %d", got, want)
	}
}

func TestChallengeSelectionLock(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := NewChallengeGame("Health", rng)
	now := time.Now()
	g.Start(now)

	if err := g.Select(1, now); err != nil {
		t.Fatal(err)
	}
	before := g.Score()

	if err := g.Select(2, now); !errors.Is(err, ErrAlreadySelected) {
		t.Fatalf("second select: err = %v, want ErrAlreadySelected", err)
	}
	if g.Score() != before {
		t.Errorf("score changed on repeated selection: %d -> %d", before, g.Score())
	}
	if id, _ := g.SelectedOption(); id != 1 {
		t.Errorf("selection overwritten to %d", id)
	}
}

func TestChallengeExpireAutoPicks(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := NewChallengeGame("Education", rng)
	now := time.Now()
	g.Start(now)

	g.Expire()
	if _, ok := g.SelectedOption(); !ok {
		t.Fatal("expiry did not auto-select an option")
	}
	if !g.Revealed() {
		t.Error("expiry did not reveal")
	}
	// Auto-pick at expiry must score like a manual pick with zero time left.
	id, _ := g.SelectedOption()
	var im Impact
	for _, opt := range g.Current().Options {
		if opt.ID == id {
			im = opt.Impact
		}
	}
	if got, want := g.Score(), ChallengeOptionScore(im, 0); got != want {
		t.Errorf("auto-pick score = %d, want %d", got, want)
	}

	// A second expiry on the same challenge is a no-op.
	before := g.Score()
	g.Expire()
	if g.Score() != before {
		t.Error("repeated expiry changed the score")
	}
}

func TestChallengeAdvanceRequiresSelection(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := NewChallengeGame("Water Supply", rng)
	now := time.Now()
	g.Start(now)

	if _, err := g.Advance(now); !errors.Is(err, ErrNotRevealed) {
		t.Fatalf("advance without selection: err = %v, want ErrNotRevealed", err)
	}
}
