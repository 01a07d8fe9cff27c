package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func item(id string) ResourceItem {
	return ResourceItem{ID: id, Name: id}
}

func TestAllocationScore(t *testing.T) {
	tests := []struct {
		name        string
		sector      string
		prioritized []ResourceItem
		want        int
	}{
		{
			name:        "empty list scores zero",
			sector:      "Agriculture",
			prioritized: nil,
			want:        0,
		},
		{
			name:   "base only, capped at 50",
			sector: "Sanitation",
			prioritized: []ResourceItem{
				item("tech"), item("materials"), item("time"),
				item("workforce"), item("innovation"), item("policy"),
			},
			want: 50,
		},
		{
			name:        "single neutral item",
			sector:      "Sanitation",
			prioritized: []ResourceItem{item("tech")},
			want:        10,
		},
		{
			name:   "agriculture water top, seeds second",
			sector: "Agriculture",
			prioritized: []ResourceItem{
				item("water"), item("seeds"), item("community"), item("budget"),
			},
			// base 40 + water 20 + seeds 15 + community 10 + budget 5
			want: 90,
		},
		{
			name:   "agriculture water third tier",
			sector: "Agriculture",
			prioritized: []ResourceItem{
				item("tech"), item("materials"), item("water"),
			},
			// base 30 + water 10
			want: 40,
		},
		{
			name:   "education teachers top",
			sector: "Education",
			prioritized: []ResourceItem{
				item("teachers"), item("books"),
			},
			// base 20 + teachers 20
			want: 40,
		},
		{
			name:   "health doctors second",
			sector: "Health",
			prioritized: []ResourceItem{
				item("medicines"), item("doctors"),
			},
			// base 20 + doctors 15
			want: 35,
		},
		{
			name:   "budget first forfeits anti-greed bonus",
			sector: "Sanitation",
			prioritized: []ResourceItem{
				item("budget"), item("community"),
			},
			// base 20 + community 10, no budget bonus at rank 0
			want: 30,
		},
		{
			name:   "community beyond rank 3 earns nothing",
			sector: "Sanitation",
			prioritized: []ResourceItem{
				item("tech"), item("materials"), item("time"), item("community"),
			},
			want: 40,
		},
		{
			name:   "full agriculture order clamps at 100",
			sector: "Agriculture",
			prioritized: []ResourceItem{
				item("water"), item("seeds"), item("community"),
				item("budget"), item("tech"), item("materials"),
			},
			// base 50 + 20 + 15 + 10 + 5 = 100
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocationScore(tt.sector, tt.prioritized)
			if got != tt.want {
				t.Errorf("AllocationScore() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0,100]", got)
			}
		})
	}
}

func TestDrawResourcesCapsAtSix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, sector := range []string{"Agriculture", "Education", "Health", "Rural Roads", "Sanitation"} {
		items := DrawResources(sector, rng)
		if len(items) != 6 {
			t.Errorf("%s: drew %d items, want 6", sector, len(items))
		}
		seen := make(map[string]bool)
		for _, it := range items {
			if seen[it.ID] {
				t.Errorf("%s: duplicate item %q", sector, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestAllocationGameLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewAllocationGame("Agriculture", rng)
	now := time.Now()

	if err := g.Prioritize("anything"); !errors.Is(err, ErrNotSorting) {
		t.Fatalf("Prioritize before Start: err = %v, want ErrNotSorting", err)
	}

	if err := g.Start(now); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(now); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start: err = %v, want ErrAlreadyStarted", err)
	}
	if got := g.Countdown().RemainingSeconds(now); got != 60 {
		t.Errorf("window = %ds, want 60", got)
	}

	first := g.Available()[0].ID
	second := g.Available()[1].ID
	if err := g.Prioritize(first); err != nil {
		t.Fatal(err)
	}
	if err := g.Prioritize(second); err != nil {
		t.Fatal(err)
	}
	if err := g.Prioritize("nope"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("unknown item: err = %v, want ErrUnknownItem", err)
	}

	if err := g.Reorder(second, 0); err != nil {
		t.Fatal(err)
	}
	if g.Prioritized()[0].ID != second {
		t.Errorf("reorder: top = %q, want %q", g.Prioritized()[0].ID, second)
	}
	if err := g.Reorder(first, 5); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("out-of-range reorder: err = %v, want ErrBadPosition", err)
	}

	score := g.Finish()
	if !g.Terminal() {
		t.Error("not terminal after Finish")
	}
	if again := g.Finish(); again != score {
		t.Errorf("second Finish = %d, want %d", again, score)
	}
	if err := g.Prioritize(first); !errors.Is(err, ErrNotSorting) {
		t.Fatalf("Prioritize after Finish: err = %v, want ErrNotSorting", err)
	}
}

func TestAllocationGameEmptyTimeout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewAllocationGame("Health", rng)
	if err := g.Start(time.Now()); err != nil {
		t.Fatal(err)
	}
	if score := g.Finish(); score != 0 {
		t.Errorf("empty prioritized list scored %d, want 0", score)
	}
}
