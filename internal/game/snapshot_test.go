package game

import (
	"math/rand"
	"testing"
)

func itemIDs(items []ResourceItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestSnapshotDetachedFromAllocationState(t *testing.T) {
	s := NewSectorSession("snap1", 1, 1, testSector,
		WithRand(rand.New(rand.NewSource(7))))
	defer s.Close()

	if _, err := s.StartAllocation(); err != nil {
		t.Fatal(err)
	}

	snap := s.State()
	if snap.Allocation == nil || len(snap.Allocation.Available) < 2 {
		t.Fatal("expected available items in snapshot")
	}
	before := itemIDs(snap.Allocation.Available)

	// Mutating the game after the snapshot was taken must not change
	// the already-returned view.
	if err := s.AllocationPrioritize(before[0]); err != nil {
		t.Fatal(err)
	}

	after := itemIDs(snap.Allocation.Available)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("snapshot changed after prioritize: %v -> %v", before, after)
		}
	}

	// A fresh snapshot reflects the move.
	fresh := s.State()
	if len(fresh.Allocation.Available) != len(before)-1 {
		t.Errorf("expected %d available after prioritize, got %d",
			len(before)-1, len(fresh.Allocation.Available))
	}
	if len(fresh.Allocation.Prioritized) != 1 || fresh.Allocation.Prioritized[0].ID != before[0] {
		t.Errorf("expected %q prioritized, got %v", before[0], fresh.Allocation.Prioritized)
	}
}
