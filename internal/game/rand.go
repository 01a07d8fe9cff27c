package game

import (
	"math/rand"
	"time"
)

// Rand is the randomness a session needs: drawing pools, shuffling
// question order, and auto-picking an option on timeout. *rand.Rand
// satisfies it; tests supply a seeded source for determinism.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
