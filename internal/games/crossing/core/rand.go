package core

import "math/rand"

// Rand is the random source used for spawn trials, spawn placement and gem
// placement. *rand.Rand satisfies it; tests supply scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a math/rand source seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
