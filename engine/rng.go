package engine

import "golang.org/x/exp/rand"

// RNG is the random source consumed by placement and spawn logic
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG returns a PCG-backed generator, identical seeds yield identical rounds
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
