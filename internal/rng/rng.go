// Package rng provides the random source used by the scheduling engine.
// Every random decision (re-insertion gaps, shuffles, pool draws) goes
// through a Source so tests can pin the sequence with a seed.
package rng

import "math/rand/v2"

// Source is a uniform integer and real generator.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int

	// Float64 returns a uniform real in [0.0, 1.0).
	Float64() float64
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a Source seeded from the runtime's entropy.
func NewRandom() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// FromSeed returns New(seed) for a non-zero seed and NewRandom otherwise.
func FromSeed(seed uint64) Source {
	if seed == 0 {
		return NewRandom()
	}
	return New(seed)
}

// IntRange returns a uniform integer in [lo, hi] inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
