// Package kopt - RNG utilities and the candidate sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical move sequence.
//   - Encapsulation: no time-based or global sources anywhere in the engine.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across concurrent runs.
//   - Use DeriveRand to create independent streams for parallel runs.
package kopt

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRand creates an independent stream from base and a stream id.
// base.Int63() is consumed once, so repeated derivations with the same id
// still yield distinct children. A nil base uses DefaultSeed as the parent.
//
// Call during setup, not in hot loops.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveSeed mixes parent and stream with the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// randIndex draws a uniform index in [0, n). n must be positive.
func randIndex(n int, rng *rand.Rand) int {
	if n <= 0 {
		panic(panicEmptyRange)
	}

	return rng.Intn(n)
}
