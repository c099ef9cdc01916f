// SPDX-License-Identifier: MIT

// RNG helpers shared by the randomized generators and the Monte Carlo driver.
//
// Determinism:
//   - Same seed ⇒ identical draws on every platform (PCG from math/rand/v2).
//   - seed == 0 selects defaultRNGSeed, never a time-based source.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Use DeriveRNG to hand each worker an
//     independent stream.

package intervention

import "math/rand/v2"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic stream for seed.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewPCG(uint64(seed), deriveSeed(seed, ^uint64(0))))
}

// DeriveRNG returns stream number stream of the family rooted at seed.
// Distinct streams are decorrelated by a SplitMix64 mix; the same
// (seed, stream) pair always yields the same sequence.
func DeriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	child := deriveSeed(seed, stream)
	return rand.New(rand.NewPCG(child, deriveSeed(int64(child), stream)))
}

// deriveSeed is the SplitMix64 finalizer over (parent, stream).
func deriveSeed(parent int64, stream uint64) uint64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRNG(0)
	}
	return rng
}
