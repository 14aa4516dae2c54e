// Package heightfield - RNG utilities for deterministic synthesis.
//
// This file centralizes random generation for blob placement and noise
// seeding.
//
// Goals:
//   - Determinism: same seed ⇒ identical fields across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveSeed to fork independent streams (noise generators, workers).
package heightfield

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Stream identifiers for substreams forked off the base seed. Keeping
// them distinct guarantees blob placement, coast distortion and relief
// never consume from each other's sequences.
const (
	streamBlobs   uint64 = 1
	streamDistort uint64 = 2
	streamRelief  uint64 = 3
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche, eliminating correlation
// between substreams forked from the same parent.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
