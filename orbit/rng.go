// Package orbit - RNG utilities for probabilistic rules.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical orbits across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Reproducible parallelism: one independent stream per starting integer,
//     derived from (base seed, n), so batch results do not depend on scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each engine run owns its stream;
//     streams are never shared across goroutines.
package orbit

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

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

// deriveSeed mixes a base seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Every starting integer gets an independent substream of the base seed,
//     so parallel batch evaluation reproduces sequential results exactly.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive stream identifiers.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small input changes produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func deriveSeed(base int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// runRNG builds the deterministic stream for one engine run: the base seed
// mixed with the starting integer as the stream identifier.
//
// Complexity: O(1).
func runRNG(seed, n int64) *rand.Rand {
	return rngFromSeed(deriveSeed(seed, uint64(n)))
}
