// Package orbit generates Collatz-like orbits under pluggable rule sets,
// recording stopping times, first drops, per-operation counts, and
// modular-group coordinates for each starting integer.
//
// What
//
//   - Rule: an immutable bundle of halting/branching predicates and
//     increase/decrease transforms, with a retention policy for visited
//     values. Presets: Classic (3x+1), PlusThree (3x+3), Probabilistic.
//   - Run: walks one starting integer to termination and returns OrbitInfo:
//   - TotalSteps: transitions until the halting predicate held
//   - FirstDrop: 1-based step of the first value strictly below the start
//   - OpCounts: applications per operation tag (sums to TotalSteps)
//   - StopMod / StopIndex: modular-group coordinates from a Derivation
//   - Orbit / FirstOrbit: values retained by the record policy
//   - Derivations: pure ResidueDerivation (parallel-safe default) and the
//     stateful WheelDerivation mirroring the admissible-residue wheel.
//   - Helper sequences: OEIS A100982 admissible counts and A122437
//     allowable dropping times.
//
// Why
//
//   - Generalize the hard-coded 3x+1 iteration into a rule abstraction:
//     new arithmetic variants are data, not forks of the loop.
//   - Derived quantities (first drop, stop modulus, stop index) serve
//     directly as 3D coordinates for the viz package.
//
// Determinism
//
//	For a non-probabilistic rule, Run is a pure function of (rule, n,
//	options). Probabilistic rules consume an explicitly seeded stream
//	derived from (seed, n) — never ambient randomness — so identical seeds
//	reproduce identical orbits even under parallel batch evaluation.
//
// Divergence
//
//	Halting is not guaranteed for arbitrary rules. Every run carries a step
//	bound (DefaultMaxSteps unless overridden); exceeding it aborts with
//	DivergenceError carrying the partial statistics, so a misconfigured
//	rule can never spin forever.
//
// Complexity (S = total steps, R = retained values)
//
//   - Time:   O(S) per run
//   - Memory: O(R) — O(1) with the default RecordNone policy
//
// Usage
//
//	// Classic rule, no options:
//	info, err := orbit.Run(orbit.Classic(), 27)
//	if err != nil {
//	    // handle ErrRuleConfig, ErrStartBelowMin, ErrRuleAmbiguity,
//	    // ErrDivergence, ErrValueRange, or ErrOptionViolation
//	}
//	fmt.Println(info.TotalSteps) // 111
//
//	// Probabilistic rule with an explicit seed and a tighter bound:
//	info, err = orbit.Run(
//	    orbit.Probabilistic(0.5), 19,
//	    orbit.WithSeed(42),
//	    orbit.WithMaxSteps(10_000),
//	)
package orbit
