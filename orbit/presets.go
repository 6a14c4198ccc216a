// Package orbit - canonical rule presets.
package orbit

import "math/rand"

// even reports v ≡ 0 (mod 2).
func even(v int64) bool { return v%2 == 0 }

// odd reports v ≢ 0 (mod 2).
func odd(v int64) bool { return v%2 != 0 }

// halve is the shared decrease step v → v/2.
func halve(v int64, _ *rand.Rand) (int64, OpID) { return v / 2, OpHalve }

// Classic returns the multiply-by-3-add-1 rule: halt at 1, even values
// halve, odd values map to 3v+1. Defined for every n ≥ 1.
func Classic() Rule {
	return Rule{
		Name:           "3x_plus_1",
		MinN:           1,
		Halt:           func(v int64) bool { return v == 1 },
		ShouldIncrease: odd,
		ShouldDecrease: even,
		Increase: func(v int64, _ *rand.Rand) (int64, OpID) {
			return 3*v + 1, OpTripleAddOne
		},
		Decrease: halve,
	}
}

// PlusThree returns the multiply-by-3-add-3 rule: halt at 3, even values
// halve, odd values map to 3v+3. Defined for every n ≥ 3.
func PlusThree() Rule {
	return Rule{
		Name:           "3x_plus_3",
		MinN:           3,
		Halt:           func(v int64) bool { return v == 3 },
		ShouldIncrease: odd,
		ShouldDecrease: even,
		Increase: func(v int64, _ *rand.Rand) (int64, OpID) {
			return 3*v + 3, OpTripleAddThree
		},
		Decrease: halve,
	}
}

// Probabilistic returns a rule whose increase step takes 3v+1 with
// probability p and 3v+3 otherwise, drawn from the engine's explicitly
// seeded per-run stream — never global randomness — so two runs with the
// same seed reproduce identical OrbitInfo. Halts at v ≤ 3. p is clamped
// into [0, 1].
func Probabilistic(p float64) Rule {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return Rule{
		Name:           "probabilistic",
		MinN:           1,
		Halt:           func(v int64) bool { return v <= 3 },
		ShouldIncrease: odd,
		ShouldDecrease: even,
		Increase: func(v int64, rng *rand.Rand) (int64, OpID) {
			if rng.Float64() < p {
				return 3*v + 1, OpTripleAddOne
			}

			return 3*v + 3, OpTripleAddThree
		},
		Decrease:      halve,
		Probabilistic: true,
	}
}
