// Package orbit - helper sequences for dropping-time derivations.
//
// Two OEIS sequences parameterize the modular grouping of first drops
// under the classic 3x+1 rule:
//
//   - A122437 — allowable dropping times: the step counts at which an orbit
//     can first fall below its start, a(k) = floor(1 + k + k·log₂3).
//   - A100982 — admissible residue counts: how many residue classes share
//     each allowable dropping time.
//
// Counts grow superexponentially, so the recurrence runs on math/big.
package orbit

import (
	"math"
	"math/big"
)

// admissibleLimit bounds the recurrence table; enough for every dropping
// time reachable with int64 starting integers.
const admissibleLimit = 1000

// log2of3 = log₂3, the growth-rate constant of the 3x+1 increase step.
var log2of3 = math.Log(3) / math.Log(2)

// Admissible returns the first terms of OEIS A100982: the number of
// admissible residue classes for each allowable dropping time, in
// increasing dropping-time order (paired index-wise with
// AllowableDroppingTimes).
//
// Complexity: O(terms²·M(big)) time, O(terms) big integers retained.
func Admissible(terms int) []*big.Int {
	if terms <= 0 {
		return nil
	}

	x := make([]*big.Int, admissibleLimit+2)
	y := make([]*big.Int, admissibleLimit+2)
	for i := range x {
		x[i] = new(big.Int)
		y[i] = new(big.Int)
	}
	x[1].SetInt64(1)

	ln3, ln2 := math.Log(3), math.Log(2)
	results := make([]*big.Int, 0, terms)
	sum := new(big.Int)

	for b := 2; len(results) < terms && b <= admissibleLimit; b++ {
		// Pascal-style accumulation: y[c] = x[c] + x[c-1].
		for c := 2; c <= b+1; c++ {
			y[c].Add(x[c], x[c-1])
		}
		for c := 2; c <= b+1; c++ {
			x[c].Set(y[c])
		}
		// Harvest every column whose 3-power can no longer outrun the 2-power.
		sum.SetInt64(0)
		for c := 1; c <= b+1; c++ {
			if float64(b+1-c)*ln3 < float64(b)*ln2 {
				sum.Add(sum, x[c])
				x[c].SetInt64(0)
			}
		}
		if sum.Sign() != 0 {
			results = append(results, new(big.Int).Set(sum))
		}
	}

	return results
}

// AllowableDroppingTimes returns the first terms of OEIS A122437 from k=1:
// the step counts at which a 3x+1 orbit can first drop below its start
// (beyond the trivial dropping time 1 of even integers).
//
// Complexity: O(terms).
func AllowableDroppingTimes(terms int) []int {
	if terms <= 0 {
		return nil
	}

	out := make([]int, terms)
	for k := 1; k <= terms; k++ {
		out[k-1] = int(math.Floor(1 + float64(k) + float64(k)*log2of3))
	}

	return out
}

// clampInt64 collapses counts beyond the native range to MaxInt64; group
// sizes that large never wrap a wheel or split a residue class in practice.
func clampInt64(v *big.Int) int64 {
	if v.IsInt64() {
		return v.Int64()
	}

	return math.MaxInt64
}
