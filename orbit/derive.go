// Package orbit - stop_mod/stop_index derivations.
//
// A Derivation turns (n, first drop, halting value) into the modular-group
// coordinates carried by OrbitInfo. The contract is deliberately loose:
// orbits sharing a first drop must land in the same group, and StopIndex
// must order group members consistently and reproducibly. Two derivations
// are provided:
//
//   - ResidueDerivation — pure, closed-form, safe under parallel evaluation.
//   - WheelDerivation   — stateful wheel counters matching the classic
//     admissible-residue construction; ascending-n sequential use only.
package orbit

import "fmt"

// DefaultDerivationTerms sizes the dropping-time tables of the built-in
// derivations; covers every dropping time reachable from int64 starts.
const DefaultDerivationTerms = 200

// Derivation computes the modular-group coordinates for a halted orbit.
//
// Derive receives the starting integer, the 1-based first-drop step
// (0 when the orbit never dropped below n), and the halting value.
// Pure derivations are deterministic functions of their arguments;
// impure ones may keep encounter-order state and must then be driven
// with ascending n from a single goroutine.
type Derivation interface {
	Derive(n int64, firstDrop int, halted int64) (stopMod, stopIndex int64, err error)

	// Pure reports whether Derive is a pure function of its arguments.
	// Only pure derivations are usable under parallel batch evaluation.
	Pure() bool
}

// defaultDerivation backs DefaultOptions; immutable after package init.
var defaultDerivation Derivation = NewResidueDerivation(DefaultDerivationTerms)

// ResidueDerivation is the default pure derivation. The group size for an
// allowable dropping time is its admissible residue count (A100982);
// unknown dropping times form singleton groups. Coordinates:
//
//	StopMod   = 1 + n mod size
//	StopIndex = 1 + n div size
//
// Orbits sharing a first drop share a size, hence a group family; the
// quotient orders members by ascending n, so results are identical under
// sequential and parallel evaluation.
type ResidueDerivation struct {
	size map[int]int64
}

// NewResidueDerivation precomputes group sizes for the first terms of the
// allowable dropping-time sequence.
func NewResidueDerivation(terms int) *ResidueDerivation {
	return &ResidueDerivation{size: groupSizes(terms)}
}

// Derive implements Derivation. Never fails.
func (d *ResidueDerivation) Derive(n int64, firstDrop int, _ int64) (int64, int64, error) {
	if firstDrop == 0 {
		// Halted without dropping: no group membership.
		return 0, 0, nil
	}
	size := d.size[firstDrop]
	if size < 1 {
		size = 1
	}

	return 1 + n%size, 1 + n/size, nil
}

// Pure implements Derivation.
func (d *ResidueDerivation) Pure() bool { return true }

// WheelDerivation reproduces the wheel construction of the classic 3x+1
// analysis: a counter per dropping time cycles through 1..magnitude
// (magnitude = admissible residue count), and an occurrence counter per
// (drop, mod) pair yields the index. Coordinates therefore depend on the
// order in which orbits are derived: drive it with ascending n, one
// goroutine, one batch. Unknown dropping times fail with ErrDroppingTime.
type WheelDerivation struct {
	lookup map[int]int64
	wheel  map[int]int64
	index  map[wheelKey]int64
}

// wheelKey addresses one (dropping time, stop mod) occurrence counter.
type wheelKey struct {
	drop int
	mod  int64
}

// NewWheelDerivation precomputes magnitudes for the first terms of the
// allowable dropping-time sequence and resets all counters.
func NewWheelDerivation(terms int) *WheelDerivation {
	w := &WheelDerivation{
		lookup: groupSizes(terms),
		wheel:  make(map[int]int64, terms+1),
		index:  make(map[wheelKey]int64, terms+1),
	}
	for drop := range w.lookup {
		w.wheel[drop] = 1
	}

	return w
}

// Derive implements Derivation: advance the wheel for the dropping time,
// then count the occurrence within the (drop, mod) slot.
func (w *WheelDerivation) Derive(_ int64, firstDrop int, _ int64) (int64, int64, error) {
	if firstDrop == 0 {
		return 0, 0, nil
	}
	magnitude, ok := w.lookup[firstDrop]
	if !ok {
		return 0, 0, fmt.Errorf("%w: first drop %d", ErrDroppingTime, firstDrop)
	}
	if w.wheel[firstDrop] > magnitude {
		w.wheel[firstDrop] = 1
	}
	mod := w.wheel[firstDrop]
	w.wheel[firstDrop]++

	key := wheelKey{drop: firstDrop, mod: mod}
	w.index[key]++

	return mod, w.index[key], nil
}

// Pure implements Derivation: the wheel keeps encounter-order state.
func (w *WheelDerivation) Pure() bool { return false }

// groupSizes maps each allowable dropping time to its admissible residue
// count, plus the trivial dropping time 1 (even starts) with size 1.
func groupSizes(terms int) map[int]int64 {
	counts := Admissible(terms)
	drops := AllowableDroppingTimes(len(counts))

	sizes := make(map[int]int64, len(counts)+1)
	sizes[1] = 1
	for i, drop := range drops {
		sizes[drop] = clampInt64(counts[i])
	}

	return sizes
}
