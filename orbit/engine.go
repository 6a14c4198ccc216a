// Package orbit - the orbit engine: walks one starting integer through a
// Rule to termination and assembles an OrbitInfo.
package orbit

import (
	"fmt"
	"math/rand"
)

// walker encapsulates mutable state for one engine run.
type walker struct {
	rule Rule
	opts Options
	rng  *rand.Rand

	n          int64
	cur        int64
	step       int
	firstDrop  int
	counts     map[OpID]int
	orbit      []int64
	firstOrbit []int64
	maxKept    int64 // high-water mark for RecordMaxima
}

// Run walks n through r until r.Halt is true, applying any number of
// functional Options, and returns the assembled OrbitInfo.
//
// Determinism: for a non-probabilistic rule the result is a pure function
// of (r, n, options) — repeated calls yield field-for-field identical
// OrbitInfo. For a probabilistic rule the walk consumes the stream derived
// from (seed, n); identical seeds yield identical results, and independent
// starting integers get independent streams, so ranges stay reproducible
// under parallel evaluation regardless of scheduling.
//
// Errors:
//   - ErrRuleConfig       — r fails Validate.
//   - ErrOptionViolation  — an invalid Option was supplied.
//   - ErrStartBelowMin    — n < r.MinN.
//   - AmbiguityError      — branch predicates not exactly-one-true (unwraps
//     to ErrRuleAmbiguity).
//   - DivergenceError     — step bound exceeded, partial state attached
//     (unwraps to ErrDivergence).
//   - ErrValueRange       — a transform left the positive int64 range.
//   - ErrDroppingTime     — table-backed derivation saw an unknown drop.
//
// Complexity: O(total steps) time; memory O(1) plus retained orbit values.
func Run(r Rule, n int64, opts ...Option) (*OrbitInfo, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < r.MinN {
		return nil, fmt.Errorf("%w: rule %q requires n ≥ %d, got %d", ErrStartBelowMin, r.Name, r.MinN, n)
	}

	w := &walker{
		rule:   r,
		opts:   o,
		n:      n,
		cur:    n,
		counts: make(map[OpID]int),
	}
	if r.Probabilistic {
		w.rng = runRNG(o.Seed, n)
	}
	if w.keep(0, n) {
		w.orbit = append(w.orbit, n)
	}

	if err := w.walk(); err != nil {
		return nil, err
	}

	return w.finish()
}

// walk advances the value until halt, divergence, or a rule failure.
func (w *walker) walk() error {
	for !w.rule.Halt(w.cur) {
		if w.step >= w.opts.MaxSteps {
			return &DivergenceError{
				Rule:    w.rule.Name,
				N:       w.n,
				Bound:   w.opts.MaxSteps,
				Partial: w.snapshot(),
			}
		}
		if err := w.advance(); err != nil {
			return err
		}
	}

	return nil
}

// advance applies exactly one transition: branch selection, transform,
// bookkeeping, first-drop detection, retention, hook.
func (w *walker) advance() error {
	inc := w.rule.ShouldIncrease(w.cur)
	dec := w.rule.ShouldDecrease(w.cur)
	if inc == dec {
		return &AmbiguityError{Rule: w.rule.Name, Value: w.cur, BothTrue: inc}
	}

	var (
		next int64
		op   OpID
	)
	if inc {
		next, op = w.rule.Increase(w.cur, w.rng)
	} else {
		next, op = w.rule.Decrease(w.cur, w.rng)
	}
	w.step++
	w.counts[op]++

	if next < 1 {
		return fmt.Errorf("%w: rule %q mapped %d to %d at step %d",
			ErrValueRange, w.rule.Name, w.cur, next, w.step)
	}

	if w.firstDrop == 0 && next < w.n {
		w.firstDrop = w.step
		if len(w.orbit) > 0 {
			// Retained prefix strictly before the drop.
			w.firstOrbit = append([]int64(nil), w.orbit...)
		}
	}
	if w.keep(w.step, next) {
		w.orbit = append(w.orbit, next)
	}
	w.opts.OnStep(w.step, next, op)
	w.cur = next

	return nil
}

// keep applies the run's retention policy to the value produced at step.
func (w *walker) keep(step int, v int64) bool {
	if w.opts.record != nil {
		return w.opts.record(step, v)
	}
	switch w.rule.Record {
	case RecordAll:
		return true
	case RecordMaxima:
		if v > w.maxKept {
			w.maxKept = v
			return true
		}
		return false
	default:
		return false
	}
}

// finish derives the modular-group coordinates and seals the OrbitInfo.
func (w *walker) finish() (*OrbitInfo, error) {
	mod, idx, err := w.opts.Derivation.Derive(w.n, w.firstDrop, w.cur)
	if err != nil {
		return nil, fmt.Errorf("orbit: rule %q, n=%d: %w", w.rule.Name, w.n, err)
	}

	info := w.snapshot()
	info.StopMod = mod
	info.StopIndex = idx

	return info, nil
}

// snapshot assembles the statistics accumulated so far; also used to attach
// partial state to DivergenceError.
func (w *walker) snapshot() *OrbitInfo {
	return &OrbitInfo{
		N:          w.n,
		FirstDrop:  w.firstDrop,
		TotalSteps: w.step,
		OpCounts:   w.counts,
		Orbit:      w.orbit,
		FirstOrbit: w.firstOrbit,
	}
}
