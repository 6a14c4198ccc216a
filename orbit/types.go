// Package orbit defines rule sets, sentinel errors, and result types
// for Collatz-like orbit generation.
package orbit

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for rule configuration and orbit execution.
var (
	// ErrRuleConfig indicates a structurally invalid Rule (empty name,
	// bad MinN, nil predicate/transform, or statically detectable
	// branch-predicate overlap).
	ErrRuleConfig = errors.New("orbit: invalid rule configuration")

	// ErrRuleAmbiguity indicates that ShouldIncrease/ShouldDecrease were
	// not exactly-one-true for a value reached at run time.
	ErrRuleAmbiguity = errors.New("orbit: increase/decrease predicates ambiguous")

	// ErrDivergence indicates an orbit exceeded its step bound before halting.
	ErrDivergence = errors.New("orbit: step bound exceeded before halt")

	// ErrStartBelowMin indicates a starting integer below the rule's MinN.
	ErrStartBelowMin = errors.New("orbit: starting integer below rule MinN")

	// ErrValueRange indicates a transform escaped the positive int64 range
	// (typically an overflow on the increase branch).
	ErrValueRange = errors.New("orbit: value escaped positive range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orbit: invalid option supplied")

	// ErrDroppingTime is returned by table-backed derivations when a first
	// drop falls outside the precomputed allowable dropping times.
	ErrDroppingTime = errors.New("orbit: dropping time outside derivation table")
)

// OpID tags the kind of step a transform applied (e.g. a multiply-add
// variant or a divide variant). Opaque to the engine; used only as a
// key in OrbitInfo.OpCounts.
type OpID string

// Operation tags used by the preset rules.
const (
	// OpHalve is the v/2 decrease step shared by all presets.
	OpHalve OpID = "n/2"
	// OpTripleAddOne is the 3v+1 increase step.
	OpTripleAddOne OpID = "3n+1"
	// OpTripleAddThree is the 3v+3 increase step.
	OpTripleAddThree OpID = "3n+3"
)

// Predicate reports a boolean property of an orbit value.
// Predicates must be deterministic functions of their input only.
type Predicate func(v int64) bool

// Transform maps an orbit value to its successor and the operation tag
// that produced it. Deterministic transforms ignore rng; probabilistic
// transforms draw from it and must never touch ambient randomness.
// The engine supplies a per-run rng stream for rules marked Probabilistic.
type Transform func(v int64, rng *rand.Rand) (next int64, op OpID)

// RecordMode selects which visited values are retained in OrbitInfo.Orbit.
//
//   - RecordNone   — retain nothing (default; bounds memory for long orbits).
//   - RecordAll    — retain the start value and every successor.
//   - RecordMaxima — retain only values exceeding every previously retained
//     value (running maxima; the boundary-value strategy).
type RecordMode int

const (
	// RecordNone retains no visited values.
	RecordNone RecordMode = iota
	// RecordAll retains the full orbit including the start value.
	RecordAll
	// RecordMaxima retains the start value and each new running maximum.
	RecordMaxima
)

// Rule is an immutable description of one orbit-generation rule:
// halting and branching predicates plus increase/decrease transforms.
// Construct once, share read-only; the engine never mutates it.
//
// ShouldIncrease and ShouldDecrease must be mutually exclusive and jointly
// exhaustive over every non-halting value the rule can reach. Violations
// detected by Validate surface as ErrRuleConfig; violations reached only
// at run time surface as AmbiguityError.
type Rule struct {
	// Name identifies the rule; used as a label and default color key.
	Name string

	// MinN is the smallest starting integer for which the rule is defined.
	MinN int64

	// Halt terminates the walk when true.
	Halt Predicate

	// ShouldIncrease selects the Increase transform.
	ShouldIncrease Predicate

	// ShouldDecrease selects the Decrease transform.
	ShouldDecrease Predicate

	// Increase grows the value (e.g. a multiply-add variant).
	Increase Transform

	// Decrease shrinks the value (e.g. a divide variant).
	Decrease Transform

	// Record selects the retention policy for OrbitInfo.Orbit.
	Record RecordMode

	// Probabilistic marks rules whose transforms consume the rng stream.
	// The engine derives one deterministic stream per (seed, n) pair.
	Probabilistic bool
}

// exclusivityProbeWindow bounds the best-effort static check in Validate:
// the first values at and above MinN are probed for branch exclusivity.
const exclusivityProbeWindow = 64

// Validate performs structural checks on the rule. It returns an error
// unwrapping to ErrRuleConfig when the rule cannot be run at all, including
// a bounded probe for branch predicates that are non-exclusive or
// non-exhaustive on a reachable value class. Most exclusivity violations
// are only detectable lazily; those surface from Run as AmbiguityError.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty rule name", ErrRuleConfig)
	}
	if r.MinN < 1 {
		return fmt.Errorf("%w: rule %q MinN=%d, want ≥ 1", ErrRuleConfig, r.Name, r.MinN)
	}
	if r.Halt == nil || r.ShouldIncrease == nil || r.ShouldDecrease == nil {
		return fmt.Errorf("%w: rule %q has a nil predicate", ErrRuleConfig, r.Name)
	}
	if r.Increase == nil || r.Decrease == nil {
		return fmt.Errorf("%w: rule %q has a nil transform", ErrRuleConfig, r.Name)
	}
	if r.Record < RecordNone || r.Record > RecordMaxima {
		return fmt.Errorf("%w: rule %q has unknown record mode %d", ErrRuleConfig, r.Name, r.Record)
	}
	// Best-effort static exclusivity probe over a small window of values.
	for v := r.MinN; v < r.MinN+exclusivityProbeWindow; v++ {
		if r.Halt(v) {
			continue
		}
		if r.ShouldIncrease(v) == r.ShouldDecrease(v) {
			return fmt.Errorf("%w: rule %q branch predicates not exclusive at value %d",
				ErrRuleConfig, r.Name, v)
		}
	}

	return nil
}

// AmbiguityError reports a value for which the branch predicates were not
// exactly-one-true at run time. Unwraps to ErrRuleAmbiguity.
type AmbiguityError struct {
	// Rule is the offending rule's name.
	Rule string
	// Value is the orbit value on which the predicates disagreed.
	Value int64
	// BothTrue distinguishes "both predicates matched" from "neither matched".
	BothTrue bool
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	kind := "neither"
	if e.BothTrue {
		kind = "both"
	}

	return fmt.Sprintf("orbit: rule %q: %s of increase/decrease matched value %d", e.Rule, kind, e.Value)
}

// Unwrap makes errors.Is(err, ErrRuleAmbiguity) succeed.
func (e *AmbiguityError) Unwrap() error { return ErrRuleAmbiguity }

// DivergenceError reports an orbit that exceeded its step bound without
// halting. Partial carries the state accumulated so far (counts, first
// drop, retained orbit) so the caller can diagnose without re-running.
// Unwraps to ErrDivergence.
type DivergenceError struct {
	// Rule is the offending rule's name.
	Rule string
	// N is the starting integer whose orbit diverged.
	N int64
	// Bound is the step bound that was exceeded.
	Bound int
	// Partial holds the statistics accumulated before the abort.
	// StopMod/StopIndex are never derived for a diverged orbit.
	Partial *OrbitInfo
}

// Error implements the error interface.
func (e *DivergenceError) Error() string {
	return fmt.Sprintf("orbit: rule %q: n=%d exceeded %d steps without halting", e.Rule, e.N, e.Bound)
}

// Unwrap makes errors.Is(err, ErrDivergence) succeed.
func (e *DivergenceError) Unwrap() error { return ErrDivergence }

// OrbitInfo is the computed record for one (Rule, starting integer) pair.
// Immutable after construction.
type OrbitInfo struct {
	// N is the starting integer.
	N int64

	// FirstDrop is the 1-based step index of the first value strictly
	// below N, or 0 if the walk halted without ever dropping below N.
	FirstDrop int

	// TotalSteps counts transitions taken until Halt became true.
	TotalSteps int

	// StopMod and StopIndex are the modular-group coordinates produced by
	// the active Derivation: orbits sharing a FirstDrop share a group,
	// StopIndex orders members within the group reproducibly.
	StopMod   int64
	StopIndex int64

	// OpCounts maps each operation tag to the number of times it was
	// applied. The counts always sum to TotalSteps.
	OpCounts map[OpID]int

	// Orbit holds the visited values retained by the record policy,
	// in visit order. Empty unless retention was requested.
	Orbit []int64

	// FirstOrbit holds the retained prefix strictly before the first drop.
	// Nil when nothing was retained or the walk never dropped below N.
	FirstOrbit []int64
}

// Dropped reports whether the orbit ever produced a value strictly below N.
func (i *OrbitInfo) Dropped() bool { return i.FirstDrop > 0 }
