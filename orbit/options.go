// Package orbit - tunable options for the orbit engine.
package orbit

import "fmt"

// DefaultMaxSteps is the divergence bound applied when no WithMaxSteps
// option is given. Halting is not guaranteed for arbitrary rules; the
// bound turns a silent infinite loop into DivergenceError.
const DefaultMaxSteps = 1 << 20

// Option configures Run via functional arguments.
// If an Option is invalid (e.g. a non-positive step bound), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// RecordFunc is a caller-supplied retention predicate: it receives the
// 1-based step index (0 for the start value) and the value produced at
// that step, and reports whether to retain it. The engine calls it once
// per step in walk order; any state it keeps is owned by the caller and
// must be fresh per run.
type RecordFunc func(step int, v int64) bool

// StepHook observes each transition: the 1-based step index, the value
// produced, and the operation tag that produced it.
type StepHook func(step int, v int64, op OpID)

// Options holds parameters and callbacks to customize an engine run.
type Options struct {
	// MaxSteps bounds the number of transitions before DivergenceError.
	MaxSteps int

	// Seed is the base seed for probabilistic rules. The run consumes the
	// stream derived from (Seed, n), never the seed directly, so ranges of
	// starting integers remain reproducible under parallel evaluation.
	// Seed==0 selects a fixed default stream.
	Seed int64

	// Derivation computes StopMod/StopIndex after the walk halts.
	Derivation Derivation

	// OnStep is called after every transition.
	OnStep StepHook

	// record overrides the rule's RecordMode when non-nil.
	record RecordFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxSteps = DefaultMaxSteps
//   - Seed = 0 (fixed default stream)
//   - the shared pure ResidueDerivation
//   - no-op OnStep hook, no record override.
func DefaultOptions() Options {
	return Options{
		MaxSteps:   DefaultMaxSteps,
		Seed:       0,
		Derivation: defaultDerivation,
		OnStep:     func(int, int64, OpID) {},
		record:     nil,
		err:        nil,
	}
}

// WithMaxSteps bounds the walk at m transitions.
//
//	m > 0:  diverge after m steps without halting
//	m <= 0: invalid option → ErrOptionViolation
func WithMaxSteps(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxSteps = m
	}
}

// WithSeed sets the base seed for probabilistic rules. Two runs with the
// same seed and starting integer produce identical OrbitInfo.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDerivation replaces the StopMod/StopIndex derivation function.
func WithDerivation(d Derivation) Option {
	return func(o *Options) {
		if d != nil {
			o.Derivation = d
		}
	}
}

// WithOnStep registers a hook observing every transition.
func WithOnStep(fn StepHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRecordFunc overrides the rule's RecordMode with a custom retention
// predicate for this run.
func WithRecordFunc(fn RecordFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.record = fn
		}
	}
}
