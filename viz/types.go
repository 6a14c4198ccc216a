// Package viz defines dataset types, tunable options, and sentinel errors
// for batch orbit generation and comparative evaluation.
package viz

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/orbitviz/orbit"
)

// Sentinel errors for batch generation.
var (
	// ErrNoRules is returned when the rule list is empty.
	ErrNoRules = errors.New("viz: at least one rule required")

	// ErrColorCount is returned when colors and rules are not one-to-one.
	ErrColorCount = errors.New("viz: colors must match rules one-to-one")

	// ErrNilBuilder is returned when the point builder is nil.
	ErrNilBuilder = errors.New("viz: point builder is nil")

	// ErrUpperBound is returned when the range upper bound lies below a
	// rule's MinN, which would make that rule's range empty.
	ErrUpperBound = errors.New("viz: upper bound below rule MinN")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("viz: invalid option supplied")

	// ErrStatefulDerivation is returned when parallel generation is
	// requested with a derivation that keeps encounter-order state.
	ErrStatefulDerivation = errors.New("viz: stateful derivation requires sequential generation")
)

// Point is one 3D coordinate produced by projecting an OrbitInfo.
type Point struct {
	X, Y, Z float64
}

// PointBuilder projects an OrbitInfo into a 3D coordinate. Builders are
// caller logic: an error from a builder aborts the batch and is propagated
// unchanged, never wrapped in a viz error kind.
type PointBuilder func(info *orbit.OrbitInfo) (Point, error)

// ModularPoint projects the modular-group coordinates:
// (StopMod, StopIndex, FirstDrop). The canonical wheel view.
func ModularPoint(info *orbit.OrbitInfo) (Point, error) {
	return Point{
		X: float64(info.StopMod),
		Y: float64(info.StopIndex),
		Z: float64(info.FirstDrop),
	}, nil
}

// StepsPoint projects raw magnitudes: (N, TotalSteps, FirstDrop).
func StepsPoint(info *orbit.OrbitInfo) (Point, error) {
	return Point{
		X: float64(info.N),
		Y: float64(info.TotalSteps),
		Z: float64(info.FirstDrop),
	}, nil
}

// Labeler produces the label paired with one generated point.
type Labeler func(r orbit.Rule, info *orbit.OrbitInfo) string

// defaultLabel labels each point with its starting integer.
func defaultLabel(_ orbit.Rule, info *orbit.OrbitInfo) string {
	return strconv.FormatInt(info.N, 10)
}

// Failure records one starting integer omitted under the skip-and-continue
// policy, with enough context to reproduce it in isolation.
type Failure struct {
	// Rule is the name of the rule whose orbit failed.
	Rule string
	// N is the starting integer.
	N int64
	// Err is the underlying engine error (unwraps to orbit.ErrDivergence).
	Err error
}

// Dataset is the triple handed to the rendering collaborator: parallel,
// equally long, ordered rule-major then n-ascending. Skipped is caller-side
// metadata populated only under WithSkipFailures; renderers consume the
// triple alone.
type Dataset struct {
	Points  []Point
	Labels  []string
	Colors  []string
	Skipped []Failure
}

// Len returns the number of generated points.
func (d *Dataset) Len() int { return len(d.Points) }

// Option configures Generate/Evaluate via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds batch-generation parameters.
type Options struct {
	// Workers bounds concurrent orbit evaluations. 1 means sequential.
	Workers int

	// SkipFailures omits diverged starting integers and records them in
	// Dataset.Skipped instead of aborting the batch. Rule-definition
	// failures (ambiguity, configuration) and builder errors still abort.
	SkipFailures bool

	// Label produces point labels; defaults to the decimal starting integer.
	Label Labeler

	// engineOpts are forwarded to every orbit.Run call.
	engineOpts []orbit.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: sequential, abort on
// first failure, decimal labels, no extra engine options.
func DefaultOptions() Options {
	return Options{
		Workers:      1,
		SkipFailures: false,
		Label:        defaultLabel,
		engineOpts:   nil,
		err:          nil,
	}
}

// WithWorkers evaluates starting integers concurrently on up to k workers.
// Output ordering is identical to sequential generation.
//
//	k > 1:  parallel (requires a pure derivation)
//	k == 1: sequential
//	k < 1:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = errOption("Workers must be ≥ 1", k)
			return
		}
		o.Workers = k
	}
}

// WithSkipFailures switches the per-n failure policy from abort-batch to
// skip-and-record for diverged orbits.
func WithSkipFailures() Option {
	return func(o *Options) { o.SkipFailures = true }
}

// WithLabeler replaces the default point labeler.
func WithLabeler(fn Labeler) Option {
	return func(o *Options) {
		if fn != nil {
			o.Label = fn
		}
	}
}

// WithEngineOptions forwards options (seed, step bound, derivation, hooks)
// to every underlying orbit.Run call.
func WithEngineOptions(opts ...orbit.Option) Option {
	return func(o *Options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}
