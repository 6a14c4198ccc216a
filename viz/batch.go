// Package viz - batch generation of orbit datasets over integer ranges.
package viz

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbitviz/orbit"
)

// errOption wraps ErrOptionViolation with the offending value.
func errOption(msg string, v int) error {
	return fmt.Errorf("%w: %s (%d)", ErrOptionViolation, msg, v)
}

// job addresses one (rule, starting integer) evaluation and its output slot.
type job struct {
	rule int
	n    int64
	slot int
}

// entry is one produced slot, compacted into the Dataset after generation.
type entry struct {
	point Point
	label string
	color string
	fail  *Failure
}

// Generate evaluates every starting integer from each rule's MinN to upTo
// inclusive, projects each OrbitInfo through build, and returns the ordered
// dataset triple: rule-major, then n-ascending. Given deterministic rules
// (or a fixed seed) the output is byte-for-byte reproducible, sequential or
// parallel alike.
//
// Contract:
//   - len(colors) == len(rules); every point of a rule carries its color.
//   - upTo ≥ MinN for every rule, so each rule contributes exactly
//     upTo − MinN + 1 points.
//   - build is a projection of OrbitInfo only; its errors abort the batch
//     and are propagated unchanged.
//
// Failure policy: by default the first failing orbit aborts the whole batch
// with the rule name and starting integer attached. Under WithSkipFailures
// diverged orbits are omitted and recorded in Dataset.Skipped instead;
// ambiguity and configuration failures still abort — they indicate a broken
// rule definition, not a data condition. Under parallel evaluation the
// surfaced abort error may belong to any failing n.
//
// Complexity: O(Σ orbit lengths) time; O(points) memory.
func Generate(upTo int64, rules []orbit.Rule, colors []string, build PointBuilder, opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	if build == nil {
		return nil, ErrNilBuilder
	}
	if len(colors) != len(rules) {
		return nil, fmt.Errorf("%w: %d colors for %d rules", ErrColorCount, len(colors), len(rules))
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if upTo < r.MinN {
			return nil, fmt.Errorf("%w: upTo=%d, rule %q starts at %d", ErrUpperBound, upTo, r.Name, r.MinN)
		}
	}
	if o.Workers > 1 && !engineDerivation(o.engineOpts).Pure() {
		return nil, ErrStatefulDerivation
	}

	jobs := layoutJobs(upTo, rules)
	entries := make([]entry, len(jobs))

	var err error
	if o.Workers > 1 {
		err = runParallel(jobs, entries, rules, colors, build, &o)
	} else {
		err = runSequential(jobs, entries, rules, colors, build, &o)
	}
	if err != nil {
		return nil, err
	}

	return compact(entries), nil
}

// layoutJobs enumerates every (rule, n) pair in output order.
func layoutJobs(upTo int64, rules []orbit.Rule) []job {
	total := 0
	for _, r := range rules {
		total += int(upTo - r.MinN + 1)
	}

	jobs := make([]job, 0, total)
	for ri, r := range rules {
		for n := r.MinN; n <= upTo; n++ {
			jobs = append(jobs, job{rule: ri, n: n, slot: len(jobs)})
		}
	}

	return jobs
}

// runOne evaluates a single job into its slot. A nil return with a set
// entry.fail marks a skipped divergence.
func runOne(j job, entries []entry, rules []orbit.Rule, colors []string, build PointBuilder, o *Options) error {
	r := rules[j.rule]
	info, err := orbit.Run(r, j.n, o.engineOpts...)
	if err != nil {
		if o.SkipFailures && errors.Is(err, orbit.ErrDivergence) {
			entries[j.slot].fail = &Failure{Rule: r.Name, N: j.n, Err: err}
			return nil
		}

		return fmt.Errorf("viz: rule %q, n=%d: %w", r.Name, j.n, err)
	}

	pt, err := build(info)
	if err != nil {
		// Builder errors are caller logic; propagate unchanged.
		return err
	}

	entries[j.slot] = entry{point: pt, label: o.Label(r, info), color: colors[j.rule]}

	return nil
}

// runSequential fills the slots in order on the calling goroutine.
func runSequential(jobs []job, entries []entry, rules []orbit.Rule, colors []string, build PointBuilder, o *Options) error {
	for _, j := range jobs {
		if err := runOne(j, entries, rules, colors, build, o); err != nil {
			return err
		}
	}

	return nil
}

// runParallel fills the slots on up to o.Workers goroutines. Each job owns
// its slot and each engine run derives its own RNG stream from (seed, n),
// so the result is identical to sequential generation.
func runParallel(jobs []job, entries []entry, rules []orbit.Rule, colors []string, build PointBuilder, o *Options) error {
	var eg errgroup.Group
	eg.SetLimit(o.Workers)

	for _, j := range jobs {
		j := j
		eg.Go(func() error {
			return runOne(j, entries, rules, colors, build, o)
		})
	}

	return eg.Wait()
}

// compact drops skipped slots and assembles the final parallel slices.
func compact(entries []entry) *Dataset {
	ds := &Dataset{
		Points: make([]Point, 0, len(entries)),
		Labels: make([]string, 0, len(entries)),
		Colors: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.fail != nil {
			ds.Skipped = append(ds.Skipped, *e.fail)
			continue
		}
		ds.Points = append(ds.Points, e.point)
		ds.Labels = append(ds.Labels, e.label)
		ds.Colors = append(ds.Colors, e.color)
	}

	return ds
}

// engineDerivation resolves the derivation a set of engine options selects.
func engineDerivation(opts []orbit.Option) orbit.Derivation {
	eo := orbit.DefaultOptions()
	for _, opt := range opts {
		opt(&eo)
	}

	return eo.Derivation
}
