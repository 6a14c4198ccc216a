// Package viz turns per-orbit statistics into visualization-ready datasets:
// ordered, parallel lists of 3D points, labels, and colors.
//
// What
//
//   - Generate: iterate starting integers from each rule's MinN to an upper
//     bound, run the orbit engine per integer, project every OrbitInfo
//     through a caller-supplied PointBuilder, and emit the dataset triple
//     in rule-major, n-ascending order.
//   - Evaluate: run several rules with distinct colors, merge the results
//     preserving rule grouping, and hand the triple to an external Renderer.
//   - Built-in projections: ModularPoint (StopMod, StopIndex, FirstDrop)
//     and StepsPoint (N, TotalSteps, FirstDrop).
//   - Failure policies: abort-batch (default) or skip-and-record for
//     diverged orbits via WithSkipFailures.
//
// Why
//
//   - The dataset triple is the entire contract with the plotting surface:
//     the collaborator owns axes, interactivity and point size, configured
//     through an explicit Layout value rather than ambient globals.
//
// Determinism & Parallelism
//
//	Orbit evaluation is embarrassingly parallel: runs share no mutable
//	state, rules are read-only, and probabilistic rules derive one RNG
//	stream per (seed, n). WithWorkers evaluates integers concurrently with
//	output ordering identical to sequential generation; stateful
//	derivations (the wheel) are rejected under parallelism with
//	ErrStatefulDerivation.
//
// Usage
//
//	rules := []orbit.Rule{orbit.Classic(), orbit.PlusThree()}
//	ds, err := viz.Evaluate(
//	    1000, rules, nil, viz.ModularPoint,
//	    viz.DefaultLayout(), myRenderer,
//	    viz.WithWorkers(8),
//	)
//	if err != nil {
//	    // handle ErrColorCount, ErrUpperBound, engine failures, ...
//	}
//	_ = ds // points/labels/colors, rule-major, n-ascending
package viz
