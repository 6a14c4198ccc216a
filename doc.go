// Package orbitviz computes per-orbit statistics for integers walked under
// configurable Collatz-like rules and assembles them into datasets ready for
// 3D scatterplot rendering.
//
// 🚀 What is orbitviz?
//
//	A deterministic, reproducible orbit-statistics toolkit that brings together:
//		• Rule definitions: pluggable halting/branching predicates & transforms
//		• Orbit engine: stopping times, first drops, per-operation counts
//		• Modular coordinates: stop_mod / stop_index group derivations
//		• Batch generation: integer ranges → (points, labels, colors) triples
//		• Comparative evaluation: several rules merged into one dataset
//
// ✨ Why choose orbitviz?
//
//   - Deterministic by construction – fixed seeds ⇒ bit-identical results
//   - Divergence-bounded – misconfigured rules fail fast, never spin forever
//   - Pure Go core – explicit errors, no hidden globals, no ambient RNG
//   - Extensible – custom rules, derivations, projections and hooks
//
// Everything is organized under three subpackages:
//
//	orbit/   — rule sets, the orbit engine, OrbitInfo, derivations, RNG streams
//	rulecfg/ — declarative YAML rule specifications
//	viz/     — batch generation, comparative evaluation, dataset triples
//
// Quick example:
//
//	info, err := orbit.Run(orbit.Classic(), 27)
//	if err != nil {
//	    // handle ErrDivergence, ErrRuleAmbiguity, ...
//	}
//	fmt.Println(info.TotalSteps, info.FirstDrop) // 111 96
//
// The rendering surface (axes, interactivity, point size) is an external
// collaborator: viz hands it an ordered triple of points, labels and colors
// and nothing more.
package orbitviz
