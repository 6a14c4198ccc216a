// Package rulecfg builds orbit rules from declarative YAML specifications.
//
// A spec describes an affine modular rule: halt at a fixed value, divide
// when the value is ≡ 0 modulo the branch modulus, otherwise apply a
// multiply-add step. The presets shipped with the orbit package cover the
// classic variants; rulecfg exists so experiments can be driven by config
// files instead of code changes.
//
// Example document:
//
//	rules:
//	  - name: 3x_plus_1
//	    min_n: 1
//	    halt_at: 1
//	    modulus: 2
//	    decrease: {divisor: 2, op: "n/2"}
//	    increase: {multiplier: 3, addend: 1, op: "3n+1"}
//	    record: all
//
// Defaults: modulus 2, divisor = modulus, op tags synthesized from the
// coefficients, record none. Validation failures wrap orbit.ErrRuleConfig.
package rulecfg

import (
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbitviz/orbit"
)

// File is the root of a rule configuration document.
type File struct {
	Rules []Spec `yaml:"rules"`
}

// Spec declares one affine modular rule.
type Spec struct {
	// Name identifies the rule; required.
	Name string `yaml:"name"`

	// MinN is the smallest valid starting integer; required, ≥ 1.
	MinN int64 `yaml:"min_n"`

	// HaltAt terminates the walk when the value equals it; required, ≥ 1.
	HaltAt int64 `yaml:"halt_at"`

	// Modulus selects the branch: values ≡ 0 decrease, others increase.
	// Defaults to 2.
	Modulus int64 `yaml:"modulus"`

	// Decrease is the division step applied on the ≡ 0 branch.
	Decrease Step `yaml:"decrease"`

	// Increase is the multiply-add step applied on the other branch.
	Increase Step `yaml:"increase"`

	// Record selects orbit retention: "", "none", "all", or "maxima".
	Record string `yaml:"record"`
}

// Step declares one transform's coefficients and its operation tag.
type Step struct {
	// Multiplier and Addend define an increase step m·v + a.
	Multiplier int64 `yaml:"multiplier"`
	Addend     int64 `yaml:"addend"`

	// Divisor defines a decrease step v / d; defaults to the modulus.
	Divisor int64 `yaml:"divisor"`

	// Op overrides the synthesized operation tag.
	Op string `yaml:"op"`
}

// Parse decodes a YAML document and builds every declared rule, in
// document order.
func Parse(data []byte) ([]orbit.Rule, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rulecfg: decode: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("%w: document declares no rules", orbit.ErrRuleConfig)
	}

	rules := make([]orbit.Rule, 0, len(f.Rules))
	for _, s := range f.Rules {
		r, err := Build(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return rules, nil
}

// Build turns one Spec into a validated orbit.Rule.
func Build(s Spec) (orbit.Rule, error) {
	if s.Name == "" {
		return orbit.Rule{}, fmt.Errorf("%w: spec without a name", orbit.ErrRuleConfig)
	}
	if s.HaltAt < 1 {
		return orbit.Rule{}, fmt.Errorf("%w: rule %q halt_at=%d, want ≥ 1", orbit.ErrRuleConfig, s.Name, s.HaltAt)
	}

	modulus := s.Modulus
	if modulus == 0 {
		modulus = 2
	}
	if modulus < 2 {
		return orbit.Rule{}, fmt.Errorf("%w: rule %q modulus=%d, want ≥ 2", orbit.ErrRuleConfig, s.Name, modulus)
	}

	divisor := s.Decrease.Divisor
	if divisor == 0 {
		divisor = modulus
	}
	if divisor < 2 {
		return orbit.Rule{}, fmt.Errorf("%w: rule %q divisor=%d, want ≥ 2", orbit.ErrRuleConfig, s.Name, divisor)
	}
	if s.Increase.Multiplier < 1 {
		return orbit.Rule{}, fmt.Errorf("%w: rule %q multiplier=%d, want ≥ 1", orbit.ErrRuleConfig, s.Name, s.Increase.Multiplier)
	}

	record, err := recordMode(s.Record)
	if err != nil {
		return orbit.Rule{}, fmt.Errorf("%w: rule %q: %v", orbit.ErrRuleConfig, s.Name, err)
	}

	decOp := orbit.OpID(s.Decrease.Op)
	if decOp == "" {
		decOp = orbit.OpID(fmt.Sprintf("n/%d", divisor))
	}
	incOp := orbit.OpID(s.Increase.Op)
	if incOp == "" {
		incOp = orbit.OpID(fmt.Sprintf("%dn+%d", s.Increase.Multiplier, s.Increase.Addend))
	}

	haltAt := s.HaltAt
	mul, add := s.Increase.Multiplier, s.Increase.Addend
	r := orbit.Rule{
		Name:           s.Name,
		MinN:           s.MinN,
		Halt:           func(v int64) bool { return v == haltAt },
		ShouldIncrease: func(v int64) bool { return v%modulus != 0 },
		ShouldDecrease: func(v int64) bool { return v%modulus == 0 },
		Increase: func(v int64, _ *rand.Rand) (int64, orbit.OpID) {
			return mul*v + add, incOp
		},
		Decrease: func(v int64, _ *rand.Rand) (int64, orbit.OpID) {
			return v / divisor, decOp
		},
		Record: record,
	}

	if err = r.Validate(); err != nil {
		return orbit.Rule{}, err
	}

	return r, nil
}

// recordMode maps the spec's retention keyword to a RecordMode.
func recordMode(s string) (orbit.RecordMode, error) {
	switch s {
	case "", "none":
		return orbit.RecordNone, nil
	case "all":
		return orbit.RecordAll, nil
	case "maxima":
		return orbit.RecordMaxima, nil
	default:
		return orbit.RecordNone, fmt.Errorf("unknown record mode %q", s)
	}
}
