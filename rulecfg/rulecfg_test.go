package rulecfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitviz/orbit"
	"github.com/katalvlaran/orbitviz/rulecfg"
)

const classicYAML = `
rules:
  - name: 3x_plus_1
    min_n: 1
    halt_at: 1
    modulus: 2
    decrease: {divisor: 2, op: "n/2"}
    increase: {multiplier: 3, addend: 1, op: "3n+1"}
  - name: 3x_plus_3
    min_n: 3
    halt_at: 3
    increase: {multiplier: 3, addend: 3}
    record: all
`

// TestParse_ClassicDocument builds both declared rules and checks they walk
// exactly like the code presets.
func TestParse_ClassicDocument(t *testing.T) {
	rules, err := rulecfg.Parse([]byte(classicYAML))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// First rule behaves like orbit.Classic on the 6-orbit.
	info, err := orbit.Run(rules[0], 6)
	require.NoError(t, err)
	require.Equal(t, 8, info.TotalSteps)
	require.Equal(t, 1, info.FirstDrop)
	require.Equal(t, map[orbit.OpID]int{"n/2": 6, "3n+1": 2}, info.OpCounts)

	// Second rule: modulus and divisor defaulted, op tags synthesized,
	// record mode honored. 5 → 18 → 9 → 30 → 15 → 48 → 24 → 12 → 6 → 3.
	info, err = orbit.Run(rules[1], 5)
	require.NoError(t, err)
	require.Equal(t, 9, info.TotalSteps)
	require.Equal(t, map[orbit.OpID]int{"n/2": 6, "3n+3": 3}, info.OpCounts)
	require.Equal(t, []int64{5, 18, 9, 30, 15, 48, 24, 12, 6, 3}, info.Orbit)
}

// TestParse_Errors covers decode failures and empty documents.
func TestParse_Errors(t *testing.T) {
	_, err := rulecfg.Parse([]byte("rules: [\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "rulecfg: decode")

	_, err = rulecfg.Parse([]byte("rules: []\n"))
	require.ErrorIs(t, err, orbit.ErrRuleConfig)
}

// TestBuild_Validation rejects structurally broken specs.
func TestBuild_Validation(t *testing.T) {
	base := rulecfg.Spec{
		Name:     "ok",
		MinN:     1,
		HaltAt:   1,
		Increase: rulecfg.Step{Multiplier: 3, Addend: 1},
	}

	// baseline builds
	_, err := rulecfg.Build(base)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*rulecfg.Spec)
	}{
		{"missing name", func(s *rulecfg.Spec) { s.Name = "" }},
		{"halt below 1", func(s *rulecfg.Spec) { s.HaltAt = 0 }},
		{"modulus below 2", func(s *rulecfg.Spec) { s.Modulus = 1 }},
		{"divisor below 2", func(s *rulecfg.Spec) { s.Decrease.Divisor = 1 }},
		{"zero multiplier", func(s *rulecfg.Spec) { s.Increase.Multiplier = 0 }},
		{"unknown record mode", func(s *rulecfg.Spec) { s.Record = "every-other" }},
		{"min_n below 1", func(s *rulecfg.Spec) { s.MinN = 0 }},
	}
	for _, tc := range cases {
		s := base
		tc.mutate(&s)
		_, err = rulecfg.Build(s)
		require.ErrorIs(t, err, orbit.ErrRuleConfig, tc.name)
	}
}

// TestBuild_SynthesizedOps checks default operation tags.
func TestBuild_SynthesizedOps(t *testing.T) {
	r, err := rulecfg.Build(rulecfg.Spec{
		Name:     "5x_plus_1",
		MinN:     1,
		HaltAt:   1,
		Increase: rulecfg.Step{Multiplier: 5, Addend: 1},
	})
	require.NoError(t, err)

	// 2 → 1: one synthesized halving tag.
	info, err := orbit.Run(r, 2)
	require.NoError(t, err)
	require.Equal(t, map[orbit.OpID]int{"n/2": 1}, info.OpCounts)

	// 3 → 16 → 8 → 4 → 2 → 1: synthesized multiply-add tag.
	info, err = orbit.Run(r, 3)
	require.NoError(t, err)
	require.Equal(t, 1, info.OpCounts["5n+1"])
}

// TestParse_RulesFeedBatches wires parsed rules straight into downstream
// consumers: MinN drives range starts, names drive labels.
func TestParse_RulesFeedBatches(t *testing.T) {
	rules, err := rulecfg.Parse([]byte(classicYAML))
	require.NoError(t, err)
	require.EqualValues(t, 1, rules[0].MinN)
	require.EqualValues(t, 3, rules[1].MinN)
	require.Equal(t, "3x_plus_1", rules[0].Name)
	require.Equal(t, "3x_plus_3", rules[1].Name)
}
