package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitviz/orbit"
)

// TestClassic_Shape verifies the 3x+1 preset structure and a sample orbit.
func TestClassic_Shape(t *testing.T) {
	r := orbit.Classic()
	require.NoError(t, r.Validate())
	require.Equal(t, "3x_plus_1", r.Name)
	require.EqualValues(t, 1, r.MinN)
	require.False(t, r.Probabilistic)

	info, err := orbit.Run(r, 6)
	require.NoError(t, err)
	require.Equal(t, 8, info.TotalSteps)
	require.Equal(t, map[orbit.OpID]int{orbit.OpHalve: 6, orbit.OpTripleAddOne: 2}, info.OpCounts)
}

// TestPlusThree_Shape verifies the 3x+3 preset structure and a sample orbit
// 5 → 18 → 9 → 30 → 15 → 48 → 24 → 12 → 6 → 3.
func TestPlusThree_Shape(t *testing.T) {
	r := orbit.PlusThree()
	require.NoError(t, r.Validate())
	require.EqualValues(t, 3, r.MinN)

	info, err := orbit.Run(r, 5)
	require.NoError(t, err)
	require.Equal(t, 9, info.TotalSteps)
	require.Equal(t, 9, info.FirstDrop)
	require.Equal(t, map[orbit.OpID]int{orbit.OpHalve: 6, orbit.OpTripleAddThree: 3}, info.OpCounts)
}

// TestProbabilistic_Reproducible verifies that identical seeds reproduce
// identical OrbitInfo, and that the walk only ever emits preset operations.
func TestProbabilistic_Reproducible(t *testing.T) {
	r := orbit.Probabilistic(0.5)
	require.NoError(t, r.Validate())
	require.True(t, r.Probabilistic)

	for n := int64(4); n <= 60; n++ {
		a, err := orbit.Run(r, n, orbit.WithSeed(42))
		require.NoError(t, err, "n=%d", n)
		b, err := orbit.Run(r, n, orbit.WithSeed(42))
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, a, b, "n=%d: same seed must reproduce identical OrbitInfo", n)

		sum := 0
		for op, c := range a.OpCounts {
			require.Contains(t,
				[]orbit.OpID{orbit.OpHalve, orbit.OpTripleAddOne, orbit.OpTripleAddThree}, op)
			sum += c
		}
		require.Equal(t, a.TotalSteps, sum, "n=%d", n)
	}
}

// TestProbabilistic_SeedsIndependent verifies different seeds may diverge in
// counts while both halting within the bound.
func TestProbabilistic_SeedsIndependent(t *testing.T) {
	r := orbit.Probabilistic(0.5)

	differs := false
	for n := int64(5); n <= 101; n += 2 {
		a, err := orbit.Run(r, n, orbit.WithSeed(1))
		require.NoError(t, err, "seed 1, n=%d", n)
		b, err := orbit.Run(r, n, orbit.WithSeed(2))
		require.NoError(t, err, "seed 2, n=%d", n)
		if a.TotalSteps != b.TotalSteps {
			differs = true
		}
	}
	require.True(t, differs, "seeds 1 and 2 should diverge on at least one odd start")
}

// TestProbabilistic_Extremes pins the clamped edge probabilities: p=1 always
// takes 3v+1 on odd values, p=0 always takes 3v+3.
func TestProbabilistic_Extremes(t *testing.T) {
	always1 := orbit.Probabilistic(1)
	info, err := orbit.Run(always1, 7, orbit.WithSeed(9))
	require.NoError(t, err)
	require.Zero(t, info.OpCounts[orbit.OpTripleAddThree])
	require.Positive(t, info.OpCounts[orbit.OpTripleAddOne])

	always3 := orbit.Probabilistic(0)
	info, err = orbit.Run(always3, 7, orbit.WithSeed(9))
	require.NoError(t, err)
	require.Zero(t, info.OpCounts[orbit.OpTripleAddOne])
	require.Positive(t, info.OpCounts[orbit.OpTripleAddThree])
}
