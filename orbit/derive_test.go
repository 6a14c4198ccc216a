package orbit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitviz/orbit"
)

// TestResidueDerivation_Coordinates pins the closed-form coordinates:
// group size 1 for the trivial dropping time, admissible counts otherwise.
func TestResidueDerivation_Coordinates(t *testing.T) {
	d := orbit.NewResidueDerivation(orbit.DefaultDerivationTerms)
	require.True(t, d.Pure())

	// Never dropped: no group membership.
	mod, idx, err := d.Derive(1, 0, 1)
	require.NoError(t, err)
	require.Zero(t, mod)
	require.Zero(t, idx)

	// Even starts drop at step 1; singleton groups ordered by n.
	mod, idx, err = d.Derive(8, 1, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, mod)
	require.EqualValues(t, 9, idx)

	// Dropping time 11 has 3 admissible residue classes: n=7 → (1+7%3, 1+7/3).
	mod, idx, err = d.Derive(7, 11, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, mod)
	require.EqualValues(t, 3, idx)

	// Unknown dropping times collapse to singleton groups, never error.
	mod, idx, err = d.Derive(10, 7, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, mod)
	require.EqualValues(t, 11, idx)
}

// TestResidueDerivation_GroupInvariant checks the grouping/ordering contract
// over a classic range: same first drop ⇒ same group size; StopIndex grows
// with n within each (FirstDrop, StopMod) group.
func TestResidueDerivation_GroupInvariant(t *testing.T) {
	type key struct {
		drop int
		mod  int64
	}
	last := map[key]int64{}
	for n := int64(2); n <= 500; n++ {
		info, err := orbit.Run(orbit.Classic(), n)
		require.NoError(t, err)
		if !info.Dropped() {
			continue
		}
		k := key{drop: info.FirstDrop, mod: info.StopMod}
		require.Greater(t, info.StopIndex, last[k],
			"n=%d: StopIndex must order group %+v members by ascending n", n, k)
		last[k] = info.StopIndex
	}
}

// TestWheelDerivation_Sequence ports the classic wheel expectations for the
// first ten starting integers, derived in ascending order.
func TestWheelDerivation_Sequence(t *testing.T) {
	w := orbit.NewWheelDerivation(orbit.DefaultDerivationTerms)
	require.False(t, w.Pure())

	want := []struct {
		n   int64
		mod int64
		idx int64
	}{
		{1, 0, 0}, // halts at once, never drops
		{2, 1, 1},
		{3, 1, 1},
		{4, 1, 2},
		{5, 1, 1},
		{6, 1, 3},
		{7, 1, 1},
		{8, 1, 4},
		{9, 1, 2},
		{10, 1, 5},
	}
	for _, tc := range want {
		info, err := orbit.Run(orbit.Classic(), tc.n, orbit.WithDerivation(w))
		require.NoError(t, err, "n=%d", tc.n)
		require.Equal(t, tc.mod, info.StopMod, "n=%d StopMod", tc.n)
		require.Equal(t, tc.idx, info.StopIndex, "n=%d StopIndex", tc.n)
	}
}

// TestWheelDerivation_WheelWraps drives a dropping time past its magnitude
// and checks the wheel cycles back to 1.
func TestWheelDerivation_WheelWraps(t *testing.T) {
	w := orbit.NewWheelDerivation(orbit.DefaultDerivationTerms)

	// Dropping time 11 has magnitude 3: the fourth member re-enters slot 1.
	mods := make([]int64, 0, 4)
	for i := 0; i < 4; i++ {
		mod, _, err := w.Derive(int64(7+16*i), 11, 1)
		require.NoError(t, err)
		mods = append(mods, mod)
	}
	require.Equal(t, []int64{1, 2, 3, 1}, mods)
}

// TestWheelDerivation_UnknownDrop rejects dropping times outside the table.
func TestWheelDerivation_UnknownDrop(t *testing.T) {
	w := orbit.NewWheelDerivation(orbit.DefaultDerivationTerms)
	_, _, err := w.Derive(10, 7, 1)
	require.True(t, errors.Is(err, orbit.ErrDroppingTime), "got %v", err)
}
