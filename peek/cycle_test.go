package peek_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/peek"
	"github.com/symretope/symretope-core/permutation"
)

// TestRunCycle_SecondHalfHypothesisCommits: on a single 4-cycle with x1
// forced to 0, the value x3 = 1 would force x0 = 1 (row 0 of power 1) and
// then hit (x1, x0) = (0, 1) — infeasible — so the 1-hypothesis test the
// shortcut assigns to non-minimal entries must commit x3 := 0. The minimal
// unfixed entry x0 and the mid-cycle x2, by contrast, genuinely admit both
// values and must be left free.
func TestRunCycle_SecondHalfHypothesisCommits(t *testing.T) {
	localPerm, err := permutation.Build([]int{1, 2, 3, 0})
	require.NoError(t, err)

	bounds := newMemBounds(4, map[int]fixing.Flags{1: fixing.Forced0})

	infeasible, numFixed, perr := peek.RunCycle(localPerm, bounds, bounds, 3, true)
	require.NoError(t, perr)
	assert.False(t, infeasible)
	assert.Equal(t, 1, numFixed)

	v3, ok := bounds.Bound(3).Value()
	require.True(t, ok, "x3 should have been peek-committed")
	assert.Equal(t, fixing.Bit(0), v3)

	assert.False(t, bounds.Bound(0).IsFixed())
	assert.False(t, bounds.Bound(2).IsFixed())
}

// TestRunCycle_NothingUnfixed_NoOp: a fully fixed cycle has no candidates.
func TestRunCycle_NothingUnfixed_NoOp(t *testing.T) {
	localPerm, err := permutation.Build([]int{1, 0})
	require.NoError(t, err)

	bounds := newMemBounds(2, map[int]fixing.Flags{0: fixing.Forced1, 1: fixing.Forced0})

	infeasible, numFixed, perr := peek.RunCycle(localPerm, bounds, bounds, 1, true)
	require.NoError(t, perr)
	assert.False(t, infeasible)
	assert.Equal(t, 0, numFixed)
}
