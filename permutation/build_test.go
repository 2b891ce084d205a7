package permutation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symretope/symretope-core/permutation"
)

func TestBuild_SingleCycle(t *testing.T) {
	p, err := permutation.Build([]int{1, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, p.N())
	assert.Equal(t, 1, p.NumCycles())
	assert.Equal(t, uint64(4), p.Order())
	assert.True(t, p.Monotone())
	assert.True(t, p.Ordered())

	for i := 0; i < 4; i++ {
		assert.Equal(t, (i+1)%4, p.Apply(i, 1))
		assert.Equal(t, i, p.Apply(i, 4))
		assert.Equal(t, (i+3)%4, p.Apply(i, -1))
	}
}

func TestBuild_ThreeTwoCycles(t *testing.T) {
	// Three disjoint 2-cycles: (0 1)(2 3)(4 5)
	p, err := permutation.Build([]int{1, 0, 3, 2, 5, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumCycles())
	assert.Equal(t, uint64(2), p.Order())
	assert.True(t, p.Monotone())
	assert.True(t, p.Ordered())
}

func TestBuild_MixedCycleLengths(t *testing.T) {
	// n=5, perm = [1,2,0,4,3]: a 3-cycle (0 1 2) and a 2-cycle (3 4).
	p, err := permutation.Build([]int{1, 2, 0, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumCycles())
	assert.Equal(t, uint64(6), p.Order())
	assert.Equal(t, 3, p.MaxCycleLen())
}

func TestBuild_RejectsFixedPoint(t *testing.T) {
	_, err := permutation.Build([]int{0, 2, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, permutation.ErrFixedPoint))
}

func TestBuild_RejectsOutOfRange(t *testing.T) {
	_, err := permutation.Build([]int{1, 5, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, permutation.ErrOutOfRange))
}

func TestBuild_RejectsNonBijection(t *testing.T) {
	_, err := permutation.Build([]int{1, 1, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, permutation.ErrNotBijective))
}

func TestBuild_NotMonotone(t *testing.T) {
	// cycle (0 3 1 2): traversal 0->3->1->2->0 has descents 3->1 and 2->0: not monotone.
	p, err := permutation.Build([]int{3, 2, 0, 1})
	require.NoError(t, err)
	assert.False(t, p.Monotone())
}

func TestBuild_Empty(t *testing.T) {
	p, err := permutation.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.N())
	assert.Equal(t, uint64(1), p.Order())
}

func TestPowerMap_MatchesRepeatedApply(t *testing.T) {
	p, err := permutation.Build([]int{1, 2, 3, 4, 0})
	require.NoError(t, err)

	for k := -3; k <= 7; k++ {
		out := make([]int, p.N())
		p.PowerMap(k, out)
		for i := 0; i < p.N(); i++ {
			assert.Equal(t, p.Apply(i, k), out[i], "k=%d i=%d", k, i)
		}
	}
}
