package peek_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/orchestrator"
	"github.com/symretope/symretope-core/peek"
	"github.com/symretope/symretope-core/permutation"
)

// memBounds is a mutable in-memory fixing.BoundSource/orchestrator.Sink/
// host.Asserter stand-in, mirroring orchestrator_test.go's helper.
type memBounds struct {
	flags []fixing.Flags
}

func newMemBounds(n int, initial map[int]fixing.Flags) *memBounds {
	m := &memBounds{flags: make([]fixing.Flags, n)}
	for i := range m.flags {
		m.flags[i] = fixing.Unfixed
	}
	for i, f := range initial {
		m.flags[i] = f
	}
	return m
}

func (m *memBounds) Bound(i int) fixing.Flags { return m.flags[i] }

func (m *memBounds) Commit(i int, v fixing.Bit, power int) (infeasible bool, err error) {
	next := m.flags[i].Narrow(v)
	m.flags[i] = next
	return next.IsContradiction(), nil
}

// Assert implements host.Asserter.
func (m *memBounds) Assert(i int, v fixing.Bit, info host.InferInfo) error {
	m.flags[i] = m.flags[i].Narrow(v)
	return nil
}

// TestPeek_S6_NoSpuriousCommits exercises spec.md §8 scenario S6's setup:
// with x2 forced to 1 on a single 4-cycle, base propagation forces x0 := 1
// (x >= gamma^2(x) compares x0 against x2 first). Both completions
// x = (1,0,1,0) and x = (1,1,1,1) are lex-maximal in their orbits, so
// neither remaining variable is actually implied; a sound peek pass over
// the impactful entries must therefore commit nothing and report feasible.
func TestPeek_S6_NoSpuriousCommits(t *testing.T) {
	perm, err := permutation.Build([]int{1, 2, 3, 0})
	require.NoError(t, err)

	bounds := newMemBounds(4, map[int]fixing.Flags{2: fixing.Forced1})
	rec := orchestrator.NewRecordingSource(bounds)

	base := orchestrator.New(perm, 3, rec, bounds)
	infeasible, _, rerr := base.Run()
	require.NoError(t, rerr)
	require.False(t, infeasible)

	v0, ok0 := bounds.Bound(0).Value()
	require.True(t, ok0, "x0 should be forced by base propagation")
	assert.Equal(t, fixing.Bit(1), v0)

	_, ok1 := bounds.Bound(1).Value()
	require.False(t, ok1, "x1 should remain unfixed after base propagation")
	_, ok3 := bounds.Bound(3).Value()
	require.False(t, ok3, "x3 should remain unfixed after base propagation")

	candidates := rec.Impactful()
	require.NotEmpty(t, candidates)

	peekInfeasible, numFixed, perr := peek.Run(perm, bounds, bounds, candidates, 3, true)
	require.NoError(t, perr)
	assert.False(t, peekInfeasible)
	assert.Equal(t, 0, numFixed)

	_, ok1 = bounds.Bound(1).Value()
	assert.False(t, ok1)
	_, ok3 = bounds.Bound(3).Value()
	assert.False(t, ok3)
}

// TestPeek_NoCandidates_NoOp exercises the trivial path.
func TestPeek_NoCandidates_NoOp(t *testing.T) {
	perm, err := permutation.Build([]int{1, 2, 3, 0})
	require.NoError(t, err)

	bounds := newMemBounds(4, nil)
	infeasible, numFixed, perr := peek.Run(perm, bounds, bounds, nil, 3, true)
	require.NoError(t, perr)
	assert.False(t, infeasible)
	assert.Equal(t, 0, numFixed)
}
