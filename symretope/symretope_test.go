package symretope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/symretope"
)

// fakeHost is a minimal host.Bounds + host.Asserter + host.ConflictSink,
// recording every committed bound against a monotonically increasing
// change index so ResolvePropagation's historical replay has something
// real to query.
type fakeHost struct {
	flags    []fixing.Flags
	history  []map[int]fixing.Flags // history[idx] is the snapshot right after that commit
	inferred map[int]host.InferInfo // last InferInfo tag Assert recorded per index
	lower    []int
	upper    []int
}

func newFakeHost(n int, initial map[int]fixing.Flags) *fakeHost {
	h := &fakeHost{flags: make([]fixing.Flags, n), inferred: make(map[int]host.InferInfo)}
	for i := range h.flags {
		h.flags[i] = fixing.Unfixed
	}
	for i, f := range initial {
		h.flags[i] = f
	}
	h.snapshot()
	return h
}

func (h *fakeHost) snapshot() {
	snap := make(map[int]fixing.Flags, len(h.flags))
	for i, f := range h.flags {
		snap[i] = f
	}
	h.history = append(h.history, snap)
}

func (h *fakeHost) Current(i int) fixing.Flags { return h.flags[i] }

// Bound implements fixing.BoundSource, letting a fakeHost double as the
// complete-solution argument Check/Enforce expect.
func (h *fakeHost) Bound(i int) fixing.Flags { return h.flags[i] }

func (h *fakeHost) AtChange(i int, idx host.ChangeIndex) fixing.Flags {
	return h.history[idx][i]
}

func (h *fakeHost) Assert(i int, v fixing.Bit, info host.InferInfo) error {
	h.flags[i] = h.flags[i].Narrow(v)
	h.inferred[i] = info
	h.snapshot()
	return nil
}

func (h *fakeHost) lastChangeIndex() host.ChangeIndex { return host.ChangeIndex(len(h.history) - 1) }

func (h *fakeHost) AddLowerBound(i int, idx host.ChangeIndex) { h.lower = append(h.lower, i) }
func (h *fakeHost) AddUpperBound(i int, idx host.ChangeIndex) { h.upper = append(h.upper, i) }

func mustValue(t *testing.T, f fixing.Flags) fixing.Bit {
	t.Helper()
	v, ok := f.Value()
	require.True(t, ok, "expected a fixed value, got %v", f)
	return v
}

// S1: n=4, perm=[1,2,3,0], all unfixed. Propagate finds no fixings.
func TestSymretope_S1_AllUnfixed_NoFixings(t *testing.T) {
	h := newFakeHost(4, nil)
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitDidNotFind, exit)
	for i := 0; i < 4; i++ {
		assert.False(t, h.Current(i).IsFixed(), "x%d should remain unfixed", i)
	}
}

// S2: same perm, x0 := 0. Propagate must fix x3, x2, x1 all to 0.
func TestSymretope_S2_CascadesToAllZero(t *testing.T) {
	h := newFakeHost(4, map[int]fixing.Flags{0: fixing.Forced0})
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitReducedDomain, exit)

	for i := 0; i < 4; i++ {
		assert.Equal(t, fixing.Bit(0), mustValue(t, h.Current(i)), "x%d", i)
	}

	// idempotence (§8 invariant 3): re-running finds nothing further.
	c.OnVariableBoundChanged(0)
	exit, err = c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitDidNotFind, exit)
}

// S3: same perm, x3 := 1. Propagate fixes x0, x1, x2 all to 1.
func TestSymretope_S3_CascadesToAllOne(t *testing.T) {
	h := newFakeHost(4, map[int]fixing.Flags{3: fixing.Forced1})
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitReducedDomain, exit)

	for i := 0; i < 4; i++ {
		assert.Equal(t, fixing.Bit(1), mustValue(t, h.Current(i)), "x%d", i)
	}
}

// S4: n=6, perm=[1,0,3,2,5,4] (three 2-cycles). x1=1, x0=0 is infeasible
// (x0 must be >= x1 on that orbisack row), so Propagate reports a cutoff.
func TestSymretope_S4_ThreeTwoCycles_Infeasible(t *testing.T) {
	h := newFakeHost(6, map[int]fixing.Flags{0: fixing.Forced0, 1: fixing.Forced1})
	c, err := symretope.New(h, h, []int{1, 0, 3, 2, 5, 4})
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitCutoff, exit)
}

// S5: n=5, perm=[1,2,0,4,3], x2 := 1. Propagate fixes x0, x1 (from the
// 3-cycle) and leaves the 2-cycle (x3, x4) untouched.
func TestSymretope_S5_ThreeCycleCascadesTwoCycleUntouched(t *testing.T) {
	h := newFakeHost(5, map[int]fixing.Flags{2: fixing.Forced1})
	c, err := symretope.New(h, h, []int{1, 2, 0, 4, 3})
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitReducedDomain, exit)

	assert.Equal(t, fixing.Bit(1), mustValue(t, h.Current(0)))
	assert.Equal(t, fixing.Bit(1), mustValue(t, h.Current(1)))
	assert.False(t, h.Current(3).IsFixed())
	assert.False(t, h.Current(4).IsFixed())
}

// S6: n=4, perm=[1,2,3,0], x2 forced to 1. Propagation forces x0 := 1
// (x >= gamma^2(x) compares x0 against x2 first). Nothing else is implied:
// (1,0,1,0) and (1,1,1,1) are both lex-maximal completions, so a sound
// peek pass must leave x1 and x3 free rather than resolve them.
func TestSymretope_S6_PeekLeavesFreeVariablesFree(t *testing.T) {
	h := newFakeHost(4, map[int]fixing.Flags{2: fixing.Forced1})
	c, err := symretope.New(h, h, []int{1, 2, 3, 0}, symretope.WithPeek(true))
	require.NoError(t, err)
	require.NotNil(t, c)

	exit, err := c.Propagate(false)
	require.NoError(t, err)
	assert.Equal(t, symretope.ExitReducedDomain, exit)

	assert.Equal(t, fixing.Bit(1), mustValue(t, h.Current(0)))
	assert.False(t, h.Current(1).IsFixed(), "x1 is not implied")
	assert.False(t, h.Current(3).IsFixed(), "x3 is not implied")
}

// Every index maps to itself: the constraint is trivially satisfied and
// elided per spec.md §6.
func TestSymretope_New_AllFixedPoints_ReturnsNil(t *testing.T) {
	h := newFakeHost(3, nil)
	c, err := symretope.New(h, h, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSymretope_New_OutOfRangeIndex_Errors(t *testing.T) {
	h := newFakeHost(3, nil)
	_, err := symretope.New(h, h, []int{1, 5, 0})
	require.Error(t, err)
}

// Check/Enforce implement spec.md §4.9 directly: a lex-maximal complete
// assignment is feasible, its reverse is not.
func TestSymretope_Check_FeasibleAndInfeasibleSolutions(t *testing.T) {
	h := newFakeHost(4, nil)
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	allZero := newFakeHost(4, map[int]fixing.Flags{0: fixing.Forced0, 1: fixing.Forced0, 2: fixing.Forced0, 3: fixing.Forced0})
	feasible, _ := c.Check(allZero)
	assert.True(t, feasible)

	// x = (0,1,0,0): powers 1 and 2 both see (1,0) first (at i=1), but
	// power 3 (== gamma^1 applied forward, since -3 mod 4 = 1) sees
	// (x0,x1) = (0,1) at i=0 first, which violates x >= gamma^3(x).
	violating := newFakeHost(4, map[int]fixing.Flags{0: fixing.Forced0, 1: fixing.Forced1, 2: fixing.Forced0, 3: fixing.Forced0})
	feasible, power := c.Check(violating)
	assert.False(t, feasible)
	assert.Equal(t, 3, power)
}

// Parse/Format round-trip spec.md §6's textual form.
func TestParse_Format_RoundTrip(t *testing.T) {
	names, permMap, err := symretope.Parse("symretope([a,b,c,d],[1,2,3,0])")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
	assert.Equal(t, []int{1, 2, 3, 0}, permMap)

	h := newFakeHost(4, nil)
	c, err := symretope.New(h, h, permMap)
	require.NoError(t, err)
	require.NotNil(t, c)

	nameOf := func(i int) string { return names[i] }
	assert.Equal(t, "symretope([a,b,c,d],[1,2,3,0])", c.Format(nameOf))
}

func TestParse_Malformed_ReturnsErrMalformedText(t *testing.T) {
	_, _, err := symretope.Parse("not a symretope string")
	assert.ErrorIs(t, err, symretope.ErrMalformedText)
}

// Locks implements spec.md §5: every non-singleton-cycle member is locked
// both directions except its cycle's unique min (down-only) and max
// (up-only), in original index space.
func TestLocks_SingleFourCycle(t *testing.T) {
	h := newFakeHost(4, nil)
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	locks := c.Locks()
	require.Len(t, locks, 4)

	byIndex := make(map[int]symretope.LockDirection, 4)
	for _, l := range locks {
		byIndex[l.OriginalIndex] = l.Direction
	}
	assert.Equal(t, symretope.LockDownOnly, byIndex[0])
	assert.Equal(t, symretope.LockUpOnly, byIndex[3])
	assert.Equal(t, symretope.LockBoth, byIndex[1])
	assert.Equal(t, symretope.LockBoth, byIndex[2])
}

// ResolvePropagation (S2's replay): the surface-rule inference fixing x3:=0
// off power p=1 from x0:=0 reports x0 as the sole antecedent.
func TestResolvePropagation_S2Replay_ReportsX0(t *testing.T) {
	h := newFakeHost(4, map[int]fixing.Flags{0: fixing.Forced0})
	c, err := symretope.New(h, h, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.NotNil(t, c)

	idx := h.lastChangeIndex()
	exit, err := c.Propagate(false)
	require.NoError(t, err)
	require.Equal(t, symretope.ExitReducedDomain, exit)

	info, ok := h.inferred[3]
	require.True(t, ok, "x3 should have been committed with an InferInfo tag")

	resolved := c.ResolvePropagation(3, 0, info, idx, h)
	assert.True(t, resolved)
	assert.Contains(t, h.upper, 0)
}

// The monotone-ordered fast path processes cycles against an evolving
// equality power: with the 2-cycle (0 1) fully fixed to the pattern (1,0),
// only strict-inequality powers survive, so the 4-cycle (2 3 4 5) is
// propagated as "shift by mu = 2" and a fixing it surfaces must carry the
// full-permutation power 2 as its InferInfo — power 1 would replay the
// wrong comparison during conflict resolution. x4 = 1 forces x2 = 1 on
// that shifted comparison's first row.
func TestSymretope_FastPath_ScalesInferInfoByEqualityPower(t *testing.T) {
	h := newFakeHost(6, map[int]fixing.Flags{0: fixing.Forced1, 1: fixing.Forced0, 4: fixing.Forced1})
	c, err := symretope.New(h, h, []int{1, 0, 3, 4, 5, 2})
	require.NoError(t, err)
	require.NotNil(t, c)

	idx := h.lastChangeIndex()
	exit, err := c.Propagate(false)
	require.NoError(t, err)
	require.Equal(t, symretope.ExitReducedDomain, exit)

	assert.Equal(t, fixing.Bit(1), mustValue(t, h.Current(2)))

	info, ok := h.inferred[2]
	require.True(t, ok)
	assert.Equal(t, host.InferInfo(2), info)

	resolved := c.ResolvePropagation(2, 1, info, idx, h)
	assert.True(t, resolved)
	assert.Contains(t, h.lower, 4)
}
