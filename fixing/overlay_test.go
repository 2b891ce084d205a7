package fixing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symretope/symretope-core/fixing"
)

type constSource fixing.Flags

func (c constSource) Bound(int) fixing.Flags { return fixing.Flags(c) }

func TestOverlay_FallsThroughToBase(t *testing.T) {
	o := fixing.NewOverlay(3, constSource(fixing.Unfixed))
	assert.Equal(t, fixing.Unfixed, o.Get(1))
}

func TestOverlay_SetOverridesBase(t *testing.T) {
	o := fixing.NewOverlay(3, constSource(fixing.Unfixed))
	got := o.Set(1, 0)
	assert.Equal(t, fixing.Forced0, got)
	assert.Equal(t, fixing.Forced0, o.Get(1))
	assert.Equal(t, fixing.Unfixed, o.Get(0))
}

func TestOverlay_ContradictionDetected(t *testing.T) {
	o := fixing.NewOverlay(3, constSource(fixing.Unfixed))
	o.Set(1, 0)
	got := o.Set(1, 1)
	assert.True(t, got.IsContradiction())
}

func TestOverlay_ClearRestoresBase(t *testing.T) {
	o := fixing.NewOverlay(3, constSource(fixing.Unfixed))
	o.Set(0, 1)
	o.Set(2, 0)
	require.Equal(t, 2, o.Depth())
	o.Clear()
	assert.Equal(t, 0, o.Depth())
	assert.Equal(t, fixing.Unfixed, o.Get(0))
	assert.Equal(t, fixing.Unfixed, o.Get(2))
}

func TestOverlay_UseBaseBoundsDisabled(t *testing.T) {
	o := fixing.NewOverlay(3, constSource(fixing.Forced1))
	o.SetUseBaseBounds(false)
	assert.Equal(t, fixing.Unfixed, o.Get(0))
	o.Set(0, 0)
	assert.Equal(t, fixing.Forced0, o.Get(0))
}

func TestOverlay_CopyFrom(t *testing.T) {
	src := fixing.NewOverlay(4, constSource(fixing.Unfixed))
	src.Set(1, 1)
	src.Set(3, 0)

	dst := fixing.NewOverlay(4, constSource(fixing.Unfixed))
	dst.Set(2, 1) // pre-existing state must be cleared first

	dst.CopyFrom(src)
	assert.Equal(t, fixing.Unfixed, dst.Get(2))
	assert.Equal(t, fixing.Forced1, dst.Get(1))
	assert.Equal(t, fixing.Forced0, dst.Get(3))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			for v := fixing.Bit(0); v <= 1; v++ {
				code := fixing.Encode(n, i, v)
				gi, gv := fixing.Decode(n, code)
				assert.Equal(t, i, gi)
				assert.Equal(t, v, gv)
			}
		}
	}
}

func TestOverlay_UnsetMidStack(t *testing.T) {
	o := fixing.NewOverlay(4, constSource(fixing.Unfixed))
	o.Set(0, 1)
	o.Set(1, 0)
	o.Set(2, 1)
	require.Equal(t, 3, o.Depth())

	// Withdrawing a mid-stack entry must not disturb its neighbors.
	o.Unset(1)
	assert.Equal(t, 2, o.Depth())
	assert.Equal(t, fixing.Unfixed, o.Get(1))
	assert.Equal(t, fixing.Forced1, o.Get(0))
	assert.Equal(t, fixing.Forced1, o.Get(2))

	// Unset removes only the most recent entry for its index.
	o.Set(0, 1)
	require.Equal(t, 3, o.Depth())
	o.Unset(0)
	assert.Equal(t, fixing.Forced1, o.Get(0))
	o.Unset(0)
	assert.Equal(t, fixing.Unfixed, o.Get(0))

	o.Unset(3) // no entry: no-op
	assert.Equal(t, 1, o.Depth())
}
