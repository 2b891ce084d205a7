// overlay.go — the virtual-fixings overlay of spec.md §4.2.
//
// Grounded on the teacher's core.Graph clone/clear idioms (core's
// CloneEmpty/Clear carry forward only the state that must survive a reset)
// but restructured around a push/pop undo stack rather than a fresh map
// allocation per call: spec.md requires Clear to cost proportional to stack
// depth, not n, since peek re-overlays on every impactful entry.
package fixing

// overlayEntry records what to restore for one index on undo.
type overlayEntry struct {
	index   int
	hadPrev bool
	prev    Flags
}

// Overlay is a sparse, stack-undoable override of a dense index domain. A
// read for index i returns the overlaid value if one was pushed; otherwise
// falls through to base (if UseBaseBounds is true) or Unfixed.
//
// Overlay is not safe for concurrent use; per spec.md §5 the whole
// propagator is single-threaded.
type Overlay struct {
	n             int
	flags         []Flags
	isSet         []bool
	stack         []overlayEntry
	base          BoundSource
	useBaseBounds bool
}

// NewOverlay allocates an overlay over a dense domain of size n. base may be
// nil iff UseBaseBounds is never enabled.
func NewOverlay(n int, base BoundSource) *Overlay {
	return &Overlay{
		n:             n,
		flags:         make([]Flags, n),
		isSet:         make([]bool, n),
		base:          base,
		useBaseBounds: true,
	}
}

// SetUseBaseBounds toggles whether Get falls through to the base
// BoundSource for indices with no overlay entry. The peek driver disables
// this (spec.md §4.7: "useBaseBounds = false") so a hypothetical run sees
// only what it has explicitly overlaid plus Unfixed elsewhere.
func (o *Overlay) SetUseBaseBounds(v bool) { o.useBaseBounds = v }

// Get returns the effective Flags for index i: the overlay value if set,
// else the base bound if UseBaseBounds, else Unfixed. Never allocates.
func (o *Overlay) Get(i int) Flags {
	if o.isSet[i] {
		return o.flags[i]
	}
	if o.useBaseBounds && o.base != nil {
		return o.base.Bound(i)
	}
	return Unfixed
}

// Bound implements BoundSource, letting one Overlay sit underneath another.
func (o *Overlay) Bound(i int) Flags { return o.Get(i) }

// Set narrows index i to value v and returns the resulting Flags. The
// caller must check the result for IsContradiction(): a contradictory set
// (narrowing against an already-opposite forced value) is reported, not
// hidden, per spec.md §4.2. Pushes an undo entry even when the narrowed
// value equals the prior one, since spec.md only guarantees Set is cheap
// to repeat, not that it skips the stack.
func (o *Overlay) Set(i int, v Bit) Flags {
	cur := o.Get(i)
	next := cur.Narrow(v)

	o.stack = append(o.stack, overlayEntry{index: i, hadPrev: o.isSet[i], prev: o.flags[i]})
	o.flags[i] = next
	o.isSet[i] = true

	return next
}

// Clear pops every pushed entry, restoring the overlay to empty. Cost is
// O(stack depth), not O(n).
func (o *Overlay) Clear() {
	for k := len(o.stack) - 1; k >= 0; k-- {
		e := o.stack[k]
		o.isSet[e.index] = e.hadPrev
		o.flags[e.index] = e.prev
	}
	o.stack = o.stack[:0]
}

// Depth returns the number of pending undo entries.
func (o *Overlay) Depth() int { return len(o.stack) }

// Unset removes the most recent entry pushed for index i, restoring the
// value that entry displaced, and leaves every other entry in place. The
// implication-tree builder undoes by variable rather than by stack position:
// a splice removes one mid-chain node (and so one mid-stack entry) without
// disturbing its neighbors, which a purely positional pop could not
// express. No-op if i has no entry.
func (o *Overlay) Unset(i int) {
	for k := len(o.stack) - 1; k >= 0; k-- {
		if o.stack[k].index != i {
			continue
		}
		e := o.stack[k]
		o.isSet[e.index] = e.hadPrev
		o.flags[e.index] = e.prev
		o.stack = append(o.stack[:k], o.stack[k+1:]...)
		return
	}
}

// CopyFrom clears this overlay, then walks other's stack in push order and,
// for each entry, sets that index to other's current value. The resulting
// Flags match other's for every overlaid index. The undo history is not
// copied: each replayed entry carries other's final value rather than the
// value at that point, and a contradictory index adds two entries per
// entry of other's.
func (o *Overlay) CopyFrom(other *Overlay) {
	o.Clear()
	for _, e := range other.stack {
		idx := e.index
		v, ok := other.flags[idx].Value()
		if !ok {
			// A contradictory or otherwise non-singleton overlay entry:
			// replay both narrowing steps so the resulting Flags matches
			// exactly (Contradiction replays as Narrow(0) then Narrow(1),
			// or vice versa; either order yields 0 once Unfixed starts).
			o.Set(idx, 0)
			o.Set(idx, 1)
			continue
		}
		o.Set(idx, v)
	}
}
