package conflict

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/implication"
	"github.com/symretope/symretope-core/permutation"
	"github.com/symretope/symretope-core/queue"
)

func converse(v fixing.Bit) fixing.Bit {
	if v == 0 {
		return 1
	}
	return 0
}

// historicalRecorder adapts host.Bounds, queried as of a fixed ChangeIndex,
// into a fixing.BoundSource, recording each fixed value it returns into sink
// exactly once per variable — spec.md §4.8: "every bound read along the way
// is added to the conflict as either a lower-bound antecedent (if seen as 1)
// or upper-bound antecedent (if seen as 0)."
type historicalRecorder struct {
	bounds host.Bounds
	idx    host.ChangeIndex
	sink   host.ConflictSink
	seen   map[int]bool
}

func (h *historicalRecorder) Bound(i int) fixing.Flags {
	f := h.bounds.AtChange(i, h.idx)
	if v, ok := f.Value(); ok && !h.seen[i] {
		h.seen[i] = true
		if v == 1 {
			h.sink.AddLowerBound(i, h.idx)
		} else {
			h.sink.AddUpperBound(i, h.idx)
		}
	}
	return f
}

// ResolveSurface implements spec.md §4.8's inferinfo >= 0 case: variable k
// was fixed to v by tracked power p's surface rule. It replays power p's
// implication-tree construction under bounds as they stood at idx, with k
// itself seeded to the converse of v (the hypothesis the original
// propagation refuted), and reports every bound the replay consults to sink
// as it goes.
//
// Returns whether the replay reached the same contradiction the original
// propagation did. It always should: the caller only invokes this for a
// fixing this package's own power-p construction actually produced. A false
// return means p, k, v or idx do not describe a real prior inference —
// a caller/host bug, not a normal outcome.
func ResolveSurface(perm *permutation.Permutation, p int, k int, v fixing.Bit, idx host.ChangeIndex, bounds host.Bounds, sink host.ConflictSink) bool {
	rec := &historicalRecorder{bounds: bounds, idx: idx, sink: sink, seen: make(map[int]bool)}

	overlay := fixing.NewOverlay(perm.N(), rec)
	overlay.Set(k, converse(v))

	tree := implication.NewTree(perm.N())
	tree.Init(perm, p, overlay)

	// A single-tree rendition of the orchestrator's fixpoint loop: the
	// original inference may have taken several surface-commit-splice
	// rounds, so the replay must feed surfaced fixings back into the
	// overlay and the tree the same way rather than hope one forward
	// sweep suffices.
	fq := queue.NewFixingQueue(perm.N())
	for {
		tree.Advance(fq)
		if tree.Infeasible() {
			return true
		}
		if fq.Empty() {
			return false
		}
		for {
			i, val, _, ok := fq.Drain()
			if !ok {
				break
			}
			overlay.Set(i, val)
			infeasible, _ := tree.ApplyExternalFixing(i, val, fq)
			if infeasible {
				return true
			}
			tree.Reopen()
		}
	}
}
