package implication

import (
	"github.com/symretope/symretope-core/arena"
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/queue"
)

// ApplyExternalFixing reacts to the host (or this module's own orchestrator)
// committing variable := v outside of this tree's own forward construction,
// per spec.md §4.4's "reaction to external fixings": visit every node keyed
// on variable (there are at most two — one per side, since a variable can
// appear once as a root-level Conditional on one side and once as that
// side's forced sibling consequence on the other). A node whose recorded
// fixing matches v is now unconditionally true and is spliced out, promoting
// its child into its place. A node whose recorded fixing is the opposite of
// v is now impossible and triggers the collapse rule from that node. Either
// reaction can itself make root settle to a single Necessary child, so any
// newly surfaced fixing is pushed into fq tagged with this tree's power,
// exactly as during Advance.
//
// touched reports whether this tree held any node keyed on variable. The
// orchestrator re-queues every tree after an applied fixing regardless
// (spec.md §4.4: the completeness preconditions may now be violated even
// for a tree the fixing never structurally touched), so touched is
// informational.
//
// Returns (infeasible, touched).
func (t *Tree) ApplyExternalFixing(variable int, v fixing.Bit, fq *queue.FixingQueue) (infeasible, touched bool) {
	t.curFQ = fq
	t.applyingVar = variable
	t.applyingVal = v
	defer func() {
		t.curFQ = nil
		t.applyingVar = -1
	}()

	for creationSide := 0; creationSide < 2; creationSide++ {
		slot := arena.Slot(variable, creationSide)
		if !t.pool.Live(slot) {
			continue
		}
		touched = true
		s := int(t.ownerSide[slot])
		node := t.pool.Get(slot)
		if node.Value == v {
			t.spliceConfirmed(s, slot)
		} else {
			t.collapseFrom(s, slot)
			if t.infeasible {
				return true, touched
			}
		}
	}
	return t.infeasible, touched
}

// Reopen clears the Complete flag after an external reaction may have
// changed this tree's shape, letting Advance resume from the current
// cursor. Reopen itself never rewinds the cursor: every node already built
// for a variable the orchestrator has since fixed is corrected in place by
// ApplyExternalFixing itself (splice or collapse). The one rewind happens
// in spliceConfirmed, when the tree becomes empty again.
func (t *Tree) Reopen() {
	t.complete = false
}

// spliceConfirmed removes a now-externally-confirmed node from its chain,
// reconnecting its predecessor directly to its child (if any), and — if the
// node was a root-level branch — discards its sibling's whole subtree,
// since the other hypothesis is now dead along with the branching itself.
// The spliced node's overlay entry is withdrawn; reads of its variable fall
// through to the real bound, which now carries the same value.
//
// Splicing the last remaining node re-arms the fork: an empty root is once
// again the "only moment both leaves are free" of spec.md §4.4's (*,*) row,
// which is how a paused pure-Necessary chain (see step) eventually resumes
// as a branching tree. The cursor is rewound to row 0 at that point, so the
// empty tree is rebuilt from the real bounds alone: rows already passed were
// read under hypotheses that are gone now.
func (t *Tree) spliceConfirmed(s int, slot int32) {
	node := t.pool.Get(slot)
	pred := node.Pred
	child := node.Child

	if pred == arena.None {
		other := 1 - s
		if t.sides[other].head != arena.None {
			t.freeChainFromLeaf(other, t.sides[other].head)
			t.sides[other] = side{head: arena.None, leaf: arena.None, alive: false, overlay: t.sides[other].overlay}
		}
		t.sides[s].head = child
		if child != arena.None {
			t.pool.Get(child).Pred = arena.None
		}
	} else {
		parent := t.pool.Get(pred)
		parent.Child = child
		if child != arena.None {
			t.pool.Get(child).Pred = pred
		}
	}

	if t.sides[s].leaf == slot {
		t.sides[s].leaf = pred
	}
	t.freeNode(s, slot)

	if t.sides[0].head == arena.None && t.sides[1].head == arena.None {
		t.started = false
		t.cursor = 0
		t.sides[0].alive = true
		t.sides[1].alive = true
	}

	t.maybeSurface()
}
