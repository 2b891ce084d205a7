package implication

import (
	"github.com/symretope/symretope-core/arena"
	"github.com/symretope/symretope-core/fixing"
)

// collapseFrom is the (0,1) collapse rule of spec.md §4.4, generalized to
// start from an arbitrary node rather than always the side's current tail:
// ApplyExternalFixing needs to collapse from a mid-chain node whose
// recorded fixing a newly-applied external fixing just contradicted, not
// only from the live leaf discovered during ordinary forward construction.
//
// Everything strictly below from is discarded first (it assumed from's now
// impossible value), then the walk proceeds from from itself toward root,
// deleting Necessary nodes until it reaches the nearest Conditional
// ancestor A (or falls off the top, meaning the whole side had no
// Conditional ancestor at all).
func (t *Tree) collapseFrom(s int, from int32) {
	if child := t.pool.Get(from).Child; child != arena.None {
		t.freeChainFromLeaf(s, child)
	}
	t.sides[s].leaf = from

	cur := from
	for cur != arena.None && t.pool.Get(cur).Kind == arena.Necessary {
		next := t.pool.Get(cur).Pred
		t.freeNode(s, cur)
		cur = next
	}

	if cur == arena.None {
		// The whole side was a pure Necessary chain with no Conditional
		// ancestor: there is no hypothesis left to blame, so the
		// constraint itself is infeasible under the current real bounds.
		t.sides[s].head = arena.None
		t.sides[s].leaf = arena.None
		t.infeasible = true
		return
	}

	t.collapseAt(s, cur)
}

// freeNode releases one node and withdraws its entry from side s's overlay.
// Undo is by variable, not by stack position: after a rule (b) merge the
// surviving chain's node order no longer matches its overlay's push order,
// so positional pops could land on the wrong entry.
func (t *Tree) freeNode(s int, slot int32) {
	t.sides[s].overlay.Unset(int(t.pool.Get(slot).Variable))
	t.ownerSide[slot] = -1
	t.pool.Free(slot)
}

// freeChainFromLeaf frees every node from fromSlot down to the side's
// current leaf (inclusive).
func (t *Tree) freeChainFromLeaf(s int, fromSlot int32) {
	cur := fromSlot
	for cur != arena.None {
		next := t.pool.Get(cur).Child
		t.freeNode(s, cur)
		cur = next
	}
}

// collapseAt applies the rule once the nearest Conditional ancestor A
// (slot aSlot, on side s) has been found and everything below it already
// freed.
func (t *Tree) collapseAt(s int, aSlot int32) {
	if aSlot != t.sides[s].head {
		// A is a conditional created by a later (1,*)/(*,0) row, not a
		// root-level branch: such nodes never have a sibling (forking
		// happens exactly once, at the root). Rule (a).
		t.replaceWithOpposite(s, aSlot)
		return
	}

	other := 1 - s
	if t.sides[other].head == arena.None {
		// A is root-level but has no sibling (single-chain tree, or the
		// sibling already collapsed away earlier). Rule (a).
		t.replaceWithOpposite(s, aSlot)
		return
	}

	// Rule (b): A's sibling B exists at root level. By construction (see
	// fork) B always has exactly one Necessary child C at the moment B
	// was created; B may since have grown further below C, which travels
	// with it.
	bSlot := t.sides[other].head
	bNode := t.pool.Get(bSlot)
	cSlot := bNode.Child
	if cSlot == arena.None {
		t.assertf(false, "collapseAt: sibling has no child")
		return
	}
	cNode := t.pool.Get(cSlot)
	oldCChild := cNode.Child

	t.freeNode(s, aSlot)

	// Sibling promotion: C rises to root level, B is demoted one step to
	// become C's child, and whatever C used to point to becomes B's
	// child instead.
	cNode.Pred = arena.None
	cNode.Child = bSlot
	bNode.Pred = cSlot
	bNode.Child = oldCChild
	if oldCChild != arena.None {
		t.pool.Get(oldCChild).Pred = bSlot
	}

	otherOverlay := t.sides[other].overlay
	otherLeaf := t.sides[other].leaf
	if oldCChild == arena.None {
		// C was the old tail; after the swap the demoted B is.
		otherLeaf = bSlot
	}
	t.sides[s] = side{head: arena.None, leaf: arena.None, alive: false, overlay: t.sides[s].overlay}
	t.sides[other] = side{head: cSlot, leaf: otherLeaf, alive: t.sides[other].alive, overlay: otherOverlay}

	// C and B keep belonging to side `other` (nothing moved slots: the
	// merged chain stays tracked under its original side index). Every
	// node strictly below the promoted C — down to the chain's current
	// leaf — was created under that same side and must be retagged too,
	// not just C and B themselves, or a later collapseFrom/freeChainFromLeaf
	// walking through them would withdraw entries from the wrong (dead)
	// side's overlay.
	t.ownerSide[cSlot] = int8(other)
	t.ownerSide[bSlot] = int8(other)
	for cur := oldCChild; cur != arena.None; cur = t.pool.Get(cur).Child {
		t.ownerSide[cur] = int8(other)
	}

	t.maybeSurface()
}

// replaceWithOpposite implements rule (a): A survives at its current
// position but becomes a Necessary node recording the opposite value, with
// everything below it pruned (already done by the caller). A's own overlay
// entry is withdrawn before the opposite value is recorded — narrowing on
// top of the dead hypothesis would land on Contradiction, not the opposite.
// The side stops extending: the opposite value turns the row that created A
// into a (1,0) row, which decides the comparison along this path.
func (t *Tree) replaceWithOpposite(s int, slot int32) {
	node := t.pool.Get(slot)
	opposite := fixing.Bit(1 - node.Value)
	node.Kind = arena.Necessary
	node.Value = opposite
	node.Child = arena.None

	t.sides[s].overlay.Unset(int(node.Variable))
	t.sides[s].leaf = slot
	t.sides[s].alive = false
	t.sides[s].overlay.Set(int(node.Variable), opposite)

	t.maybeSurface()
}
