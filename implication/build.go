package implication

import (
	"github.com/symretope/symretope-core/arena"
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/queue"
)

// Advance grows the tree forward from its current cursor position, pushing
// any surfaced fixings into fq tagged with this tree's power, until the
// cursor reaches n, a completeness precondition ends construction early,
// infeasibility is discovered, or the tree must pause for the orchestrator
// (see step). It is safe to call repeatedly (e.g. once per orchestrator
// fixpoint round) — once Complete or Infeasible, it is a no-op.
func (t *Tree) Advance(fq *queue.FixingQueue) {
	if t.complete || t.satisfied || t.infeasible {
		return
	}
	t.curFQ = fq
	defer func() { t.curFQ = nil }()

	for t.cursor < t.n {
		i := t.cursor
		if t.canStopAt(i) {
			t.complete = true
			return
		}
		j := t.perm.Apply(i, -t.power)
		if i != j {
			paused := t.step(i, j)
			if t.infeasible || t.satisfied || paused {
				// A paused tree keeps its cursor on the blocking row;
				// it resumes there once the queued fixings it is
				// waiting on have been applied and spliced away. A
				// satisfied tree is done for the whole call.
				return
			}
		}
		t.cursor++
	}
	t.complete = true
}

// canStopAt implements spec.md §4.4's completeness preconditions: the
// cursor may halt at position i while still guaranteeing the surfaced
// fixing set is closed once (2) every rooted path passes through a
// conditional node, (3) the current xi is not forced-0 and x_{σ⁻¹(i)} is
// not forced-1 under the real bounds, and (4) both σ(i) > i and σ⁻¹(i) > i.
// Separately, once every existing side has been killed by a (1,0) row,
// no future position can touch the tree at all, which is also a stop.
func (t *Tree) canStopAt(i int) bool {
	if !t.started {
		return false
	}

	anyAlive := false
	for s := 0; s < 2; s++ {
		if t.sides[s].head == arena.None {
			continue
		}
		if t.sides[s].alive {
			anyAlive = true
		}
		if !t.sideHasConditional(s) {
			// A pure Necessary chain still has a pending surfaced
			// fixing; halting before it is spliced away would leave
			// the closure claim unearned.
			return false
		}
	}
	if !anyAlive {
		return true
	}

	j := t.perm.Apply(i, -t.power)
	if t.global.Bound(i) == fixing.Forced0 || t.global.Bound(j) == fixing.Forced1 {
		return false
	}
	return t.perm.Apply(i, t.power) > i && j > i
}

// sideHasConditional reports whether side s's chain contains at least one
// Conditional node. Chains are short and this is off the per-row hot path
// (only canStopAt and the pause decision consult it).
func (t *Tree) sideHasConditional(s int) bool {
	for cur := t.sides[s].head; cur != arena.None; cur = t.pool.Get(cur).Child {
		if t.pool.Get(cur).Kind == arena.Conditional {
			return true
		}
	}
	return false
}

// step processes one cursor row. The returned paused flag is the lock-step
// handshake of spec.md §4.5: a (*,*) row on a tree whose only structure is
// a pure Necessary chain cannot fork yet (forking is legal only at an empty
// root) and must not be skipped either (the fork becomes legal once the
// chain's already-surfaced fixings are committed and spliced away), so the
// builder yields to the orchestrator without advancing the cursor.
func (t *Tree) step(i, j int) (paused bool) {
	if !t.started {
		t.stepUnstarted(i, j)
		return false
	}
	for s := 0; s < 2; s++ {
		if t.sides[s].head != arena.None && t.sides[s].alive {
			if t.stepSide(s, i, j) {
				return true
			}
			if t.infeasible {
				return false
			}
		}
	}
	return false
}

// stepUnstarted handles one cursor position while root still has zero
// children, i.e. the only moment the (*,*) row — a genuine fork — can fire.
func (t *Tree) stepUnstarted(i, j int) {
	fi := t.global.Bound(i)
	fj := t.global.Bound(j)
	if fi.IsContradiction() || fj.IsContradiction() {
		// A contradictory real bound means no assignment exists at all.
		t.infeasible = true
		return
	}

	switch {
	case fi == fixing.Forced0 && fj == fixing.Forced0, fi == fixing.Forced1 && fj == fixing.Forced1:
		// no-op: both sides agree already.
	case fi == fixing.Forced1 && fj == fixing.Forced0:
		// The comparison against this power is strictly decided in x's
		// favor by real bounds: every later row is irrelevant, and — since
		// bounds only ever narrow within a propagation call — stays so.
		// satisfied survives Reopen, unlike complete.
		t.satisfied = true
		t.complete = true
	case fi == fixing.Forced0 && fj == fixing.Forced1:
		// a hard contradiction of real bounds with no hypothesis to blame.
		t.infeasible = true
	case fi == fixing.Forced0 && fj == fixing.Unfixed:
		t.createFirstChild(arena.Necessary, j, 0)
	case fi == fixing.Unfixed && fj == fixing.Forced1:
		t.createFirstChild(arena.Necessary, i, 1)
	case fi == fixing.Forced1 && fj == fixing.Unfixed:
		t.createFirstChild(arena.Conditional, j, 1)
	case fi == fixing.Unfixed && fj == fixing.Forced0:
		t.createFirstChild(arena.Conditional, i, 0)
	case fi == fixing.Unfixed && fj == fixing.Unfixed:
		t.fork(i, j)
	}
}

// stepSide handles one cursor position for a single already-started,
// still-alive side, consulting that side's own overlaid view of (xi, xj).
func (t *Tree) stepSide(s, i, j int) (paused bool) {
	ov := t.sides[s].overlay
	fi := ov.Get(i)
	fj := ov.Get(j)
	if fi.IsContradiction() || fj.IsContradiction() {
		t.infeasible = true
		return false
	}

	switch {
	case fi == fixing.Forced0 && fj == fixing.Forced0, fi == fixing.Forced1 && fj == fixing.Forced1:
		// no-op.
	case fi == fixing.Forced1 && fj == fixing.Forced0:
		t.sides[s].alive = false
	case fi == fixing.Forced0 && fj == fixing.Forced1:
		t.collapseFrom(s, t.sides[s].leaf)
	case fi == fixing.Forced0 && fj == fixing.Unfixed:
		t.appendChild(s, arena.Necessary, j, 0)
	case fi == fixing.Unfixed && fj == fixing.Forced1:
		t.appendChild(s, arena.Necessary, i, 1)
	case fi == fixing.Forced1 && fj == fixing.Unfixed:
		t.appendChild(s, arena.Conditional, j, 1)
	case fi == fixing.Unfixed && fj == fixing.Forced0:
		t.appendChild(s, arena.Conditional, i, 0)
	case fi == fixing.Unfixed && fj == fixing.Unfixed:
		if !t.sideHasConditional(s) {
			return true
		}
		// Under a hypothesis, a (*,*) row constrains only xi >= xj,
		// which a single fixing cannot record and a non-root fork is
		// not allowed to. The row is skipped; completeness for this
		// side resumes with later rows that do touch overlaid state.
	}
	return false
}

// createFirstChild installs root's very first (and, for now, only) child on
// side 0, used for every non-fork outcome of stepUnstarted.
func (t *Tree) createFirstChild(kind arena.Kind, variable int, value fixing.Bit) {
	slot := arena.Slot(variable, 0)
	t.pool.Put(slot, arena.Node{Kind: kind, Pred: arena.None, Child: arena.None, Variable: int32(variable), Value: value})
	t.ownerSide[slot] = 0
	t.sides[0].head = slot
	t.sides[0].leaf = slot
	t.sides[0].alive = true
	t.started = true
	t.sides[0].overlay.Set(variable, value)
	t.maybeSurface()
}

// fork installs the unique two-child branching row of spec.md §4.4: root
// gains exactly two Conditional children, each with one forced Necessary
// child recording the other index's forced consequence.
func (t *Tree) fork(i, j int) {
	s0cond := arena.Slot(i, 0)
	s0necc := arena.Slot(j, 0)
	s1cond := arena.Slot(j, 1)
	s1necc := arena.Slot(i, 1)

	t.pool.Put(s0cond, arena.Node{Kind: arena.Conditional, Pred: arena.None, Child: s0necc, Variable: int32(i), Value: 0})
	t.pool.Put(s0necc, arena.Node{Kind: arena.Necessary, Pred: s0cond, Child: arena.None, Variable: int32(j), Value: 0})
	t.pool.Put(s1cond, arena.Node{Kind: arena.Conditional, Pred: arena.None, Child: s1necc, Variable: int32(j), Value: 1})
	t.pool.Put(s1necc, arena.Node{Kind: arena.Necessary, Pred: s1cond, Child: arena.None, Variable: int32(i), Value: 1})

	t.ownerSide[s0cond] = 0
	t.ownerSide[s0necc] = 0
	t.ownerSide[s1cond] = 1
	t.ownerSide[s1necc] = 1

	t.sides[0].head, t.sides[0].leaf = s0cond, s0necc
	t.sides[1].head, t.sides[1].leaf = s1cond, s1necc
	t.sides[0].alive = true
	t.sides[1].alive = true
	t.sides[0].overlay.Set(i, 0)
	t.sides[0].overlay.Set(j, 0)
	t.sides[1].overlay.Set(j, 1)
	t.sides[1].overlay.Set(i, 1)

	t.started = true
	// root has two children: never a surface candidate.
}

// appendChild extends side s's chain with one new tail node.
func (t *Tree) appendChild(s int, kind arena.Kind, variable int, value fixing.Bit) {
	parentSlot := t.sides[s].leaf
	slot := arena.Slot(variable, s)
	t.assertf(!t.pool.Live(slot), "appendChild: slot already live")

	t.pool.Put(slot, arena.Node{Kind: kind, Pred: parentSlot, Child: arena.None, Variable: int32(variable), Value: value})
	t.ownerSide[slot] = int8(s)

	parent := t.pool.Get(parentSlot)
	parent.Child = slot
	t.sides[s].leaf = slot
	t.sides[s].overlay.Set(variable, value)

	t.maybeSurface()
}

// maybeSurface implements the surface rule: whenever root has settled to
// exactly one child and that child is Necessary, its fixing is forced
// unconditionally and must be pushed to the fixing queue. Safe to call
// after every structural mutation — FixingQueue.Enqueue dedups repeats, and
// the one fixing currently being applied from outside is skipped rather
// than echoed back. An opposite-value conflict reported by the queue means
// two powers derived contradictory fixings: local infeasibility.
func (t *Tree) maybeSurface() {
	children := 0
	var only int32 = arena.None
	for s := 0; s < 2; s++ {
		if t.sides[s].head != arena.None {
			children++
			only = t.sides[s].head
		}
	}
	if children != 1 {
		return
	}
	node := t.pool.Get(only)
	if node.Kind != arena.Necessary || t.curFQ == nil {
		return
	}
	if int(node.Variable) == t.applyingVar && node.Value == t.applyingVal {
		return // the fixing being reacted to; re-surfacing it is noise
	}
	if conflict, _ := t.curFQ.Enqueue(int(node.Variable), node.Value, t.power); conflict {
		t.infeasible = true
	}
}
