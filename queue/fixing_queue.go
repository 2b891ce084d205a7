package queue

import "github.com/symretope/symretope-core/fixing"

// noPower is the sentinel "no permutation caused this" antecedent tag; it
// never equals a real tracked-power index (those are >= 1) or the peek
// sentinel (-1), so a caller can tell an empty slot from a real one.
const noPower = -(1 << 30)

// FixingQueue is the stack of pending (variable, value) assertions of
// spec.md §3: a membership bitmap for O(1) dedup/contradiction detection,
// plus per-index antecedent tagging (which permutation power produced the
// pending fixing) for later conflict analysis.
type FixingQueue struct {
	n        int
	pending  []fixing.Bit
	power    []int
	inQueue  []bool
	stack    []int // encoded (i, v) pairs, push/pop order
}

// NewFixingQueue allocates a queue over a dense domain of size n.
func NewFixingQueue(n int) *FixingQueue {
	q := &FixingQueue{
		n:       n,
		pending: make([]fixing.Bit, n),
		power:   make([]int, n),
		inQueue: make([]bool, n),
	}
	for i := range q.power {
		q.power[i] = noPower
	}
	return q
}

// Enqueue requests that variable i be fixed to v, attributing the request
// to antecedent power (a tracked-power index, or host.PeekInferInfo for a
// peek-driven request). Three outcomes, matching spec.md §4.3:
//
//   - Already pending with the same value: no-op, conflict=false.
//   - Already pending with the opposite value: conflict=true; conflictPower
//     is the power recorded for the earlier, still-pending request, so the
//     caller can hand both powers to conflict analysis.
//   - Not pending: recorded and pushed, conflict=false.
func (q *FixingQueue) Enqueue(i int, v fixing.Bit, power int) (conflict bool, conflictPower int) {
	if q.inQueue[i] {
		if q.pending[i] == v {
			return false, 0
		}
		return true, q.power[i]
	}

	q.inQueue[i] = true
	q.pending[i] = v
	q.power[i] = power
	q.stack = append(q.stack, fixing.Encode(q.n, i, v))

	return false, 0
}

// Drain pops one (variable, value, antecedent power) triple, in LIFO order
// per spec.md §3's stack-shaped Fixing Queue. ok is false once empty.
func (q *FixingQueue) Drain() (i int, v fixing.Bit, power int, ok bool) {
	if len(q.stack) == 0 {
		return 0, 0, 0, false
	}

	top := len(q.stack) - 1
	code := q.stack[top]
	q.stack = q.stack[:top]

	i, v = fixing.Decode(q.n, code)
	power = q.power[i]
	q.inQueue[i] = false
	q.power[i] = noPower

	return i, v, power, true
}

// Empty reports whether the queue has no pending entries.
func (q *FixingQueue) Empty() bool { return len(q.stack) == 0 }

// Len reports the number of pending entries.
func (q *FixingQueue) Len() int { return len(q.stack) }

// Pending reports whether variable i currently has a pending request and,
// if so, its value and antecedent power.
func (q *FixingQueue) Pending(i int) (v fixing.Bit, power int, ok bool) {
	if !q.inQueue[i] {
		return 0, 0, false
	}
	return q.pending[i], q.power[i], true
}

// Reset empties the queue for reuse across propagate() calls without
// reallocating its backing arrays.
func (q *FixingQueue) Reset() {
	for _, code := range q.stack {
		i, _ := fixing.Decode(q.n, code)
		q.inQueue[i] = false
		q.power[i] = noPower
	}
	q.stack = q.stack[:0]
}
