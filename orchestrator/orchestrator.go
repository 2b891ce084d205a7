package orchestrator

import (
	"github.com/rs/zerolog"

	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/implication"
	"github.com/symretope/symretope-core/permutation"
	"github.com/symretope/symretope-core/queue"
)

// TrackedPowers resolves how many non-identity powers γ¹..γᴹ to track, per
// spec.md §6/§7's maxOrder option: the group order minus one, capped at
// maxOrder. maxOrder <= 0 means no cap. truncated reports whether the true
// group order exceeded the cap (or overflowed uint64 entirely), so the
// caller can log spec.md §7's required warning.
func TrackedPowers(perm *permutation.Permutation, maxOrder int) (m int, truncated bool) {
	if perm.OrderOverflowed() {
		if maxOrder <= 0 {
			return 0, true // nothing safe to track without an explicit cap
		}
		return maxOrder, true
	}
	full := perm.Order() - 1
	if maxOrder > 0 && full > uint64(maxOrder) {
		return maxOrder, true
	}
	return int(full), false
}

// Orchestrator is the general fixpoint driver of spec.md §4.5, parameterized
// over one base permutation and a fixed set of tracked powers 1..m.
type Orchestrator struct {
	perm *permutation.Permutation
	m    int

	trees []*implication.Tree
	fq    *queue.FixingQueue
	pq    *queue.PermQueue

	global fixing.BoundSource
	sink   Sink

	log zerolog.Logger
}

// New allocates an orchestrator tracking powers 1..m of perm, reading
// through global and committing derived fixings via sink.
func New(perm *permutation.Permutation, m int, global fixing.BoundSource, sink Sink) *Orchestrator {
	trees := make([]*implication.Tree, m)
	for k := range trees {
		trees[k] = implication.NewTree(perm.N())
	}
	o := &Orchestrator{
		perm:   perm,
		m:      m,
		trees:  trees,
		fq:     queue.NewFixingQueue(perm.N()),
		pq:     queue.NewPermQueue(m),
		global: global,
		sink:   sink,
		log:    zerolog.Nop(),
	}
	o.Reset(global)
	return o
}

// SetLogger installs a logger, propagated to every tree for its Panic-level
// invariant checks.
func (o *Orchestrator) SetLogger(l zerolog.Logger) {
	o.log = l
	for _, tr := range o.trees {
		tr.SetLogger(l)
	}
}

// Reset reinitializes every tree and empties both queues, reusing the
// arenas already allocated (spec.md §5: "arenas ... fully reset before
// returning; no cross-call aliasing"). Call before each propagate() pass,
// pointing global at that pass's bound source.
func (o *Orchestrator) Reset(global fixing.BoundSource) {
	o.global = global
	o.fq.Reset()
	o.pq.Reset()
	for k, tr := range o.trees {
		tr.Init(o.perm, k+1, global)
	}
}

// Run executes the fixpoint loop: advance every pending tree, drain
// surfaced fixings, react every tree to each one, and repeat until both
// queues are empty. Returns whether infeasibility was found and how many
// fixings were committed via sink before that point (or before the clean
// fixpoint).
func (o *Orchestrator) Run() (infeasible bool, numFixed int, err error) {
	for k := range o.trees {
		o.pq.Push(k)
	}

	for {
		for {
			p, ok := o.pq.Pop()
			if !ok {
				break
			}
			tr := o.trees[p]
			tr.Advance(o.fq)
			if tr.Infeasible() {
				return true, numFixed, nil
			}
		}

		if o.fq.Empty() {
			return false, numFixed, nil
		}

		for {
			i, v, power, ok := o.fq.Drain()
			if !ok {
				break
			}

			inf, cerr := o.sink.Commit(i, v, power)
			if cerr != nil {
				return false, numFixed, cerr
			}
			numFixed++
			if inf {
				return true, numFixed, nil
			}

			// Every tree is re-queued, not just structurally touched ones:
			// an applied fixing can violate a tree's completeness
			// preconditions at its stopped cursor position without that
			// tree holding any node on the fixed variable (spec.md §4.4).
			for k, tr := range o.trees {
				treeInfeasible, _ := tr.ApplyExternalFixing(i, v, o.fq)
				if treeInfeasible {
					return true, numFixed, nil
				}
				tr.Reopen()
				o.pq.Push(k)
			}
		}
	}
}
