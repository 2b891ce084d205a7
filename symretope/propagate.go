package symretope

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/orchestrator"
	"github.com/symretope/symretope-core/peek"
	"github.com/symretope/symretope-core/permutation"
)

// ExitStatus is propagate()'s result, per spec.md §6's four exit conditions.
type ExitStatus int

const (
	// ExitDidNotRun: the constraint's affected-entry flag was clear, so
	// propagation was skipped entirely.
	ExitDidNotRun ExitStatus = iota
	// ExitDidNotFind: propagation ran to a fixpoint with no new fixings.
	ExitDidNotFind
	// ExitReducedDomain: at least one fixing was committed.
	ExitReducedDomain
	// ExitCutoff: infeasibility was found; the branch should be pruned.
	ExitCutoff
)

// OnVariableBoundChanged is the event callback spec.md §9 describes: "the
// core exposes a callback onVariableBoundChanged(varIndex) that sets one
// boolean per constraint." originalIndex is in the host's index space;
// indices this constraint compacted out (fixed points) are silently
// ignored, since they can never again participate in propagation.
func (c *Constraint) OnVariableBoundChanged(originalIndex int) {
	ci := c.compactOf[originalIndex]
	if ci < 0 {
		return
	}
	c.affected[ci] = true
	c.dirty = true
}

// InitSol marks every entry affected, forcing the next propagate() call to
// do a full pass — the solver-lifecycle "init-sol" callback of spec.md §6.
func (c *Constraint) InitSol() {
	c.dirty = true
	for i := range c.affected {
		c.affected[i] = true
	}
}

// Propagate runs this constraint's fixpoint (spec.md §4.5/§4.6), optionally
// followed by the peek driver (spec.md §4.7), against the host handle fixed
// at construction. inProbing tells Propagate whether the solver is
// currently in its probing phase, gating the PeekInProbing option.
//
// A permutation that is both monotone and ordered takes spec.md §4.6's
// cycle-by-cycle fast path, with peek folded into each cycle (via its
// structural half-cycle shortcut) instead of a trailing impactful-entry
// sweep. A truncated power list disqualifies the fast path: its equality
// power bookkeeping assumes every strict-inequality power of a cycle is
// actually examined.
func (c *Constraint) Propagate(inProbing bool) (exit ExitStatus, err error) {
	if !c.dirty {
		return ExitDidNotRun, nil
	}
	c.dirty = false
	for i := range c.affected {
		c.affected[i] = false
	}

	if c.orch == nil {
		return ExitDidNotFind, nil
	}

	peekEnabled := c.opts.Peek && (!inProbing || c.opts.PeekInProbing)
	if c.perm.Monotone() && c.perm.Ordered() && !c.truncated {
		return c.propagateMonotoneOrdered(peekEnabled)
	}
	return c.propagateGeneral(peekEnabled)
}

func (c *Constraint) propagateGeneral(peekEnabled bool) (exit ExitStatus, err error) {
	global := compactBounds{original: c.original, host: c.bounds}

	var source fixing.BoundSource = global
	var rec *orchestrator.RecordingSource
	if peekEnabled {
		rec = orchestrator.NewRecordingSource(global)
		source = rec
	}

	c.orch.Reset(source)
	infeasible, numFixed, rerr := c.orch.Run()
	if rerr != nil {
		return ExitDidNotFind, rerr
	}
	if infeasible {
		return ExitCutoff, nil
	}

	if rec != nil {
		compactAsserter := compactAsserter{original: c.original, asserter: c.asserter}
		peekInfeasible, peekFixed, perr := peek.Run(c.perm, global, compactAsserter, rec.Impactful(), c.trackedPowers, true)
		if perr != nil {
			return ExitDidNotFind, perr
		}
		numFixed += peekFixed
		if peekInfeasible {
			return ExitCutoff, nil
		}
	}

	if numFixed > 0 {
		return ExitReducedDomain, nil
	}
	return ExitDidNotFind, nil
}

func (c *Constraint) propagateMonotoneOrdered(peekEnabled bool) (exit ExitStatus, err error) {
	global := compactBounds{original: c.original, host: c.bounds}
	sink := hostSink{original: c.original, asserter: c.asserter}

	var peeker orchestrator.CyclePeek
	if peekEnabled {
		asserter := compactAsserter{original: c.original, asserter: c.asserter}
		peeker = func(localPerm *permutation.Permutation, cycle []int, numPowers int) (bool, int, error) {
			return peek.RunCycle(localPerm,
				cycleLocalBounds{cycle: cycle, inner: global},
				cycleLocalAsserter{cycle: cycle, inner: asserter},
				numPowers, true)
		}
	}

	infeasible, numFixed, rerr := orchestrator.RunMonotoneOrdered(c.perm, global, sink, peeker)
	if rerr != nil {
		return ExitDidNotFind, rerr
	}
	if infeasible {
		return ExitCutoff, nil
	}
	if numFixed > 0 {
		return ExitReducedDomain, nil
	}
	return ExitDidNotFind, nil
}

// cycleLocalBounds narrows a compact-domain BoundSource to one cycle's
// dense-local index space for the per-cycle peek hook.
type cycleLocalBounds struct {
	cycle []int
	inner fixing.BoundSource
}

func (b cycleLocalBounds) Bound(k int) fixing.Flags { return b.inner.Bound(b.cycle[k]) }

// cycleLocalAsserter translates a per-cycle peek commit back to the compact
// domain (and, through compactAsserter, to the host's index space).
type cycleLocalAsserter struct {
	cycle []int
	inner compactAsserter
}

func (a cycleLocalAsserter) Assert(k int, v fixing.Bit, info host.InferInfo) error {
	return a.inner.Assert(a.cycle[k], v, info)
}

// Presolve runs the identical fixpoint as Propagate at the solver's
// presolve lifecycle point: this module treats presolve and propagate as
// the same process run at a different moment, not distinct logic, per
// spec.md §9's "global state: none across constraints."
func (c *Constraint) Presolve() (exit ExitStatus, err error) {
	c.dirty = true
	return c.Propagate(false)
}
