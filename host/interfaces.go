package host

import "github.com/symretope/symretope-core/fixing"

// ChangeIndex is an opaque handle into the host's bound-change history
// (spec.md's "bdchgidx"). This module never interprets it, only threads it
// back to the host in Bounds.AtChange and ConflictSink calls.
type ChangeIndex int64

// Bounds is the host's bound-query collaborator: current local bounds for
// propagation, and historical bounds for conflict resolution.
type Bounds interface {
	// Current returns the current local Flags for variable i.
	Current(i int) fixing.Flags

	// AtChange returns the Flags variable i had as of the given historical
	// bound-change index, used by the conflict resolver (spec.md §4.8) to
	// replay logic "as it looked" at the moment an earlier inference fired.
	AtChange(i int, idx ChangeIndex) fixing.Flags
}

// InferInfo tags a committed fixing with the reason the propagator can use
// later to answer "why did you infer this?" (spec.md §4.8). A non-negative
// value is the permutation power that produced the fixing via the surface
// rule (§4.4); -1 marks a peek-driven commit (§4.7).
type InferInfo int32

// PeekInferInfo is the sentinel InferInfo recorded for fixings committed by
// the peek driver rather than a direct tree surface rule.
const PeekInferInfo InferInfo = -1

// Asserter lets the propagator commit a fixing to the host's real bounds,
// tagged with the InferInfo the conflict resolver will later receive back.
type Asserter interface {
	// Assert commits variable i := v to the host, tagged with info.
	// Asserting against an already-opposite bound is a host-level bug, not
	// a condition this module produces: the orchestrator always detects
	// contradictions itself before calling Assert (spec.md §4.3).
	Assert(i int, v fixing.Bit, info InferInfo) error
}

// ConflictSink is the host's conflict-analysis collector. Resolve-propagation
// (spec.md §4.8) reports every antecedent bound that forces an inference by
// calling AddLowerBound/AddUpperBound for each one.
type ConflictSink interface {
	// AddLowerBound records that variable i's historical lower bound (i.e.
	// it was observed fixed to 1) at idx is part of the conflict.
	AddLowerBound(i int, idx ChangeIndex)

	// AddUpperBound records that variable i's historical upper bound (i.e.
	// it was observed fixed to 0) at idx is part of the conflict.
	AddUpperBound(i int, idx ChangeIndex)
}
