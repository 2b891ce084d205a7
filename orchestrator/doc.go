// Package orchestrator drives the fixpoint loop of spec.md §4.5: build one
// implication.Tree per tracked power, advance each until it stalls, drain
// the fixing queue, react every tree to each applied fixing, and repeat
// until both queues are empty or infeasibility surfaces.
//
// The monotone-ordered fast path of spec.md §4.6 is a distinct entry point
// (RunMonotoneOrdered) built on the same general loop restricted, cycle by
// cycle, to a single generator power — it is a decomposition strategy, not
// a different propagation algorithm.
//
// Orchestrator is deliberately agnostic to whether it is reading real host
// bounds or a hypothetical fixing.Overlay: callers supply both the
// fixing.BoundSource to read from and a Sink describing how a derived
// fixing gets committed back into that same source. The peek driver (see
// the peek package) reuses this exact type against an overlay-backed Sink.
package orchestrator
