// Package symretopecore (module github.com/symretope/symretope-core) is a
// symmetry-breaking constraint propagator for binary programs.
//
// 🚀 What is symretope-core?
//
//	A focused, allocation-disciplined library that, given a permutation γ
//	generating a cyclic group ⟨γ⟩ acting on a 0/1 vector x, propagates the
//	requirement that x be lexicographically maximal in its orbit:
//	x ⪰ γᵏ(x) for every k ≥ 1.
//
//	  • Permutation model: cycle decomposition, O(1) power evaluation
//	  • Implication trees: one per tracked power, incrementally built and
//	    rewired as fixings are applied
//	  • Orchestrators: a general fixpoint loop and a monotone-ordered fast
//	    path that decomposes work cycle by cycle
//	  • Peek driver: hypothetical forced-0/forced-1 probing via a virtual
//	    fixings overlay, never touching real bounds until a branch dies
//	  • Conflict resolver: replays enough of the tree logic under historical
//	    bounds to report a minimal antecedent set
//
// ✨ Design goals
//
//   - Host-agnostic   — the enclosing solver is modeled as the host package's
//     interfaces only; nothing here parses files, flags, or LP relaxations
//   - Deterministic   — single-threaded, synchronous, arenas reset on every
//     return; no goroutines, no locks
//   - Total           — propagation never fails with a recoverable error;
//     contradictions are data the orchestrator reports, not panics
//
// Package layout:
//
//	permutation/   — cycle decomposition, O(1) powers, monotone/ordered flags
//	fixing/        — 2-bit fixing encoding + virtual-fixings overlay
//	queue/         — fixing queue and permutation (re-examination) queue
//	arena/         — fixed-size implication-tree node pool
//	implication/   — the per-permutation tree builder (the hard part)
//	orchestrator/  — general fixpoint loop + monotone-ordered fast path
//	peek/          — impactful-entry forced-0/forced-1 probing
//	conflict/      — resolve-propagation (conflict analysis)
//	host/          — abstract collaborator interfaces (bounds, conflict sink)
//	symretope/     — the constraint itself: propagate/check/separate/parse
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// specification this module implements and the grounding behind each part.
package symretopecore
