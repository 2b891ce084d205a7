// Package arena provides the fixed-size implication-tree node pool of
// spec.md §3/§9: "Use an arena (flat array) indexed by 2·var + side, with
// predecessor/successor links as indices... Do not model nodes as owning
// their children with unique ownership — the sibling promotion in the
// collapse rule moves a child out from under its parent."
//
// Exactly 2·n slots are reserved per permutation's tree: at most one node
// per (variable, side) pair, per spec.md's structural invariants. The pool
// is allocated once per tracked power and Reset (not reallocated) between
// propagate() calls, per spec.md §5's "no cross-call aliasing" discipline.
package arena
