// Package implication builds and maintains the per-permutation-power
// implication tree of spec.md §4.4 — the component the rest of this module
// exists to support.
//
// A tree is grown by a left-to-right cursor over variable indices 0..n-1,
// pairing each position i with j = σ⁻ᵏ(i) and consulting the 3×3 table of
// (fixing(xi), fixing(xj)) outcomes. The table can only ever branch once
// in a tree's lifetime: the (*,*) row, which requires both leaves free, can
// only fire when root still has zero children, i.e. at the very first
// position that isn't a (0,0)/(1,1) no-op. Every later step either extends
// one side's chain, kills it, or collapses it — so, unlike a general trie,
// a Tree here is always "root plus up to two independent linear chains",
// never a node with more than two children anywhere. That shape is what
// lets Tree track each side with a single head/leaf slot pair instead of
// general child-list bookkeeping, in the spirit of the teacher's
// dfs.DetectCycles walk-and-tag traversal (one cursor, one direction, no
// backtracking stack) adapted to a structure that can locally collapse.
//
// The builder runs in lock-step with its orchestrator rather than to
// exhaustion: a (*,*) row reached while the tree is a pure Necessary chain
// pauses the cursor (the fork becomes legal once the chain's surfaced
// fixings are committed and spliced away, emptying the root), and a (1,0)
// row of real bounds at an empty root retires the tree outright — the
// comparison is strictly decided and later rows are irrelevant.
//
// Node storage is the arena.Pool of spec.md §9; this package only ever
// manipulates Pred/Child slot indices, never owns nodes by pointer, since
// the collapse rule's sibling promotion re-parents a node out from under
// its old parent.
package implication
