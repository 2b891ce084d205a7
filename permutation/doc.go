// Package permutation builds the immutable precomputation for a permutation
// γ acting on a dense index domain [0, n): cycle decomposition, O(1) power
// evaluation γᵏ(i), and the monotone/ordered structural flags the
// orchestrator's fast path depends on.
//
// A Permutation is built once per constraint and never mutated afterward;
// every other package in this module treats it as read-only.
//
// Complexity: Build is O(n). apply is O(1) after an O(1) modulo-normalize.
// powerMap is O(n).
package permutation
