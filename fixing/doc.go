// Package fixing defines the 2-bit per-index fixing representation shared
// by every other package in this module, and the virtual-fixings overlay
// (spec.md §4.2) used for hypothetical "peek" propagation.
//
// Encoding: bit 0 = may-be-0, bit 1 = may-be-1. Unfixed = both bits set;
// Forced0/Forced1 clear the opposite bit; Contradiction = neither bit set.
// This mirrors spec.md §3's "Fixing" data model exactly, including the
// single-integer (index + n·value-bit) encoding used by queues and trees.
package fixing
