// errors.go — sentinel errors for the symretope package, following the
// same policy as permutation/errors.go: sentinels only, never wrapped at
// definition site, always reached through errors.Is.
//
// Out-of-range and non-bijective permutation maps are not given sentinels
// here: New checks the range itself and wraps permutation.ErrOutOfRange,
// and wraps permutation.Build's error for everything else, so callers reach
// permutation.ErrOutOfRange / permutation.ErrNotBijective through errors.Is.
// Fixed points are compacted out before Build, so permutation.ErrFixedPoint
// does not arise from New. Variable handles are this
// module's plain compact/original indices, not a separate caller-supplied
// list, so there is no second array whose length could mismatch the
// permutation map.
package symretope

import "errors"

// ErrMalformedText indicates Parse was given input that doesn't match the
// textual form of spec.md §6: "symretope([v0,...],[p0,...])".
var ErrMalformedText = errors.New("symretope: malformed textual form")
