// errors.go — sentinel errors for the permutation package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Build aggregates every independent validation failure it finds (not
//     just the first) into a single *multierror.Error, so a caller fixing a
//     malformed permutation in one pass sees every index that needs fixing.
package permutation

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrOutOfRange indicates perm[i] fell outside [0, n).
var ErrOutOfRange = errors.New("permutation: image index out of range")

// ErrNotBijective indicates perm is not a bijection on [0, n): some value in
// [0, n) is the image of more than one index (equivalently, of none).
var ErrNotBijective = errors.New("permutation: map is not a bijection")

// ErrFixedPoint indicates perm[i] == i for some i. The constraint-construction
// layer (see symretope) must compact fixed points out before calling Build;
// Build itself never tolerates one, per spec.md §3's invariant that γ has no
// fixed points among the tracked binary variables.
var ErrFixedPoint = errors.New("permutation: map has a fixed point")

// buildErrorf wraps an inner error with "permutation: Build: " context while
// preserving sentinel identity for errors.Is/errors.As.
func buildErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("permutation: Build: %w", fmt.Errorf(format, args...))
}

// appendValidation accumulates non-nil errors into a multierror, returning
// the (possibly still nil) accumulator.
func appendValidation(acc error, err error) error {
	if err == nil {
		return acc
	}
	return multierror.Append(acc, err)
}
