package fixing

// Bit is a variable value, 0 or 1.
type Bit uint8

// Flags is the 2-bit fixing state of one variable: bit 0 = may-be-0, bit 1
// = may-be-1.
type Flags uint8

const (
	// Contradiction: neither value is admissible. Reaching this state on a
	// real (non-overlay) bound means local infeasibility.
	Contradiction Flags = 0

	// Forced0: the variable may only be 0.
	Forced0 Flags = 1

	// Forced1: the variable may only be 1.
	Forced1 Flags = 2

	// Unfixed: both values are still admissible.
	Unfixed Flags = 3
)

// MayBe reports whether bit is still an admissible value under f.
func (f Flags) MayBe(bit Bit) bool {
	if bit == 0 {
		return f&Forced0 != 0
	}
	return f&Forced1 != 0
}

// IsFixed reports whether f admits exactly one value.
func (f Flags) IsFixed() bool {
	return f == Forced0 || f == Forced1
}

// IsContradiction reports whether f admits no value.
func (f Flags) IsContradiction() bool {
	return f == Contradiction
}

// Value returns the forced bit and true if f is fixed, else (0, false).
func (f Flags) Value() (Bit, bool) {
	switch f {
	case Forced0:
		return 0, true
	case Forced1:
		return 1, true
	default:
		return 0, false
	}
}

// Narrow clears the bit opposite to v, i.e. applies "variable := v" to f.
// Narrowing an already-contradictory or already-matching Flags is a no-op
// on that bit; narrowing against the opposite forced value yields
// Contradiction, which callers must detect (spec.md §4.2's "contradictory
// set" guarantee).
func (f Flags) Narrow(v Bit) Flags {
	if v == 0 {
		return f & Forced0
	}
	return f & Forced1
}

// String renders f for debug/log output.
func (f Flags) String() string {
	switch f {
	case Contradiction:
		return "contradiction"
	case Forced0:
		return "0"
	case Forced1:
		return "1"
	case Unfixed:
		return "*"
	default:
		return "invalid"
	}
}

// Encode packs the pair (i, v) into the single nonnegative integer used by
// queues and implication-tree node indices, per spec.md §3: index + n·v.
func Encode(n, i int, v Bit) int {
	return i + n*int(v)
}

// Decode is the inverse of Encode.
func Decode(n, code int) (i int, v Bit) {
	if code >= n {
		return code - n, 1
	}
	return code, 0
}

// BoundSource is the abstract "read current bounds" collaborator: a host
// adapter (see the host package) implementing real solver bound queries, or
// another Overlay for layered hypothetical reasoning.
type BoundSource interface {
	// Bound returns the current Flags for variable i.
	Bound(i int) Flags
}
