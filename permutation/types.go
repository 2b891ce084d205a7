package permutation

// Permutation is the immutable precomputation for a permutation γ acting on
// the dense index domain [0, n). It is built once (see Build) and never
// mutated; every lookup is O(1) except PowerMap, which is O(n) by
// construction (it must touch every index).
type Permutation struct {
	n int

	// image[i] is γ(i), the raw input map.
	image []int

	// cycles[c] is the ordered sequence of indices γ visits starting from
	// the smallest index of cycle c, in traversal order.
	cycles [][]int

	// cycleOf[i] is the id of the cycle containing i (index into cycles).
	cycleOf []int

	// posInCycle[i] is i's position within cycles[cycleOf[i]].
	posInCycle []int

	// cycleLen[c] is len(cycles[c]), duplicated here for O(1) lookup
	// without a slice-header dereference on the hot path.
	cycleLen []int

	// order is lcm of all cycle lengths: the group order of ⟨γ⟩.
	// Capped at math.MaxUint64 on overflow (see Build).
	order uint64

	// maxCycleLen is the longest cycle length, used by callers sizing
	// per-cycle scratch space.
	maxCycleLen int

	// monotone: every cycle's traversal has at most one descent
	// (γ(j) < j). Enables the fast path of spec.md §4.6.
	monotone bool

	// ordered: cycle maxima are non-decreasing when cycles are scanned
	// in the order their smallest index appears while building (i.e. in
	// increasing order of first-discovered index). Enables per-cycle
	// decomposition.
	ordered bool

	// orderOverflowed is true if the true lcm of cycle lengths exceeded
	// the uint64 range; order was capped instead. Callers (symretope)
	// use this together with options.MaxOrder to decide truncation.
	orderOverflowed bool
}

// N returns the size of the dense index domain this permutation acts on.
func (p *Permutation) N() int { return p.n }

// Order returns the group order of ⟨γ⟩ (lcm of all cycle lengths).
func (p *Permutation) Order() uint64 { return p.order }

// OrderOverflowed reports whether Order() is a capped approximation because
// the true lcm exceeded a uint64.
func (p *Permutation) OrderOverflowed() bool { return p.orderOverflowed }

// MaxCycleLen returns the length of the longest cycle.
func (p *Permutation) MaxCycleLen() int { return p.maxCycleLen }

// Monotone reports whether every cycle has at most one descent.
func (p *Permutation) Monotone() bool { return p.monotone }

// Ordered reports whether cycle maxima are non-decreasing in discovery order.
func (p *Permutation) Ordered() bool { return p.ordered }

// NumCycles returns the number of cycles γ decomposes into.
func (p *Permutation) NumCycles() int { return len(p.cycles) }

// Cycle returns the traversal order of cycle id c (0 <= c < NumCycles()).
// The returned slice must not be mutated by the caller.
func (p *Permutation) Cycle(c int) []int { return p.cycles[c] }

// CycleLen returns the length of cycle id c.
func (p *Permutation) CycleLen(c int) int { return p.cycleLen[c] }

// CycleOf returns the cycle id containing index i.
func (p *Permutation) CycleOf(i int) int { return p.cycleOf[i] }

// PosInCycle returns i's offset within its cycle's traversal order.
func (p *Permutation) PosInCycle(i int) int { return p.posInCycle[i] }

// Image returns γ(i), the raw one-step image.
func (p *Permutation) Image(i int) int { return p.image[i] }
