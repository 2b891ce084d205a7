// build.go — cycle decomposition for a raw permutation image map.
//
// Grounded on the walk-and-tag shape of the teacher's dfs.DetectCycles
// (dfs/cycle.go): scan vertices left to right, walk each unvisited
// component exactly once, tag every member with its component id and
// position as it is discovered. Here the "component" is a permutation
// cycle rather than a graph cycle, the walk is γ, γ², … rather than a
// DFS frontier, and there is exactly one simple cycle per component by
// construction, so no canonicalization or back-edge bookkeeping is needed.
package permutation

import "math/bits"

// Build validates perm as a fixed-point-free permutation of [0, n) and
// decomposes it into cycles, computing group order and the monotone/ordered
// structural flags in a single O(n) pass.
//
// perm[i] must be in [0, n), perm must be a bijection, and perm[i] != i for
// every i (the constraint-construction layer is responsible for compacting
// fixed points and non-binary variables out before calling Build, per
// spec.md §3). Every violation found is reported together via the returned
// multierror rather than failing fast on the first one.
func Build(perm []int) (*Permutation, error) {
	n := len(perm)
	if n == 0 {
		return &Permutation{n: 0, image: nil, cycles: nil, order: 1, monotone: true, ordered: true}, nil
	}

	var errAcc error
	seenAsImage := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			errAcc = appendValidation(errAcc, buildErrorf("%w: perm[%d]=%d, n=%d", ErrOutOfRange, i, v, n))
			continue
		}
		if v == i {
			errAcc = appendValidation(errAcc, buildErrorf("%w: perm[%d]=%d", ErrFixedPoint, i, v))
		}
		if seenAsImage[v] {
			errAcc = appendValidation(errAcc, buildErrorf("%w: value %d is the image of more than one index", ErrNotBijective, v))
		}
		seenAsImage[v] = true
	}
	if errAcc != nil {
		return nil, errAcc
	}

	p := &Permutation{
		n:          n,
		image:      append([]int(nil), perm...),
		cycleOf:    make([]int, n),
		posInCycle: make([]int, n),
	}

	visited := make([]bool, n)
	order := uint64(1)
	prevCycleMax := -1
	ordered := true
	monotone := true

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		cycleID := len(p.cycles)
		cycle := make([]int, 0, 4)
		descents := 0
		cycleMax := start

		cur := start
		for {
			visited[cur] = true
			p.cycleOf[cur] = cycleID
			p.posInCycle[cur] = len(cycle)
			cycle = append(cycle, cur)
			if cur > cycleMax {
				cycleMax = cur
			}

			next := perm[cur]
			if next < cur {
				descents++
			}
			if next == start {
				break
			}
			cur = next
		}

		if descents > 1 {
			monotone = false
		}
		if cycleMax < prevCycleMax {
			ordered = false
		}
		prevCycleMax = cycleMax

		p.cycles = append(p.cycles, cycle)
		p.cycleLen = append(p.cycleLen, len(cycle))
		if len(cycle) > p.maxCycleLen {
			p.maxCycleLen = len(cycle)
		}

		newOrder, overflowed := lcm(order, uint64(len(cycle)))
		order = newOrder
		if overflowed {
			p.orderOverflowed = true
		}
	}

	p.order = order
	p.monotone = monotone
	p.ordered = ordered

	return p, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns lcm(a, b) and whether computing a/gcd(a,b)*b overflowed a
// uint64, in which case it returns math.MaxUint64 as a saturating cap.
func lcm(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	g := gcd(a, b)
	q := a / g
	hi, lo := bits.Mul64(q, b)
	if hi != 0 {
		return ^uint64(0), true
	}
	return lo, false
}
