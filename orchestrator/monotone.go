package orchestrator

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/permutation"
)

// cycleSource adapts a global fixing.BoundSource, keyed by original variable
// index, to the dense-local domain [0, len(cycle)) a per-cycle sub-problem
// needs, per spec.md §4.6's per-cycle decomposition.
type cycleSource struct {
	cycle  []int
	global fixing.BoundSource
}

func (c cycleSource) Bound(k int) fixing.Flags { return c.global.Bound(c.cycle[k]) }

// cycleSink adapts a Sink the same way, translating a committed local index
// back to the original variable it names and a local power back to the
// power of the full generator it stands for: the sub-problem's generator is
// "shift by μ", so its power p is γ^(μ·p) — the tag conflict resolution
// must later replay against the full permutation.
type cycleSink struct {
	cycle      []int
	powerScale uint64
	inner      Sink
}

func (c cycleSink) Commit(k int, v fixing.Bit, power int) (infeasible bool, err error) {
	return c.inner.Commit(c.cycle[k], v, int(c.powerScale*uint64(power)))
}

// CyclePeek is the per-cycle peek hook of spec.md §4.6 ("peek is performed
// per cycle"): invoked after each cycle's propagation sub-problem reaches
// its fixpoint, with the cycle's local single-generator permutation, the
// original variable index at each local position, and the sub-problem's
// tracked power count. The peek package provides the implementation; a nil
// hook skips peeking entirely.
type CyclePeek func(localPerm *permutation.Permutation, cycle []int, numPowers int) (infeasible bool, numFixed int, err error)

// RunMonotoneOrdered implements spec.md §4.6's fast path for a permutation
// that is both Monotone and Ordered: cycles are processed one at a time,
// each as its own single-generator sub-problem (a fresh local permutation
// representing "shift by the current equality power μ, restricted to this
// cycle"), with μ growing via lcm as cycles are exhausted.
func RunMonotoneOrdered(perm *permutation.Permutation, global fixing.BoundSource, sink Sink, peekCycle CyclePeek) (infeasible bool, numFixed int, err error) {
	mu := uint64(1)

	for c := 0; c < perm.NumCycles() && mu != perm.Order(); c++ {
		cycle := perm.Cycle(c)
		length := uint64(perm.CycleLen(c))

		if mu%length == 0 {
			continue // γ^μ restricted to this cycle is the identity
		}

		g := gcd64(mu, length)
		numPowers := int(length/g) - 1
		if numPowers <= 0 {
			continue
		}

		localImage := make([]int, length)
		for k := uint64(0); k < length; k++ {
			localImage[k] = int((k + mu) % length)
		}
		localPerm, berr := permutation.Build(localImage)
		if berr != nil {
			return false, numFixed, berr
		}

		sub := New(localPerm, numPowers, cycleSource{cycle: cycle, global: global}, cycleSink{cycle: cycle, powerScale: mu, inner: sink})
		inf, n, rerr := sub.Run()
		numFixed += n
		if rerr != nil {
			return false, numFixed, rerr
		}
		if inf {
			return true, numFixed, nil
		}

		if peekCycle != nil {
			inf, n, rerr = peekCycle(localPerm, cycle, numPowers)
			numFixed += n
			if rerr != nil {
				return false, numFixed, rerr
			}
			if inf {
				return true, numFixed, nil
			}
		}

		mu = nextEqualityPower(mu, length, cycle, global)
	}

	return false, numFixed, nil
}

// nextEqualityPower advances μ after processing cycle c, per spec.md §4.6:
// if any of the cycle's variables remain unfixed, the whole cycle length
// joins μ (nothing shorter is known to repeat); otherwise the cycle is
// fully fixed, and the smallest shift period of its fixed pattern joins μ
// instead, since a shorter repeat means fewer strict-inequality powers need
// checking on later cycles.
func nextEqualityPower(mu uint64, length uint64, cycle []int, global fixing.BoundSource) uint64 {
	for _, idx := range cycle {
		if global.Bound(idx) == fixing.Unfixed {
			return lcm64(mu, length)
		}
	}
	return lcm64(mu, uint64(smallestShiftPeriod(cycle, global)))
}

// smallestShiftPeriod returns the smallest k in [1, len(cycle)) such that
// shifting the cycle's (fully fixed) value pattern by k positions reproduces
// the same pattern, or len(cycle) if no smaller period exists.
func smallestShiftPeriod(cycle []int, global fixing.BoundSource) int {
	l := len(cycle)
	vals := make([]fixing.Bit, l)
	for p, idx := range cycle {
		v, _ := global.Bound(idx).Value()
		vals[p] = v
	}
	for k := 1; k < l; k++ {
		matches := true
		for p := 0; p < l; p++ {
			if vals[p] != vals[(p+k)%l] {
				matches = false
				break
			}
		}
		if matches {
			return k
		}
	}
	return l
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm64(a, b uint64) uint64 {
	g := gcd64(a, b)
	if g == 0 {
		return 0
	}
	return a / g * b
}
