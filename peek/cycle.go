package peek

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/permutation"
)

// RunCycle is the per-cycle peek of spec.md §4.6's fast path, invoked by
// the monotone-ordered orchestrator once a cycle's propagation sub-problem
// has reached its fixpoint. localPerm, global and asserter all speak the
// cycle's dense-local index space [0, len(cycle)); the caller provides the
// translation back to real variables.
//
// The cycle structure makes half of the general driver's work provably
// redundant: the minimal unfixed entry, when it sits in the first half of
// the cycle, can always be forced to 1 without making the residual problem
// infeasible, so only its 0-hypothesis can yield a fixing; every other
// unfixed entry can analogously always take 0, so only its 1-hypothesis is
// tested. "First half" floors for odd cycle lengths.
func RunCycle(localPerm *permutation.Permutation, global fixing.BoundSource, asserter host.Asserter, numPowers int, conservativeRerun bool) (infeasible bool, numFixed int, err error) {
	if numPowers <= 0 {
		return false, 0, nil
	}
	n := localPerm.N()
	half := n / 2

	for {
		progressed := false

		minUnfixed := -1
		for k := 0; k < n; k++ {
			if _, isFixed := global.Bound(k).Value(); !isFixed {
				minUnfixed = k
				break
			}
		}
		if minUnfixed < 0 {
			return false, numFixed, nil
		}

		for k := minUnfixed; k < n; k++ {
			if _, isFixed := global.Bound(k).Value(); isFixed {
				continue
			}

			assume := fixing.Bit(1)
			if k == minUnfixed && k < half {
				assume = 0
			}

			inf, rerr := tryBranch(localPerm, global, numPowers, k, assume)
			if rerr != nil {
				return false, numFixed, rerr
			}
			if !inf {
				continue
			}
			if aerr := asserter.Assert(k, 1-assume, host.PeekInferInfo); aerr != nil {
				return false, numFixed, aerr
			}
			numFixed++
			progressed = true
			if conservativeRerun {
				break // re-scan: the commit may have moved the minimal unfixed entry
			}
		}

		if !conservativeRerun || !progressed {
			return false, numFixed, nil
		}
	}
}
