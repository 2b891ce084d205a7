package peek

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/orchestrator"
	"github.com/symretope/symretope-core/permutation"
)

// Run drives spec.md §4.7's loop over candidates (typically the impactful
// set an orchestrator.RecordingSource collected during the preceding base
// pass). m is the resolved tracked-power count — the same one the base
// pass propagated with, after every cap (maxOrder, maxOrderTimesN) has been
// applied — so hypothetical runs examine exactly the powers real ones do.
//
// conservativeRerun controls spec.md §9(b)'s open question: true (the
// conservative choice, and the default a caller should reach for) restarts
// the scan over every still-unfixed candidate after each commit, since an
// earlier commit in this same call can make a later candidate resolvable
// that wasn't before. false tests every candidate exactly once and never
// loops back, trading completeness within a single peek call for avoiding
// the repeated O(n) re-scans.
func Run(perm *permutation.Permutation, global fixing.BoundSource, asserter host.Asserter, candidates []int, m int, conservativeRerun bool) (infeasible bool, numFixed int, err error) {
	if m <= 0 {
		return false, 0, nil
	}

	pending := append([]int(nil), candidates...)

	for {
		progressed := false
		remaining := pending[:0]

		for _, i := range pending {
			if _, isFixed := global.Bound(i).Value(); isFixed {
				continue // resolved by an earlier commit this round, or already fixed
			}

			infeasibleOn1, rerr := tryBranch(perm, global, m, i, 1)
			if rerr != nil {
				return false, numFixed, rerr
			}
			if infeasibleOn1 {
				if aerr := asserter.Assert(i, 0, host.PeekInferInfo); aerr != nil {
					return false, numFixed, aerr
				}
				numFixed++
				progressed = true
				continue
			}

			infeasibleOn0, rerr := tryBranch(perm, global, m, i, 0)
			if rerr != nil {
				return false, numFixed, rerr
			}
			if infeasibleOn0 {
				if aerr := asserter.Assert(i, 1, host.PeekInferInfo); aerr != nil {
					return false, numFixed, aerr
				}
				numFixed++
				progressed = true
				continue
			}

			remaining = append(remaining, i)
		}

		pending = remaining
		if !conservativeRerun || !progressed || len(pending) == 0 {
			break
		}
	}

	return false, numFixed, nil
}

// tryBranch builds a fresh overlay seeded with every currently fixed
// variable plus the hypothesis variable i := assume, with useBaseBounds
// disabled (spec.md §4.7: "run the orchestrator purely against the
// overlay"), and reports whether that hypothesis is infeasible.
func tryBranch(perm *permutation.Permutation, global fixing.BoundSource, m int, i int, assume fixing.Bit) (infeasible bool, err error) {
	overlay := fixing.NewOverlay(perm.N(), global)
	overlay.SetUseBaseBounds(false)

	for j := 0; j < perm.N(); j++ {
		if v, ok := global.Bound(j).Value(); ok {
			overlay.Set(j, v)
		}
	}

	if overlay.Set(i, assume).IsContradiction() {
		return true, nil
	}

	o := orchestrator.New(perm, m, overlay, orchestrator.OverlaySink{Overlay: overlay})
	infeasible, _, rerr := o.Run()
	return infeasible, rerr
}
