package conflict

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/orchestrator"
	"github.com/symretope/symretope-core/permutation"
)

// ResolvePeek implements spec.md §4.8's inferinfo == -1 case: variable k was
// fixed to v by the peek driver, not a direct tracked-power surface rule.
// Replays the base orchestrator against a virtual-fixing overlay seeded
// with the converse of the peek decision at k plus every variable fixed as
// of idx, checks that the replay is infeasible (returning false if not),
// then sparsifies by dropping one variable at a time and re-running,
// keeping only variables whose removal restores feasibility (spec.md:
// "keep the variable in the conflict only if its removal restores
// feasibility"). m is the resolved tracked-power count the original
// propagation ran with, so the replay examines the same powers.
func ResolvePeek(perm *permutation.Permutation, k int, v fixing.Bit, idx host.ChangeIndex, bounds host.Bounds, m int, sink host.ConflictSink) bool {
	n := perm.N()

	historical := make(map[int]fixing.Bit, n)
	for i := 0; i < n; i++ {
		if i == k {
			continue
		}
		if val, ok := bounds.AtChange(i, idx).Value(); ok {
			historical[i] = val
		}
	}

	run := func(active map[int]bool) bool {
		overlay := fixing.NewOverlay(n, nil)
		overlay.SetUseBaseBounds(false)
		overlay.Set(k, converse(v))
		for i, val := range historical {
			if active == nil || active[i] {
				overlay.Set(i, val)
			}
		}
		o := orchestrator.New(perm, m, overlay, orchestrator.OverlaySink{Overlay: overlay})
		infeasible, _, _ := o.Run()
		return infeasible
	}

	if !run(nil) {
		return false
	}

	kept := make(map[int]bool, len(historical))
	for i := range historical {
		kept[i] = true
	}

	for i := range historical {
		trial := make(map[int]bool, len(kept))
		for j := range kept {
			if j != i {
				trial[j] = true
			}
		}
		if run(trial) {
			delete(kept, i) // still infeasible without i: i wasn't load-bearing
		}
	}

	for i := range kept {
		if val, ok := historical[i]; ok {
			if val == 1 {
				sink.AddLowerBound(i, idx)
			} else {
				sink.AddUpperBound(i, idx)
			}
		}
	}

	return true
}
