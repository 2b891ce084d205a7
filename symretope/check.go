package symretope

import "github.com/symretope/symretope-core/fixing"

// Check implements spec.md §4.9: for each tracked power k in [1, M], find
// the first non-equal pair (xi, x_{γ⁻ᵏ(i)}); feasible iff it is (1,0),
// infeasible iff (0,1). O(n·M). sol must supply a value for every index in
// [0, N()) — Check is defined over complete solutions, not partial ones.
//
// On infeasibility, violatingPower reports which tracked power's symresack
// was violated (1-indexed, matching inferinfo's convention elsewhere).
func (c *Constraint) Check(sol fixing.BoundSource) (feasible bool, violatingPower int) {
	n := c.perm.N()

powers:
	for p := 1; p <= c.trackedPowers; p++ {
		for i := 0; i < n; i++ {
			j := c.perm.Apply(i, -p)
			if i == j {
				continue
			}

			vi, _ := sol.Bound(i).Value()
			vj, _ := sol.Bound(j).Value()
			if vi == vj {
				continue
			}
			if vi == 1 && vj == 0 {
				continue powers // this power's symresack is satisfied
			}
			return false, p
		}
	}

	return true, 0
}

// Enforce implements the LP/pseudo-solution/relaxation enforcement
// callbacks of spec.md §6, all of which reduce to the same question Check
// already answers: does the candidate solution satisfy every tracked
// symresack?
func (c *Constraint) Enforce(sol fixing.BoundSource) (feasible bool, violatingPower int) {
	return c.Check(sol)
}
