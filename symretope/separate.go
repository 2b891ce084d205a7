package symretope

// Cut is one symresack cover inequality produced by Separate, in the form
// sum(Coeffs[i] * x_i) <= RHS, indexed by original variable. Spec.md §4.9
// marks cut generation as "an optional auxiliary [that] does not affect
// correctness" — a host is free to ignore every Cut this method returns.
type Cut struct {
	Power  int // the tracked power k whose symresack this cut is cut from
	Coeffs map[int]float64
	RHS    float64
}

// violation reports how far sol (fractional LP/solution values, original
// index -> value in [0,1]) pushes power k's symresack past feasibility:
// positive means violated. This mirrors Check's (1,0)-is-feasible,
// (0,1)-is-infeasible rule, generalized from {0,1} to [0,1] by taking the
// critical index c to be the position where the γ⁻ᵏ(c) partner exceeds x_c
// by the largest amount (the first such position on ties).
func (c *Constraint) violation(sol map[int]float64, k int) (critical int, amount float64, ok bool) {
	n := c.perm.N()
	best := -1
	bestAmount := 0.0

	for ci := 0; ci < n; ci++ {
		cj := c.perm.Apply(ci, -k)
		if ci == cj {
			continue
		}
		vi := sol[c.original[ci]]
		vj := sol[c.original[cj]]
		amt := vj - vi // positive means x_{γ⁻ᵏ(i)} > x_i: the forbidden direction
		if amt > bestAmount {
			bestAmount = amt
			best = ci
		}
	}

	if best < 0 {
		return 0, 0, false
	}
	return best, bestAmount, true
}

// Separate implements spec.md §4.9's cut-generation sketch: for each tracked
// power (or only the first violated one, depending on
// Options.SeparateAllViolating), find the critical index maximizing the
// LP-violation objective and emit a cover inequality x_{γ⁻ᵏ(c)} - x_c <= 0
// over that power's strict symresack.
func (c *Constraint) Separate(sol map[int]float64) []Cut {
	var cuts []Cut

	for k := 1; k <= c.trackedPowers; k++ {
		critical, amount, ok := c.violation(sol, k)
		if !ok || amount <= 1e-9 {
			continue
		}

		cj := c.perm.Apply(critical, -k)
		cuts = append(cuts, Cut{
			Power: k,
			Coeffs: map[int]float64{
				c.original[cj]:       1,
				c.original[critical]: -1,
			},
			RHS: 0,
		})

		if !c.opts.SeparateAllViolating {
			break
		}
	}

	return cuts
}

// InitLP seeds the LP relaxation's initial cut pool: spec.md §6 lists
// init-LP as a distinct callback, but this module has nothing cheaper to
// offer upfront than the same cover inequalities Separate produces against
// the all-0.5 fractional point, so it delegates directly.
func (c *Constraint) InitLP() []Cut {
	sol := make(map[int]float64, len(c.original))
	for _, oi := range c.original {
		sol[oi] = 0.5
	}
	return c.Separate(sol)
}
