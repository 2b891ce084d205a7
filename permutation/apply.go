package permutation

// Apply returns γᵏ(i), normalizing k modulo the length of i's cycle and
// handling negative k (γ⁻¹ applied |k| times). Complexity: O(1).
func (p *Permutation) Apply(i, k int) int {
	c := p.cycleOf[i]
	clen := p.cycleLen[c]
	if clen == 1 {
		return i
	}

	pos := p.posInCycle[i]
	k %= clen
	if k < 0 {
		k += clen
	}
	newPos := pos + k
	if newPos >= clen {
		newPos -= clen
	}

	return p.cycles[c][newPos]
}

// PowerMap writes γᵏ into out, a dense array of length N(). Each cycle is
// visited once; out need not be zeroed by the caller. Complexity: O(n).
func (p *Permutation) PowerMap(k int, out []int) {
	for c, cycle := range p.cycles {
		clen := p.cycleLen[c]
		kk := k % clen
		if kk < 0 {
			kk += clen
		}
		for pos, v := range cycle {
			newPos := pos + kk
			if newPos >= clen {
				newPos -= clen
			}
			out[v] = cycle[newPos]
		}
	}
}
