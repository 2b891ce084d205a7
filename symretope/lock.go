package symretope

// LockDirection names which rounding directions a variable must be locked
// against, per spec.md §5's final paragraph.
type LockDirection int

const (
	// LockBoth means rounding the variable in either direction can break
	// lex-maximality: the usual case for a non-singleton cycle member.
	LockBoth LockDirection = iota
	// LockDownOnly means only rounding down (to 0) is unsafe: the unique
	// index holding its cycle's smallest original-index value.
	LockDownOnly
	// LockUpOnly means only rounding up (to 1) is unsafe: the unique index
	// holding its cycle's largest original-index value.
	LockUpOnly
)

// Lock is one variable's lock declaration, in the host's original index
// space (spec.md §6's "lock" callback reports against the host's variable
// handles, not this constraint's compacted domain).
type Lock struct {
	OriginalIndex int
	Direction     LockDirection
}

// Locks implements spec.md §5's locking discipline: every member of a
// non-singleton cycle is locked in both directions, except the cycle's
// unique minimum (down-only) and maximum (up-only) original index, since
// those two are the only members whose rounding in one particular direction
// can never by itself break lex-maximality. Singleton cycles cannot exist
// here — fixed points are compacted out before the permutation is built —
// so every cycle this ranges over has at least two members.
func (c *Constraint) Locks() []Lock {
	locks := make([]Lock, 0, c.perm.N())

	for cy := 0; cy < c.perm.NumCycles(); cy++ {
		members := c.perm.Cycle(cy)

		minCompact, maxCompact := members[0], members[0]
		for _, m := range members {
			if c.original[m] < c.original[minCompact] {
				minCompact = m
			}
			if c.original[m] > c.original[maxCompact] {
				maxCompact = m
			}
		}

		for _, m := range members {
			dir := LockBoth
			switch m {
			case minCompact:
				dir = LockDownOnly
			case maxCompact:
				dir = LockUpOnly
			}
			locks = append(locks, Lock{OriginalIndex: c.original[m], Direction: dir})
		}
	}

	return locks
}
