package orchestrator

import (
	"sort"

	"github.com/symretope/symretope-core/fixing"
)

// RecordingSource wraps a fixing.BoundSource and records every index ever
// read through it. The peek driver (spec.md §4.7) uses this to discover
// which unfixed variables were "impactful" during a base propagation pass
// — exactly the set worth testing a hypothetical fixing against — without
// implication.Tree needing any awareness of peek at all.
type RecordingSource struct {
	Inner fixing.BoundSource
	Seen  map[int]bool
}

// NewRecordingSource wraps inner, starting with an empty seen set.
func NewRecordingSource(inner fixing.BoundSource) *RecordingSource {
	return &RecordingSource{Inner: inner, Seen: make(map[int]bool)}
}

// Bound implements fixing.BoundSource, recording i before delegating.
func (r *RecordingSource) Bound(i int) fixing.Flags {
	r.Seen[i] = true
	return r.Inner.Bound(i)
}

// Impactful returns the recorded indices in increasing order, so the peek
// driver visits candidates deterministically run over run.
func (r *RecordingSource) Impactful() []int {
	out := make([]int, 0, len(r.Seen))
	for i := range r.Seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
