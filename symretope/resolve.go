package symretope

import (
	"github.com/symretope/symretope-core/conflict"
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
)

// ResolvePropagation implements spec.md §4.8: given a fixing this
// constraint committed earlier (originalIndex, v, inferInfo) as of
// historical index idx, report a minimal antecedent set to sink. Dispatches
// on the sign of inferInfo exactly as spec.md describes: non-negative is a
// direct tracked-power surface-rule inference; -1 (host.PeekInferInfo) is a
// peek-driven commit.
func (c *Constraint) ResolvePropagation(originalIndex int, v fixing.Bit, inferInfo host.InferInfo, idx host.ChangeIndex, sink host.ConflictSink) bool {
	ci := c.compactOf[originalIndex]
	if ci < 0 {
		return false
	}

	bounds := compactHistoricalBounds{original: c.original, host: c.bounds}
	csink := &compactConflictSink{original: c.original, inner: sink}

	if inferInfo == host.PeekInferInfo {
		return conflict.ResolvePeek(c.perm, ci, v, idx, bounds, c.trackedPowers, csink)
	}
	return conflict.ResolveSurface(c.perm, int(inferInfo), ci, v, idx, bounds, csink)
}

// compactHistoricalBounds adapts a host.Bounds (queried by original variable
// index) into the same shape over this constraint's compacted dense domain,
// mirroring compactBounds but including the historical AtChange query the
// conflict package needs to replay a past propagation.
type compactHistoricalBounds struct {
	original []int
	host     host.Bounds
}

func (b compactHistoricalBounds) Current(i int) fixing.Flags { return b.host.Current(b.original[i]) }

func (b compactHistoricalBounds) AtChange(i int, idx host.ChangeIndex) fixing.Flags {
	return b.host.AtChange(b.original[i], idx)
}

// compactConflictSink adapts a host.ConflictSink (indexed by original
// variable) so conflict package code, which operates on this constraint's
// compacted dense domain, can report antecedents directly.
type compactConflictSink struct {
	original []int
	inner    host.ConflictSink
}

func (s *compactConflictSink) AddLowerBound(i int, idx host.ChangeIndex) {
	s.inner.AddLowerBound(s.original[i], idx)
}

func (s *compactConflictSink) AddUpperBound(i int, idx host.ChangeIndex) {
	s.inner.AddUpperBound(s.original[i], idx)
}
