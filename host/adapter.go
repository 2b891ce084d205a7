package host

import "github.com/symretope/symretope-core/fixing"

// CurrentSource adapts a Bounds collaborator to fixing.BoundSource, reading
// the host's current local bounds. A fixing.Overlay can take it as its base,
// so real-bound reads and hypothetical overrides share one lookup path. No
// package in this module constructs one; it is provided for host code.
type CurrentSource struct {
	Bounds Bounds
}

// Bound implements fixing.BoundSource.
func (c CurrentSource) Bound(i int) fixing.Flags { return c.Bounds.Current(i) }

// HistoricalSource adapts a Bounds collaborator to fixing.BoundSource,
// reading bounds as of a fixed historical ChangeIndex. The conflict package
// does not use it: its replays read Bounds.AtChange through their own
// recording adapters.
type HistoricalSource struct {
	Bounds Bounds
	At     ChangeIndex
}

// Bound implements fixing.BoundSource.
func (h HistoricalSource) Bound(i int) fixing.Flags { return h.Bounds.AtChange(i, h.At) }
