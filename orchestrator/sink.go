package orchestrator

import (
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
)

// Sink commits a fixing the orchestrator has derived, wherever the
// orchestrator's BoundSource reads from, so the very next read observes it.
// power is the tracked power that produced the fixing, used by HostSink to
// tag the host assertion's inferinfo.
type Sink interface {
	// Commit applies variable i := v. infeasible is true if this commit
	// is itself contradictory given what the sink already holds (e.g. the
	// peek overlay was separately seeded with the opposite value).
	Commit(i int, v fixing.Bit, power int) (infeasible bool, err error)
}

// HostSink commits fixings to the real host via host.Asserter, per
// spec.md §6. The symretope package does not use it: it commits through its
// own index-translating sink.
type HostSink struct {
	Asserter host.Asserter
}

// Commit implements Sink.
func (h HostSink) Commit(i int, v fixing.Bit, power int) (infeasible bool, err error) {
	if err := h.Asserter.Assert(i, v, host.InferInfo(power)); err != nil {
		return false, err
	}
	return false, nil
}

// OverlaySink commits fixings into a fixing.Overlay rather than the host,
// used by the peek driver's hypothetical orchestrator runs (spec.md §4.7:
// "run the orchestrator purely against the overlay").
type OverlaySink struct {
	Overlay *fixing.Overlay
}

// Commit implements Sink.
func (o OverlaySink) Commit(i int, v fixing.Bit, power int) (infeasible bool, err error) {
	return o.Overlay.Set(i, v).IsContradiction(), nil
}
