// Package peek implements spec.md §4.7: for each unfixed variable that was
// actually read during a base propagation pass ("impactful", tracked via
// orchestrator.RecordingSource), try forcing it to 1 in a hypothetical
// fixing.Overlay and re-run the full orchestrator purely against that
// overlay; if infeasible, the real value must be 0 and gets committed to
// the host. Otherwise try the converse assumption the same way.
//
// Peek reuses orchestrator.Orchestrator wholesale via orchestrator.OverlaySink
// rather than re-implementing any propagation logic — the whole point of the
// Sink abstraction (see orchestrator/sink.go) is that this package needs none
// of its own.
//
// RunCycle is the per-cycle variant the monotone-ordered fast path plugs in
// as its orchestrator.CyclePeek hook, halving the hypothesis tests via the
// cycle-structural shortcut described on it.
package peek
