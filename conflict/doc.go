// Package conflict implements spec.md §4.8's resolve-propagation: given an
// earlier committed fixing and the InferInfo tag it was committed with,
// reconstruct a minimal set of historical bounds that force it.
//
// Both cases reuse machinery built for propagation itself rather than
// duplicating it: the inferinfo >= 0 (direct surface-rule) case replays a
// fresh implication.Tree for the same tracked power under historical bounds,
// since the tree's own table-driven construction and collapse rule already
// are "locally mirror the 3x3 table of §4.4"; the inferinfo == -1 (peek)
// case replays an orchestrator.Orchestrator against a virtual-fixing
// overlay exactly the way the peek package itself does, then sparsifies by
// iterated deletion.
package conflict
