// Package host models the external collaborators spec.md §1 places outside
// this module's scope: the enclosing MIP solver's bound-change / LP /
// branching machinery. This module never imports a concrete solver; it only
// declares the narrow interfaces it needs from one:
//
//  1. Bound queries at the current node and at a historical bound-change
//     index (Bounds).
//  2. A way to assert new bounds tagged with an inferinfo (Asserter).
//  3. A conflict-analysis sink accepting antecedent lower/upper bounds
//     (ConflictSink).
//
// Concrete adapters live in the host application; this package only wires
// those interfaces into the fixing.BoundSource shape the rest of the module
// consumes, matching spec.md §5: "Dynamic dispatch to host ... modeled
// abstractly."
package host
