// Package symretope is the external interface adapter of spec.md §6: it
// wires permutation, fixing, host, orchestrator, peek and conflict into one
// constraint type exposing the callback surface an enclosing solver invokes
// (propagate, presolve, check, enforce, resolve-propagation, separate,
// init-LP, lock, parse, print, init-sol). Copy, transform, delete and free
// callbacks are not provided.
//
// Constraint owns the one piece of state spec.md §9 calls out as
// per-constraint rather than global: an orchestrator.Orchestrator built once
// at construction and reused (Reset, not reallocated) across every
// propagate() call, per spec.md §5's "allocated per-call (or per-constraint
// with lazy grow) and fully reset before returning."
package symretope
