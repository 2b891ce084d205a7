package symretope

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/orchestrator"
	"github.com/symretope/symretope-core/permutation"
)

// Constraint is one symretope constraint: an immutable permutation model
// over a compacted dense domain, resolved options, and the reusable
// orchestrator driving propagation against one host handle (spec.md §9:
// per-constraint state has the lifetime of the constraint, not of a single
// propagate() call).
type Constraint struct {
	nPrime      int   // original (host-facing) variable count
	permMapFull []int // original permutation map, length nPrime, for Print
	compactOf   []int // original index -> compact index, or -1 if dropped
	original    []int // compact index -> original index, length n

	perm          *permutation.Permutation
	trackedPowers int
	truncated     bool

	opts     Options
	bounds   host.Bounds
	asserter host.Asserter
	orch     *orchestrator.Orchestrator

	dirty    bool
	affected []bool // per compact index

	log zerolog.Logger
}

// New builds a constraint bound to one host handle (bounds for reading,
// asserter for committing) from a host-facing permutation map over nPrime
// binary variable handles (spec.md §6's "construction input"). Fixed-point
// indices (permMap[i] == i) are compacted out before the dense permutation
// model is built, per permutation.Build's invariant; every other index is
// trusted to already name a binary variable, since that distinction is the
// host's to make, not this module's.
//
// If every index compacts out (n == 0), New returns (nil, nil): the
// constraint is trivially satisfied and elided, per spec.md §6.
func New(bounds host.Bounds, asserter host.Asserter, permMap []int, opts ...Option) (*Constraint, error) {
	nPrime := len(permMap)

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	compactOf := make([]int, nPrime)
	var original []int
	for i, p := range permMap {
		if p < 0 || p >= nPrime {
			return nil, fmt.Errorf("symretope: New: perm[%d]=%d, n'=%d: %w", i, p, nPrime, permutation.ErrOutOfRange)
		}
		if p == i {
			compactOf[i] = -1
			continue
		}
		compactOf[i] = len(original)
		original = append(original, i)
	}

	n := len(original)
	if n == 0 {
		return nil, nil
	}

	compactImage := make([]int, n)
	for ci, oi := range original {
		compactImage[ci] = compactOf[permMap[oi]]
	}

	perm, err := permutation.Build(compactImage)
	if err != nil {
		return nil, fmt.Errorf("symretope: New: %w", err)
	}

	m, truncated := orchestrator.TrackedPowers(perm, o.MaxOrder)
	if o.MaxOrderTimesN > 0 && m*n > o.MaxOrderTimesN {
		if capped := o.MaxOrderTimesN / n; capped < m {
			m = capped
			truncated = true
		}
	}

	c := &Constraint{
		nPrime:        nPrime,
		permMapFull:   append([]int(nil), permMap...),
		compactOf:     compactOf,
		original:      original,
		perm:          perm,
		trackedPowers: m,
		truncated:     truncated,
		opts:          o,
		bounds:        bounds,
		asserter:      asserter,
		affected:      make([]bool, n),
		log:           o.Logger,
	}

	if m > 0 {
		c.orch = orchestrator.New(perm, m,
			compactBounds{original: original, host: bounds},
			hostSink{original: original, asserter: asserter},
		)
		c.orch.SetLogger(c.log)
	}

	if truncated {
		c.log.Warn().
			Int("n", n).
			Uint64("order", perm.Order()).
			Int("trackedPowers", m).
			Msg("symretope: group order exceeds configured cap; propagation is incomplete")
	}

	c.InitSol()
	return c, nil
}

// SetLogger installs a logger, propagated to the underlying orchestrator
// (and, through it, every implication tree) for its invariant checks.
func (c *Constraint) SetLogger(l zerolog.Logger) {
	c.log = l
	if c.orch != nil {
		c.orch.SetLogger(l)
	}
}

// N returns the compacted dense domain size this constraint propagates
// over (n in spec.md's terms, not the original nPrime).
func (c *Constraint) N() int { return c.perm.N() }

// TrackedPowers returns how many non-identity powers are tracked, and
// whether that is fewer than the group's true order (spec.md §7's "group
// too large" condition).
func (c *Constraint) TrackedPowers() (m int, truncated bool) { return c.trackedPowers, c.truncated }

// compactBounds adapts a host.Bounds (queried by original variable index)
// into a fixing.BoundSource over the compacted dense domain this
// constraint's orchestrator operates on.
type compactBounds struct {
	original []int
	host     host.Bounds
}

func (c compactBounds) Bound(i int) fixing.Flags { return c.host.Current(c.original[i]) }

// hostSink adapts a host.Asserter the same way, translating a committed
// compact index back to the original variable it names.
type hostSink struct {
	original []int
	asserter host.Asserter
}

func (h hostSink) Commit(i int, v fixing.Bit, power int) (infeasible bool, err error) {
	if err := h.asserter.Assert(h.original[i], v, host.InferInfo(power)); err != nil {
		return false, err
	}
	return false, nil
}

// compactAsserter adapts a host.Asserter the same way for the peek driver,
// which commits directly rather than through orchestrator.Sink's power
// bookkeeping.
type compactAsserter struct {
	original []int
	asserter host.Asserter
}

func (a compactAsserter) Assert(i int, v fixing.Bit, info host.InferInfo) error {
	return a.asserter.Assert(a.original[i], v, info)
}
