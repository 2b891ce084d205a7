package implication

import (
	"github.com/rs/zerolog"

	"github.com/symretope/symretope-core/arena"
	"github.com/symretope/symretope-core/fixing"
	"github.com/symretope/symretope-core/host"
	"github.com/symretope/symretope-core/permutation"
	"github.com/symretope/symretope-core/queue"
)

// side tracks one of root's up-to-two chains.
type side struct {
	head    int32 // slot of root's direct child on this side, arena.None if this side has no node
	leaf    int32 // slot of the current tail, arena.None alongside head
	alive   bool  // false once a (1,0) row has permanently stopped extending this side
	overlay *fixing.Overlay
}

// Tree is one tracked power's implication tree: the cursor state, the two
// side chains described in this package's doc comment, and the node pool
// backing them. It is reused across propagate() calls via Init, per
// spec.md §5's "no cross-call aliasing" discipline.
type Tree struct {
	n    int
	pool *arena.Pool

	// ownerSide records, per slot, which logical side currently owns it.
	// A node's slot address (arena.Slot(variable, creationSide)) never
	// changes, but a collapse's sibling promotion can move a node
	// between logical sides without moving its data — ownerSide is what
	// ApplyExternalFixing consults to find the right side state.
	ownerSide []int8

	perm   *permutation.Permutation
	power  int
	global fixing.BoundSource

	sides [2]side

	cursor     int
	started    bool // true once root has acquired its first child
	complete   bool
	satisfied  bool // a (1,0) row of real bounds decided the comparison for good
	infeasible bool

	curFQ *queue.FixingQueue // valid only during Advance / ApplyExternalFixing

	// applyingVar/applyingVal name the external fixing currently being
	// reacted to (valid only during ApplyExternalFixing, else -1): the
	// rule-(b) promotion it can trigger would otherwise re-surface that
	// very fixing, since the promoted necessary child always records the
	// opposite of the contradicted hypothesis on the same variable.
	applyingVar int
	applyingVal fixing.Bit

	log zerolog.Logger
}

// NewTree allocates a tree's node pool for a domain of size n. Call Init
// before first use and before every reuse.
func NewTree(n int) *Tree {
	return &Tree{
		n:         n,
		pool:      arena.NewPool(n),
		ownerSide: make([]int8, 2*n),
		log:       zerolog.Nop(),
	}
}

// SetLogger installs the logger that assertf reports invariant violations
// to, at Panic level.
func (t *Tree) SetLogger(l zerolog.Logger) { t.log = l }

// Init resets the tree to track power applications of perm (perm^power),
// reading real fixings through global. It must be called before Advance or
// ApplyExternalFixing are used for a new propagate() pass.
func (t *Tree) Init(perm *permutation.Permutation, power int, global fixing.BoundSource) {
	t.pool.Reset()
	for i := range t.ownerSide {
		t.ownerSide[i] = -1
	}
	t.perm = perm
	t.power = power
	t.global = global
	t.sides[0] = side{head: arena.None, leaf: arena.None, alive: true, overlay: fixing.NewOverlay(t.n, global)}
	t.sides[1] = side{head: arena.None, leaf: arena.None, alive: true, overlay: fixing.NewOverlay(t.n, global)}
	t.cursor = 0
	t.started = false
	t.complete = false
	t.satisfied = false
	t.infeasible = false
	t.applyingVar = -1
}

// Infeasible reports whether this tree has discovered an unconditional
// contradiction — the whole propagation call must stop and report
// infeasibility to the host, per spec.md §4.4/§4.5.
func (t *Tree) Infeasible() bool { return t.infeasible }

// Complete reports whether the cursor has exhausted the domain (or an
// earlier completeness precondition ended construction early).
func (t *Tree) Complete() bool { return t.complete }

// Power returns the tracked power this tree belongs to.
func (t *Tree) Power() int { return t.power }

// host.InferInfo for a fixing surfaced by this tree: the tracked power
// index doubles as the inferinfo tag handed to host.Asserter, matching
// spec.md §6's "inferinfo records which power surfaced the fixing".
func (t *Tree) inferInfo() host.InferInfo { return host.InferInfo(t.power) }

func (t *Tree) assertf(cond bool, msg string) {
	if !cond {
		t.log.Panic().Str("msg", msg).Int("power", t.power).Msg("implication: invariant violated")
	}
}
