package arena

import "github.com/symretope/symretope-core/fixing"

// Kind is the tagged-variant discriminator for implication-tree nodes.
// spec.md §9 asks for a small enum dispatched with a switch, not subtype
// polymorphism. Root is a sentinel that never occupies a Pool slot (it has
// no owning variable); Pool callers track root's up-to-two children
// directly as slot indices instead.
type Kind uint8

const (
	// Conditional nodes start a hypothetical branch.
	Conditional Kind = iota
	// Necessary nodes are forced given their path's conditional ancestors.
	Necessary
)

// None is the sentinel slot index meaning "no node" (nil predecessor,
// no child, no sibling).
const None int32 = -1

// Node is one implication-tree node: a predecessor link, a single child
// link (trees here are chains off of root; see implication.Tree's doc
// comment for why no node other than root ever has two children), its
// kind, and the (variable, value) fixing it encodes.
type Node struct {
	Kind     Kind
	Pred     int32 // slot of the node above this one, or None if this is a direct child of root
	Child    int32 // slot of the node below this one, or None if this is the current leaf
	Variable int32
	Value    fixing.Bit
}

// Pool is the 2·n-slot node pool for one permutation's tree. Slot
// assignment is deterministic: Slot(variable, side).
type Pool struct {
	n     int
	nodes []Node
	live  []bool
}

// NewPool allocates a pool for a domain of size n (2n slots).
func NewPool(n int) *Pool {
	return &Pool{n: n, nodes: make([]Node, 2*n), live: make([]bool, 2*n)}
}

// Slot returns the deterministic slot index for (variable, side).
func Slot(variable, side int) int32 { return int32(2*variable + side) }

// Variable returns the variable a slot was computed from.
func Variable(slot int32) int32 { return slot / 2 }

// Side returns the side a slot was computed from.
func Side(slot int32) int { return int(slot % 2) }

// Live reports whether slot currently holds a node.
func (p *Pool) Live(slot int32) bool { return p.live[slot] }

// Get returns a pointer to the node stored at slot. Callers must check
// Live first; Get on a dead slot returns a pointer to stale/zero data.
func (p *Pool) Get(slot int32) *Node { return &p.nodes[slot] }

// Put installs n at its deterministic slot and marks it live.
func (p *Pool) Put(slot int32, n Node) {
	p.nodes[slot] = n
	p.live[slot] = true
}

// Free marks slot as not holding a node.
func (p *Pool) Free(slot int32) { p.live[slot] = false }

// Reset clears every slot, recycling the pool for the next propagate()
// call without reallocating its backing arrays.
func (p *Pool) Reset() {
	for i := range p.live {
		p.live[i] = false
	}
}
