// Package list implements the concurrent doubly-linked list core
// (component G): List, Node, Cursor, and the TOMBSTONE reclamation
// protocol.
//
// Node pooling follows the teacher's ast/pool.go Get/Release idiom
// (sync.Pool of zero-valued structs, reset on release) generalized
// from AST nodes to list nodes: a node freed by the TOMBSTONE
// protocol's final unlink is returned to nodePool instead of left for
// the garbage collector, the same way ast.ReleaseAST walks a tree
// returning each node to its pool.
package list

import "sync"

// Kind classifies a Node.
type Kind int

const (
	DATA Kind = iota
	HEAD
	TAIL
	TOMBSTONE
)

func (k Kind) String() string {
	switch k {
	case DATA:
		return "DATA"
	case HEAD:
		return "HEAD"
	case TAIL:
		return "TAIL"
	case TOMBSTONE:
		return "TOMBSTONE"
	default:
		return "?"
	}
}

// Node is one linked-list element (spec.md §3). HEAD and TAIL are
// fixed sentinels created at list construction and never removed.
type Node struct {
	value        any
	kind         Kind
	prev, next   *Node
	iterRefcount int
	owner        *List
}

var nodePool = sync.Pool{New: func() any { return &Node{} }}

func getNode() *Node { return nodePool.Get().(*Node) }

func releaseNode(n *Node) {
	*n = Node{}
	nodePool.Put(n)
}

// Value returns the node's stored value; zero value if the node is a
// sentinel or TOMBSTONE.
func (n *Node) Value() any { return n.value }

// Kind reports the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// unlink removes n from its doubly-linked chain, relinking its
// neighbors directly together.
func (n *Node) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// insertBefore splices a brand-new DATA node holding value into the
// chain immediately before n, returning the new node.
func insertBefore(n *Node, value any, owner *List) *Node {
	nn := getNode()
	nn.value = value
	nn.kind = DATA
	nn.owner = owner
	nn.prev = n.prev
	nn.next = n
	if n.prev != nil {
		n.prev.next = nn
	}
	n.prev = nn
	return nn
}

// maybeReclaim unlinks and frees n once it is a TOMBSTONE with no
// outstanding cursor references — the heart of spec.md §4.G's
// TOMBSTONE protocol, step 4.
func maybeReclaim(n *Node) {
	if n.kind == TOMBSTONE && n.iterRefcount <= 0 {
		n.unlink()
		releaseNode(n)
	}
}
