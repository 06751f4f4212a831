// Package tree provides a mutable multiway (arbitrary-arity) tree.
//
// Every node owns an ordered sequence of child nodes and keeps a
// back-reference to its parent, a cached index of its own position among
// its parent's children, and a cached subtree height. Any node can be
// treated as the root of its own reachable subtree; there is no separate
// tree type. Structural edits (attach, detach, insert, replace) keep the
// position and height caches consistent, and four traversal protocols
// (preorder, postorder, leaves-only, parent-chain) are available through
// bidirectional pull-based walkers that use no stack and no recursion.
//
// Payloads are opaque: the tree stores them and hands them back, but never
// compares, copies, or otherwise inspects them.
//
// The tree carries no internal synchronization. Mutating a tree from
// multiple goroutines, or mutating it while a Walker over the same tree is
// live, is undefined; callers must serialize access themselves.
package tree

// Node is a node of a multiway tree holding a payload of type V.
//
// A Node with no parent is the root of its own tree. The zero value is not
// usable; create nodes with New or the child helpers.
type Node[V any] struct {
	parent   *Node[V]
	children []*Node[V]

	// pos is this node's index in parent.children. Zero for a root.
	pos int

	// height is the cached height of the subtree rooted here: 0 for a
	// leaf, else 1 + the maximum child height. Maintained incrementally
	// by the mutating operations.
	height int

	payload V
}

// New creates a detached node holding payload. The node has no parent and
// no children, so it is the root of a single-node tree of height 0.
func New[V any](payload V) *Node[V] {
	return &Node[V]{payload: payload}
}

// Payload returns the payload stored in n.
func (n *Node[V]) Payload() V {
	return n.payload
}

// SetPayload replaces the payload stored in n.
func (n *Node[V]) SetPayload(v V) {
	n.payload = v
}

// Parent returns the parent of n within the tree bounded by bound. If n is
// bound itself it is the root of that tree and has no parent within it, so
// nil is returned.
func (n *Node[V]) Parent(bound *Node[V]) *Node[V] {
	if n == bound {
		return nil
	}
	return n.parent
}

// AbsRoot returns the absolute root of the tree containing n: the unique
// ancestor (possibly n itself) that has no parent.
func (n *Node[V]) AbsRoot() *Node[V] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// OutDegree returns the number of children of n.
func (n *Node[V]) OutDegree() int {
	return len(n.children)
}

// IsLeaf reports whether n has no children.
func (n *Node[V]) IsLeaf() bool {
	return len(n.children) == 0
}

// Child returns the i-th child of n, or nil if i is out of range.
func (n *Node[V]) Child(i int) *Node[V] {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child of n, or nil if n is a leaf.
func (n *Node[V]) FirstChild() *Node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child of n, or nil if n is a leaf.
func (n *Node[V]) LastChild() *Node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Children returns a copy of n's child sequence in order. Mutating the
// returned slice does not affect the tree.
func (n *Node[V]) Children() []*Node[V] {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node[V], len(n.children))
	copy(out, n.children)
	return out
}

// Pos returns n's cached index within its parent's children. Zero for a
// root.
func (n *Node[V]) Pos() int {
	return n.pos
}

// Height returns the height of the subtree rooted at n: the number of
// edges on the longest downward path from n to a leaf. Leaves have height
// 0. The value is cached and maintained by the mutating operations, so
// this is O(1).
func (n *Node[V]) Height() int {
	return n.height
}

// IsDescendantOf reports whether n is a descendant of a. A node counts as
// a descendant of itself.
func (n *Node[V]) IsDescendantOf(a *Node[V]) bool {
	for d := n; d != nil; d = d.parent {
		if d == a {
			return true
		}
	}
	return false
}

// IsAncestorOf reports whether n is an ancestor of d. A node counts as an
// ancestor of itself.
func (n *Node[V]) IsAncestorOf(d *Node[V]) bool {
	return d.IsDescendantOf(n)
}

// Depth returns the number of edges between bound and n. If n is not
// inside the tree bounded by bound, 0 is returned.
func (n *Node[V]) Depth(bound *Node[V]) int {
	if !n.IsDescendantOf(bound) {
		return 0
	}
	d := 0
	for c := n; c != bound; c = c.parent {
		d++
	}
	return d
}

// Level returns 1 + Depth(bound), or 0 if n is not inside the tree bounded
// by bound.
func (n *Node[V]) Level(bound *Node[V]) int {
	if !n.IsDescendantOf(bound) {
		return 0
	}
	return n.Depth(bound) + 1
}

// deepFirst descends from n via first children until reaching a leaf.
func (n *Node[V]) deepFirst() *Node[V] {
	c := n
	for len(c.children) > 0 {
		c = c.children[0]
	}
	return c
}

// deepLast descends from n via last children until reaching a leaf.
func (n *Node[V]) deepLast() *Node[V] {
	c := n
	for len(c.children) > 0 {
		c = c.children[len(c.children)-1]
	}
	return c
}
