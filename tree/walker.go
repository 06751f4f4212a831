package tree

import "iter"

// walkKind selects the traversal protocol of a Walker.
type walkKind int

const (
	walkPreorder walkKind = iota
	walkPostorder
	walkLeaves
	walkParents
)

// Walker is a resumable, bidirectional cursor over the topology of a
// tree. All four traversal protocols share the same state: the bound node
// delimiting the traversal, the previously returned node, the currently
// returned node, and the node the next forward step will return. Stepping
// recomputes a neighbor purely from parent/child/position links, so a
// Walker uses O(1) space regardless of tree size, at a worst-case cost of
// O(depth) per step.
//
// A Walker never mutates the tree. Mutating the tree while a Walker over
// it is live invalidates the Walker's cached links; callers must finish
// or discard walkers before editing.
type Walker[V any] struct {
	kind  walkKind
	bound *Node[V]

	// start is the seed node of a parent-chain walk; unused otherwise.
	start *Node[V]

	prev    *Node[V]
	current *Node[V]
	next    *Node[V]
}

// WalkPreorder returns a walker yielding every node of the tree bounded
// by bound in preorder: each node strictly before all of its descendants,
// children left to right. The first forward step yields bound itself.
func WalkPreorder[V any](bound *Node[V]) *Walker[V] {
	w := &Walker[V]{kind: walkPreorder, bound: bound}
	w.next = bound
	return w
}

// WalkPostorder returns a walker yielding every node of the tree bounded
// by bound in postorder: each node strictly after all of its descendants.
// The first forward step yields the deep-left-most leaf; the last yields
// bound itself.
func WalkPostorder[V any](bound *Node[V]) *Walker[V] {
	w := &Walker[V]{kind: walkPostorder, bound: bound}
	if bound != nil {
		w.next = bound.deepFirst()
	}
	return w
}

// WalkLeaves returns a walker yielding the leaves of the tree bounded by
// bound, left to right, starting at the first leaf.
func WalkLeaves[V any](bound *Node[V]) *Walker[V] {
	w := &Walker[V]{kind: walkLeaves, bound: bound}
	if bound != nil {
		w.next = bound.deepFirst()
	}
	return w
}

// WalkLeavesBackward returns a walker over the leaves of the tree bounded
// by bound, seeded at the last leaf so that the first backward step
// yields it.
func WalkLeavesBackward[V any](bound *Node[V]) *Walker[V] {
	w := &Walker[V]{kind: walkLeaves, bound: bound}
	if bound != nil {
		w.prev = bound.deepLast()
	}
	return w
}

// WalkParents returns a walker yielding start, then each of start's
// ancestors in turn, ending with bound itself. start must lie inside the
// tree bounded by bound; if it does not, the walk ends at the absolute
// root of start's tree instead.
func WalkParents[V any](bound, start *Node[V]) *Walker[V] {
	w := &Walker[V]{kind: walkParents, bound: bound, start: start}
	w.next = start
	return w
}

// HasNext reports whether a forward step will yield a node.
func (w *Walker[V]) HasNext() bool {
	return w.next != nil
}

// HasPrev reports whether a backward step will yield a node.
func (w *Walker[V]) HasPrev() bool {
	return w.prev != nil
}

// Current returns the most recently returned node, or nil if the walker
// has not stepped yet or has crossed a boundary.
func (w *Walker[V]) Current() *Node[V] {
	return w.current
}

// Value returns the payload of the current node, or the zero value of V
// if there is no current node.
func (w *Walker[V]) Value() V {
	if w.current == nil {
		var zero V
		return zero
	}
	return w.current.payload
}

// Next steps the walker forward and returns the new current node, or nil
// once the traversal is exhausted. Stepping past the end leaves the
// walker positioned just after the last node, so a subsequent Prev
// returns that node again.
func (w *Walker[V]) Next() *Node[V] {
	w.prev, w.current = w.current, w.next
	if w.current != nil {
		w.next = w.forwardFrom(w.current)
	} else {
		w.next = nil
	}
	return w.current
}

// Prev steps the walker backward and returns the new current node, or nil
// once the traversal is exhausted in that direction. The mirror of Next.
func (w *Walker[V]) Prev() *Node[V] {
	w.next, w.current = w.current, w.prev
	if w.current != nil {
		w.prev = w.backwardFrom(w.current)
	} else {
		w.prev = nil
	}
	return w.current
}

// forwardFrom computes the node following c in this walker's protocol, or
// nil if c is the last node inside the bound.
func (w *Walker[V]) forwardFrom(c *Node[V]) *Node[V] {
	switch w.kind {
	case walkPreorder:
		if len(c.children) > 0 {
			return c.children[0]
		}
		// Climb until an ancestor inside the bound has a right sibling.
		for x := c; x != w.bound && x.parent != nil; x = x.parent {
			if x.pos+1 < len(x.parent.children) {
				return x.parent.children[x.pos+1]
			}
		}
		return nil

	case walkPostorder:
		if c == w.bound || c.parent == nil {
			return nil
		}
		if c.pos+1 < len(c.parent.children) {
			return c.parent.children[c.pos+1].deepFirst()
		}
		// Every child of the parent has been yielded, so the parent
		// itself is next.
		return c.parent

	case walkLeaves:
		for x := c; x != w.bound && x.parent != nil; x = x.parent {
			if x.pos+1 < len(x.parent.children) {
				return x.parent.children[x.pos+1].deepFirst()
			}
		}
		return nil

	case walkParents:
		if c == w.bound {
			return nil
		}
		return c.parent
	}
	return nil
}

// backwardFrom computes the node preceding c in this walker's protocol,
// or nil if c is the first node inside the bound.
func (w *Walker[V]) backwardFrom(c *Node[V]) *Node[V] {
	switch w.kind {
	case walkPreorder:
		if c == w.bound {
			return nil
		}
		if c.pos > 0 && c.parent != nil {
			return c.parent.children[c.pos-1].deepLast()
		}
		return c.parent

	case walkPostorder:
		// Postorder yields descendants before their ancestor, siblings
		// left to right, so the predecessor of an inner node is its last
		// child, and the predecessor of a leaf is the nearest ancestor's
		// left sibling (whole subtree already yielded, root last).
		if len(c.children) > 0 {
			return c.children[len(c.children)-1]
		}
		for x := c; x != w.bound && x.parent != nil; x = x.parent {
			if x.pos > 0 {
				return x.parent.children[x.pos-1]
			}
		}
		return nil

	case walkLeaves:
		for x := c; x != w.bound && x.parent != nil; x = x.parent {
			if x.pos > 0 {
				return x.parent.children[x.pos-1].deepLast()
			}
		}
		return nil

	case walkParents:
		if c == w.start {
			return nil
		}
		// The predecessor on the chain is the child of c that leads back
		// toward the seed node.
		for x := w.start; x != nil; x = x.parent {
			if x.parent == c {
				return x
			}
		}
		return nil
	}
	return nil
}

// Preorder returns an iterator over the nodes of the tree bounded by n in
// preorder, for use with a range statement. Each range starts a fresh
// walk.
func (n *Node[V]) Preorder() iter.Seq[*Node[V]] {
	return walkSeq(func() *Walker[V] { return WalkPreorder(n) })
}

// Postorder returns an iterator over the nodes of the tree bounded by n
// in postorder, for use with a range statement.
func (n *Node[V]) Postorder() iter.Seq[*Node[V]] {
	return walkSeq(func() *Walker[V] { return WalkPostorder(n) })
}

// Leaves returns an iterator over the leaves of the tree bounded by n,
// left to right, for use with a range statement.
func (n *Node[V]) Leaves() iter.Seq[*Node[V]] {
	return walkSeq(func() *Walker[V] { return WalkLeaves(n) })
}

// Ancestors returns an iterator yielding n, then each ancestor of n up to
// and including bound, for use with a range statement.
func (n *Node[V]) Ancestors(bound *Node[V]) iter.Seq[*Node[V]] {
	return walkSeq(func() *Walker[V] { return WalkParents(bound, n) })
}

func walkSeq[V any](walk func() *Walker[V]) iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		for w := walk(); w.HasNext(); {
			if !yield(w.Next()) {
				return
			}
		}
	}
}
