package tree

import "github.com/cockroachdb/errors"

// updateHeight recomputes the cached height of n from its children, then
// repeats for every ancestor up to the absolute root. Each node's height
// is derived from its children's caches only, so a structural edit costs
// O(depth + arity) rather than a subtree recomputation.
func updateHeight[V any](n *Node[V]) {
	for ; n != nil; n = n.parent {
		h := 0
		for _, c := range n.children {
			if c.height+1 > h {
				h = c.height + 1
			}
		}
		n.height = h
	}
}

// Detach removes n from its parent, turning n into the root of an
// independent tree carrying all of its descendants. Detaching a node that
// already has no parent is a no-op. Returns n.
//
// The former parent's remaining children keep their order; their cached
// positions and the heights of all former ancestors are updated.
func (n *Node[V]) Detach() *Node[V] {
	p := n.parent
	if p == nil {
		return n
	}

	copy(p.children[n.pos:], p.children[n.pos+1:])
	p.children[len(p.children)-1] = nil
	p.children = p.children[:len(p.children)-1]
	for i := n.pos; i < len(p.children); i++ {
		p.children[i].pos = i
	}

	n.parent = nil
	n.pos = 0
	updateHeight(p)
	return n
}

// validateSubtree checks the shared preconditions of the attach family.
func (n *Node[V]) validateSubtree(sub *Node[V]) error {
	if sub == nil {
		return ErrNilSubtree
	}
	if sub.parent != nil {
		return ErrAttached
	}
	if n.IsDescendantOf(sub) {
		return ErrCycle
	}
	return nil
}

// AddSubtree appends sub as the last child of n. sub must be detached
// (parentless) and must not be an ancestor of n; otherwise the tree is
// left untouched and an error is returned.
func (n *Node[V]) AddSubtree(sub *Node[V]) error {
	if err := n.validateSubtree(sub); err != nil {
		return err
	}

	n.children = append(n.children, sub)
	sub.parent = n
	sub.pos = len(n.children) - 1
	updateHeight(n)
	return nil
}

// InsertSubtree places sub at index i of n's children, shifting the
// children at index >= i one slot to the right. i must be in the range
// [0, OutDegree()]; inserting at OutDegree() is equivalent to AddSubtree.
// The same detachment preconditions as AddSubtree apply.
func (n *Node[V]) InsertSubtree(sub *Node[V], i int) error {
	if err := n.validateSubtree(sub); err != nil {
		return err
	}
	if i < 0 || i > len(n.children) {
		return errors.Wrapf(ErrIndexRange, "insert at %d with %d children", i, len(n.children))
	}

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = sub
	for j := i + 1; j < len(n.children); j++ {
		n.children[j].pos = j
	}

	sub.parent = n
	sub.pos = i
	updateHeight(n)
	return nil
}

// SetSubtree places sub at index i of n's children. If i equals
// OutDegree() this behaves like AddSubtree and the returned replaced node
// is nil. Otherwise the subtree previously at i is unlinked, returned to
// the caller as an independent tree, and sub takes its slot. i must be in
// the range [0, OutDegree()]; the same detachment preconditions as
// AddSubtree apply.
func (n *Node[V]) SetSubtree(sub *Node[V], i int) (replaced *Node[V], err error) {
	if err := n.validateSubtree(sub); err != nil {
		return nil, err
	}
	if i < 0 || i > len(n.children) {
		return nil, errors.Wrapf(ErrIndexRange, "set at %d with %d children", i, len(n.children))
	}

	if i == len(n.children) {
		n.children = append(n.children, sub)
	} else {
		replaced = n.children[i]
		replaced.parent = nil
		replaced.pos = 0
		n.children[i] = sub
	}

	sub.parent = n
	sub.pos = i
	updateHeight(n)
	return replaced, nil
}

// AddChild allocates a node holding payload and appends it as the last
// child of n, returning the new node.
func (n *Node[V]) AddChild(payload V) *Node[V] {
	c := New(payload)
	// A fresh node is detached and cannot be an ancestor of n.
	_ = n.AddSubtree(c)
	return c
}

// InsertChild allocates a node holding payload and inserts it at index i
// of n's children, returning the new node. i must be in the range
// [0, OutDegree()].
func (n *Node[V]) InsertChild(payload V, i int) (*Node[V], error) {
	c := New(payload)
	if err := n.InsertSubtree(c, i); err != nil {
		return nil, err
	}
	return c, nil
}

// SetChild allocates a node holding payload and places it at index i of
// n's children, returning the new node. Any subtree previously at i is
// unlinked and discarded. i must be in the range [0, OutDegree()].
func (n *Node[V]) SetChild(payload V, i int) (*Node[V], error) {
	c := New(payload)
	if _, err := n.SetSubtree(c, i); err != nil {
		return nil, err
	}
	return c, nil
}
