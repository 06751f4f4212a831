package tree

import "github.com/cockroachdb/errors"

// Structural mutation errors. Every mutating operation validates its
// arguments before touching the tree, so any of these errors means the
// tree is exactly as it was before the call.
var (
	// ErrNilSubtree indicates that a nil subtree was passed where one is
	// required.
	ErrNilSubtree = errors.New("tree: nil subtree")

	// ErrAttached indicates that a subtree argument still has a parent.
	// Subtrees must be detached before they can be attached elsewhere.
	ErrAttached = errors.New("tree: subtree is already attached")

	// ErrIndexRange indicates that a child index is outside its valid
	// range.
	ErrIndexRange = errors.New("tree: child index out of range")

	// ErrCycle indicates that attaching the subtree would have placed a
	// node beneath one of its own descendants.
	ErrCycle = errors.New("tree: node cannot be attached beneath itself")
)
