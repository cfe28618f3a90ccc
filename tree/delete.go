package tree

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/node"
)

// RecursiveDelete unlinks key from the subtree held by ref and returns the
// detached leaf, or nil if the key is absent.
//
// The caller owns the returned leaf and is expected to release it after
// reading the value out. Structural bookkeeping — shrinking a thinned-out
// node, collapsing a pointless one — happens on the way out of the
// recursion, through the reference slot each call carries.
func RecursiveDelete[T any](a arena.Allocator, ref *node.Ref[T], key []byte, depth int) *node.Leaf[T] {
	if ref.Empty() {
		return nil
	}

	if l := ref.AsLeaf(); l != nil {
		if l.Matches(key) {
			ref.Replace(nil)

			return l
		}

		return nil
	}

	n := ref.AsNode()

	if p := n.Prefix(); !p.Empty() {
		if CheckPrefix(p, key, depth) != len(p.Inline()) {
			return nil
		}

		depth += p.Len
	}

	if depth > len(key) {
		return nil
	}

	if depth == len(key) {
		// A key ending here can only be the zero-sized child. Detaching
		// it changes no structure: the node still separates its real
		// children.
		zero := n.ZeroChild()
		if l := zero.AsLeaf(); l != nil && l.Matches(key) {
			*zero = 0

			return l
		}

		return nil
	}

	b := int(key[depth])

	child := n.FindChild(b)
	if child == nil {
		return nil
	}

	if l := child.AsLeaf(); l != nil {
		if l.Matches(key) {
			RemoveChild(a, ref, b, child)

			return l
		}

		return nil
	}

	l := RecursiveDelete(a, child, key, depth+1)

	// The child may have dissolved to nothing: a node whose terminating
	// key was deleted earlier and whose last real child just went. Its
	// edge has to go with it.
	if l != nil && child.Empty() {
		RemoveChild(a, ref, b, child)
	}

	return l
}

// RemoveChild unbinds b from the node held by ref and lets the node shrink
// or collapse, installing whatever takes its place.
func RemoveChild[T any](a arena.Allocator, ref *node.Ref[T], b int, child *node.Ref[T]) {
	debug.Assert(ref.IsNode(), "ref must hold an inner node")

	n := ref.AsNode()
	n.RemoveChild(b, child)

	if s := n.Shrink(a); s != n {
		ref.Replace(s)
	}
}
