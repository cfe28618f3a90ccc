package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/internal/xunsafe"
)

// Node4 is the smallest inner node, holding up to 4 children in sorted
// parallel arrays. It is the variant every inner node starts life as, and
// the only one that can dissolve entirely: when it is down to a single
// inner child and no zero-sized child, it collapses onto the child's edge.
type Node4[T any] struct {
	Base[T]

	// Keys holds the bound key bytes in ascending order; only the first
	// NumChildren entries are valid.
	Keys [4]byte

	// Children holds the child references parallel to Keys.
	Children [4]Ref[T]
}

var _ Node[any] = (*Node4[any])(nil)

// Type returns TypeNode4.
func (n *Node4[T]) Type() Type { return TypeNode4 }

// Full reports whether the node holds 4 children.
func (n *Node4[T]) Full() bool { return n.NumChildren == 4 }

// Ref returns the tagged reference to this node.
func (n *Node4[T]) Ref() Ref[T] { return NewRef[T](TypeNode4, n) }

// Minimum returns the smallest leaf of this subtree, preferring the
// zero-sized child over any real child.
func (n *Node4[T]) Minimum() *Leaf[T] {
	if l := n.zeroLeaf(); l != nil {
		return l
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

// Maximum returns the largest leaf of this subtree.
func (n *Node4[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return n.zeroLeaf()
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

// FindChild returns the slot bound to b, scanning the sorted keys linearly.
func (n *Node4[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		return n.findZero()
	}

	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == byte(b) {
			return &n.Children[i]
		}
	}

	return nil
}

// AddChild binds b to child, shifting the arrays to keep the keys sorted.
func (n *Node4[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node must not be full")

	var i int
	for ; i < n.NumChildren; i++ {
		if byte(b) < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:], n.Keys[i:])
	copy(n.Children[i+1:], n.Children[i:])

	n.Keys[i] = byte(b)
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// RemoveChild unbinds the entry whose slot is child, closing the gap.
func (n *Node4[T]) RemoveChild(b int, child *Ref[T]) {
	if b < 0 {
		n.ZeroSizedChild = 0

		return
	}

	pos := xunsafe.Sub(child, &n.Children[0])

	debug.Assert(pos >= 0 && pos < n.NumChildren, "child must be in the node")

	copy(n.Keys[pos:], n.Keys[pos+1:])
	copy(n.Children[pos:], n.Children[pos+1:])

	n.NumChildren--
}

// Grow copies this node into a Node16.
func (n *Node4[T]) Grow(a arena.Allocator) Node[T] {
	grown := arena.New(a, Node16[T]{Base: n.Base})

	copy(grown.Keys[:], n.Keys[:n.NumChildren])
	copy(grown.Children[:], n.Children[:n.NumChildren])

	return grown
}

// Shrink dissolves the node once it no longer distinguishes anything.
//
// With a single leaf child and nothing else the leaf takes the node's
// place outright: its key already spells the whole path. With a single
// inner child the node merges onto the child's edge, prepending its own
// prefix and the connecting key byte to the child's prefix. With no
// children at all the zero-sized child is promoted.
//
// A node keeping its zero-sized child alongside one real child cannot
// dissolve; the zero-sized key still terminates here.
func (n *Node4[T]) Shrink(a arena.Allocator) Node[T] {
	if n.NumChildren > 1 {
		return n
	}

	if n.NumChildren == 0 {
		// The zero-sized child, if any, takes the node's place; with
		// that slot empty too the node dissolves to nothing. The latter
		// happens when the terminating key was deleted first and the
		// last real child after it.
		zero := n.ZeroSizedChild

		arena.Free(a, n)

		if zero.Empty() {
			return nil
		}

		return zero.AsNode()
	}

	if !n.ZeroSizedChild.Empty() {
		return n
	}

	child := n.Children[0]

	if !child.IsLeaf() {
		// Concatenate this node's prefix, the connecting byte and the
		// child's prefix onto the child's edge. The inline windows of
		// both prefixes are enough to rebuild the combined window.
		cp := child.AsNode().Prefix()

		var joined Prefix
		m := copy(joined.Data[:], n.Partial.Inline())
		if m < MaxPrefixLen {
			joined.Data[m] = n.Keys[0]
			m++
		}
		if m < MaxPrefixLen {
			copy(joined.Data[m:], cp.Inline())
		}
		joined.Len = n.Partial.Len + 1 + cp.Len

		*cp = joined
	}

	arena.Free(a, n)

	return child.AsNode()
}

// Release returns the node's memory to the allocator.
func (n *Node4[T]) Release(a arena.Allocator) {
	arena.Free(a, n)
}
