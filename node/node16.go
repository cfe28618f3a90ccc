package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/simd"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/internal/xunsafe"
)

// Node16 holds 4 to 16 children in sorted parallel arrays, like Node4 but
// wide enough that lookups use the word-packed equality scan instead of a
// byte-at-a-time loop.
type Node16[T any] struct {
	Base[T]

	// Keys holds the bound key bytes in ascending order; only the first
	// NumChildren entries are valid.
	Keys [16]byte

	// Children holds the child references parallel to Keys.
	Children [16]Ref[T]
}

var _ Node[any] = (*Node16[any])(nil)

// Type returns TypeNode16.
func (n *Node16[T]) Type() Type { return TypeNode16 }

// Full reports whether the node holds 16 children.
func (n *Node16[T]) Full() bool { return n.NumChildren == 16 }

// Ref returns the tagged reference to this node.
func (n *Node16[T]) Ref() Ref[T] { return NewRef[T](TypeNode16, n) }

// Minimum returns the smallest leaf of this subtree, preferring the
// zero-sized child over any real child.
func (n *Node16[T]) Minimum() *Leaf[T] {
	if l := n.zeroLeaf(); l != nil {
		return l
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

// Maximum returns the largest leaf of this subtree.
func (n *Node16[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return n.zeroLeaf()
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

// FindChild returns the slot bound to b via the word-packed equality scan.
func (n *Node16[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		return n.findZero()
	}

	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, byte(b)); i >= 0 {
		return &n.Children[i]
	}

	return nil
}

// AddChild binds b to child, shifting the arrays to keep the keys sorted.
func (n *Node16[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node must not be full")

	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, byte(b))
	if i < n.NumChildren {
		copy(n.Keys[i+1:], n.Keys[i:])
		copy(n.Children[i+1:], n.Children[i:])
	}

	n.Keys[i] = byte(b)
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// RemoveChild unbinds the entry whose slot is child, closing the gap.
func (n *Node16[T]) RemoveChild(b int, child *Ref[T]) {
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

// Grow copies this node into a Node48, building its index table.
func (n *Node16[T]) Grow(a arena.Allocator) Node[T] {
	grown := arena.New(a, Node48[T]{Base: n.Base})

	copy(grown.Children[:], n.Children[:n.NumChildren])
	for i := 0; i < n.NumChildren; i++ {
		grown.Keys[n.Keys[i]] = byte(i + 1)
	}

	return grown
}

// Shrink copies this node into a Node4 once it is down to 3 children.
//
// The threshold sits below Node4's capacity on purpose: the fresh Node4 can
// still take one more child before it has to grow again.
func (n *Node16[T]) Shrink(a arena.Allocator) Node[T] {
	if n.NumChildren > 3 {
		return n
	}

	shrunk := arena.New(a, Node4[T]{Base: n.Base})

	// Copy exactly NumChildren entries; the slots past them are stale.
	copy(shrunk.Keys[:], n.Keys[:n.NumChildren])
	copy(shrunk.Children[:], n.Children[:n.NumChildren])

	arena.Free(a, n)

	return shrunk
}

// Release returns the node's memory to the allocator.
func (n *Node16[T]) Release(a arena.Allocator) {
	arena.Free(a, n)
}
