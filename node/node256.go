package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
)

// Node256 holds 38 to 256 children in a directly indexed array: the key
// byte is the slot. The fan-out ceiling of the tree, it never grows.
type Node256[T any] struct {
	Base[T]

	// Children holds the child reference for each possible key byte; an
	// empty reference marks an unbound byte.
	Children [256]Ref[T]
}

var _ Node[any] = (*Node256[any])(nil)

// Type returns TypeNode256.
func (n *Node256[T]) Type() Type { return TypeNode256 }

// Full reports whether every key byte is bound.
func (n *Node256[T]) Full() bool { return n.NumChildren == 256 }

// Ref returns the tagged reference to this node.
func (n *Node256[T]) Ref() Ref[T] { return NewRef[T](TypeNode256, n) }

// Minimum returns the smallest leaf of this subtree, preferring the
// zero-sized child over any real child.
func (n *Node256[T]) Minimum() *Leaf[T] {
	if l := n.zeroLeaf(); l != nil {
		return l
	}

	for i := 0; i < 256; i++ {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Minimum()
		}
	}

	return nil
}

// Maximum returns the largest leaf of this subtree.
func (n *Node256[T]) Maximum() *Leaf[T] {
	for i := 255; i >= 0; i-- {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Maximum()
		}
	}

	return n.zeroLeaf()
}

// FindChild returns the slot bound to b by direct indexing.
func (n *Node256[T]) FindChild(b int) *Ref[T] {
	if b < 0 {
		return n.findZero()
	}

	if !n.Children[b].Empty() {
		return &n.Children[b]
	}

	return nil
}

// AddChild binds b to child.
func (n *Node256[T]) AddChild(b int, child AsRef[T]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	debug.Assert(n.Children[b].Empty(), "byte must not be bound already")

	n.Children[b] = child.Ref()
	n.NumChildren++
}

// RemoveChild unbinds b.
func (n *Node256[T]) RemoveChild(b int, child *Ref[T]) {
	if b < 0 {
		n.ZeroSizedChild = 0

		return
	}

	n.Children[b] = 0
	n.NumChildren--
}

// Grow returns the node itself; there is no larger variant.
func (n *Node256[T]) Grow(a arena.Allocator) Node[T] { return n }

// Shrink copies this node into a Node48 once it is down to 37 children.
//
// The threshold sits well below the 48/49 boundary so removals right after
// a growth do not immediately bounce the node back.
func (n *Node256[T]) Shrink(a arena.Allocator) Node[T] {
	if n.NumChildren > 37 {
		return n
	}

	shrunk := arena.New(a, Node48[T]{Base: n.Base})

	var s int
	for i := 0; i < 256; i++ {
		if !n.Children[i].Empty() {
			shrunk.Children[s] = n.Children[i]
			shrunk.Keys[i] = byte(s + 1)
			s++
		}
	}

	arena.Free(a, n)

	return shrunk
}

// Release returns the node's memory to the allocator.
func (n *Node256[T]) Release(a arena.Allocator) {
	arena.Free(a, n)
}
