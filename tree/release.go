package tree

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/node"
)

// RecursiveRelease tears down the subtree below ref post-order, returning
// every leaf and node to the allocator. Values are not touched; they belong
// to the caller.
func RecursiveRelease[T any](a arena.Allocator, ref node.Ref[T]) {
	if ref.Empty() {
		return
	}

	switch n := ref.AsNode().(type) {
	case *node.Leaf[T]:
		n.Release(a)

	case *node.Node4[T]:
		for i := 0; i < n.NumChildren; i++ {
			RecursiveRelease(a, n.Children[i])
		}

		releaseInner(a, n)

	case *node.Node16[T]:
		for i := 0; i < n.NumChildren; i++ {
			RecursiveRelease(a, n.Children[i])
		}

		releaseInner(a, n)

	case *node.Node48[T]:
		for i := 0; i < 256; i++ {
			if s := n.Keys[i]; s != 0 {
				RecursiveRelease(a, n.Children[s-1])
			}
		}

		releaseInner(a, n)

	case *node.Node256[T]:
		for i := 0; i < 256; i++ {
			RecursiveRelease(a, n.Children[i])
		}

		releaseInner(a, n)
	}
}

// releaseInner frees an inner node's zero-sized child and then the node.
func releaseInner[T any](a arena.Allocator, n node.Node[T]) {
	if l := n.ZeroChild().AsLeaf(); l != nil {
		l.Release(a)
	}

	n.Release(a)
}
