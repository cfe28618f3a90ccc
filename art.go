package art

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/node"
	"github.com/flier/art/tree"
)

// Tree is an Adaptive Radix Tree mapping byte-string keys to values of
// type T.
//
// The zero Tree is empty and ready to use. All nodes live on the arena
// passed to the mutating methods; use one allocator per tree.
type Tree[T any] struct {
	root node.Ref[T]
	size int
}

// Size returns the number of keys in the tree.
func (t *Tree[T]) Size() int { return t.size }

// Search returns a pointer to the value stored under key, or nil if the key
// is absent.
func (t *Tree[T]) Search(key []byte) *T {
	return tree.Search(t.root, key)
}

// Minimum returns the leaf holding the lexicographically smallest key, or
// nil if the tree is empty.
func (t *Tree[T]) Minimum() *node.Leaf[T] {
	if t.root.Empty() {
		return nil
	}

	return t.root.AsNode().Minimum()
}

// Maximum returns the leaf holding the lexicographically largest key, or
// nil if the tree is empty.
func (t *Tree[T]) Maximum() *node.Leaf[T] {
	if t.root.Empty() {
		return nil
	}

	return t.root.AsNode().Maximum()
}

// Insert stores value under key, overwriting any previous value.
//
// It returns a pointer to the previous value if the key was present, or nil
// if the key is new.
func (t *Tree[T]) Insert(a arena.Allocator, key []byte, value T) *T {
	old := tree.RecursiveInsert(a, &t.root, node.NewLeaf(a, key, value), 0, true)
	if old == nil {
		t.size++
	}

	return old
}

// InsertNoReplace stores value under key unless the key is already present,
// in which case the stored value is left alone.
//
// It returns a pointer to the existing value if the key was present, or nil
// if the key is new.
func (t *Tree[T]) InsertNoReplace(a arena.Allocator, key []byte, value T) *T {
	old := tree.RecursiveInsert(a, &t.root, node.NewLeaf(a, key, value), 0, false)
	if old == nil {
		t.size++
	}

	return old
}

// Delete removes key from the tree.
//
// It returns a pointer to the removed value, or nil if the key was absent.
func (t *Tree[T]) Delete(a arena.Allocator, key []byte) *T {
	l := tree.RecursiveDelete(a, &t.root, key, 0)
	if l == nil {
		return nil
	}

	old := l.Value
	l.Release(a)
	t.size--

	return &old
}

// Visit calls cb for every key in ascending lexicographic order until cb
// returns true. It reports whether the walk was stopped by cb.
func (t *Tree[T]) Visit(cb func(key []byte, value *T) bool) bool {
	return tree.RecursiveIter(t.root, cb)
}

// VisitPrefix calls cb, in ascending lexicographic order, for every key
// starting with prefix, until cb returns true. It reports whether the walk
// was stopped by cb.
func (t *Tree[T]) VisitPrefix(prefix []byte, cb func(key []byte, value *T) bool) bool {
	return tree.IterPrefix(t.root, prefix, cb)
}

// Release tears the tree down, returning every node and leaf to the
// allocator, and leaves the tree empty and reusable.
//
// Values are not touched; if they hold resources, drain them with Visit
// first.
func (t *Tree[T]) Release(a arena.Allocator) {
	tree.RecursiveRelease(a, t.root)

	t.root = 0
	t.size = 0
}
