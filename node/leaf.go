package node

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/arena/slice"
	"github.com/flier/art/internal/debug"
)

// Leaf is a terminal node: the full key and the value stored under it.
//
// A leaf never interprets its value; the tree stores and returns it as-is.
type Leaf[T any] struct {
	// Key is the complete key, copied onto the arena. It may be empty and
	// may contain zero bytes.
	Key slice.Slice[byte]

	// Value is the value stored under Key.
	Value T
}

var _ Node[any] = (*Leaf[any])(nil)

// NewLeaf copies key onto the arena and wraps it with value in a new leaf.
func NewLeaf[T any](a arena.Allocator, key []byte, value T) *Leaf[T] {
	debug.Assert(a != nil, "allocator must not be nil")

	return arena.New(a, Leaf[T]{slice.FromBytes(a, key), value})
}

// Type returns TypeLeaf.
func (l *Leaf[T]) Type() Type { return TypeLeaf }

// Full always reports true; leaves take no children.
func (l *Leaf[T]) Full() bool { return true }

// Ref returns the tagged reference to this leaf.
func (l *Leaf[T]) Ref() Ref[T] { return NewRef[T](TypeLeaf, l) }

// Minimum returns the leaf itself.
func (l *Leaf[T]) Minimum() *Leaf[T] { return l }

// Maximum returns the leaf itself.
func (l *Leaf[T]) Maximum() *Leaf[T] { return l }

// Matches reports whether the leaf stores exactly key.
func (l *Leaf[T]) Matches(key []byte) bool {
	return slice.EqualTo(l.Key, key)
}

// MatchesPrefix reports whether the leaf's key starts with prefix.
func (l *Leaf[T]) MatchesPrefix(prefix []byte) bool {
	return slice.HasPrefix(l.Key, prefix)
}

// Release returns the key storage and the leaf itself to the allocator.
// The value is not touched; it belongs to the caller.
func (l *Leaf[T]) Release(a arena.Allocator) {
	l.Key.Release(a)

	arena.Free(a, l)
}

// Prefix panics; a leaf carries a full key, not a compressed edge.
func (l *Leaf[T]) Prefix() *Prefix { panic("art: leaf has no compressed prefix") }

// ZeroChild panics; leaves take no children.
func (l *Leaf[T]) ZeroChild() *Ref[T] { panic("art: leaf cannot have children") }

// FindChild panics; leaves take no children.
func (l *Leaf[T]) FindChild(b int) *Ref[T] { panic("art: leaf cannot have children") }

// AddChild panics; leaves take no children.
func (l *Leaf[T]) AddChild(b int, child AsRef[T]) { panic("art: leaf cannot have children") }

// RemoveChild panics; leaves take no children.
func (l *Leaf[T]) RemoveChild(b int, child *Ref[T]) { panic("art: leaf cannot have children") }

// Grow panics; leaves do not change layout.
func (l *Leaf[T]) Grow(a arena.Allocator) Node[T] { panic("art: leaf cannot grow") }

// Shrink panics; leaves do not change layout.
func (l *Leaf[T]) Shrink(a arena.Allocator) Node[T] { panic("art: leaf cannot shrink") }
