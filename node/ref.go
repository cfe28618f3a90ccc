package node

import (
	"unsafe"

	"github.com/flier/art/arena"
	"github.com/flier/art/internal/xunsafe"
)

// AsRef is implemented by everything that can sit in a child slot: the four
// inner node variants and Leaf.
type AsRef[T any] interface {
	// Ref returns the tagged reference to the node.
	Ref() Ref[T]
}

// Ref is a tagged reference to a node.
//
// It packs the node's address and its type into a single word: the arena
// aligns every allocation to Align bytes, so the low bits of a node address
// are always zero and are free to carry the Type. This is how a child slot
// distinguishes a leaf from an inner node without a separate tag field, in
// O(1) and one word of storage.
//
// The zero Ref is empty.
type Ref[T any] uintptr

const (
	// refTypeMask extracts the type bits of a Ref.
	refTypeMask = uintptr(arena.Align - 1)

	// refPtrMask extracts the address bits of a Ref.
	refPtrMask = ^refTypeMask
)

// NewRef tags the address of p with the node type t.
func NewRef[T, N any](t Type, p *N) Ref[T] {
	addr := uintptr(xunsafe.AddrOf(p))

	return Ref[T]((addr & refPtrMask) | (uintptr(t) & refTypeMask))
}

// Ref returns the reference itself, satisfying AsRef.
func (r Ref[T]) Ref() Ref[T] { return r }

// Type returns the type bits of the reference.
func (r Ref[T]) Type() Type { return Type(uintptr(r) & refTypeMask) }

// Empty reports whether the reference points to nothing.
func (r Ref[T]) Empty() bool { return r == 0 }

// IsLeaf reports whether the reference points to a leaf.
func (r Ref[T]) IsLeaf() bool { return r.Type() == TypeLeaf }

// IsNode reports whether the reference points to an inner node.
func (r Ref[T]) IsNode() bool {
	switch r.Type() {
	case TypeNode4, TypeNode16, TypeNode48, TypeNode256:
		return true
	default:
		return false
	}
}

// AsLeaf returns the referenced leaf, or nil if the reference is empty or
// points to an inner node.
func (r Ref[T]) AsLeaf() *Leaf[T] {
	if r.IsLeaf() {
		return (*Leaf[T])(r.ptr())
	}

	return nil
}

// AsNode returns the referenced node through the Node interface, or nil if
// the reference is empty.
//
// Panics on a corrupt type tag; that is a programming error, not a
// recoverable condition.
func (r Ref[T]) AsNode() Node[T] {
	if r == 0 {
		return nil
	}

	p := r.ptr()

	switch r.Type() {
	case TypeLeaf:
		return (*Leaf[T])(p)
	case TypeNode4:
		return (*Node4[T])(p)
	case TypeNode16:
		return (*Node16[T])(p)
	case TypeNode48:
		return (*Node48[T])(p)
	case TypeNode256:
		return (*Node256[T])(p)
	default:
		panic("art: invalid node type")
	}
}

// Replace installs a new node into this reference slot and returns the node
// it displaced. Passing nil clears the slot.
func (r *Ref[T]) Replace(n AsRef[T]) (old Node[T]) {
	old = r.AsNode()

	if n != nil {
		*r = n.Ref()
	} else {
		*r = 0
	}

	return
}

// ptr strips the type bits and returns the raw node address.
func (r Ref[T]) ptr() unsafe.Pointer {
	return unsafe.Pointer(xunsafe.Addr[byte](uintptr(r) & refPtrMask).AssertValid())
}
