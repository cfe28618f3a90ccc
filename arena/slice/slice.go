// Package slice provides an arena-backed slice with a compact header.
//
// The tree stores every leaf key in a Slice[byte]; keeping the header at 16
// bytes keeps leaves small.
package slice

import (
	"unsafe"

	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/internal/xunsafe"
)

// Slice is a slice whose backing array lives on an arena.
//
// The zero Slice is empty and refers to no memory.
type Slice[T any] struct {
	ptr      *T
	len, cap uint32
}

// The compact header is the point; keep it at 16 bytes.
var _ [16]byte = [unsafe.Sizeof(Slice[byte]{})]byte{}

// Make allocates an uninitialized slice of n elements.
func Make[T any](a arena.Allocator, n int) Slice[T] {
	if n == 0 {
		return Slice[T]{}
	}

	var zero T
	p := xunsafe.Cast[T](a.Alloc(n * int(unsafe.Sizeof(zero))))

	return Slice[T]{ptr: p, len: uint32(n), cap: uint32(n)}
}

// FromBytes copies b onto the arena.
func FromBytes(a arena.Allocator, b []byte) Slice[byte] {
	s := Make[byte](a, len(b))
	copy(s.Raw(), b)

	return s
}

// FromString copies s onto the arena.
func FromString(a arena.Allocator, s string) Slice[byte] {
	return FromBytes(a, []byte(s))
}

// Release returns the backing array to the allocator.
func (s Slice[T]) Release(a arena.Allocator) {
	if s.cap == 0 {
		return
	}

	var zero T
	a.Release(xunsafe.Cast[byte](s.ptr), int(s.cap)*int(unsafe.Sizeof(zero)))
}

// Len returns the number of elements.
func (s Slice[_]) Len() int { return int(s.len) }

// Cap returns the capacity of the backing array.
func (s Slice[_]) Cap() int { return int(s.cap) }

// Empty reports whether the slice has no elements.
func (s Slice[_]) Empty() bool { return s.len == 0 }

// Raw returns the contents as an ordinary Go slice aliasing the arena
// memory.
func (s Slice[T]) Raw() []T {
	if s.ptr == nil {
		return nil
	}

	return unsafe.Slice(s.ptr, s.len)
}

// Load returns the n-th element.
func (s Slice[T]) Load(n int) T {
	debug.Assert(n >= 0 && n < int(s.len), "index %d out of range %d", n, s.len)

	return *xunsafe.Add(s.ptr, n)
}

// Store sets the n-th element.
func (s Slice[T]) Store(n int, v T) {
	debug.Assert(n >= 0 && n < int(s.len), "index %d out of range %d", n, s.len)

	*xunsafe.Add(s.ptr, n) = v
}

// Clone copies the slice onto the arena.
func (s Slice[T]) Clone(a arena.Allocator) Slice[T] {
	c := Make[T](a, s.Len())
	copy(c.Raw(), s.Raw())

	return c
}

// Equal reports whether two slices have the same length and elements.
func Equal[T comparable](a, b Slice[T]) bool {
	return EqualTo(a, b.Raw())
}

// EqualTo reports whether a has the same length and elements as b.
func EqualTo[T comparable](a Slice[T], b []T) bool {
	if a.Len() != len(b) {
		return false
	}

	for i, v := range a.Raw() {
		if v != b[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether a begins with b.
func HasPrefix[T comparable](a Slice[T], b []T) bool {
	if a.Len() < len(b) {
		return false
	}

	raw := a.Raw()
	for i, v := range b {
		if raw[i] != v {
			return false
		}
	}

	return true
}
