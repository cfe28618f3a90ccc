// Package arena implements the bump allocator that owns every node and leaf
// of a tree.
//
// An Arena hands out pointer-aligned blocks of memory carved from a small
// number of large chunks. Individual frees are no-ops; all memory is
// reclaimed at once by Reset. The Recycled variant additionally keeps
// size-class free lists so that delete-heavy workloads reuse released node
// memory instead of growing the arena.
//
// # Memory Safety
//
//   - Memory allocated from an arena must not be accessed after Reset.
//   - Arena chunks are not scanned by the garbage collector. Values stored
//     on an arena must not be the only reference to garbage-collected
//     memory.
//
// # Thread Safety
//
// Allocators are not safe for concurrent use. Callers provide their own
// synchronization, as they already must for the tree itself.
package arena

import (
	"unsafe"

	"github.com/flier/art/internal/debug"
	"github.com/flier/art/internal/xunsafe"
)

// Align is the alignment of all objects on an arena.
const Align = int(unsafe.Sizeof(uintptr(0)))

// minChunkLog is the size log of the smallest chunk an arena allocates.
const minChunkLog = 10

// Allocator hands out and takes back raw blocks of memory.
//
// Allocation failure panics; there are no recoverable error returns.
type Allocator interface {
	// Alloc allocates size bytes and returns a pointer to the block.
	//
	// The block is pointer-aligned and remains valid until it is released
	// or the allocator is reset. Its contents are undefined.
	Alloc(size int) *byte

	// Release returns a block previously obtained from Alloc.
	//
	// size must match the size passed to Alloc. For Arena this is a no-op;
	// for Recycled the block becomes available for reuse.
	Release(p *byte, size int)
}

// Arena is a bump allocator. The zero Arena is empty and ready to use.
type Arena struct {
	_ xunsafe.NoCopy

	next, end xunsafe.Addr[byte]
	cap       int

	// Chunks allocated by this arena, indexed by their size log 2.
	// Keeping them here is what keeps arena memory alive.
	chunks []*byte
}

var _ Allocator = (*Arena)(nil)

// New allocates a value of type T on an arena.
func New[T any](a Allocator, value T) *T {
	if int(unsafe.Alignof(value)) > Align {
		panic("arena: over-aligned object")
	}

	p := xunsafe.Cast[T](a.Alloc(int(unsafe.Sizeof(value))))
	*p = value

	return p
}

// Free releases a value previously allocated with New.
func Free[T any](a Allocator, p *T) {
	a.Release(xunsafe.Cast[byte](p), int(unsafe.Sizeof(*p)))
}

// Alloc allocates size bytes of pointer-aligned memory.
//
// Do not use this method directly, use New instead.
func (a *Arena) Alloc(size int) *byte {
	size = alignUp(size)

	if a.next.Add(size) > a.end {
		a.grow(size)
	}

	p := a.next.AssertValid()
	a.next = a.next.Add(size)

	debug.Log([]any{"%p", a}, "alloc", "%p:%d", p, size)

	return p
}

// Release is a no-op for Arena; memory is reclaimed by Reset.
//
// Do not use this method directly, use Free instead.
func (a *Arena) Release(p *byte, size int) {}

// Reset returns the arena to an empty state, allowing all memory allocated
// from it to be reused.
//
// The largest chunk is retained and cleared, so a steadily reused arena
// settles on a single allocation. Any memory obtained from the arena must
// not be referenced after Reset.
func (a *Arena) Reset() {
	if len(a.chunks) == 0 {
		return
	}

	last := len(a.chunks) - 1
	for i := range a.chunks[:last] {
		a.chunks[i] = nil
	}
	xunsafe.Clear(a.chunks[last], 1<<last)

	a.next = xunsafe.AddrOf(a.chunks[last])
	a.end = a.next.Add(1 << last)
	a.cap = 1 << last
}

// grow allocates a fresh chunk of at least the given size.
func (a *Arena) grow(size int) {
	p, n := a.allocChunk(max(size, a.cap*2))

	a.next = xunsafe.AddrOf(p)
	a.end = a.next.Add(n)
	a.cap = n

	debug.Log([]any{"%p", a}, "grow", "%p:%d", p, n)
}

// allocChunk returns a chunk of at least size bytes, reusing a previously
// allocated chunk of the right size class when one exists.
func (a *Arena) allocChunk(size int) (*byte, int) {
	log := chunkLog(size)
	n := 1 << log

	if log < len(a.chunks) {
		if a.chunks[log] == nil {
			a.chunks[log] = newChunk(n)
		}
		return a.chunks[log], n
	}

	if a.chunks == nil {
		a.chunks = make([]*byte, 0, 48)
	}
	for len(a.chunks) <= log {
		a.chunks = append(a.chunks, nil)
	}

	p := newChunk(n)
	a.chunks[log] = p

	return p, n
}

// newChunk allocates n bytes of zeroed, pointer-aligned memory.
//
// The chunk is backed by a []uint64 so that its start is pointer-aligned on
// every platform, and so the garbage collector treats it as pointer-free.
func newChunk(n int) *byte {
	words := make([]uint64, n/8)
	return xunsafe.Cast[byte](&words[0])
}

// chunkLog snaps size up to the next power of two and returns its log.
func chunkLog(size int) int {
	log := minChunkLog
	for 1<<log < size {
		log++
	}
	return log
}

// alignUp rounds size up to a multiple of Align.
func alignUp(size int) int {
	return (size + Align - 1) &^ (Align - 1)
}
