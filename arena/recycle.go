package arena

import (
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/internal/xunsafe"
)

// freeListCapacity bounds each size-class free list; releases past the bound
// fall back to the arena's no-op release.
const freeListCapacity = 64

// Recycled is a bump allocator that reuses released blocks.
//
// Blocks released with Release are kept on per-size-class free lists and
// handed back out by Alloc before any fresh arena memory is touched. A tree
// that deletes as much as it inserts settles into a steady state where node
// and leaf memory cycles through the free lists instead of growing the
// arena.
//
// The zero Recycled is empty and ready to use.
type Recycled struct {
	Arena

	// Free lists indexed by size class (aligned size / Align).
	free [][]*byte
}

var _ Allocator = (*Recycled)(nil)

// Alloc allocates size bytes, reusing a released block of the same size
// class when one is available. Reused memory is zeroed.
func (a *Recycled) Alloc(size int) *byte {
	c := sizeClass(alignUp(size))

	if c < len(a.free) {
		if list := a.free[c]; len(list) > 0 {
			p := list[len(list)-1]
			a.free[c] = list[:len(list)-1]

			xunsafe.Clear(p, alignUp(size))

			debug.Log([]any{"%p", a}, "recycle", "%p:%d", p, size)

			return p
		}
	}

	return a.Arena.Alloc(size)
}

// Release puts the block on the free list for its size class.
func (a *Recycled) Release(p *byte, size int) {
	c := sizeClass(alignUp(size))

	for len(a.free) <= c {
		a.free = append(a.free, nil)
	}

	if len(a.free[c]) < freeListCapacity {
		a.free[c] = append(a.free[c], p)
	}
}

// Reset drops the free lists and resets the underlying arena.
func (a *Recycled) Reset() {
	a.free = nil
	a.Arena.Reset()
}

// sizeClass maps an aligned size to its free-list index.
func sizeClass(size int) int {
	return size / Align
}
