package arena_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/flier/art/arena"
)

func addrOf[T any](p *T) uintptr { return uintptr(unsafe.Pointer(p)) }

func TestArena(t *testing.T) {
	t.Run("zero arena is usable", func(t *testing.T) {
		a := new(Arena)

		p := New(a, 42)
		require.NotNil(t, p)
		assert.Equal(t, 42, *p)
	})

	t.Run("allocations are pointer-aligned", func(t *testing.T) {
		a := new(Arena)

		for _, size := range []int{1, 3, 8, 13, 64, 1000} {
			p := a.Alloc(size)
			assert.Zero(t, uintptr(addrOf(p))%uintptr(Align), "size %d", size)
		}
	})

	t.Run("values do not overlap", func(t *testing.T) {
		a := new(Arena)

		ptrs := make([]*int, 1000)
		for i := range ptrs {
			ptrs[i] = New(a, i)
		}

		for i, p := range ptrs {
			assert.Equal(t, i, *p)
		}
	})

	t.Run("grows past one chunk", func(t *testing.T) {
		a := new(Arena)

		type block [128]byte

		var first *block
		for i := 0; i < 10000; i++ {
			p := New(a, block{byte(i)})
			if first == nil {
				first = p
			}
		}

		assert.Equal(t, byte(0), first[0])
	})

	t.Run("free is a no-op", func(t *testing.T) {
		a := new(Arena)

		p := New(a, 7)
		Free(a, p)

		q := New(a, 8)
		assert.Equal(t, 7, *p)
		assert.Equal(t, 8, *q)
	})

	t.Run("reset reuses memory", func(t *testing.T) {
		a := new(Arena)

		for i := 0; i < 100; i++ {
			New(a, [64]byte{})
		}

		a.Reset()

		p := New(a, [64]byte{})
		assert.Equal(t, [64]byte{}, *p)
	})
}

func TestRecycled(t *testing.T) {
	t.Run("released memory is reused", func(t *testing.T) {
		a := new(Recycled)

		p := New(a, [32]byte{1, 2, 3})
		Free(a, p)

		q := New(a, [32]byte{})

		assert.Same(t, p, q)
		assert.Equal(t, [32]byte{}, *q, "recycled memory must come back zeroed")
	})

	t.Run("size classes do not mix", func(t *testing.T) {
		a := new(Recycled)

		small := New(a, [8]byte{})
		Free(a, small)

		big := New(a, [64]byte{})
		assert.NotEqual(t, addrOf(small), addrOf(big))
	})

	t.Run("falls back to the arena when the list is empty", func(t *testing.T) {
		a := new(Recycled)

		p := New(a, 1)
		q := New(a, 2)

		assert.NotEqual(t, p, q)
		assert.Equal(t, 1, *p)
		assert.Equal(t, 2, *q)
	})

	t.Run("reset drops the free lists", func(t *testing.T) {
		a := new(Recycled)

		p := New(a, [16]byte{})
		Free(a, p)
		a.Reset()

		q := New(a, [16]byte{})
		assert.Equal(t, [16]byte{}, *q)
	})
}
