package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/art/arena"
	"github.com/flier/art/arena/slice"
)

func TestSlice(t *testing.T) {
	a := new(arena.Arena)

	t.Run("zero slice", func(t *testing.T) {
		var s slice.Slice[byte]

		assert.True(t, s.Empty())
		assert.Equal(t, 0, s.Len())
		assert.Nil(t, s.Raw())
	})

	t.Run("from bytes", func(t *testing.T) {
		s := slice.FromBytes(a, []byte("hello"))

		assert.Equal(t, 5, s.Len())
		assert.Equal(t, []byte("hello"), s.Raw())
		assert.Equal(t, byte('e'), s.Load(1))
	})

	t.Run("from bytes copies", func(t *testing.T) {
		src := []byte("abc")
		s := slice.FromBytes(a, src)

		src[0] = 'x'
		assert.Equal(t, []byte("abc"), s.Raw())
	})

	t.Run("empty input stays unallocated", func(t *testing.T) {
		assert.True(t, slice.FromBytes(a, nil).Empty())
		assert.True(t, slice.FromBytes(a, []byte{}).Empty())
	})

	t.Run("store", func(t *testing.T) {
		s := slice.FromString(a, "abc")
		s.Store(1, 'x')

		assert.Equal(t, []byte("axc"), s.Raw())
	})

	t.Run("clone", func(t *testing.T) {
		s := slice.FromString(a, "abc")
		c := s.Clone(a)

		s.Store(0, 'x')
		assert.Equal(t, []byte("abc"), c.Raw())
	})
}

func TestSliceCompare(t *testing.T) {
	a := new(arena.Arena)

	s := slice.FromString(a, "api.foo")

	t.Run("equal", func(t *testing.T) {
		assert.True(t, slice.EqualTo(s, []byte("api.foo")))
		assert.False(t, slice.EqualTo(s, []byte("api.fo")))
		assert.False(t, slice.EqualTo(s, []byte("api.foo!")))
		assert.False(t, slice.EqualTo(s, []byte("api.fox")))

		assert.True(t, slice.Equal(s, slice.FromString(a, "api.foo")))
		assert.False(t, slice.Equal(s, slice.FromString(a, "api")))
	})

	t.Run("has prefix", func(t *testing.T) {
		assert.True(t, slice.HasPrefix(s, nil))
		assert.True(t, slice.HasPrefix(s, []byte("api")))
		assert.True(t, slice.HasPrefix(s, []byte("api.foo")))
		assert.False(t, slice.HasPrefix(s, []byte("api.foo.bar")))
		assert.False(t, slice.HasPrefix(s, []byte("abx")))
	})

	t.Run("empty slices compare equal", func(t *testing.T) {
		var zero slice.Slice[byte]

		assert.True(t, slice.EqualTo(zero, nil))
		assert.True(t, slice.EqualTo(zero, []byte{}))
		assert.True(t, slice.HasPrefix(zero, nil))
		assert.False(t, slice.HasPrefix(zero, []byte("a")))
	})
}

func TestSliceRelease(t *testing.T) {
	t.Run("release recycles the backing array", func(t *testing.T) {
		a := new(arena.Recycled)

		s := slice.FromString(a, "0123456789abcdef")
		s.Release(a)

		r := slice.FromString(a, "fedcba9876543210")
		assert.Equal(t, []byte("fedcba9876543210"), r.Raw())
	})

	t.Run("releasing the zero slice is fine", func(t *testing.T) {
		a := new(arena.Arena)

		var s slice.Slice[byte]
		s.Release(a)
	})
}
