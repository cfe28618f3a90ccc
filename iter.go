//go:build go1.23

package art

import (
	"iter"

	"github.com/flier/art/tree"
)

// All returns an iterator over all key-value pairs in ascending
// lexicographic key order.
//
// The yielded key slice aliases the leaf's storage; copy it if it must
// outlive the iteration. The tree must not be mutated while iterating.
func (t *Tree[T]) All() iter.Seq2[[]byte, *T] {
	return func(yield func([]byte, *T) bool) {
		tree.RecursiveIter(t.root, func(key []byte, value *T) bool {
			return !yield(key, value)
		})
	}
}

// AllPrefix returns an iterator over the key-value pairs whose keys start
// with prefix, in ascending lexicographic key order.
//
// The yielded key slice aliases the leaf's storage; copy it if it must
// outlive the iteration. The tree must not be mutated while iterating.
func (t *Tree[T]) AllPrefix(prefix []byte) iter.Seq2[[]byte, *T] {
	return func(yield func([]byte, *T) bool) {
		tree.IterPrefix(t.root, prefix, func(key []byte, value *T) bool {
			return !yield(key, value)
		})
	}
}
