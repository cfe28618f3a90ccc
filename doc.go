// Package art provides an efficient, memory-optimized implementation of
// Adaptive Radix Trees (ART).
//
// An ART is an ordered index from variable-length byte-string keys to
// values. Inner nodes adapt their physical layout to their fan-out —
// switching between Node4, Node16, Node48 and Node256 as children come and
// go — and chains of single-child nodes are collapsed into inline prefixes,
// so depth is bounded by the number of distinguishing bytes rather than the
// key length.
//
// # Key Features
//
//   - Adaptive node layouts with hysteresis between growing and shrinking,
//     so workloads oscillating at a capacity boundary do not thrash
//   - Path compression with a fixed inline prefix window; longer shared
//     prefixes are recovered lazily from the subtree's minimum leaf
//   - A key may be a proper prefix of another key; both remain retrievable
//   - Keys are raw bytes: any length, zero bytes included, no encoding
//     assumed
//   - Arena allocation for all nodes and leaves, with an optional recycling
//     allocator that reuses deleted-node memory
//   - Generic values with compile-time type safety
//   - Ordered traversal, prefix traversal, and Go 1.23 iterators
//
// # Basic Operations
//
//	a := new(arena.Arena)
//	defer a.Reset()
//
//	t := &art.Tree[string]{}
//	t.Insert(a, []byte("key"), "value")
//
//	if v := t.Search([]byte("key")); v != nil {
//		fmt.Println(*v)
//	}
//
// # Iteration
//
//	t.Visit(func(key []byte, value *string) bool {
//		fmt.Printf("%s -> %s\n", key, *value)
//		return false // continue
//	})
//
//	t.VisitPrefix([]byte("user:"), func(key []byte, value *string) bool {
//		return false
//	})
//
// With Go 1.23 or later the range-over-func forms are available as
// Tree.All and Tree.AllPrefix.
//
// # Thread Safety
//
// A Tree is not safe for concurrent mutation. Search, Minimum, Maximum,
// Size, Visit and VisitPrefix perform no writes and may run concurrently
// with each other, but not with Insert, InsertNoReplace, Delete or Release.
//
// # Memory
//
// The tree owns every node and leaf it reaches; all of them live on the
// arena passed to the mutating operations. Release tears the tree down
// post-order, and resetting the arena invalidates the tree wholesale.
// Values are stored by value and never interpreted; a value that is itself
// the only reference to garbage-collected memory must be kept alive by the
// caller, since arena memory is not scanned.
//
// # References
//
//   - [The Adaptive Radix Tree: ARTful Indexing for Main-Memory Databases]
//
// [The Adaptive Radix Tree: ARTful Indexing for Main-Memory Databases]: https://db.in.tum.de/~leis/papers/ART.pdf
package art
