// Package tree implements the traversals of the Adaptive Radix Tree:
// search, insert, delete, ordered iteration and teardown. Each consumes one
// key byte per edge, skips across path-compressed prefixes, and ends at a
// leaf comparison.
//
// The mutating traversals are recursive on purpose: every call receives the
// reference slot that holds the current node, so growth, shrinking and
// splits can swap the node out in place without parent pointers.
package tree

import (
	"github.com/flier/art/node"
)

// CheckPrefix counts how many bytes of key, starting at depth, match the
// inline window of p.
//
// Only the cached window takes part: when the compressed edge is longer
// than node.MaxPrefixLen the bytes past the window are taken on trust. The
// read-only traversals can afford that optimism because any answer is
// verified against the full key stored in the leaf.
func CheckPrefix(p *node.Prefix, key []byte, depth int) int {
	inline := p.Inline()
	n := min(len(inline), len(key)-depth)

	var i int
	for ; i < n; i++ {
		if inline[i] != key[depth+i] {
			break
		}
	}

	return i
}

// PrefixMismatch counts how many bytes of key, starting at depth, match the
// compressed edge of n, window or not.
//
// Past the inline window the edge bytes are recovered from the subtree's
// minimum leaf, whose key necessarily spells the whole edge. In that case
// the count keeps running along the minimum leaf's key and is not capped at
// the edge length, so it can exceed Len; callers compare it against Len or
// clamp it. Insertion has
// to pay this cost: it is about to commit a split position, and optimism
// here would split at the wrong byte.
func PrefixMismatch[T any](n node.Node[T], key []byte, depth int) int {
	p := n.Prefix()

	inline := p.Inline()
	limit := min(len(inline), len(key)-depth)

	var i int
	for ; i < limit; i++ {
		if inline[i] != key[depth+i] {
			return i
		}
	}

	if p.Len > node.MaxPrefixLen {
		l := n.Minimum()

		limit = min(l.Key.Len(), len(key)) - depth
		for ; i < limit; i++ {
			if l.Key.Load(depth+i) != key[depth+i] {
				return i
			}
		}
	}

	return i
}

// LongestCommonPrefix counts how many bytes the two leaf keys share from
// depth on.
func LongestCommonPrefix[T any](l1, l2 *node.Leaf[T], depth int) int {
	limit := min(l1.Key.Len(), l2.Key.Len()) - depth

	var i int
	for ; i < limit; i++ {
		if l1.Key.Load(depth+i) != l2.Key.Load(depth+i) {
			break
		}
	}

	return i
}
