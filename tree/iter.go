package tree

import (
	"github.com/flier/art/node"
)

// RecursiveIter walks the subtree below ref in ascending key order, calling
// cb for every leaf. It reports whether cb stopped the walk by returning
// true.
//
// The zero-sized child comes first at every node: its key is a proper
// prefix of — and therefore sorts before — every key below a real child.
// N4 and N16 keep their children sorted already; N48 and N256 are walked in
// byte order.
func RecursiveIter[T any](ref node.Ref[T], cb func(key []byte, value *T) bool) bool {
	if ref.Empty() {
		return false
	}

	switch n := ref.AsNode().(type) {
	case *node.Leaf[T]:
		return cb(n.Key.Raw(), &n.Value)

	case *node.Node4[T]:
		if RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < n.NumChildren; i++ {
			if RecursiveIter(n.Children[i], cb) {
				return true
			}
		}

	case *node.Node16[T]:
		if RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < n.NumChildren; i++ {
			if RecursiveIter(n.Children[i], cb) {
				return true
			}
		}

	case *node.Node48[T]:
		if RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < 256; i++ {
			if s := n.Keys[i]; s != 0 {
				if RecursiveIter(n.Children[s-1], cb) {
					return true
				}
			}
		}

	case *node.Node256[T]:
		if RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < 256; i++ {
			if RecursiveIter(n.Children[i], cb) {
				return true
			}
		}
	}

	return false
}

// IterPrefix walks, in ascending key order, exactly the leaves whose keys
// start with prefix. It reports whether cb stopped the walk.
//
// The descent consumes the prefix like a search. The prefix can run out at
// three places: on a leaf (emit it if it matches), exactly at a node (walk
// the node's subtree), or inside a compressed edge — in which case the
// whole subtree matches if the edge agrees with the remaining prefix bytes,
// and nothing does otherwise.
func IterPrefix[T any](ref node.Ref[T], prefix []byte, cb func(key []byte, value *T) bool) bool {
	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.MatchesPrefix(prefix) {
				return cb(l.Key.Raw(), &l.Value)
			}

			return false
		}

		n := ref.AsNode()

		if depth == len(prefix) {
			// The minimum leaf settles whether this subtree really lies
			// under the prefix; trusted long edges above may have
			// glossed over a divergence.
			if l := n.Minimum(); l != nil && l.MatchesPrefix(prefix) {
				return RecursiveIter(ref, cb)
			}

			return false
		}

		if p := n.Prefix(); !p.Empty() {
			matched := min(PrefixMismatch(n, prefix, depth), p.Len)

			if depth+matched == len(prefix) {
				return RecursiveIter(ref, cb)
			}

			if matched < p.Len {
				return false
			}

			depth += p.Len
		}

		child := n.FindChild(int(prefix[depth]))
		if child == nil {
			return false
		}

		ref = *child
		depth++
	}

	return false
}
