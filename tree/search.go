package tree

import (
	"github.com/flier/art/node"
)

// Search walks the tree below ref for key and returns a pointer to its
// value, or nil if the key is absent.
//
// The descent is semi-lazy: a compressed edge longer than the inline window
// is crossed on the strength of the window alone, and the full key match is
// confirmed at the leaf. A miss can therefore descend a little further than
// strictly necessary, never to a wrong answer.
func Search[T any](ref node.Ref[T], key []byte) *T {
	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.Matches(key) {
				return &l.Value
			}

			return nil
		}

		n := ref.AsNode()

		if p := n.Prefix(); !p.Empty() {
			if CheckPrefix(p, key, depth) != len(p.Inline()) {
				return nil
			}

			depth += p.Len
		}

		if depth > len(key) {
			// A trusted long edge walked past the end of the key; nothing
			// below can be equal to it.
			return nil
		}

		if depth == len(key) {
			// Matches re-checks the stored key: the descent may have
			// crossed a long edge on trust.
			if l := n.ZeroChild().AsLeaf(); l != nil && l.Matches(key) {
				return &l.Value
			}

			return nil
		}

		child := n.FindChild(int(key[depth]))
		if child == nil {
			return nil
		}

		ref = *child
		depth++
	}

	return nil
}
