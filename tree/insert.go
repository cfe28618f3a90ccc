package tree

import (
	"github.com/flier/art/arena"
	"github.com/flier/art/internal/debug"
	"github.com/flier/art/node"
)

// RecursiveInsert places leaf into the subtree held by ref.
//
// If the key was already present it returns a pointer to a copy of the
// displaced value — overwriting it only when replace is true — and releases
// the redundant leaf. For a fresh key it returns nil.
func RecursiveInsert[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	if ref.Empty() {
		ref.Replace(leaf)

		return nil
	}

	if ref.IsLeaf() {
		return insertToLeaf(a, ref, leaf, depth, replace)
	}

	return insertToNode(a, ref, leaf, depth, replace)
}

// insertToLeaf splits an existing leaf against the new one, or updates it in
// place when the keys are equal.
func insertToLeaf[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	curr := ref.AsLeaf()

	debug.Assert(curr != nil, "current node must be a leaf")

	if curr.Matches(leaf.Key.Raw()) {
		return updateLeaf(a, curr, leaf, replace)
	}

	// Two distinct keys need an inner node carrying their common prefix
	// from depth on. A key that ends exactly at the split point becomes
	// the new node's zero-sized child.
	split := arena.New(a, node.Node4[T]{})
	lcp := LongestCommonPrefix(curr, leaf, depth)
	split.Partial.Set(leaf.Key.Raw()[depth : depth+lcp])

	attachLeaf(split, curr, depth+lcp)
	attachLeaf(split, leaf, depth+lcp)

	ref.Replace(split)

	return nil
}

// insertToNode descends into an inner node, splitting its compressed edge
// first when the key diverges inside it.
func insertToNode[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], depth int, replace bool) *T {
	curr := ref.AsNode()

	debug.Assert(curr != nil, "current node must be an inner node")

	key := leaf.Key.Raw()

	if p := curr.Prefix(); !p.Empty() {
		diff := PrefixMismatch(curr, key, depth)
		if diff < p.Len {
			splitPrefix(a, ref, curr, leaf, depth, diff)

			return nil
		}

		depth += p.Len
	}

	if depth == len(key) {
		zero := curr.ZeroChild()
		if l := zero.AsLeaf(); l != nil {
			return updateLeaf(a, l, leaf, replace)
		}

		*zero = leaf.Ref()

		return nil
	}

	if child := curr.FindChild(int(key[depth])); child != nil {
		return RecursiveInsert(a, child, leaf, depth+1, replace)
	}

	AddChild(a, ref, int(key[depth]), leaf)

	return nil
}

// splitPrefix breaks the compressed edge of curr at diff, interposing a new
// Node4 that keeps the matched part and holds curr and the new leaf apart.
func splitPrefix[T any](a arena.Allocator, ref *node.Ref[T], curr node.Node[T], leaf *node.Leaf[T], depth, diff int) {
	p := curr.Prefix()

	split := arena.New(a, node.Node4[T]{})
	split.Partial.Len = diff
	copy(split.Partial.Data[:], p.Data[:min(diff, node.MaxPrefixLen)])

	// curr keeps the tail of the edge past the divergent byte, which
	// itself becomes curr's key byte under the new node. When the edge
	// outgrew the inline window the tail is re-read from the minimum
	// leaf; the window alone cannot be shifted that far left.
	if p.Len <= node.MaxPrefixLen {
		b := p.Data[diff]
		p.Len -= diff + 1
		copy(p.Data[:], p.Data[diff+1:])

		split.AddChild(int(b), curr)
	} else {
		p.Len -= diff + 1

		l := curr.Minimum()
		b := l.Key.Load(depth + diff)
		copy(p.Data[:], l.Key.Raw()[depth+diff+1:depth+diff+1+min(p.Len, node.MaxPrefixLen)])

		split.AddChild(int(b), curr)
	}

	attachLeaf(split, leaf, depth+diff)

	ref.Replace(split)
}

// attachLeaf hangs l under n at the given depth, in the zero-sized slot
// when its key ends right there.
func attachLeaf[T any](n *node.Node4[T], l *node.Leaf[T], depth int) {
	if l.Key.Len() == depth {
		n.AddChild(-1, l)
	} else {
		n.AddChild(int(l.Key.Load(depth)), l)
	}
}

// updateLeaf resolves an insert that landed on an existing key: the stored
// value is copied out, overwritten when replace is set, and the redundant
// new leaf goes back to the allocator.
func updateLeaf[T any](a arena.Allocator, curr, leaf *node.Leaf[T], replace bool) *T {
	old := curr.Value

	if replace {
		curr.Value = leaf.Value
	}

	leaf.Release(a)

	return &old
}

// AddChild binds b to child under the node held by ref, growing the node to
// its next variant first when it is full. The outgrown node is released
// only after its replacement is installed.
func AddChild[T any](a arena.Allocator, ref *node.Ref[T], b int, child node.AsRef[T]) {
	n := ref.AsNode()

	if b < 0 || !n.Full() {
		n.AddChild(b, child)

		return
	}

	grown := n.Grow(a)
	grown.AddChild(b, child)

	ref.Replace(grown)
	n.Release(a)
}
