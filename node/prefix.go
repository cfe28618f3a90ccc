package node

// MaxPrefixLen is the number of path-compressed prefix bytes an inner node
// stores inline.
const MaxPrefixLen = 10

// Prefix is the path-compressed prefix on the edge entering an inner node.
//
// Len is the true length of the compressed edge and may exceed
// MaxPrefixLen; only the first min(Len, MaxPrefixLen) bytes are cached in
// Data. The bytes past the window are not lost: every leaf below the node
// spells them out, so they are recovered on demand from the subtree's
// minimum leaf.
type Prefix struct {
	// Len is the true length of the compressed edge.
	Len int

	// Data caches the first min(Len, MaxPrefixLen) bytes of the edge.
	Data [MaxPrefixLen]byte
}

// Empty reports whether the edge carries no compressed bytes.
func (p *Prefix) Empty() bool { return p.Len == 0 }

// Inline returns the cached window of the prefix.
func (p *Prefix) Inline() []byte { return p.Data[:min(p.Len, MaxPrefixLen)] }

// Set makes the prefix represent b, caching up to MaxPrefixLen bytes.
func (p *Prefix) Set(b []byte) {
	p.Len = len(b)
	copy(p.Data[:], b[:min(len(b), MaxPrefixLen)])
}
