package accumulator

import (
	"fmt"
	"math/bits"
)

// MaxElementCount is the largest element count this package will accept,
// per the data model's N in [0, 2^32) and the wire format's 32-bit count
// field.
const MaxElementCount = (1 << 32) - 1

// Prefilter is consulted, if configured, before a proof walk begins. A
// prefilter that reports a definite negative lets Generate* fail fast
// without touching the tree. See bloomindex for the bundled implementation.
type Prefilter interface {
	MayContain(image Node) bool
}

// Tree is a flat, array-backed binary tree over 2·L nodes, where L is the
// smallest power of two >= max(N, 1). Index 1 is the internal root; the
// children of node i are 2i and 2i+1; leaf image i (0-based) lives at L+i.
// Slots whose subtree contains no real leaf are marked absent rather than
// populated with a padding value.
//
// Trees are immutable once built; WithUpdatedLeaves returns a new Tree.
type Tree struct {
	mode      HashMode
	count     uint64 // N
	l         uint64 // power of two capacity
	nodes     []Node
	present   []bool
	prefilter Prefilter
	log       Logger
}

// Build constructs a Tree over the given ordered leaves (each exactly 32
// bytes) using the given hash mode. It is an error for len(leaves) to
// exceed MaxElementCount, or for any leaf to be a size other than 32 bytes.
func Build(leaves [][]byte, mode HashMode, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	o.apply(opts)

	n := uint64(len(leaves))
	if n > MaxElementCount {
		return nil, fmt.Errorf("%w: element count %d exceeds %d", ErrCapacityExceeded, n, MaxElementCount)
	}

	l := nextPow2(maxU64(n, 1))
	nodes := make([]Node, 2*l)
	present := make([]bool, 2*l)

	for i, leaf := range leaves {
		img, err := leafImage(leaf)
		if err != nil {
			return nil, fmt.Errorf("%w: leaf %d", err, i)
		}
		idx := l + uint64(i)
		nodes[idx] = img
		present[idx] = true
	}

	for p := l - 1; p >= 1; p-- {
		lc, rc := 2*p, 2*p+1
		switch {
		case present[lc] && present[rc]:
			nodes[p] = mode.pair(nodes[lc], nodes[rc])
			present[p] = true
		case present[lc]:
			nodes[p] = nodes[lc]
			present[p] = true
		default:
			present[p] = false
		}
	}

	t := &Tree{
		mode:      mode,
		count:     n,
		l:         l,
		nodes:     nodes,
		present:   present,
		prefilter: o.prefilter,
		log:       o.logger(),
	}
	if o.prefilter == nil && o.enableBloom {
		t.prefilter = newDefaultPrefilter(t)
	}

	t.log.Debugf("accumulator: built tree n=%d mode=%s capacity=%d", n, mode, l)
	return t, nil
}

// Mode reports the hash variant this tree (and its proofs) use.
func (t *Tree) Mode() HashMode { return t.mode }

// Count reports N, the number of real leaves.
func (t *Tree) Count() uint64 { return t.count }

// Capacity reports L, the power-of-two size of the perfect tree this
// implementation materializes underneath the N real leaves.
func (t *Tree) Capacity() uint64 { return t.l }

// ElementRoot returns tree[1], the internal root before the element count is
// bound in. This is "elementRoot" in the glossary's reference vectors.
func (t *Tree) ElementRoot() Node {
	if t.count == 0 {
		return zeroNode
	}
	return t.nodes[1]
}

// Root returns H(N, tree[1]), or the bare zero root when N == 0.
func (t *Tree) Root() Node {
	return bindCount(t.count, t.ElementRoot())
}

// LeafImage returns the stored image for leaf index i (0-based), and
// whether i is within [0, N).
func (t *Tree) LeafImage(i uint64) (Node, bool) {
	if i >= t.count {
		return Node{}, false
	}
	return t.nodes[t.l+i], true
}

// WithUpdatedLeaves returns a new Tree equal to t except that the leaves at
// indices (ascending, in [0, N)) are replaced by newLeaves, with every
// ancestor hash recomputed. t itself is left untouched.
func (t *Tree) WithUpdatedLeaves(indices []uint64, newLeaves [][]byte) (*Tree, error) {
	if len(indices) != len(newLeaves) {
		return nil, fmt.Errorf("%w: index/leaf count mismatch", ErrMalformedProof)
	}
	if err := checkAscending(indices); err != nil {
		return nil, err
	}

	nodes := make([]Node, len(t.nodes))
	copy(nodes, t.nodes)
	present := make([]bool, len(t.present))
	copy(present, t.present)

	for i, idx := range indices {
		if idx >= t.count {
			return nil, fmt.Errorf("%w: index %d >= count %d", ErrIndexOutOfRange, idx, t.count)
		}
		img, err := leafImage(newLeaves[i])
		if err != nil {
			return nil, fmt.Errorf("%w: leaf %d", err, i)
		}
		nodes[t.l+idx] = img
	}

	for p := t.l - 1; p >= 1; p-- {
		lc, rc := 2*p, 2*p+1
		switch {
		case present[lc] && present[rc]:
			nodes[p] = t.mode.pair(nodes[lc], nodes[rc])
		case present[lc]:
			nodes[p] = nodes[lc]
		}
	}

	u := &Tree{
		mode:      t.mode,
		count:     t.count,
		l:         t.l,
		nodes:     nodes,
		present:   present,
		prefilter: t.prefilter,
		log:       t.log,
	}
	if _, ok := t.prefilter.(*bloomPrefilter); ok {
		u.prefilter = newDefaultPrefilter(u)
	}
	return u, nil
}

func nextPow2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	return uint64(1) << bits.Len64(n)
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
