package accumulator

import (
	"fmt"
	"math/bits"
	"sort"
)

// AppendProof authenticates an N-leaf tree's frontier: the perfect-subtree
// peak roots, one per set bit of N, ordered top-to-bottom (most significant
// bit first). Folding them reconstructs the internal (pre count-binding)
// root; pairing a new leaf's image on the right of the deepest peak and
// folding on upward reconstructs the root after a single append.
type AppendProof struct {
	Mode          HashMode
	ElementCount  uint64
	Decommitments []Node
}

// GenerateAppend computes t's frontier.
func GenerateAppend(t *Tree) (*AppendProof, error) {
	decommitments, err := frontierDecommitments(t)
	if err != nil {
		return nil, err
	}
	return &AppendProof{Mode: t.mode, ElementCount: t.count, Decommitments: decommitments}, nil
}

// frontierDecommitments reads the peak for each set bit of t.count directly
// out of the materialized tree. A peak covering 2^i leaves starting at
// offset o lives at position (L+o)>>i — L and o are both multiples of 2^i
// for an aligned perfect subtree, so the repeated halving lands exactly on
// that subtree's root.
func frontierDecommitments(t *Tree) ([]Node, error) {
	if t.count == 0 {
		return nil, nil
	}
	var decommitments []Node
	offset := uint64(0)
	for i := bits.Len64(t.count) - 1; i >= 0; i-- {
		if t.count&(uint64(1)<<uint(i)) == 0 {
			continue
		}
		pos := (t.l + offset) >> uint(i)
		if !t.present[pos] {
			return nil, fmt.Errorf("%w: frontier peak at position %d absent", ErrMalformedProof, pos)
		}
		decommitments = append(decommitments, t.nodes[pos])
		offset += uint64(1) << uint(i)
	}
	return decommitments, nil
}

// FoldFrontierToRoot folds decommitments (top-to-bottom, i.e. deepest last)
// into the internal root they commit to: start from the deepest peak and
// repeatedly pair it with its next-shallower neighbor on the left.
func FoldFrontierToRoot(mode HashMode, decommitments []Node) Node {
	if len(decommitments) == 0 {
		return zeroNode
	}
	h := decommitments[len(decommitments)-1]
	for i := len(decommitments) - 2; i >= 0; i-- {
		h = mode.pair(decommitments[i], h)
	}
	return h
}

// OldRoot recomputes the root proof claims to extend, from its frontier
// alone.
func (p *AppendProof) OldRoot() Node {
	if p.ElementCount == 0 {
		return zeroNode
	}
	return bindCount(p.ElementCount, FoldFrontierToRoot(p.Mode, p.Decommitments))
}

// AppendSingle computes the root that results from appending one leaf to
// the tree proof describes, without needing the tree itself.
func AppendSingle(proof *AppendProof, newLeaf []byte) (Node, error) {
	newImg, err := leafImage(newLeaf)
	if err != nil {
		return Node{}, err
	}
	if proof.ElementCount == 0 {
		return bindCount(1, newImg), nil
	}

	h := newImg
	for i := len(proof.Decommitments) - 1; i >= 0; i-- {
		h = proof.Mode.pair(proof.Decommitments[i], h)
	}
	return bindCount(proof.ElementCount+1, h), nil
}

// AppendMulti computes the root that results from appending newLeaves, in
// order, to the tree proof describes. It runs a binary-counter carry
// propagation over proof's frontier: each new leaf is merged into the
// lowest unfilled level, carrying into higher levels exactly as adding 1
// to a binary counter does, until it lands in an empty slot.
func AppendMulti(proof *AppendProof, newLeaves [][]byte) (Node, error) {
	mode := proof.Mode
	n := proof.ElementCount
	if len(proof.Decommitments) != bits.OnesCount64(n) {
		return Node{}, fmt.Errorf("%w: %d decommitments for element count %d", ErrMalformedProof, len(proof.Decommitments), n)
	}

	peaks := map[uint]Node{}
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		if n&(uint64(1)<<uint(i)) != 0 {
			peaks[uint(i)] = proof.Decommitments[len(peaks)]
		}
	}

	for _, raw := range newLeaves {
		img, err := leafImage(raw)
		if err != nil {
			return Node{}, err
		}
		carry := img
		level := uint(0)
		for {
			v, ok := peaks[level]
			if !ok {
				break
			}
			carry = mode.pair(v, carry)
			delete(peaks, level)
			level++
		}
		peaks[level] = carry
		n++
	}

	levels := make([]uint, 0, len(peaks))
	for lvl := range peaks {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] > levels[j] })

	finalDecommitments := make([]Node, len(levels))
	for i, lvl := range levels {
		finalDecommitments[i] = peaks[lvl]
	}

	return bindCount(n, FoldFrontierToRoot(mode, finalDecommitments)), nil
}
