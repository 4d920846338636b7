package accumulator

import "fmt"

// MultiProof authenticates the existence of a set of leaves against a tree's
// root using the bit-packed flags/skips/orders automaton described in the
// package doc. Orders is nil when Mode is Sorted.
type MultiProof struct {
	Mode          HashMode
	ElementCount  uint64
	HashCount     int
	Flags         []bool
	Skips         []bool
	Orders        []bool
	Decommitments []Node
}

// GenerateMulti produces a MultiProof of membership for the given strictly
// ascending leaf indices.
//
// Generation marks every queried leaf as "known" and its parent as
// "relevant", then walks the tree bottom-up. At each internal node, if
// exactly one child is known, the other child's value is recorded as a
// decommitment (unless that child is entirely absent, in which case nothing
// needs to be revealed). If the node itself is relevant, a step is emitted:
// flags records whether both children were already known (no decommitment
// needed at this step), skips records whether the right child is absent
// (the left is promoted unchanged), and orders records which side the
// known/computed value sits on. Relevance then propagates to the parent,
// which is what guarantees a contiguous path from every queried leaf to the
// root.
func GenerateMulti(t *Tree, indices []uint64) (*MultiProof, error) {
	if err := checkAscending(indices); err != nil {
		return nil, err
	}
	if t.prefilter != nil {
		for _, i := range indices {
			img, ok := t.LeafImage(i)
			if ok && !t.prefilter.MayContain(img) {
				return nil, fmt.Errorf("%w: index %d", ErrNotInTree, i)
			}
		}
	}
	for _, i := range indices {
		if i >= t.count {
			return nil, fmt.Errorf("%w: index %d >= count %d", ErrIndexOutOfRange, i, t.count)
		}
	}

	l := t.l
	known := make([]bool, 2*l)
	relevant := make([]bool, 2*l)
	for _, i := range indices {
		leafPos := l + i
		known[leafPos] = true
		relevant[leafPos/2] = true
	}

	var flags, skips, orders []bool
	var decommitments []Node

	for p := l - 1; p >= 1; p-- {
		lc, rc := 2*p, 2*p+1
		left, right := known[lc], known[rc]

		if left != right {
			other := lc
			if left {
				other = rc
			}
			if t.present[other] {
				decommitments = append(decommitments, t.nodes[other])
			}
		}

		if relevant[p] {
			skip := !t.present[rc]
			flag := left && right
			flags = append(flags, flag)
			skips = append(skips, skip)
			if t.mode == Ordered {
				orders = append(orders, left)
			}
			if p > 1 {
				relevant[p/2] = true
			}
		}

		known[p] = left || right
	}

	hashCount := len(flags)
	if hashCount > 255 {
		return nil, fmt.Errorf("%w: hashCount %d exceeds 255", ErrCapacityExceeded, hashCount)
	}

	t.log.Debugf("accumulator: generated multiproof indices=%v hashCount=%d decommitments=%d",
		indices, hashCount, len(decommitments))

	return &MultiProof{
		Mode:          t.mode,
		ElementCount:  t.count,
		HashCount:     hashCount,
		Flags:         flags,
		Skips:         skips,
		Orders:        orders,
		Decommitments: decommitments,
	}, nil
}

func checkAscending(indices []uint64) error {
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return fmt.Errorf("%w: index %d at position %d is not greater than preceding index %d",
				ErrUnsortedIndices, indices[i], i, indices[i-1])
		}
	}
	return nil
}
