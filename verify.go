package accumulator

import "fmt"

// VerifyMulti checks that leaves, at the positions implied by proof's
// generation, combine under proof's flags/skips/orders automaton to the
// given root.
//
// leaves must be supplied in the same ascending order used to generate
// proof; VerifyMulti feeds them to the automaton rightmost-index first,
// mirroring the right-to-left tree walk GenerateMulti used to emit steps.
// Each step then either promotes a single pending value unchanged (skip),
// combines two pending values (flag), or combines one pending value with
// the next decommitment. Ordered mode additionally consults orders to
// know which side the pending value sits on; Sorted mode doesn't need to,
// since its pair hash is symmetric.
//
// Every failure is logged at Warnf naming the sentinel error kind before
// being returned; opts accepts WithLogger to scope that output in tests.
func VerifyMulti(leaves [][]byte, proof *MultiProof, root Node, opts ...Option) (bool, error) {
	o := defaultOptions()
	o.apply(opts)
	log := o.logger()

	if len(leaves) == 0 {
		err := fmt.Errorf("%w: no leaves supplied", ErrMalformedProof)
		log.Warnf("accumulator: multiproof verification failed: %v", err)
		return false, err
	}
	if len(proof.Skips) != proof.HashCount || len(proof.Flags) != proof.HashCount {
		err := fmt.Errorf("%w: flags/skips length does not match hashCount", ErrMalformedProof)
		log.Warnf("accumulator: multiproof verification failed: %v", err)
		return false, err
	}
	if proof.Mode == Ordered && len(proof.Orders) != proof.HashCount {
		err := fmt.Errorf("%w: ordered proof missing orders", ErrMalformedProof)
		log.Warnf("accumulator: multiproof verification failed: %v", err)
		return false, err
	}

	leafImages := make([]Node, len(leaves))
	for i, raw := range leaves {
		img, err := leafImage(raw)
		if err != nil {
			log.Warnf("accumulator: multiproof verification failed: %v", err)
			return false, err
		}
		// Reversed: the automaton's queue is primed rightmost-index first.
		leafImages[len(leaves)-1-i] = img
	}

	internalRoot, err := replayMulti(proof, leafImages)
	if err != nil {
		log.Warnf("accumulator: multiproof verification failed: %v", err)
		return false, err
	}

	candidate := bindCount(proof.ElementCount, internalRoot)
	if candidate != root {
		log.Warnf("accumulator: multiproof verification failed: %v", ErrRootMismatch)
		return false, ErrRootMismatch
	}
	return true, nil
}

// replayMulti runs the shared flags/skips/orders automaton and returns the
// internal (pre count-binding) root it produces.
//
// leafImages must already be in reversed (rightmost original index first)
// order. A single FIFO queue holds pending values: it starts loaded with
// leafImages and each step appends exactly one new value (its output) to
// the back, so steps naturally consume earlier steps' outputs once the
// original leaves are exhausted.
func replayMulti(proof *MultiProof, leafImages []Node) (Node, error) {
	q := make([]Node, len(leafImages), len(leafImages)+proof.HashCount)
	copy(q, leafImages)
	head, decomIdx := 0, 0

	pop := func() (Node, error) {
		if head >= len(q) {
			return Node{}, fmt.Errorf("%w: ran out of pending values", ErrMalformedProof)
		}
		v := q[head]
		head++
		return v, nil
	}
	popDecom := func() (Node, error) {
		if decomIdx >= len(proof.Decommitments) {
			return Node{}, fmt.Errorf("%w: ran out of decommitments", ErrMalformedProof)
		}
		v := proof.Decommitments[decomIdx]
		decomIdx++
		return v, nil
	}

	for s := 0; s < proof.HashCount; s++ {
		var out Node
		switch {
		case proof.Skips[s]:
			v, err := pop()
			if err != nil {
				return Node{}, err
			}
			out = v
		case proof.Flags[s]:
			right, err := pop()
			if err != nil {
				return Node{}, err
			}
			left, err := pop()
			if err != nil {
				return Node{}, err
			}
			out = pairOrdered(proof.Mode, proof, s, left, right)
		default:
			left, err := pop()
			if err != nil {
				return Node{}, err
			}
			right, err := popDecom()
			if err != nil {
				return Node{}, err
			}
			out = pairOrdered(proof.Mode, proof, s, left, right)
		}
		q = append(q, out)
	}

	if proof.HashCount == 0 {
		if len(leafImages) != 1 {
			return Node{}, fmt.Errorf("%w: zero hash steps but %d leaves", ErrMalformedProof, len(leafImages))
		}
		return leafImages[0], nil
	}
	if head != len(q)-1 || decomIdx != len(proof.Decommitments) {
		return Node{}, fmt.Errorf("%w: proof left unconsumed leaves or decommitments", ErrMalformedProof)
	}
	return q[len(q)-1], nil
}

// pairOrdered resolves the (left, right) values popped for step s into the
// tree's actual child order before hashing. Ordered mode swaps them unless
// orders[s] says the pop order already matches; Sorted mode's pair hash is
// symmetric, so the pop order never matters.
func pairOrdered(mode HashMode, proof *MultiProof, s int, left, right Node) Node {
	if mode != Ordered {
		return mode.pair(left, right)
	}
	if proof.Orders[s] {
		return compress(left, right)
	}
	return compress(right, left)
}
