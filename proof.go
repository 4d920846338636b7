package accumulator

import "fmt"

// SingleProof authenticates one leaf. It is the m=1 degenerate case of
// MultiProof: the same flags/skips/orders automaton that handles an
// arbitrary index set already handles a single index correctly, so this
// type is a thin, named wrapper rather than a second hand-rolled algorithm.
type SingleProof struct {
	Index uint64
	*MultiProof
}

// GenerateSingle produces a membership proof for one leaf.
func GenerateSingle(t *Tree, index uint64) (*SingleProof, error) {
	mp, err := GenerateMulti(t, []uint64{index})
	if err != nil {
		return nil, err
	}
	return &SingleProof{Index: index, MultiProof: mp}, nil
}

// VerifySingle checks leaf against root under proof.
func VerifySingle(leaf []byte, proof *SingleProof, root Node, opts ...Option) (bool, error) {
	return VerifyMulti([][]byte{leaf}, proof.MultiProof, root, opts...)
}

// UpdateSingle checks that oldLeaf authenticates against root under proof,
// then replays the same automaton with newLeaf substituted to compute the
// root that would result from replacing that one leaf. The flags, skips,
// orders, and decommitments are structural — they depend only on which
// positions are present, not on leaf values — so both computations reuse
// the same proof.
func UpdateSingle(oldLeaf, newLeaf []byte, proof *SingleProof, root Node, opts ...Option) (bool, Node, error) {
	o := defaultOptions()
	o.apply(opts)
	log := o.logger()

	ok, err := VerifySingle(oldLeaf, proof, root, opts...)
	if err != nil || !ok {
		return false, Node{}, err
	}

	newImage, err := leafImage(newLeaf)
	if err != nil {
		log.Warnf("accumulator: single-proof update failed: %v", err)
		return false, Node{}, err
	}
	newInternal, err := replayMulti(proof.MultiProof, []Node{newImage})
	if err != nil {
		log.Warnf("accumulator: single-proof update failed: %v", err)
		return false, Node{}, err
	}

	return true, bindCount(proof.ElementCount, newInternal), nil
}

// UpdateMulti is UpdateSingle generalized to many indices: it checks
// oldLeaves against root, then computes the root that results from
// replacing them all with newLeaves in one pass. oldLeaves and newLeaves
// must be given in the same ascending order used to generate proof.
func UpdateMulti(oldLeaves, newLeaves [][]byte, proof *MultiProof, root Node, opts ...Option) (bool, Node, error) {
	o := defaultOptions()
	o.apply(opts)
	log := o.logger()

	if len(oldLeaves) != len(newLeaves) {
		err := fmt.Errorf("%w: old/new leaf count mismatch", ErrMalformedProof)
		log.Warnf("accumulator: multi-proof update failed: %v", err)
		return false, Node{}, err
	}
	ok, err := VerifyMulti(oldLeaves, proof, root, opts...)
	if err != nil || !ok {
		return false, Node{}, err
	}

	newImages := make([]Node, len(newLeaves))
	for i, raw := range newLeaves {
		img, err := leafImage(raw)
		if err != nil {
			log.Warnf("accumulator: multi-proof update failed: %v", err)
			return false, Node{}, err
		}
		newImages[len(newLeaves)-1-i] = img
	}
	newInternal, err := replayMulti(proof, newImages)
	if err != nil {
		log.Warnf("accumulator: multi-proof update failed: %v", err)
		return false, Node{}, err
	}

	return true, bindCount(proof.ElementCount, newInternal), nil
}
