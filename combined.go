package accumulator

import "fmt"

// CombinedProof authorizes updating a set of indices and appending new
// elements in one step. Its two halves verify independently in sequence:
// Multi proves the pre-update root and (replayed with new leaf values)
// yields the root after updates alone; AppendFrontier's own OldRoot must
// match that intermediate root before its decommitments are trusted for
// the append. Neither half needs to know about the other's internals,
// which keeps verification simple at the cost of a few decommitments that
// a tighter encoding could dedupe against Multi's own.
type CombinedProof struct {
	Multi          *MultiProof
	AppendFrontier *AppendProof
}

// MinimumCombinedProofIndex computes M(N): N with its lowest set bit (and
// everything below it) cleared. A combined proof's smallest update index
// must be >= this value, because only the subtree under the lowest set bit
// can be touched by an update without disturbing a frontier peak that the
// append proof also depends on.
func MinimumCombinedProofIndex(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n & (n - 1)
}

// GenerateCombined produces a CombinedProof for updating the leaves at
// updateIndices to newLeaves and, in the same step, appending further
// elements (the append elements themselves aren't needed at generation
// time — only the frontier they'll be folded onto).
func GenerateCombined(t *Tree, updateIndices []uint64, newLeaves [][]byte) (*CombinedProof, error) {
	if len(updateIndices) == 0 {
		return nil, fmt.Errorf("%w: no update indices", ErrMalformedProof)
	}
	min := updateIndices[0]
	if m := MinimumCombinedProofIndex(t.count); min < m {
		return nil, fmt.Errorf("%w: smallest update index %d < minimum %d", ErrMinimumIndexViolation, min, m)
	}

	multi, err := GenerateMulti(t, updateIndices)
	if err != nil {
		return nil, err
	}

	updated, err := t.WithUpdatedLeaves(updateIndices, newLeaves)
	if err != nil {
		return nil, err
	}
	appendProof, err := GenerateAppend(updated)
	if err != nil {
		return nil, err
	}

	return &CombinedProof{Multi: multi, AppendFrontier: appendProof}, nil
}

// VerifyAndApplyCombined checks oldLeaves against root under proof, applies
// the update (new values at the same positions), then folds appendLeaves
// onto the result, returning the final root. minUpdateIndex is the
// smallest index the caller is updating; it must satisfy the minimum
// combined index constraint for proof's element count.
func VerifyAndApplyCombined(oldLeaves, newLeaves, appendLeaves [][]byte, minUpdateIndex uint64, proof *CombinedProof, root Node, opts ...Option) (bool, Node, error) {
	o := defaultOptions()
	o.apply(opts)
	log := o.logger()

	if m := MinimumCombinedProofIndex(proof.Multi.ElementCount); minUpdateIndex < m {
		err := fmt.Errorf("%w: smallest update index %d < minimum %d", ErrMinimumIndexViolation, minUpdateIndex, m)
		log.Warnf("accumulator: combined proof verification failed: %v", err)
		return false, Node{}, err
	}

	ok, err := VerifyMulti(oldLeaves, proof.Multi, root, opts...)
	if err != nil || !ok {
		return false, Node{}, err
	}

	newImages := make([]Node, len(newLeaves))
	for i, raw := range newLeaves {
		img, err := leafImage(raw)
		if err != nil {
			log.Warnf("accumulator: combined proof verification failed: %v", err)
			return false, Node{}, err
		}
		newImages[len(newLeaves)-1-i] = img
	}
	updatedInternal, err := replayMulti(proof.Multi, newImages)
	if err != nil {
		log.Warnf("accumulator: combined proof verification failed: %v", err)
		return false, Node{}, err
	}
	rootAfterUpdate := bindCount(proof.Multi.ElementCount, updatedInternal)

	if proof.AppendFrontier.OldRoot() != rootAfterUpdate {
		log.Warnf("accumulator: combined proof verification failed: %v", ErrRootMismatch)
		return false, Node{}, fmt.Errorf("%w: append frontier does not match post-update root", ErrRootMismatch)
	}

	newRoot, err := AppendMulti(proof.AppendFrontier, appendLeaves)
	if err != nil {
		log.Warnf("accumulator: combined proof verification failed: %v", err)
		return false, Node{}, err
	}
	return true, newRoot, nil
}
