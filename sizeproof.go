package accumulator

import "fmt"

// SizeProofMode selects how a SizeProof packs its evidence.
type SizeProofMode uint8

const (
	// SizeFull carries the full append-proof frontier; N is included.
	SizeFull SizeProofMode = iota
	// SizeCompact carries the same frontier but omits N (the caller
	// already knows it, e.g. from out-of-band context).
	SizeCompact
	// SizeSimple reveals the unwrapped internal root directly, letting
	// the verifier check H(N, internalRoot) == root without any folding.
	SizeSimple
)

// SizeProof proves that (N, root) is consistent with some element
// sequence, without revealing the sequence itself.
type SizeProof struct {
	Mode          SizeProofMode
	ElementCount  uint64
	Decommitments []Node // full/compact modes
	InternalRoot  Node   // simple mode
}

// GenerateSize builds a SizeProof of the requested mode for t.
func GenerateSize(t *Tree, mode SizeProofMode) (*SizeProof, error) {
	switch mode {
	case SizeFull, SizeCompact:
		decommitments, err := frontierDecommitments(t)
		if err != nil {
			return nil, err
		}
		proof := &SizeProof{Mode: mode, Decommitments: decommitments}
		if mode == SizeFull {
			proof.ElementCount = t.count
		}
		return proof, nil
	case SizeSimple:
		return &SizeProof{Mode: SizeSimple, ElementCount: t.count, InternalRoot: t.ElementRoot()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown size proof mode %d", ErrMalformedProof, mode)
	}
}

// VerifySize checks proof against root. elementCount must be supplied by
// the caller for SizeCompact, which omits it from the proof itself; it is
// ignored (proof.ElementCount is authoritative) for the other two modes.
func VerifySize(mode HashMode, proof *SizeProof, elementCount uint64, root Node, opts ...Option) (bool, error) {
	o := defaultOptions()
	o.apply(opts)
	log := o.logger()

	var candidate Node
	switch proof.Mode {
	case SizeFull:
		candidate = bindCount(proof.ElementCount, FoldFrontierToRoot(mode, proof.Decommitments))
	case SizeCompact:
		candidate = bindCount(elementCount, FoldFrontierToRoot(mode, proof.Decommitments))
	case SizeSimple:
		candidate = bindCount(proof.ElementCount, proof.InternalRoot)
	default:
		err := fmt.Errorf("%w: unknown size proof mode %d", ErrMalformedProof, proof.Mode)
		log.Warnf("accumulator: size proof verification failed: %v", err)
		return false, err
	}

	if candidate != root {
		log.Warnf("accumulator: size proof verification failed: %v", ErrRootMismatch)
		return false, ErrRootMismatch
	}
	return true, nil
}
