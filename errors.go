package accumulator

import "errors"

// Error kinds. Callers branch on these with errors.Is; wrapped detail is
// added with fmt.Errorf("%w: ...", ErrX) at the point of detection.
var (
	// ErrMalformedProof covers a missing stop bit, a decommitment count
	// inconsistent with the flag/skip streams, or mismatched input lengths.
	ErrMalformedProof = errors.New("accumulator: malformed proof")

	// ErrUnsortedIndices is returned by generation when the caller's index
	// set is not strictly ascending.
	ErrUnsortedIndices = errors.New("accumulator: indices must be strictly ascending")

	// ErrRootMismatch is returned by verification when the folded root does
	// not equal the claimed/stored root.
	ErrRootMismatch = errors.New("accumulator: computed root does not match claimed root")

	// ErrMinimumIndexViolation is returned when a combined proof's smallest
	// update index is below minimumCombinedProofIndex(N).
	ErrMinimumIndexViolation = errors.New("accumulator: update index below minimum combined proof index")

	// ErrCapacityExceeded is returned when hashCount would exceed 255 in
	// compact mode, or when N would reach 2^32.
	ErrCapacityExceeded = errors.New("accumulator: capacity exceeded")

	// ErrIndexOutOfRange is returned when a requested leaf index is >= N, or
	// an append/update index set references an index outside the tree.
	ErrIndexOutOfRange = errors.New("accumulator: index out of range")

	// ErrNotInTree is returned by the optional bloom prefilter when a leaf
	// image is definitely not a member, short-circuiting proof generation.
	ErrNotInTree = errors.New("accumulator: leaf definitely not present (bloom prefilter)")

	// ErrWrongLeafSize is returned when a supplied leaf is not exactly 32 bytes.
	ErrWrongLeafSize = errors.New("accumulator: leaf must be exactly 32 bytes")

	// ErrIndexInferenceUnsupported is returned by InferIndices when the tree
	// or proof was built with the sorted hash variant.
	ErrIndexInferenceUnsupported = errors.New("accumulator: index inference requires the ordered hash variant")
)
