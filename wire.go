package accumulator

import (
	"encoding/binary"
	"fmt"
)

// EncodeCompactMulti renders proof as the §6 wire format: elementCount,
// then flags/skips(/orders), then the decommitments, each a 32-byte word.
func EncodeCompactMulti(proof *MultiProof) ([]byte, error) {
	flagsWord, err := packBits(proof.Flags)
	if err != nil {
		return nil, err
	}
	skipsWord, err := packBits(proof.Skips)
	if err != nil {
		return nil, err
	}

	words := make([]Node, 0, 3+len(proof.Decommitments)+1)
	words = append(words, countNode(proof.ElementCount), flagsWord, skipsWord)
	if proof.Mode == Ordered {
		ordersWord, err := packBits(proof.Orders)
		if err != nil {
			return nil, err
		}
		words = append(words, ordersWord)
	}
	words = append(words, proof.Decommitments...)

	out := make([]byte, 0, len(words)*Size)
	for _, w := range words {
		out = append(out, w[:]...)
	}
	return out, nil
}

// DecodeCompactMulti parses the §6 wire format back into a MultiProof.
// mode must be supplied out-of-band: the wire format has no tag
// distinguishing ordered from sorted proofs, since a verifier always
// already knows which hash variant a given root/tree uses.
func DecodeCompactMulti(mode HashMode, data []byte) (*MultiProof, error) {
	if len(data) < 3*Size || len(data)%Size != 0 {
		return nil, fmt.Errorf("%w: compact multiproof length %d not a valid word count", ErrMalformedProof, len(data))
	}
	words := splitWords(data)

	elementCount := binary.BigEndian.Uint64(words[0][24:32])
	flags, err := unpackBits(words[1])
	if err != nil {
		return nil, fmt.Errorf("%w: flags stream: %s", ErrMalformedProof, err)
	}
	skips, err := unpackBits(words[2])
	if err != nil {
		return nil, fmt.Errorf("%w: skips stream: %s", ErrMalformedProof, err)
	}
	if len(flags) != len(skips) {
		return nil, fmt.Errorf("%w: flags length %d != skips length %d", ErrMalformedProof, len(flags), len(skips))
	}

	next := 3
	var orders []bool
	if mode == Ordered {
		if len(words) < next+1 {
			return nil, fmt.Errorf("%w: missing orders word", ErrMalformedProof)
		}
		orders, err = unpackBits(words[next])
		if err != nil {
			return nil, fmt.Errorf("%w: orders stream: %s", ErrMalformedProof, err)
		}
		if len(orders) != len(flags) {
			return nil, fmt.Errorf("%w: orders length %d != flags length %d", ErrMalformedProof, len(orders), len(flags))
		}
		next++
	}

	decommitments := words[next:]

	return &MultiProof{
		Mode:          mode,
		ElementCount:  elementCount,
		HashCount:     len(flags),
		Flags:         flags,
		Skips:         skips,
		Orders:        orders,
		Decommitments: decommitments,
	}, nil
}

// EncodeAppendOrSize renders the §6 "append/size" wire format:
// [N] ‖ decommitment[0] ‖ … ‖ decommitment[k-1].
func EncodeAppendOrSize(elementCount uint64, decommitments []Node) []byte {
	out := make([]byte, 0, (1+len(decommitments))*Size)
	n := countNode(elementCount)
	out = append(out, n[:]...)
	for _, d := range decommitments {
		out = append(out, d[:]...)
	}
	return out
}

// DecodeAppendOrSize parses the §6 "append/size" wire format.
func DecodeAppendOrSize(data []byte) (elementCount uint64, decommitments []Node, err error) {
	if len(data) < Size || len(data)%Size != 0 {
		return 0, nil, fmt.Errorf("%w: append/size proof length %d not a valid word count", ErrMalformedProof, len(data))
	}
	words := splitWords(data)
	elementCount = binary.BigEndian.Uint64(words[0][24:32])
	return elementCount, words[1:], nil
}

func splitWords(data []byte) []Node {
	words := make([]Node, len(data)/Size)
	for i := range words {
		copy(words[i][:], data[i*Size:(i+1)*Size])
	}
	return words
}
