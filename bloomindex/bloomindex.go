package bloomindex

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ElementBytes is the fixed element width this filter indexes.
const ElementBytes = 32

// DefaultBitsPerElement and DefaultK are reasonable defaults for a false
// positive rate around 1% at k=7.
const (
	DefaultBitsPerElement = 10
	DefaultK              = 7
)

var ErrZeroCapacity = errors.New("bloomindex: expected element count must be > 0")

// Index is a single Bloom filter over 32-byte elements, backed by
// bits-and-blooms/bitset and sized for an expected element count.
type Index struct {
	bits *bitset.BitSet
	m    uint64
	k    uint8
}

// New builds an Index sized for expectedElements, using bitsPerElement bits
// of backing store per expected element and k independent probes derived by
// double hashing (Kirsch–Mitzenmacher) from a single sha256 digest.
func New(expectedElements int, bitsPerElement int, k uint8) (*Index, error) {
	if expectedElements <= 0 {
		return nil, ErrZeroCapacity
	}
	if bitsPerElement <= 0 {
		bitsPerElement = DefaultBitsPerElement
	}
	if k == 0 {
		k = DefaultK
	}
	m := uint64(expectedElements) * uint64(bitsPerElement)
	if m == 0 {
		m = 1
	}
	return &Index{
		bits: bitset.MustNew(uint(m)),
		m:    m,
		k:    k,
	}, nil
}

// Insert marks elem as present.
func (idx *Index) Insert(elem [ElementBytes]byte) {
	for _, bit := range idx.probes(elem) {
		idx.bits.Set(bit)
	}
}

// MayContain returns false only when elem is definitely absent. A true
// result means "maybe present" and must be followed by the authoritative
// check (here, walking the tree).
func (idx *Index) MayContain(elem [ElementBytes]byte) bool {
	for _, bit := range idx.probes(elem) {
		if !idx.bits.Test(bit) {
			return false
		}
	}
	return true
}

func (idx *Index) probes(elem [ElementBytes]byte) []uint {
	sum := sha256.Sum256(elem[:])
	h1 := binary.BigEndian.Uint64(sum[0:8])
	h2 := binary.BigEndian.Uint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}

	out := make([]uint, idx.k)
	for i := uint8(0); i < idx.k; i++ {
		combined := h1 + uint64(i)*h2
		out[i] = uint(combined % idx.m)
	}
	return out
}
