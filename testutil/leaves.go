// Package testutil provides deterministic test fixtures for the
// accumulator package's test suites.
package testutil

import "crypto/sha256"

// Leaves generates n deterministic 32-byte leaves from seed. Leaf i is
// sha256(seed || i as 8-byte big-endian), so the same (seed, n) pair always
// produces the same sequence, and leaf i is stable across different n.
func Leaves(seed string, n int) [][]byte {
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		h := sha256.New()
		h.Write([]byte(seed))
		var idx [8]byte
		v := uint64(i)
		for b := 7; b >= 0; b-- {
			idx[b] = byte(v)
			v >>= 8
		}
		h.Write(idx[:])
		sum := h.Sum(nil)
		leaf := make([]byte, 32)
		copy(leaf, sum)
		out[i] = leaf
	}
	return out
}
