package accumulator

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

// Size is the fixed width, in bytes, of every leaf, leaf image, internal
// node, decommitment, and root value in this package.
const Size = 32

// Node is a 32-byte tree value: a leaf image, an internal hash, or a root.
type Node [Size]byte

// HashMode selects how a node's two children are combined. It is fixed for
// the lifetime of a Tree and every proof generated against it.
type HashMode uint8

const (
	// Ordered concatenates left‖right before hashing, preserving positional
	// information so that index inference (§4.7) is possible.
	Ordered HashMode = iota

	// Sorted concatenates min‖max (compared as big-endian integers) before
	// hashing. This makes sibling order irrelevant, shortening proofs (no
	// orders stream) at the cost of losing index inference.
	Sorted
)

func (m HashMode) String() string {
	if m == Sorted {
		return "sorted"
	}
	return "ordered"
}

// compress is the fixed 2-to-1 compression function H(a, b) = keccak256(a‖b).
// The hash itself is treated as an opaque collision-resistant primitive; this
// package takes no position on its construction beyond that it operates on
// two 32-byte operands and returns one.
func compress(a, b Node) Node {
	h := sha3.NewLegacyKeccak256()
	h.Write(a[:])
	h.Write(b[:])
	var out Node
	copy(out[:], h.Sum(nil))
	return out
}

// pair orders (a, b) according to mode and returns H(a, b) under that order.
func (m HashMode) pair(a, b Node) Node {
	if m == Sorted && bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return compress(a, b)
}

var zeroNode Node

// leafImage hashes a bare leaf with a zero domain separator, per the data
// model: H(0^32, leaf). Leaf images, never bare leaves, are what enter
// interior hashes.
func leafImage(leaf []byte) (Node, error) {
	if len(leaf) != Size {
		return Node{}, ErrWrongLeafSize
	}
	var l Node
	copy(l[:], leaf)
	return compress(zeroNode, l), nil
}

// countNode renders an element count as the 32-byte big-endian word used to
// bind N into the root: H(N, internalRoot).
func countNode(n uint64) Node {
	var out Node
	// Big-endian, left padded: the count occupies the low 8 bytes of a
	// 32-byte word, matching the wire format's "32 bytes, big-endian,
	// left-padded" convention (§6).
	out[24] = byte(n >> 56)
	out[25] = byte(n >> 48)
	out[26] = byte(n >> 40)
	out[27] = byte(n >> 32)
	out[28] = byte(n >> 24)
	out[29] = byte(n >> 16)
	out[30] = byte(n >> 8)
	out[31] = byte(n)
	return out
}

// bindCount computes root = H(N, internalRoot); N == 0 yields the bare zero
// root regardless of internalRoot, per the data model.
func bindCount(n uint64, internalRoot Node) Node {
	if n == 0 {
		return zeroNode
	}
	return compress(countNode(n), internalRoot)
}
