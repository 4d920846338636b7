// Package accumulator implements a Merkle accumulator over 32-byte leaves,
// together with the family of compact authenticated proofs needed to operate
// on it without holding the full tree: single-element membership, multi-
// element existence, append, combined update-and-append, and size proofs.
//
// # Approach
//
// The tree is never required to be balanced. Leaves are stored left to
// right, and the implementation treats any node whose right child falls
// beyond the current element count as "absent" rather than padding it with a
// zero value — this is what makes the root of an N-leaf tree independent of
// any particular padding scheme, at the cost of needing to track, at every
// level, whether a sibling exists at all.
//
// Existence, update, and the update half of combined proofs are driven by
// the same bit-stream automaton (append and size proofs instead fold the
// frontier of perfect-subtree peaks): three parallel bit streams
// (flags, skips, orders) tell a verifier, one hash step at a time, whether
// the next operand comes off a FIFO queue of pending values or from an
// explicit decommitment, whether this step is a promotion
// rather than a hash (the right sibling doesn't exist), and which side of
// the pair the computed value belongs on. This mirrors, for a bit-packed
// existence proof, the same "narrow interface, burden of knowledge on the
// caller" approach this package's sibling mmr-style implementations take for
// position arithmetic: the automaton does not re-derive the tree shape, it
// trusts the streams to describe it.
//
// # Hash variants
//
// Two ways of combining a node's children are supported: ordered (the
// concatenation order is preserved, so a verifier who also knows the flag
// streams can recover which original indices were proved) and sorted (the
// smaller of the two 32-byte values, compared as a big-endian integer,
// always goes first, which shortens proofs by removing the need for an
// orders stream, at the cost of losing index inference). A Tree is built
// with one variant and all of its proofs use that variant; the two are not
// interchangeable at verification time.
package accumulator
