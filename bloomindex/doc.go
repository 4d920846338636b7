// Package bloomindex provides a probabilistic membership prefilter over
// 32-byte elements, for use as an optional front-end to accumulator.Tree.
//
// It mirrors the 4-way Bloom filter design used elsewhere in this codebase's
// lineage (fixed element width, double hashing, explicit k), but is
// re-platformed onto github.com/bits-and-blooms/bitset rather than a
// hand-rolled bitset, and it indexes a single logical set rather than the
// four parallel filters a fixed on-disk region needs.
//
// A Bloom filter only ever answers "definitely not present" or "maybe
// present" — it is an I/O optimization, never a membership proof. Nothing
// here is consulted by proof verification. accumulator's proof generation
// consults it with the stored image of each requested index; those are the
// images the filter was populated from, so for an in-range index it always
// answers "maybe present" and generation is never cut short by it.
package bloomindex
