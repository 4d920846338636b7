package accumulator

import "github.com/forestrie/go-merkleaccumulator/bloomindex"

// bloomPrefilter adapts a bloomindex.Index, which knows nothing about this
// package's Node type, to the Prefilter interface.
type bloomPrefilter struct {
	idx *bloomindex.Index
}

func (b *bloomPrefilter) MayContain(n Node) bool {
	return b.idx.MayContain(n)
}

// newDefaultPrefilter builds and populates a bloom-backed prefilter sized
// for t's current element count. Built once at tree-construction time; a
// Tree is immutable, so there is nothing to keep the filter in sync with
// afterwards.
func newDefaultPrefilter(t *Tree) Prefilter {
	if t.count == 0 {
		return nil
	}
	idx, err := bloomindex.New(int(t.count), bloomindex.DefaultBitsPerElement, bloomindex.DefaultK)
	if err != nil {
		return nil
	}
	for i := uint64(0); i < t.count; i++ {
		img, _ := t.LeafImage(i)
		idx.Insert(img)
	}
	return &bloomPrefilter{idx: idx}
}
