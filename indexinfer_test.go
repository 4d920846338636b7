package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merkleaccumulator/testutil"
)

func TestInferIndicesRecoversOriginalSet(t *testing.T) {
	cases := []struct {
		n       int
		indices []uint64
	}{
		{1, []uint64{0}},
		{8, []uint64{0, 7}},
		{9, []uint64{8}},
		{9, []uint64{0, 4, 8}},
		{12, []uint64{2, 3, 8, 11}},
		{48, []uint64{0, 1, 2, 47}},
	}

	for _, c := range cases {
		leaves := testutil.Leaves("ff", c.n)
		tr, err := Build(leaves, Ordered)
		require.NoError(t, err)

		proof, err := GenerateMulti(tr, c.indices)
		require.NoError(t, err)

		got, err := InferIndices(Ordered, len(c.indices), proof.Flags, proof.Skips, proof.Orders)
		require.NoError(t, err, "n=%d indices=%v", c.n, c.indices)
		assert.Equal(t, c.indices, got, "n=%d indices=%v", c.n, c.indices)
	}
}

func TestInferIndicesRejectsSortedMode(t *testing.T) {
	leaves := testutil.Leaves("ff", 8)
	tr, err := Build(leaves, Sorted)
	require.NoError(t, err)

	proof, err := GenerateMulti(tr, []uint64{1, 4})
	require.NoError(t, err)

	_, err = InferIndices(Sorted, 2, proof.Flags, proof.Skips, proof.Orders)
	require.ErrorIs(t, err, ErrIndexInferenceUnsupported)
}
