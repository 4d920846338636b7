package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merkleaccumulator/testutil"
)

func TestMinimumCombinedProofIndexReferenceVectors(t *testing.T) {
	cases := map[uint64]uint64{
		1: 0, 2: 0, 3: 2, 48: 32, 365: 364, 384: 256, 1792: 1536,
	}
	for n, want := range cases {
		assert.Equal(t, want, MinimumCombinedProofIndex(n), "n=%d", n)
	}
}

func TestCombinedProofRoundTrip(t *testing.T) {
	leaves := testutil.Leaves("ff", 12)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	min := MinimumCombinedProofIndex(tr.Count()) // 8 for N=12
	updateIndices := []uint64{min, 10}
	newVals := testutil.Leaves("gg", len(updateIndices))

	proof, err := GenerateCombined(tr, updateIndices, newVals)
	require.NoError(t, err)

	oldVals := make([][]byte, len(updateIndices))
	for i, idx := range updateIndices {
		oldVals[i] = leaves[idx]
	}
	toAppend := testutil.Leaves("hh", 3)

	ok, newRoot, err := VerifyAndApplyCombined(oldVals, newVals, toAppend, updateIndices[0], proof, tr.Root())
	require.NoError(t, err)
	require.True(t, ok)

	updatedLeaves := append([][]byte{}, leaves...)
	for i, idx := range updateIndices {
		updatedLeaves[idx] = newVals[i]
	}
	finalLeaves := append(updatedLeaves, toAppend...)
	want, err := Build(finalLeaves, Ordered)
	require.NoError(t, err)

	assert.Equal(t, want.Root(), newRoot)
}

func TestCombinedProofRejectsIndexBelowMinimum(t *testing.T) {
	leaves := testutil.Leaves("ff", 12)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	_, err = GenerateCombined(tr, []uint64{1}, testutil.Leaves("gg", 1))
	require.ErrorIs(t, err, ErrMinimumIndexViolation)
}
