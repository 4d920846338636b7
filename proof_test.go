package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merkleaccumulator/testutil"
)

func TestSingleProofRoundTrip(t *testing.T) {
	for n := 1; n <= 17; n++ {
		leaves := testutil.Leaves("ff", n)
		tr, err := Build(leaves, Ordered)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			proof, err := GenerateSingle(tr, uint64(i))
			require.NoError(t, err)
			ok, err := VerifySingle(leaves[i], proof, tr.Root())
			require.NoError(t, err)
			assert.True(t, ok, "n=%d i=%d", n, i)
		}
	}
}

func TestUpdateSingle(t *testing.T) {
	leaves := testutil.Leaves("ff", 9)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	proof, err := GenerateSingle(tr, 5)
	require.NoError(t, err)

	newLeaf := testutil.Leaves("gg", 1)[0]
	ok, newRoot, err := UpdateSingle(leaves[5], newLeaf, proof, tr.Root())
	require.NoError(t, err)
	require.True(t, ok)

	updatedLeaves := append([][]byte{}, leaves...)
	updatedLeaves[5] = newLeaf
	updatedTree, err := Build(updatedLeaves, Ordered)
	require.NoError(t, err)

	assert.Equal(t, updatedTree.Root(), newRoot)
}

func TestUpdateSingleRejectsWrongOldLeaf(t *testing.T) {
	leaves := testutil.Leaves("ff", 9)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	proof, err := GenerateSingle(tr, 5)
	require.NoError(t, err)

	ok, _, err := UpdateSingle(leaves[4], testutil.Leaves("gg", 1)[0], proof, tr.Root())
	require.ErrorIs(t, err, ErrRootMismatch)
	assert.False(t, ok)
}

func TestUpdateMulti(t *testing.T) {
	leaves := testutil.Leaves("ff", 12)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	indices := []uint64{2, 3, 8, 11}
	proof, err := GenerateMulti(tr, indices)
	require.NoError(t, err)

	oldVals := make([][]byte, len(indices))
	newVals := testutil.Leaves("gg", len(indices))
	for i, idx := range indices {
		oldVals[i] = leaves[idx]
	}

	ok, newRoot, err := UpdateMulti(oldVals, newVals, proof, tr.Root())
	require.NoError(t, err)
	require.True(t, ok)

	updatedLeaves := append([][]byte{}, leaves...)
	for i, idx := range indices {
		updatedLeaves[idx] = newVals[i]
	}
	updatedTree, err := Build(updatedLeaves, Ordered)
	require.NoError(t, err)

	assert.Equal(t, updatedTree.Root(), newRoot)
}
