package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-merkleaccumulator/testutil"
)

func TestBuildEmptyTreeHasZeroRoot(t *testing.T) {
	tr, err := Build(nil, Ordered)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), tr.Count())
	assert.Equal(t, zeroNode, tr.Root())
}

func TestBuildBalancedAndUnbalancedDiffer(t *testing.T) {
	leaves := testutil.Leaves("ff", 9)

	balanced, err := Build(leaves[:8], Ordered)
	require.NoError(t, err)
	unbalanced, err := Build(leaves[:9], Ordered)
	require.NoError(t, err)

	assert.NotEqual(t, balanced.Root(), unbalanced.Root())
	assert.Equal(t, uint64(8), balanced.Capacity())
	assert.Equal(t, uint64(16), unbalanced.Capacity())
}

func TestBuildRejectsWrongLeafSize(t *testing.T) {
	_, err := Build([][]byte{{1, 2, 3}}, Ordered)
	require.ErrorIs(t, err, ErrWrongLeafSize)
}

func TestLeafImageRoundTripsThroughTree(t *testing.T) {
	leaves := testutil.Leaves("ff", 5)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	for i, raw := range leaves {
		want, err := leafImage(raw)
		require.NoError(t, err)
		got, ok := tr.LeafImage(uint64(i))
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := tr.LeafImage(uint64(len(leaves)))
	assert.False(t, ok)
}

func TestWithUpdatedLeavesChangesOnlyTargetedPositions(t *testing.T) {
	leaves := testutil.Leaves("ff", 6)
	tr, err := Build(leaves, Ordered)
	require.NoError(t, err)

	replacement := testutil.Leaves("gg", 1)
	updated, err := tr.WithUpdatedLeaves([]uint64{2}, replacement)
	require.NoError(t, err)

	assert.NotEqual(t, tr.Root(), updated.Root())
	for i := range leaves {
		if i == 2 {
			continue
		}
		orig, _ := tr.LeafImage(uint64(i))
		now, _ := updated.LeafImage(uint64(i))
		assert.Equal(t, orig, now, "leaf %d should be untouched", i)
	}
}
