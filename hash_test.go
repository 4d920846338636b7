package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafImageRejectsWrongSize(t *testing.T) {
	_, err := leafImage([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrWrongLeafSize)
}

func TestLeafImageDeterministic(t *testing.T) {
	leaf := make([]byte, 32)
	leaf[0] = 0x42
	a, err := leafImage(leaf)
	require.NoError(t, err)
	b, err := leafImage(leaf)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSortedPairIsOrderIndependent(t *testing.T) {
	a := Node{1}
	b := Node{2}
	assert.Equal(t, Sorted.pair(a, b), Sorted.pair(b, a))
}

func TestOrderedPairIsOrderDependent(t *testing.T) {
	a := Node{1}
	b := Node{2}
	assert.NotEqual(t, Ordered.pair(a, b), Ordered.pair(b, a))
}

func TestBindCountZeroIsBareZeroRoot(t *testing.T) {
	assert.Equal(t, zeroNode, bindCount(0, Node{9, 9, 9}))
}

func TestBindCountNonZeroBindsCount(t *testing.T) {
	internal := Node{7}
	r1 := bindCount(1, internal)
	r2 := bindCount(2, internal)
	assert.NotEqual(t, r1, r2)
}
