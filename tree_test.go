package rnni

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafSetOps(t *testing.T) {
	require.True(t, isSubset(0b0011, 0b0111))
	require.True(t, isSubset(0b0111, 0b0111))
	require.False(t, isSubset(0b1001, 0b0111))
	require.True(t, isSubset(0, 0b0111))

	require.Equal(t, 3, leafCount(0b1011))
	require.Equal(t, MaxLeaves, leafCount(^LeafSet(0)))

	require.Equal(t, LeafSet(0b0010), lowestLeaf(0b1010))
	require.Equal(t, LeafSet(0b0001), lowestLeaf(^LeafSet(0)))

	require.Equal(t, LeafSet(0b0011), fullLeafSet(2))
	require.Equal(t, LeafSet(0b1111), fullLeafSet(4))
	require.Equal(t, ^LeafSet(0), fullLeafSet(MaxLeaves))
}

func TestAncestorRank(t *testing.T) {
	tree := Tree{0b0011, 0b0111, 0b1111}

	for _, c := range []struct {
		x    LeafSet
		rank int
	}{
		{0b0001, 0},
		{0b0011, 0},
		{0b0100, 1},
		{0b0110, 1},
		{0b1000, 2},
		{0b1001, 2},
		{0b1111, 2},
	} {
		rank, err := ancestorRank(tree, c.x)
		require.NoError(t, err)
		require.Equal(t, c.rank, rank)
	}

	// a leaf outside the tree's universe has no ancestor
	_, err := ancestorRank(Tree{0b0011}, 0b0100)
	require.Equal(t, NoAncestorError, err)
}

func TestAncestorRankRoot(t *testing.T) {
	// the full leaf set always resolves to the root rank
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 2; n <= MaxLeaves; n++ {
		tree, err := Generate(n, rng)
		require.NoError(t, err)

		rank, err := ancestorRank(tree, fullLeafSet(n))
		require.NoError(t, err)
		require.Equal(t, n-2, rank)
	}
}

func TestTreeCheck(t *testing.T) {
	require.NoError(t, Tree{0b11}.Check())
	require.NoError(t, Tree{0b0011, 0b0111, 0b1111}.Check())
	require.NoError(t, Tree{0b0011, 0b1100, 0b1111}.Check())

	// too few leaves
	require.Equal(t, LeafCountError, Tree{}.Check())
	// root is not the full universe
	require.Error(t, Tree{0b0101, 0b0111, 0b1110}.Check())
	// a rank merging three nodes at once
	require.Error(t, Tree{0b0111, 0b0011, 0b1111}.Check())
	// duplicated cluster
	require.Error(t, Tree{0b0011, 0b0011, 0b1111}.Check())

	// everything the generator emits is valid
	rng := rand.New(rand.NewPCG(5, 6))
	for n := 2; n <= MaxLeaves; n++ {
		tree, err := Generate(n, rng)
		require.NoError(t, err)
		require.NoError(t, tree.Check())
	}
}

func TestTreeEqual(t *testing.T) {
	tree := Tree{0b0011, 0b0111, 0b1111}
	require.True(t, tree.Equal(tree))
	require.True(t, tree.Equal(tree.clone()))
	require.False(t, tree.Equal(Tree{0b0011, 0b1100, 0b1111}))
	require.False(t, tree.Equal(tree[:2]))
}

func TestTreeString(t *testing.T) {
	// root row first, leaf bits low-to-high
	tree := Tree{0b0011, 0b0111, 0b1111}
	require.Equal(t, "1111\n1110\n1100", tree.String())

	require.Equal(t, "11", Tree{0b11}.String())
}
