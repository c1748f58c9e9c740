package rnni

import (
	"fmt"
	"math/bits"
	"strings"
)

// A ranked tree over n leaves is stored "flat", as the sequence of its n-1
// internal-node clusters ordered by rank.  Each cluster is a 64-bit mask with
// bit j set iff leaf j descends from the node.  Rank 0 is the most recent
// internal node, rank n-2 the root, whose cluster is the full leaf set.  For
// example, the 4-leaf tree (((0,1),2),3) is
//
//    rank 2   1111
//    rank 1   0111
//    rank 0   0011
//
// This lets us answer ancestry questions by mask arithmetic alone, rather
// than maintaining parent/child pointers: a node's parent is the lowest rank
// whose mask contains it, a node's sibling is the parent's mask minus its
// own, and so on.  Structure is recomputed on demand from the masks.

// MaxLeaves is the widest leaf set a 64-bit cluster mask can express.
const MaxLeaves = 64

// LeafSet is a subset of the leaves 0..63, one bit per leaf.
type LeafSet uint64

// Tree is a ranked tree, indexed by rank.
type Tree []LeafSet

var (
	LeafCountError         = fmt.Errorf("Leaf count outside [2, %d]", MaxLeaves)
	LeafCountMismatchError = fmt.Errorf("Trees have different leaf counts")
	NoAncestorError        = fmt.Errorf("Cluster has no ancestor in tree")
	NoChildError           = fmt.Errorf("Internal node has no child below its rank")
)

// Singleton mask for leaf i
func leaf(i int) LeafSet {
	return LeafSet(1) << uint(i)
}

// All of x's leaves lie in y
func isSubset(x, y LeafSet) bool {
	return x&y == x
}

// Number of leaves under a node
func leafCount(x LeafSet) int {
	return bits.OnesCount64(uint64(x))
}

// Singleton mask of the lowest-indexed leaf in x
func lowestLeaf(x LeafSet) LeafSet {
	return x & -x
}

// The full leaf universe for n leaves
func fullLeafSet(n int) LeafSet {
	if n == MaxLeaves {
		return ^LeafSet(0)
	}
	return leaf(n) - 1
}

// NumLeaves returns the number of leaves spanned by the tree.
func (t Tree) NumLeaves() int {
	return len(t) + 1
}

// Root returns the cluster at the highest rank.
func (t Tree) Root() LeafSet {
	return t[len(t)-1]
}

func (t Tree) clone() Tree {
	out := make(Tree, len(t))
	copy(out, t)
	return out
}

// Equal reports whether t and other have identical clusters at every rank.
func (t Tree) Equal(other Tree) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// ancestorRank returns the lowest rank whose cluster contains x, scanning
// from the most recent rank upward.  For valid trees over x's leaf universe
// this cannot fail, because the root contains every x.
func ancestorRank(t Tree, x LeafSet) (int, error) {
	for i := range t {
		if isSubset(x, t[i]) {
			return i, nil
		}
	}
	return 0, NoAncestorError
}

// Check verifies that t is a valid ranked tree: the root cluster is the full
// leaf set, and the rank sequence describes a binary merge history, each rank
// joining exactly two of the nodes still unmerged below it.  The distance
// engine assumes these invariants rather than re-deriving them; Check is for
// inputs of unknown provenance and for tests.
func (t Tree) Check() error {
	n := t.NumLeaves()
	if n < 2 || n > MaxLeaves {
		return LeafCountError
	}
	if t.Root() != fullLeafSet(n) {
		return fmt.Errorf("Root cluster %b is not the full leaf set", t.Root())
	}

	// Replay the coalescence: each rank must merge exactly two live nodes.
	live := make([]LeafSet, n)
	for i := range live {
		live[i] = leaf(i)
	}
	for i, c := range t {
		var merged LeafSet
		children := 0
		dst := 0
		for _, m := range live {
			if isSubset(m, c) {
				merged |= m
				children++
				continue
			}
			live[dst] = m
			dst++
		}
		if children != 2 || merged != c {
			return fmt.Errorf("Cluster %b at rank %d is not a binary merge", c, i)
		}
		live = live[:dst+1]
		live[dst] = c
	}
	return nil
}

// String renders the tree one binary row per rank, root first, with leaf
// bits ordered low-to-high left-to-right.
func (t Tree) String() string {
	n := t.NumLeaves()
	var b strings.Builder
	for i := len(t) - 1; i >= 0; i-- {
		for j := 0; j < n; j++ {
			if t[i]&leaf(j) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
