package rnni

import (
	"fmt"

	syntax "github.com/cisco/go-tls-syntax"
)

// Wire form of a ranked tree: the leaf count followed by the cluster masks
// in rank order.
type treeData struct {
	NLeaves  uint8
	Clusters []uint64 `tls:"head=2"`
}

// MarshalTLS encodes the tree for the syntax codec.  Only valid trees are
// encodable.
func (t Tree) MarshalTLS() ([]byte, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}

	td := treeData{NLeaves: uint8(t.NumLeaves()), Clusters: make([]uint64, len(t))}
	for i, c := range t {
		td.Clusters[i] = uint64(c)
	}
	return syntax.Marshal(td)
}

// UnmarshalTLS decodes a tree and validates it before accepting it.
func (t *Tree) UnmarshalTLS(data []byte) (int, error) {
	var td treeData
	read, err := syntax.Unmarshal(data, &td)
	if err != nil {
		return 0, err
	}

	if int(td.NLeaves) != len(td.Clusters)+1 {
		return 0, fmt.Errorf("rnni.tree: Leaf count %d does not match %d clusters", td.NLeaves, len(td.Clusters))
	}

	out := make(Tree, len(td.Clusters))
	for i, c := range td.Clusters {
		out[i] = LeafSet(c)
	}
	if err := out.Check(); err != nil {
		return 0, err
	}

	*t = out
	return read, nil
}
