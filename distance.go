package rnni

// Distance returns the RNNI distance between the ranked trees t and r, the
// minimum number of moves (rank swaps between unrelated neighbours, or
// nearest-neighbour interchanges between a node and its parent) transforming
// one into the other.  Computed with the FindPath algorithm of Collienne &
// Gavryushkin (2020), https://arxiv.org/abs/2007.12307.
//
// Both trees must span the same leaf universe; neither is mutated.  An error
// means the inputs are malformed or span different universes, never that the
// trees are merely far apart.
func Distance(t, r Tree) (int, error) {
	if len(t) != len(r) {
		return 0, LeafCountMismatchError
	}
	n := t.NumLeaves()
	if n < 2 || n > MaxLeaves {
		return 0, LeafCountError
	}

	// Work on a private copy of t, shaping it into r rank by rank, most
	// recent first.  Once rank i holds r's cluster it is never touched by
	// the moves fixing the ranks above it.
	t1 := t.clone()
	d := 0
	for i := 0; i < len(r); i++ {
		rank, err := ancestorRank(t1, r[i])
		if err != nil {
			return 0, err
		}
		for rank > i {
			v := t1[rank]
			u := t1[rank-1]
			if u&v != 0 {
				// u is a child of v; an interchange moves r[i]'s enclosing
				// cluster down one rank.  Find u's children x and y, and
				// u's sibling w.
				var x LeafSet
				if leafCount(u) == 2 {
					// both children are leaves
					x = lowestLeaf(u)
				} else {
					for j := rank - 2; j >= 0; j-- {
						if isSubset(t1[j], u) {
							x = t1[j]
							break
						}
					}
					if x == 0 {
						return 0, NoChildError
					}
				}
				y := u &^ x
				w := v &^ u
				// Of the two regroupings x+w and y+w, keep the one that
				// contains the destination cluster; the other would leave
				// its rank unchanged and the move count wrong.
				if isSubset(r[i], x|w) {
					t1[rank-1] = x | w
				} else {
					t1[rank-1] = y | w
				}
			} else {
				// unrelated clusters, exchange their ranks
				t1[rank], t1[rank-1] = u, v
			}
			d++
			rank--
		}
	}

	return d, nil
}
