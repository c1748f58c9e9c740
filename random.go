package rnni

// RandSource supplies uniform draws in [0, n).  It is satisfied by
// *math/rand/v2.Rand; seed one with rand.NewPCG for reproducible trees.
// A source must not be shared across concurrent Generate calls without
// external synchronization, since every draw advances its state.
type RandSource interface {
	IntN(n int) int
}

// Generate builds a uniformly random ranked tree over n leaves by sequential
// random coalescence: starting from the n singleton leaf sets, repeatedly
// join two nodes picked uniformly from those still unmerged, recording the
// joined cluster at the next rank, until only the root remains.
func Generate(n int, src RandSource) (Tree, error) {
	if n < 2 || n > MaxLeaves {
		return nil, LeafCountError
	}

	active := make([]LeafSet, n)
	for i := range active {
		active[i] = leaf(i)
	}

	t := make(Tree, n-1)
	j := n
	for i := 0; i < n-1; i++ {
		// pick two nodes, a and b, to be joined
		a := src.IntN(j)
		j--
		b := src.IntN(j)

		t[i] = active[a]
		// move the last live entry into a's slot so b cannot pick a stale node
		active[a] = active[j]
		t[i] |= active[b]
		// the joined node takes b's slot
		active[b] = t[i]
	}

	return t, nil
}
