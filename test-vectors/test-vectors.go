package vectors

import (
	"fmt"
	"math/rand/v2"
	"reflect"

	syntax "github.com/cisco/go-tls-syntax"

	"github.com/treedist/rnni"
)

func checkDeepEqual(label string, actual, expected interface{}) error {
	if !reflect.DeepEqual(actual, expected) {
		return fmt.Errorf("%s : %v != %v", label, actual, expected)
	}
	return nil
}

// Leaf counts pinned by the distance vectors, spanning the supported range.
var vectorLeafCounts = []int{2, 3, 4, 5, 8, 16, 32, 64}

// DistanceCase pins one pair of generated trees and the distance between
// them.
type DistanceCase struct {
	NLeaves  uint8
	T        rnni.Tree
	R        rnni.Tree
	Distance uint32
}

// RNNIDistance is a set of regression vectors for the generator and the
// distance engine: tree pairs drawn from a PCG stream with the recorded
// seeds, in leaf-count order, one pair per entry of vectorLeafCounts.
type RNNIDistance struct {
	Seed1 uint64
	Seed2 uint64
	Cases []DistanceCase `tls:"head=2"`
}

func NewRNNIDistance(seed1, seed2 uint64) (RNNIDistance, error) {
	vec := RNNIDistance{Seed1: seed1, Seed2: seed2}

	rng := rand.New(rand.NewPCG(seed1, seed2))
	for _, n := range vectorLeafCounts {
		t, err := rnni.Generate(n, rng)
		if err != nil {
			return RNNIDistance{}, err
		}

		r, err := rnni.Generate(n, rng)
		if err != nil {
			return RNNIDistance{}, err
		}

		d, err := rnni.Distance(t, r)
		if err != nil {
			return RNNIDistance{}, err
		}

		vec.Cases = append(vec.Cases, DistanceCase{
			NLeaves:  uint8(n),
			T:        t,
			R:        r,
			Distance: uint32(d),
		})
	}

	return vec, nil
}

func (vec RNNIDistance) Marshal() ([]byte, error) {
	return syntax.Marshal(vec)
}

func (vec *RNNIDistance) Unmarshal(data []byte) error {
	_, err := syntax.Unmarshal(data, vec)
	return err
}

// Verify replays the generator from the recorded seeds and recomputes every
// distance from the recorded trees.
func (vec RNNIDistance) Verify() error {
	if len(vec.Cases) != len(vectorLeafCounts) {
		return fmt.Errorf("Case count : %d != %d", len(vec.Cases), len(vectorLeafCounts))
	}

	rng := rand.New(rand.NewPCG(vec.Seed1, vec.Seed2))
	for i, c := range vec.Cases {
		label := fmt.Sprintf("Cases[%d]", i)

		err := checkDeepEqual(label+" NLeaves", int(c.NLeaves), vectorLeafCounts[i])
		if err != nil {
			return err
		}

		t, err := rnni.Generate(int(c.NLeaves), rng)
		if err != nil {
			return err
		}
		if err := checkDeepEqual(label+" T", t, c.T); err != nil {
			return err
		}

		r, err := rnni.Generate(int(c.NLeaves), rng)
		if err != nil {
			return err
		}
		if err := checkDeepEqual(label+" R", r, c.R); err != nil {
			return err
		}

		d, err := rnni.Distance(c.T, c.R)
		if err != nil {
			return err
		}
		if err := checkDeepEqual(label+" Distance", uint32(d), c.Distance); err != nil {
			return err
		}
	}

	return nil
}
