// SPDX-License-Identifier: MIT
//
// File: elimination.go
// Role: Elimination (1 → 2) and its reverse, insertion (2 → 1).
// Method:
//   - Remove two bonds. If that leaves exactly three fragments, the one
//     touching both break sites is the central fragment; the two outer atoms
//     are joined and the result compared with the products.

package reac

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// Elimination finds 1 → 2 reactions in which a central fragment leaves and
// the two fragments it connected bond to each other. Formed {a1, a2},
// broken b1 and b2. ProductOrder is (0, 1) when the central fragment maps into
// product 0 and (1, 0) otherwise.
//
// Pairs whose outer atoms coincide or are already bonded (possible when the
// reactant graph is disconnected) are skipped.
//
// Errors: ErrInvalidReagentSet (wrapped) when either list fails
// ValidateReagents. Not finding a match is an empty Result and nil error.
// Complexity: B² bond pairs, each O(A + B) to split plus one isomorphism test
// when a central fragment exists.
func Elimination(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if len(rcts) != 1 || len(prds) != 2 || !nonTrivial(rcts, prds, o) {
		return Result{}, nil
	}

	g := rcts[0]
	target, err := molgraph.Union(prds...)
	if err != nil {
		return Result{}, err
	}
	inFirst := make(map[molgraph.Key]bool, prds[0].AtomCount())
	for _, k := range prds[0].AtomKeys() {
		inFirst[k] = true
	}

	var (
		ts       []trans.Transformation
		prdOrder []int
	)
	bonds := g.BondKeys()
	for i := 0; i < len(bonds); i++ {
		for j := i + 1; j < len(bonds); j++ {
			b1, b2 := bonds[i], bonds[j]
			cut, err := g.RemoveBonds(b1, b2)
			if err != nil {
				return Result{}, err
			}
			central, ok := centralFragment(cut, b1, b2)
			if !ok {
				continue
			}
			a1, a2 := outer(b1, central), outer(b2, central)
			// Outer atoms can share an end fragment when g is disconnected.
			if a1 == a2 || cut.HasBond(a1, a2) {
				continue
			}
			formed := molgraph.NewBondKey(a1, a2)
			joined, err := cut.AddBonds(1, formed)
			if err != nil {
				return Result{}, err
			}
			m, ok := iso.Full(joined, target)
			if !ok {
				continue
			}
			ts = append(ts, trans.New(trans.Elimination,
				[]molgraph.BondKey{formed}, []molgraph.BondKey{b1, b2}))

			prdOrder = []int{1, 0}
			if mapsInto(central, m, inFirst) {
				prdOrder = []int{0, 1}
			}
		}
	}
	return found(ts, []int{0}, prdOrder), nil
}

// Insertion is the reverse of Elimination.
func Insertion(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	return reversed(Elimination, rcts, prds, opts)
}

// centralFragment returns the keys of the fragment of g holding exactly one
// end of b1 and exactly one end of b2, provided g has three fragments. When
// several qualify the last one in component order wins.
func centralFragment(g *molgraph.Graph, b1, b2 molgraph.BondKey) (map[molgraph.Key]bool, bool) {
	comps := g.ComponentKeys()
	if len(comps) != 3 {
		return nil, false
	}
	var central map[molgraph.Key]bool
	for _, keys := range comps {
		set := make(map[molgraph.Key]bool, len(keys))
		for _, k := range keys {
			set[k] = true
		}
		if set[b1.A] != set[b1.B] && set[b2.A] != set[b2.B] {
			central = set
		}
	}
	return central, central != nil
}

// outer returns the end of b outside the fragment.
func outer(b molgraph.BondKey, fragment map[molgraph.Key]bool) molgraph.Key {
	if fragment[b.A] {
		return b.B
	}
	return b.A
}

func mapsInto(keys map[molgraph.Key]bool, m map[molgraph.Key]molgraph.Key, target map[molgraph.Key]bool) bool {
	for k := range keys {
		if !target[m[k]] {
			return false
		}
	}
	return true
}
