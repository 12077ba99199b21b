// SPDX-License-Identifier: MIT

package enumerate

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

// markerSymbol labels the atom under test in ChemUniqueAtomsOfType. It is not
// an element symbol, so it never matches a real atom.
const markerSymbol = "*"

// union joins the graphs of ps after renumbering them onto a disjoint key
// space, so molgraph.Union cannot fail.
func (ps ProductSet) union() *molgraph.Graph {
	std, _ := molgraph.StandardKeysForSequence(ps)
	u, _ := molgraph.Union(std...)
	return u
}

// Unique keeps the first product set of every isomorphism class, comparing
// the unions of multi-graph sets.
func Unique(sets []ProductSet) []ProductSet {
	var (
		out    []ProductSet
		unions []*molgraph.Graph
	)
	for _, ps := range sets {
		u := ps.union()
		seen := false
		for _, v := range unions {
			if iso.Isomorphic(u, v) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, ps)
			unions = append(unions, u)
		}
	}
	return out
}

// ChemUniqueAtomsOfType returns one representative key, the smallest, for
// every symmetry class of atoms with the given symbol. Two atoms share a
// class when an automorphism of g maps one onto the other.
func ChemUniqueAtomsOfType(g *molgraph.Graph, symbol string) ([]molgraph.Key, error) {
	var (
		reps   []molgraph.Key
		marked []*molgraph.Graph
	)
	for _, k := range g.AtomKeysBySymbol(symbol) {
		a, _ := g.Atom(k)
		a.Symbol = markerSymbol
		m, err := g.SetAtom(k, a)
		if err != nil {
			return nil, err
		}
		dup := false
		for _, r := range marked {
			if iso.Isomorphic(m, r) {
				dup = true
				break
			}
		}
		if !dup {
			reps = append(reps, k)
			marked = append(marked, m)
		}
	}
	return reps, nil
}
