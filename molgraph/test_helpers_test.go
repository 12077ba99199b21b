// SPDX-License-Identifier: MIT

package molgraph_test

import "github.com/katalvlaran/rxnclass/molgraph"

// bk is shorthand for molgraph.NewBondKey in fixtures.
func bk(a, b molgraph.Key) molgraph.BondKey { return molgraph.NewBondKey(a, b) }

// single builds a graph whose bonds are all single bonds.
func single(atoms map[molgraph.Key]string, bonds ...molgraph.BondKey) *molgraph.Graph {
	am := make(map[molgraph.Key]molgraph.Atom, len(atoms))
	for k, s := range atoms {
		am[k] = molgraph.Atom{Symbol: s}
	}
	bm := make(map[molgraph.BondKey]molgraph.Bond, len(bonds))
	for _, b := range bonds {
		bm[b] = molgraph.Bond{Order: 1}
	}
	return molgraph.MustNew(am, bm)
}

// ethane returns explicit C2H6 keyed 0..7 (carbons 0 and 1).
func ethane() *molgraph.Graph {
	return single(
		map[molgraph.Key]string{0: "C", 1: "C", 2: "H", 3: "H", 4: "H", 5: "H", 6: "H", 7: "H"},
		bk(0, 1), bk(0, 2), bk(0, 3), bk(0, 4), bk(1, 5), bk(1, 6), bk(1, 7),
	)
}

// ethylene returns the C2H4 connectivity graph keyed 0..5.
func ethylene() *molgraph.Graph {
	return single(
		map[molgraph.Key]string{0: "C", 1: "C", 2: "H", 3: "H", 4: "H", 5: "H"},
		bk(0, 1), bk(0, 2), bk(0, 3), bk(1, 4), bk(1, 5),
	)
}

// allyl returns the C3H5 radical connectivity graph keyed 0..7.
func allyl() *molgraph.Graph {
	return single(
		map[molgraph.Key]string{0: "C", 1: "C", 2: "C", 3: "H", 4: "H", 5: "H", 6: "H", 7: "H"},
		bk(0, 1), bk(1, 2), bk(0, 3), bk(0, 4), bk(1, 5), bk(2, 6), bk(2, 7),
	)
}
