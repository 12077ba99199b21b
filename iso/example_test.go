// SPDX-License-Identifier: MIT

package iso_test

import (
	"fmt"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

// ExampleFull maps hydroxyl written with keys {0,1} onto the same group
// written with keys {7,3}.
func ExampleFull() {
	oh := molgraph.MustNew(
		map[molgraph.Key]molgraph.Atom{0: {Symbol: "O"}, 1: {Symbol: "H"}},
		map[molgraph.BondKey]molgraph.Bond{molgraph.NewBondKey(0, 1): {Order: 1}},
	)
	ho := molgraph.MustNew(
		map[molgraph.Key]molgraph.Atom{7: {Symbol: "H"}, 3: {Symbol: "O"}},
		map[molgraph.BondKey]molgraph.Bond{molgraph.NewBondKey(3, 7): {Order: 1}},
	)
	m, ok := iso.Full(oh, ho)
	fmt.Println(ok, m[0], m[1])
	// Output:
	// true 3 7
}
