// SPDX-License-Identifier: MIT

package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/enumerate"
	"github.com/katalvlaran/rxnclass/formula"
)

// ExampleHomolyticScission lists the distinct single-bond cleavages of
// propane.
func ExampleHomolyticScission() {
	propane := builder.MustReagents(builder.Alkane(3))[0]
	sets, err := enumerate.HomolyticScission(propane)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, ps := range sets {
		fmt.Println(formula.Strings(formula.OfEach(ps)))
	}
	// Output:
	// [CH3 C2H5]
	// [C3H7 H]
	// [C3H7 H]
}
