// SPDX-License-Identifier: MIT

package reac

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// RingFormingScission finds 1 → 2 reactions in which a radical site bonds to
// a heavy atom x, closing a ring, while x loses a bond to a neighbour n that
// leaves as the second product.
//
// For each unsaturated reactant atom r, heavy atoms x ≠ r not bonded to r are
// tried in key order, and for each x its neighbours n ≠ r. The first match
// for a given r is kept and the search moves on to the next radical site.
// Formed {r, x}, broken {x, n}. The reactant order is (0), products are
// ordered size-descending.
//
// RingFormingScission is not part of the Classify table.
//
// Errors: ErrInvalidReagentSet (wrapped) when either list fails
// ValidateReagents. Not finding a match is an empty Result and nil error.
// Complexity: at most U·A·d isomorphism tests for U radical sites and maximum
// degree d.
func RingFormingScission(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
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

	var ts []trans.Transformation
	for _, r := range g.UnsaturatedAtomKeys() {
		t, ok, err := firstRingClosure(g, target, r)
		if err != nil {
			return Result{}, err
		}
		if ok {
			ts = append(ts, t)
		}
	}
	return found(ts, []int{0}, ArgsortReagents(prds)), nil
}

func firstRingClosure(g, target *molgraph.Graph, r molgraph.Key) (trans.Transformation, bool, error) {
	for _, x := range g.AtomKeys() {
		a, _ := g.Atom(x)
		if x == r || a.Symbol == molgraph.Hydrogen || g.HasBond(r, x) {
			continue
		}
		closed, err := g.AddBonds(1, molgraph.NewBondKey(r, x))
		if err != nil {
			return trans.Transformation{}, false, err
		}
		for _, n := range g.Neighbors(x) {
			if n == r {
				continue
			}
			trial, err := closed.RemoveBonds(molgraph.NewBondKey(x, n))
			if err != nil {
				return trans.Transformation{}, false, err
			}
			if iso.Isomorphic(trial, target) {
				return trans.New(trans.RingFormingScission,
					[]molgraph.BondKey{molgraph.NewBondKey(r, x)},
					[]molgraph.BondKey{molgraph.NewBondKey(x, n)}), true, nil
			}
		}
	}
	return trans.Transformation{}, false, nil
}
