// SPDX-License-Identifier: MIT

package reac

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// Substitution finds 2 → 2 reactions exchanging one bond for another.
//
// For every reactant bond br and product bond bp, the union of reactants
// minus br is compared with the union of products minus bp. A match m (from
// the product side onto the reactant side) yields broken br and formed m(bp).
// Results are deduplicated and sorted; both lists are ordered
// size-descending.
//
// Errors: ErrInvalidReagentSet (wrapped) when either list fails
// ValidateReagents. Not finding a match is an empty Result and nil error.
// Complexity: Br·Bp isomorphism tests, Br and Bp being the bond counts of
// each side.
func Substitution(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if len(rcts) != 2 || len(prds) != 2 || !nonTrivial(rcts, prds, o) {
		return Result{}, nil
	}

	rg, err := molgraph.Union(rcts...)
	if err != nil {
		return Result{}, err
	}
	pg, err := molgraph.Union(prds...)
	if err != nil {
		return Result{}, err
	}

	prdCuts := make([]*molgraph.Graph, 0, pg.BondCount())
	prdBonds := pg.BondKeys()
	for _, bp := range prdBonds {
		cut, err := pg.RemoveBonds(bp)
		if err != nil {
			return Result{}, err
		}
		prdCuts = append(prdCuts, cut)
	}

	var ts []trans.Transformation
	for _, br := range rg.BondKeys() {
		rcut, err := rg.RemoveBonds(br)
		if err != nil {
			return Result{}, err
		}
		for i, bp := range prdBonds {
			m, ok := iso.Full(prdCuts[i], rcut)
			if !ok {
				continue
			}
			formed, _ := bp.Map(m)
			ts = append(ts, trans.New(trans.Substitution,
				[]molgraph.BondKey{formed}, []molgraph.BondKey{br}))
		}
	}
	ts = trans.Unique(ts)
	trans.Sort(ts)
	return found(ts, ArgsortReagents(rcts), ArgsortReagents(prds)), nil
}
