// SPDX-License-Identifier: MIT
//
// File: addition.go
// Role: Addition (2 → 1) and its reverse, beta scission (1 → 2).

package reac

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// Addition joins an unsaturated atom of one reactant to an unsaturated atom
// of the other and keeps every pair whose union matches the product. Formed
// {x, y}, nothing broken. Reactants are ordered size-descending, the product
// order is (0).
//
// Errors: ErrInvalidReagentSet (wrapped) when either list fails
// ValidateReagents. Not finding a match is an empty Result and nil error.
// Complexity: U1·U2 isomorphism tests on graphs of A1 + A2 atoms.
func Addition(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if len(rcts) != 2 || len(prds) != 1 || !nonTrivial(rcts, prds, o) {
		return Result{}, nil
	}

	x, y, p := rcts[0], rcts[1], prds[0]
	xy, err := molgraph.Union(x, y)
	if err != nil {
		return Result{}, err
	}
	var ts []trans.Transformation
	for _, xk := range x.UnsaturatedAtomKeys() {
		for _, yk := range y.UnsaturatedAtomKeys() {
			bk := molgraph.NewBondKey(xk, yk)
			joined, err := xy.AddBonds(1, bk)
			if err != nil {
				return Result{}, err
			}
			if iso.Isomorphic(joined, p) {
				ts = append(ts, trans.New(trans.Addition, []molgraph.BondKey{bk}, nil))
			}
		}
	}
	return found(ts, ArgsortReagents(rcts), []int{0}), nil
}

// BetaScission is the reverse of Addition: Addition runs on (prds, rcts) and
// each transformation found is reversed into the reactant key space.
//
// Errors: as Addition, with reactant errors reported as "reactants".
// Complexity: Addition plus one trans.Reverse per match.
func BetaScission(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	return reversed(Addition, rcts, prds, opts)
}

// reversed runs classify with the roles swapped, then reverses, deduplicates
// and sorts the transformations. The reverse run's product order becomes the
// reactant order and vice versa.
func reversed(classify Classifier, rcts, prds []*molgraph.Graph, opts []Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	rev, err := classify(prds, rcts, opts...)
	if err != nil || rev.Empty() {
		return Result{}, err
	}
	rctUnion, err := molgraph.Union(rcts...)
	if err != nil {
		return Result{}, err
	}
	prdUnion, err := molgraph.Union(prds...)
	if err != nil {
		return Result{}, err
	}

	ts := make([]trans.Transformation, 0, len(rev.Transformations))
	for _, t := range rev.Transformations {
		r, err := trans.Reverse(t, prdUnion, rctUnion)
		if err != nil {
			return Result{}, err
		}
		ts = append(ts, r)
	}
	ts = trans.Unique(ts)
	trans.Sort(ts)
	return found(ts, rev.ProductOrder, rev.ReactantOrder), nil
}
