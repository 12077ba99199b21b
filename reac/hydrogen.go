// SPDX-License-Identifier: MIT
//
// File: hydrogen.go
// Role: Hydrogen migration (1 → 1) and hydrogen abstraction (2 → 2).
// Method:
//   - A synthetic hydrogen keyed MaxKey()+1 is attached to an unsaturated
//     site; iso.Full against the other side decides the match and supplies the
//     real keys of the moving hydrogen and its donor.

package reac

import (
	"github.com/katalvlaran/rxnclass/formula"
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// HydrogenMigration finds single-reagent reactions in which one hydrogen moves
// between two sites.
//
// For every pair (unsaturated reactant atom a, unsaturated product atom b) it
// saturates a and b with a synthetic hydrogen each and maps the product side
// onto the reactant side with m. A match yields formed {a, m(h)} and broken
// {m(b), m(h)}, h being the product's synthetic hydrogen. Orders are (0) and
// (0).
//
// Errors: ErrInvalidReagentSet (wrapped) when either list fails
// ValidateReagents. Not finding a match is an empty Result and nil error.
// Complexity: Ur·Up isomorphism tests for Ur, Up unsaturated atoms.
func HydrogenMigration(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if len(rcts) != 1 || len(prds) != 1 || !nonTrivial(rcts, prds, o) {
		return Result{}, nil
	}

	r, p := rcts[0], prds[0]
	hr, hp := r.MaxKey()+1, p.MaxKey()+1
	var ts []trans.Transformation
	for _, a := range r.UnsaturatedAtomKeys() {
		rh, err := r.AddExplicitHydrogens(map[molgraph.Key][]molgraph.Key{a: {hr}})
		if err != nil {
			return Result{}, err
		}
		for _, b := range p.UnsaturatedAtomKeys() {
			ph, err := p.AddExplicitHydrogens(map[molgraph.Key][]molgraph.Key{b: {hp}})
			if err != nil {
				return Result{}, err
			}
			m, ok := iso.Full(ph, rh)
			if !ok {
				continue
			}
			ts = append(ts, trans.New(trans.HydrogenMigration,
				[]molgraph.BondKey{molgraph.NewBondKey(a, m[hp])},
				[]molgraph.BondKey{molgraph.NewBondKey(m[b], m[hp])}))
		}
	}
	return found(ts, []int{0}, []int{0}), nil
}

// abstractionSite is one way of saturating the hydrogen-poor graph q to get
// the hydrogen-rich graph qh.
type abstractionSite struct {
	heavy    molgraph.Key // heavy atom of qh carrying the hydrogen
	hydrogen molgraph.Key // the hydrogen in qh
	acceptor molgraph.Key // unsaturated atom of q
}

// HydrogenAbstraction finds R1H + R2 → R2H + R1.
//
// The formula pairing fixes which reactant is the donor R1H and which product
// is R2H. Sites are collected on both species; every combination of a donor
// site (R1H, R1) with an acceptor site (R2H, R2) yields formed {R2 acceptor,
// R1H hydrogen} and broken {R1H heavy atom, R1H hydrogen}. The orders are the
// formula pairing.
//
// Errors: ErrInvalidReagentSet (wrapped) for an invalid reactant or product list.
// Complexity: one isomorphism test per hydrogen of each donor candidate while
// collecting sites, then O(Sd·Sa) to combine them.
func HydrogenAbstraction(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if len(rcts) != 2 || len(prds) != 2 || !nonTrivial(rcts, prds, o) {
		return Result{}, nil
	}

	ri, pi, ok := formula.ArgsortHydrogenAbstraction(formula.OfEach(rcts), formula.OfEach(prds))
	if !ok {
		return Result{}, nil
	}
	q1h, q2 := rcts[ri[0]], rcts[ri[1]]
	q2h, q1 := prds[pi[0]], prds[pi[1]]

	donors, err := abstractionSites(q1h, q1)
	if err != nil {
		return Result{}, err
	}
	acceptors, err := abstractionSites(q2h, q2)
	if err != nil {
		return Result{}, err
	}

	var ts []trans.Transformation
	for _, d := range donors {
		for _, a := range acceptors {
			ts = append(ts, trans.New(trans.HydrogenAbstraction,
				[]molgraph.BondKey{molgraph.NewBondKey(a.acceptor, d.hydrogen)},
				[]molgraph.BondKey{molgraph.NewBondKey(d.heavy, d.hydrogen)}))
		}
	}
	return found(ts, ri, pi), nil
}

func abstractionSites(qh, q *molgraph.Graph) ([]abstractionSite, error) {
	h := q.MaxKey() + 1
	var sites []abstractionSite
	for _, k := range q.UnsaturatedAtomKeys() {
		withH, err := q.AddExplicitHydrogens(map[molgraph.Key][]molgraph.Key{k: {h}})
		if err != nil {
			return nil, err
		}
		if m, ok := iso.Full(withH, qh); ok {
			sites = append(sites, abstractionSite{heavy: m[k], hydrogen: m[h], acceptor: k})
		}
	}
	return sites, nil
}
