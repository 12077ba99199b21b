// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: Forward product enumerators.
// Determinism:
//   - Candidate sites are visited in ascending key order; Unique keeps the
//     first representative of every isomorphism class.

package enumerate

import (
	"fmt"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

// ProductSet is one hypothesis: the graphs produced by a single edit.
type ProductSet []*molgraph.Graph

// HydrogenAbstraction returns every {x − H, y + H} pair: each symmetry-unique
// hydrogen loss of x combined with each unique hydrogen addition to y.
func HydrogenAbstraction(x, y *molgraph.Graph) ([]ProductSet, error) {
	losses, err := GroupLoss(x, molgraph.Hydrogen)
	if err != nil {
		return nil, fmt.Errorf("HydrogenAbstraction: %w", err)
	}
	h := molgraph.MustNew(map[molgraph.Key]molgraph.Atom{0: {Symbol: molgraph.Hydrogen}}, nil)
	gains, err := Addition(y, h)
	if err != nil {
		return nil, fmt.Errorf("HydrogenAbstraction: %w", err)
	}

	var out []ProductSet
	for _, l := range losses {
		for _, g := range gains {
			out = append(out, ProductSet{l[0], g[0]})
		}
	}
	return Unique(out), nil
}

// Addition bonds each unsaturated atom of x to each unsaturated atom of y.
// y is first shifted so that its smallest key follows x's largest.
func Addition(x, y *molgraph.Graph) ([]ProductSet, error) {
	if y.AtomCount() > 0 && x.AtomCount() > 0 {
		y = y.ShiftKeys(x.MaxKey() + 1 - y.AtomKeys()[0])
	}
	xy, err := molgraph.Union(x, y)
	if err != nil {
		return nil, fmt.Errorf("Addition: %w", err)
	}

	var out []ProductSet
	for _, xk := range x.UnsaturatedAtomKeys() {
		for _, yk := range y.UnsaturatedAtomKeys() {
			joined, err := xy.AddBonds(1, molgraph.NewBondKey(xk, yk))
			if err != nil {
				return nil, fmt.Errorf("Addition: %w", err)
			}
			out = append(out, ProductSet{joined})
		}
	}
	return Unique(out), nil
}

// HydrogenMigration moves each symmetry-unique hydrogen of g onto each
// resonance-dominant radical site, keeping the results that differ from g.
// Graphs with two atoms or fewer yield nothing.
func HydrogenMigration(g *molgraph.Graph) ([]ProductSet, error) {
	if g.AtomCount() <= 2 {
		return nil, nil
	}
	rads := g.ResonanceDominantRadicalAtomKeys()
	hs, err := ChemUniqueAtomsOfType(g, molgraph.Hydrogen)
	if err != nil {
		return nil, fmt.Errorf("HydrogenMigration: %w", err)
	}
	moved := g.MaxKey() + 1

	var out []ProductSet
	for _, h := range hs {
		without, err := g.RemoveAtoms(h)
		if err != nil {
			return nil, fmt.Errorf("HydrogenMigration: %w", err)
		}
		for _, rad := range rads {
			if rad == h {
				continue
			}
			withH, err := without.AddExplicitHydrogens(map[molgraph.Key][]molgraph.Key{rad: {moved}})
			if err != nil {
				return nil, fmt.Errorf("HydrogenMigration: %w", err)
			}
			if !iso.Isomorphic(g, withH) {
				out = append(out, ProductSet{withH})
			}
		}
	}
	return Unique(out), nil
}

// BetaScission breaks each single bond that touches a neighbour of a
// resonance-dominant radical site without touching the site itself.
func BetaScission(g *molgraph.Graph) ([]ProductSet, error) {
	singles := g.BondsOfOrder(1)
	var out []ProductSet
	for _, rad := range g.ResonanceDominantRadicalAtomKeys() {
		beta := make(map[molgraph.Key]bool)
		for _, n := range g.Neighbors(rad) {
			beta[n] = true
		}
		for _, b := range singles {
			if b.Contains(rad) || !(beta[b.A] || beta[b.B]) {
				continue
			}
			ps, err := split(g, b)
			if err != nil {
				return nil, fmt.Errorf("BetaScission: %w", err)
			}
			out = append(out, ps)
		}
	}
	return Unique(out), nil
}

// HomolyticScission breaks each single bond of g in turn.
func HomolyticScission(g *molgraph.Graph) ([]ProductSet, error) {
	var out []ProductSet
	for _, b := range g.BondsOfOrder(1) {
		ps, err := split(g, b)
		if err != nil {
			return nil, fmt.Errorf("HomolyticScission: %w", err)
		}
		out = append(out, ps)
	}
	return Unique(out), nil
}

// GroupLoss removes each atom of the given element in turn. Every product set
// holds the single remaining graph.
func GroupLoss(g *molgraph.Graph, symbol string) ([]ProductSet, error) {
	var out []ProductSet
	for _, k := range g.AtomKeysBySymbol(symbol) {
		rest, err := g.RemoveAtoms(k)
		if err != nil {
			return nil, fmt.Errorf("GroupLoss: %w", err)
		}
		out = append(out, ProductSet{rest})
	}
	return Unique(out), nil
}

// split removes b and returns the resulting fragments.
func split(g *molgraph.Graph, b molgraph.BondKey) (ProductSet, error) {
	cut, err := g.RemoveBonds(b)
	if err != nil {
		return nil, err
	}
	return ProductSet(cut.ConnectedComponents()), nil
}
