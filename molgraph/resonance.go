// SPDX-License-Identifier: MIT
//
// File: resonance.go
// Role: Resonance-dominant bond orders and radical sites.
// Model:
//   - A resonance structure distributes extra bond order (π order) over bonds
//     whose two ends both have free valence, never exceeding either end's free
//     valence.
//   - Dominant structures maximise the total π order.
//   - Radical atoms of a structure are the atoms left with free valence.
// Determinism:
//   - Bonds are assigned in BondKeys() order; results are sorted.
// AI-HINT (file):
//   - Enumeration stops after maxResonanceStructures dominant structures.

package molgraph

import "sort"

// maxResonanceStructures caps the number of dominant structures collected.
const maxResonanceStructures = 1024

type resonanceSearch struct {
	bonds []BondKey
	rem   map[Key]int
	incr  []int

	best    int
	found   [][]int
	remSnap []map[Key]int
}

// dominantResonances returns the π increments (aligned with the candidate
// bond list) and the leftover free valences of every dominant structure.
func (g *Graph) dominantResonances() ([]BondKey, [][]int, []map[Key]int) {
	uv := g.UnsaturatedValences()
	var cand []BondKey
	for _, bk := range g.BondKeys() {
		if uv[bk.A] > 0 && uv[bk.B] > 0 {
			cand = append(cand, bk)
		}
	}
	s := &resonanceSearch{
		bonds: cand,
		rem:   uv,
		incr:  make([]int, len(cand)),
		best:  -1,
	}
	s.walk(0, 0)
	return cand, s.found, s.remSnap
}

func (s *resonanceSearch) walk(i, total int) {
	if total+s.bound(i) < s.best {
		return
	}
	if i == len(s.bonds) {
		if total > s.best {
			s.best = total
			s.found = s.found[:0]
			s.remSnap = s.remSnap[:0]
		}
		if len(s.found) < maxResonanceStructures {
			s.found = append(s.found, append([]int(nil), s.incr...))
			snap := make(map[Key]int, len(s.rem))
			for k, v := range s.rem {
				snap[k] = v
			}
			s.remSnap = append(s.remSnap, snap)
		}
		return
	}
	bk := s.bonds[i]
	hi := s.rem[bk.A]
	if s.rem[bk.B] < hi {
		hi = s.rem[bk.B]
	}
	for x := hi; x >= 0; x-- {
		s.rem[bk.A] -= x
		s.rem[bk.B] -= x
		s.incr[i] = x
		s.walk(i+1, total+x)
		s.rem[bk.A] += x
		s.rem[bk.B] += x
	}
	s.incr[i] = 0
}

// bound is an upper limit on the π order still obtainable from bonds i…end.
func (s *resonanceSearch) bound(i int) int {
	touched := make(map[Key]struct{})
	sum := 0
	for _, bk := range s.bonds[i:] {
		for _, k := range bk.Keys() {
			if _, ok := touched[k]; !ok {
				touched[k] = struct{}{}
				sum += s.rem[k]
			}
		}
	}
	return sum / 2
}

// ResonanceDominantBondOrders returns, for every bond, the sorted distinct
// orders it takes across the dominant resonance structures.
func (g *Graph) ResonanceDominantBondOrders() map[BondKey][]int {
	cand, structs, _ := g.dominantResonances()
	out := make(map[BondKey][]int, len(g.bonds))
	for bk, b := range g.bonds {
		out[bk] = []int{b.Order}
	}
	for i, bk := range cand {
		seen := make(map[int]bool)
		var orders []int
		for _, incr := range structs {
			o := g.bonds[bk].Order + incr[i]
			if !seen[o] {
				seen[o] = true
				orders = append(orders, o)
			}
		}
		sort.Ints(orders)
		out[bk] = orders
	}
	return out
}

// ResonanceDominantRadicalAtomKeys returns the sorted keys of atoms that keep
// a free valence in at least one dominant resonance structure.
func (g *Graph) ResonanceDominantRadicalAtomKeys() []Key {
	_, _, rems := g.dominantResonances()
	set := make(map[Key]struct{})
	for _, rem := range rems {
		for k, v := range rem {
			if v > 0 {
				set[k] = struct{}{}
			}
		}
	}
	keys := make([]Key, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// BondsOfOrder returns the sorted bonds whose highest dominant order equals
// order. BondsOfOrder(1) yields the bonds that are single in every dominant
// structure.
func (g *Graph) BondsOfOrder(order int) []BondKey {
	var out []BondKey
	for bk, orders := range g.ResonanceDominantBondOrders() {
		if orders[len(orders)-1] == order {
			out = append(out, bk)
		}
	}
	sortBondKeys(out)
	return out
}
