// SPDX-License-Identifier: MIT
//
// File: methods_bonds.go
// Role: Bond edits (AddBonds, RemoveBonds, SetBondOrder).
// Determinism:
//   - Edits are all-or-nothing: the first invalid key aborts and no graph is returned.
// AI-HINT (file):
//   - Classifiers add single bonds (order 1) and remove bonds regardless of order.

package molgraph

import "fmt"

// AddBonds returns a copy of g with a bond of the given order added between
// each pair in keys.
//
// Errors: ErrBadOrder, ErrSelfBond, ErrAtomNotFound, ErrBondExists (bond
// already in g or repeated in keys).
// Complexity: O(A + B + len(keys)).
func (g *Graph) AddBonds(order int, keys ...BondKey) (*Graph, error) {
	if order < 1 {
		return nil, fmt.Errorf("AddBonds: order %d: %w", order, ErrBadOrder)
	}
	atoms, bonds := g.copyMaps()
	for _, bk := range keys {
		if bk.A == bk.B {
			return nil, fmt.Errorf("AddBonds: %s: %w", bk, ErrSelfBond)
		}
		if _, ok := atoms[bk.A]; !ok {
			return nil, fmt.Errorf("AddBonds: %s endpoint %d: %w", bk, bk.A, ErrAtomNotFound)
		}
		if _, ok := atoms[bk.B]; !ok {
			return nil, fmt.Errorf("AddBonds: %s endpoint %d: %w", bk, bk.B, ErrAtomNotFound)
		}
		nk := NewBondKey(bk.A, bk.B)
		if _, ok := bonds[nk]; ok {
			return nil, fmt.Errorf("AddBonds: %s: %w", nk, ErrBondExists)
		}
		bonds[nk] = Bond{Order: order}
	}
	return from(atoms, bonds), nil
}

// RemoveBonds returns a copy of g without the listed bonds.
//
// Errors: ErrBondNotFound if any key is not a bond of g (or is repeated).
// Complexity: O(A + B).
func (g *Graph) RemoveBonds(keys ...BondKey) (*Graph, error) {
	atoms, bonds := g.copyMaps()
	for _, bk := range keys {
		nk := NewBondKey(bk.A, bk.B)
		if _, ok := bonds[nk]; !ok {
			return nil, fmt.Errorf("RemoveBonds: %s: %w", nk, ErrBondNotFound)
		}
		delete(bonds, nk)
	}
	return from(atoms, bonds), nil
}

// SetBondOrder returns a copy of g with the order of bond bk replaced.
//
// Errors: ErrBadOrder (order < 1), ErrBondNotFound.
// Complexity: O(A + B).
func (g *Graph) SetBondOrder(bk BondKey, order int) (*Graph, error) {
	if order < 1 {
		return nil, fmt.Errorf("SetBondOrder: order %d: %w", order, ErrBadOrder)
	}
	nk := NewBondKey(bk.A, bk.B)
	b, ok := g.bonds[nk]
	if !ok {
		return nil, fmt.Errorf("SetBondOrder: %s: %w", nk, ErrBondNotFound)
	}
	atoms, bonds := g.copyMaps()
	b.Order = order
	bonds[nk] = b
	return from(atoms, bonds), nil
}

// copyMaps returns fresh copies of the atom and bond maps.
func (g *Graph) copyMaps() (map[Key]Atom, map[BondKey]Bond) {
	atoms := make(map[Key]Atom, len(g.atoms)+1)
	for k, a := range g.atoms {
		atoms[k] = a
	}
	bonds := make(map[BondKey]Bond, len(g.bonds)+1)
	for bk, b := range g.bonds {
		bonds[bk] = b
	}
	return atoms, bonds
}
