// SPDX-License-Identifier: MIT
//
// File: methods_atoms.go
// Role: Atom edits and hydrogen normalisation (RemoveAtoms, SetAtom,
//       AddExplicitHydrogens, Explicit, IsExplicit).
// Determinism:
//   - Explicit() numbers new hydrogens from MaxKey()+1 in ascending parent-key order.

package molgraph

import "fmt"

// RemoveAtoms returns a copy of g without the listed atoms and every bond
// incident to them.
//
// Errors: ErrAtomNotFound if any key is absent.
// Complexity: O(A + B).
func (g *Graph) RemoveAtoms(keys ...Key) (*Graph, error) {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := g.atoms[k]; !ok {
			return nil, fmt.Errorf("RemoveAtoms: %d: %w", k, ErrAtomNotFound)
		}
		drop[k] = struct{}{}
	}
	atoms := make(map[Key]Atom, len(g.atoms))
	for k, a := range g.atoms {
		if _, gone := drop[k]; !gone {
			atoms[k] = a
		}
	}
	bonds := make(map[BondKey]Bond, len(g.bonds))
	for bk, b := range g.bonds {
		_, goneA := drop[bk.A]
		_, goneB := drop[bk.B]
		if !goneA && !goneB {
			bonds[bk] = b
		}
	}
	return from(atoms, bonds), nil
}

// SetAtom returns a copy of g with the label of atom k replaced. Bonds are
// kept as they are, so the new label may leave valences unbalanced.
//
// Errors: ErrAtomNotFound.
// Complexity: O(A + B).
func (g *Graph) SetAtom(k Key, a Atom) (*Graph, error) {
	if _, ok := g.atoms[k]; !ok {
		return nil, fmt.Errorf("SetAtom: %d: %w", k, ErrAtomNotFound)
	}
	atoms, bonds := g.copyMaps()
	atoms[k] = a
	return from(atoms, bonds), nil
}

// AddExplicitHydrogens returns a copy of g in which each parent atom gains
// explicit hydrogen atoms under the given new keys, single-bonded to it.
//
// The parents' ImplicitH counts are left untouched.
//
// Errors: ErrAtomNotFound (unknown parent), ErrAtomExists (new key taken or
// repeated).
// Complexity: O(A + B + H).
func (g *Graph) AddExplicitHydrogens(hydrogens map[Key][]Key) (*Graph, error) {
	atoms, bonds := g.copyMaps()
	for _, parent := range sortedParents(hydrogens) {
		if _, ok := g.atoms[parent]; !ok {
			return nil, fmt.Errorf("AddExplicitHydrogens: parent %d: %w", parent, ErrAtomNotFound)
		}
		for _, hk := range hydrogens[parent] {
			if _, taken := atoms[hk]; taken {
				return nil, fmt.Errorf("AddExplicitHydrogens: key %d: %w", hk, ErrAtomExists)
			}
			atoms[hk] = Atom{Symbol: Hydrogen}
			bonds[NewBondKey(parent, hk)] = Bond{Order: 1}
		}
	}
	return from(atoms, bonds), nil
}

// Explicit returns a copy of g with every implicit hydrogen turned into its
// own atom key. Already-explicit graphs are returned as an equal copy.
//
// New keys start at MaxKey()+1 and are assigned to parents in ascending key
// order.
// Complexity: O(A + B + H).
func (g *Graph) Explicit() *Graph {
	atoms, bonds := g.copyMaps()
	next := g.MaxKey() + 1
	for _, k := range g.AtomKeys() {
		a := atoms[k]
		for i := 0; i < a.ImplicitH; i++ {
			atoms[next] = Atom{Symbol: Hydrogen}
			bonds[NewBondKey(k, next)] = Bond{Order: 1}
			next++
		}
		a.ImplicitH = 0
		atoms[k] = a
	}
	return from(atoms, bonds)
}

// IsExplicit reports whether no atom carries implicit hydrogens.
func (g *Graph) IsExplicit() bool {
	for _, a := range g.atoms {
		if a.ImplicitH != 0 {
			return false
		}
	}
	return true
}

func sortedParents(m map[Key][]Key) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}
