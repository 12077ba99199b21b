// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Key, BondKey, Atom, Bond and Graph declarations plus the New constructor.
// Determinism:
//   - BondKey is normalised so that A < B; equal pairs compare equal with ==.
// AI-HINT (file):
//   - Graph is immutable after New; all edits live in methods_*.go and return new graphs.

package molgraph

import (
	"fmt"
	"strconv"
)

// Key identifies an atom within a single graph's key space.
type Key int

// BondKey is an unordered pair of atom keys, stored with A < B.
type BondKey struct {
	A Key
	B Key
}

// NewBondKey returns the normalised bond key for the pair (a, b).
func NewBondKey(a, b Key) BondKey {
	if b < a {
		a, b = b, a
	}
	return BondKey{A: a, B: b}
}

// Keys returns both endpoints in ascending order.
func (bk BondKey) Keys() [2]Key { return [2]Key{bk.A, bk.B} }

// Contains reports whether k is one of the endpoints.
func (bk BondKey) Contains(k Key) bool { return bk.A == k || bk.B == k }

// Other returns the endpoint opposite to k. The result is undefined when k is
// not an endpoint; check Contains first.
func (bk BondKey) Other(k Key) Key {
	if bk.A == k {
		return bk.B
	}
	return bk.A
}

// Map returns the bond key whose endpoints are the images of bk's endpoints
// under m. ok is false if either endpoint is missing from m.
func (bk BondKey) Map(m map[Key]Key) (BondKey, bool) {
	a, okA := m[bk.A]
	b, okB := m[bk.B]
	if !okA || !okB {
		return BondKey{}, false
	}
	return NewBondKey(a, b), true
}

// Less orders bond keys by A, then B.
func (bk BondKey) Less(o BondKey) bool {
	if bk.A != o.A {
		return bk.A < o.A
	}
	return bk.B < o.B
}

// String renders the pair as "a-b".
func (bk BondKey) String() string {
	return strconv.Itoa(int(bk.A)) + "-" + strconv.Itoa(int(bk.B))
}

// Parity is an optional stereo parity assignment.
type Parity int8

// Stereo parity values. NoParity is the zero value.
const (
	NoParity Parity = iota
	ParityFalse
	ParityTrue
)

// Atom is the label attached to an atom key.
type Atom struct {
	// Symbol is the element symbol ("C", "H", "O", …).
	Symbol string

	// ImplicitH counts hydrogens folded into this atom instead of being
	// represented by their own keys. Reagent graphs require zero.
	ImplicitH int

	// Parity is the stereo parity of the atom, NoParity if unassigned.
	Parity Parity
}

// Bond is the label attached to a bond key.
type Bond struct {
	// Order is the bond order; 1 denotes a single bond.
	Order int

	// Parity is the stereo parity of the bond, NoParity if unassigned.
	Parity Parity
}

// Graph is an immutable molecular graph.
//
// The zero value is not usable; construct graphs with New, MustNew or one of
// the edit methods of an existing graph.
type Graph struct {
	atoms map[Key]Atom
	bonds map[BondKey]Bond

	// adjacency is derived from bonds at construction time.
	adjacency map[Key]map[Key]struct{}
}

// New builds a Graph from atom and bond maps. The maps are copied.
//
// Steps:
//  1. Copy atoms.
//  2. For each bond: reject self-bonds, missing endpoints and orders < 1;
//     normalise the key (a caller may pass {B, A}).
//  3. Build adjacency.
//
// Errors: ErrSelfBond, ErrAtomNotFound, ErrBadOrder, ErrBondExists (two input
// keys normalising to the same pair).
// Complexity: O(A + B).
func New(atoms map[Key]Atom, bonds map[BondKey]Bond) (*Graph, error) {
	g := &Graph{
		atoms: make(map[Key]Atom, len(atoms)),
		bonds: make(map[BondKey]Bond, len(bonds)),
	}
	for k, a := range atoms {
		g.atoms[k] = a
	}
	for bk, b := range bonds {
		if bk.A == bk.B {
			return nil, fmt.Errorf("New: bond %s: %w", bk, ErrSelfBond)
		}
		if _, ok := g.atoms[bk.A]; !ok {
			return nil, fmt.Errorf("New: bond %s endpoint %d: %w", bk, bk.A, ErrAtomNotFound)
		}
		if _, ok := g.atoms[bk.B]; !ok {
			return nil, fmt.Errorf("New: bond %s endpoint %d: %w", bk, bk.B, ErrAtomNotFound)
		}
		if b.Order < 1 {
			return nil, fmt.Errorf("New: bond %s order %d: %w", bk, b.Order, ErrBadOrder)
		}
		nk := NewBondKey(bk.A, bk.B)
		if _, dup := g.bonds[nk]; dup {
			return nil, fmt.Errorf("New: bond %s: %w", nk, ErrBondExists)
		}
		g.bonds[nk] = b
	}
	g.index()

	return g, nil
}

// MustNew is New for fixtures and tests; it panics on error.
func MustNew(atoms map[Key]Atom, bonds map[BondKey]Bond) *Graph {
	g, err := New(atoms, bonds)
	if err != nil {
		panic(err)
	}
	return g
}

// index rebuilds the adjacency sets from g.bonds.
func (g *Graph) index() {
	g.adjacency = make(map[Key]map[Key]struct{}, len(g.atoms))
	for k := range g.atoms {
		g.adjacency[k] = make(map[Key]struct{})
	}
	for bk := range g.bonds {
		g.adjacency[bk.A][bk.B] = struct{}{}
		g.adjacency[bk.B][bk.A] = struct{}{}
	}
}

// from wraps already-validated maps without copying them. The caller hands
// over ownership.
func from(atoms map[Key]Atom, bonds map[BondKey]Bond) *Graph {
	g := &Graph{atoms: atoms, bonds: bonds}
	g.index()
	return g
}
