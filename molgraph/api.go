// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and counters.
// Determinism:
//   - AtomKeys/BondKeys/AtomKeysBySymbol are sorted ascending.
//   - String() is stable for a given graph.

package molgraph

import (
	"sort"
	"strconv"
	"strings"
)

// AtomKeys returns every atom key in ascending order.
func (g *Graph) AtomKeys() []Key {
	keys := make([]Key, 0, len(g.atoms))
	for k := range g.atoms {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// BondKeys returns every bond key sorted by (A, B).
func (g *Graph) BondKeys() []BondKey {
	keys := make([]BondKey, 0, len(g.bonds))
	for bk := range g.bonds {
		keys = append(keys, bk)
	}
	sortBondKeys(keys)
	return keys
}

// Atom returns the label of atom k.
func (g *Graph) Atom(k Key) (Atom, bool) {
	a, ok := g.atoms[k]
	return a, ok
}

// Bond returns the label of the bond between a and b.
func (g *Graph) Bond(a, b Key) (Bond, bool) {
	bd, ok := g.bonds[NewBondKey(a, b)]
	return bd, ok
}

// HasAtom reports whether k is an atom of g.
func (g *Graph) HasAtom(k Key) bool {
	_, ok := g.atoms[k]
	return ok
}

// HasBond reports whether a and b are bonded.
func (g *Graph) HasBond(a, b Key) bool {
	_, ok := g.bonds[NewBondKey(a, b)]
	return ok
}

// AtomCount returns the number of atom keys (implicit hydrogens excluded).
func (g *Graph) AtomCount() int { return len(g.atoms) }

// BondCount returns the number of bonds.
func (g *Graph) BondCount() int { return len(g.bonds) }

// HeavyAtomCount returns the number of non-hydrogen atom keys.
func (g *Graph) HeavyAtomCount() int {
	n := 0
	for _, a := range g.atoms {
		if a.Symbol != Hydrogen {
			n++
		}
	}
	return n
}

// MaxKey returns the largest atom key, or -1 for an empty graph.
func (g *Graph) MaxKey() Key {
	max := Key(-1)
	for k := range g.atoms {
		if k > max {
			max = k
		}
	}
	return max
}

// AtomKeysBySymbol returns the sorted keys of the atoms carrying symbol.
func (g *Graph) AtomKeysBySymbol(symbol string) []Key {
	var keys []Key
	for k, a := range g.atoms {
		if a.Symbol == symbol {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	return keys
}

// Formula counts elements, including implicit hydrogens.
func (g *Graph) Formula() map[string]int {
	fml := make(map[string]int)
	for _, a := range g.atoms {
		fml[a.Symbol]++
		if a.ImplicitH > 0 {
			fml[Hydrogen] += a.ImplicitH
		}
	}
	return fml
}

// Equal reports whether g and o have identical atom and bond maps
// (same keys, same labels). It is not an isomorphism test.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if len(g.atoms) != len(o.atoms) || len(g.bonds) != len(o.bonds) {
		return false
	}
	for k, a := range g.atoms {
		if b, ok := o.atoms[k]; !ok || a != b {
			return false
		}
	}
	for bk, b := range g.bonds {
		if c, ok := o.bonds[bk]; !ok || b != c {
			return false
		}
	}
	return true
}

// String renders the graph as "{k:Sym[h] …; a-b …}" in key order. Bond orders
// above 1 are appended as "=n". Intended for logs and error messages.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range g.AtomKeys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		a := g.atoms[k]
		sb.WriteString(strconv.Itoa(int(k)))
		sb.WriteByte(':')
		sb.WriteString(a.Symbol)
		if a.ImplicitH > 0 {
			sb.WriteString("[" + strconv.Itoa(a.ImplicitH) + "]")
		}
	}
	sb.WriteString(";")
	for _, bk := range g.BondKeys() {
		sb.WriteByte(' ')
		sb.WriteString(bk.String())
		if o := g.bonds[bk].Order; o > 1 {
			sb.WriteString("=" + strconv.Itoa(o))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}

func sortBondKeys(keys []BondKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// SortBondKeys sorts bond keys in place by (A, B).
func SortBondKeys(keys []BondKey) { sortBondKeys(keys) }
