// SPDX-License-Identifier: MIT
//
// File: valence.go
// Role: Element table and valence-derived queries (ElectronCount,
//       UnsaturatedValences, UnsaturatedAtomKeys).
// Policy:
//   - Connectivity graphs: a double bond may be stored as order 1, in which
//     case both ends report one unsaturated valence.
//   - Unknown symbols have valence 0 and atomic number 0.

package molgraph

// Hydrogen is the element symbol the classifiers treat specially.
const Hydrogen = "H"

type element struct {
	number  int
	valence int
}

var elements = map[string]element{
	"H":  {number: 1, valence: 1},
	"He": {number: 2, valence: 0},
	"B":  {number: 5, valence: 3},
	"C":  {number: 6, valence: 4},
	"N":  {number: 7, valence: 3},
	"O":  {number: 8, valence: 2},
	"F":  {number: 9, valence: 1},
	"Ne": {number: 10, valence: 0},
	"Si": {number: 14, valence: 4},
	"P":  {number: 15, valence: 3},
	"S":  {number: 16, valence: 2},
	"Cl": {number: 17, valence: 1},
	"Ar": {number: 18, valence: 0},
	"Br": {number: 35, valence: 1},
	"I":  {number: 53, valence: 1},
}

// AtomicNumber returns the atomic number of symbol, 0 if unknown.
func AtomicNumber(symbol string) int { return elements[symbol].number }

// Valence returns the standard valence of symbol, 0 if unknown.
func Valence(symbol string) int { return elements[symbol].valence }

// KnownElement reports whether symbol is in the element table.
func KnownElement(symbol string) bool {
	_, ok := elements[symbol]
	return ok
}

// ElectronCount returns the total electron count of the neutral species:
// the sum of atomic numbers, implicit hydrogens included.
func (g *Graph) ElectronCount() int {
	n := 0
	for _, a := range g.atoms {
		n += AtomicNumber(a.Symbol) + a.ImplicitH*AtomicNumber(Hydrogen)
	}
	return n
}

// UnsaturatedValences returns, per atom, valence − implicit H − Σ bond order,
// floored at zero.
func (g *Graph) UnsaturatedValences() map[Key]int {
	out := make(map[Key]int, len(g.atoms))
	for k, a := range g.atoms {
		v := Valence(a.Symbol) - a.ImplicitH - g.BondOrderSum(k)
		if v < 0 {
			v = 0
		}
		out[k] = v
	}
	return out
}

// UnsaturatedAtomKeys returns the sorted keys of atoms with at least one free
// valence, i.e. candidate sites for a new bond.
func (g *Graph) UnsaturatedAtomKeys() []Key {
	var keys []Key
	for k, v := range g.UnsaturatedValences() {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	return keys
}
