// SPDX-License-Identifier: MIT

// Package iso decides whether two molecular graphs are isomorphic as whole
// structures and, if so, returns one witnessing atom mapping.
//
// A mapping m: keys(a) → keys(b) is accepted when it is a bijection, every atom
// a[k] equals b[m[k]] (symbol, implicit hydrogens, parity), and for every pair
// of atoms the bond between them in a equals the bond between their images in
// b, absence included. It is a full isomorphism, never an embedding into a
// larger host.
//
// Algorithm:
//
//  1. Cheap rejections: atom count, bond count.
//  2. Colour refinement on both graphs with a shared palette. Initial colours
//     are the atom label plus degree; each round recolours an atom by its
//     colour and the sorted multiset of (neighbour colour, bond) pairs. A
//     colour histogram mismatch ends the test.
//  3. Backtracking over atoms of a in connectivity order, seeded from the
//     rarest colour class, trying same-coloured atoms of b in key order.
//
// Which mapping is returned when several exist is deterministic for a given
// input but otherwise unspecified. Callers that read atom identities off the
// mapping must be correct for any valid mapping.
//
// No match is reported as (nil, false), never as an error.
package iso
