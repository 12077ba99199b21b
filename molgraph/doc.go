// SPDX-License-Identifier: MIT

// Package molgraph provides the molecular graph used by every reaction
// classifier: an undirected, labeled graph of atoms and bonds addressed by
// integer atom keys.
//
// A Graph G = (A, B) holds:
//
//   - atoms: Key → Atom{Symbol, ImplicitH, Parity}
//   - bonds: BondKey{A<B} → Bond{Order, Parity}
//
// Graphs are immutable values. Every edit (AddBonds, RemoveBonds, RemoveAtoms,
// AddExplicitHydrogens, RelabelKeys, Union, …) returns a fresh *Graph and
// never touches its receiver, so candidate edits can be proposed and thrown
// away freely inside enumeration loops.
//
// Determinism:
//
//   - AtomKeys(), BondKeys(), Neighbors() and ConnectedComponents() return
//     results sorted by key.
//   - StandardKeysForSequence assigns contiguous keys in sorted input order.
//
// Key spaces:
//
// Two graphs whose atom keys overlap cannot be combined with Union
// (ErrOverlappingKeys). Reagent lists rely on this: keys of different
// reagents never collide, so a bond between them is unambiguous.
//
// Besides the graph itself the package carries the small amount of chemistry
// the classifiers need: element valences and atomic numbers (valence.go),
// hydrogen and stereo normalisation (methods_atoms.go, stereo.go) and
// resonance-dominant radical sites (resonance.go).
//
// Errors:
//
//	ErrAtomNotFound     - referenced atom key is absent
//	ErrAtomExists       - new atom key is already taken
//	ErrBondNotFound     - referenced bond is absent
//	ErrBondExists       - bond already present between the two atoms
//	ErrSelfBond         - both bond endpoints are the same atom
//	ErrOverlappingKeys  - Union of graphs that share atom keys
//	ErrBadRelabel       - relabel map is not total or not injective
//	ErrBadOrder         - bond order below 1
package molgraph
