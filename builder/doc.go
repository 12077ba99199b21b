// SPDX-License-Identifier: MIT

// Package builder assembles small molecular graphs deterministically: linear
// alkanes, alkyl radicals, alkenes, cycloalkanes, hydrogen atoms and H₂. It
// exists for fixtures, examples and the command line, where typing out every
// hydrogen by hand is error-prone.
//
// Components:
//
//   - Constructor: a function adding one species to a Sketch.
//   - BuildGraph: runs constructors on one Sketch and freezes it into a
//     molgraph.Graph (several constructors give a disconnected graph).
//   - Reagents: builds each constructor as its own graph, with key spaces
//     laid end to end so the list is a valid reagent list.
//   - BuilderOption: WithKeyOffset, WithImplicitHydrogens.
//
// Graphs are connectivity graphs: every bond has order 1 and unsaturation is
// expressed by missing hydrogens. An alkene is therefore two adjacent
// unsaturated carbons, which is how the classifiers see it.
//
// Keys: carbons of one constructor are numbered first along the chain, then
// their hydrogens carbon by carbon.
//
// Named resolves a species by name ("alkyl", 3, 1) for text front ends.
//
// Errors are sentinels (ErrTooFewAtoms, ErrBadSite, ErrConstructFailed,
// ErrUnknownSpecies) wrapped with the constructor name; branch with errors.Is.
package builder
