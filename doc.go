// SPDX-License-Identifier: MIT

// Package rxnclass classifies elementary gas-phase reactions given as
// molecular connectivity graphs.
//
// A reaction is a list of reactant graphs and a list of product graphs with
// disjoint atom keys on each side. The classifier finds the bonds formed and
// broken that turn the reactants into the products, and names the class:
//
//	trivial, hydrogen migration, hydrogen abstraction, addition,
//	beta scission, ring forming scission, elimination, insertion,
//	substitution
//
// Packages:
//
//	molgraph/   immutable molecular graph, valence and resonance queries
//	formula/    element counts in Hill order, reaction balance checks
//	iso/        graph isomorphism by colour refinement and backtracking
//	trans/      reaction classes and bond-change transformations
//	reac/       per-class classifiers, Classify, ClassifyBatch
//	enumerate/  forward product enumeration for single steps
//	builder/    deterministic alkane, alkyl, alkene and hydrogen fixtures
//	notation/   text notation for graphs and reactions
//
// The rxnclass command (cmd/rxnclass) reads reaction files in notation and
// prints the classes as text, JSON or YAML.
//
// Quick example:
//
//	rx, _ := notation.ParseReaction("r1: alkyl(1,0) + alkyl(1,0) >> alkane(2)")
//	res, _ := reac.Classify(rx.Reactants, rx.Products)
//	class, _ := res.Class() // addition, bond 0-4 formed
package rxnclass
