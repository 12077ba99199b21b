// SPDX-License-Identifier: MIT

// Package reac classifies chemical reactions given as lists of reactant and
// product molecular graphs, reporting the bonds formed and broken and a
// canonical order for each reagent list.
//
// What
//
//   - One classifier per reaction class. Each proposes minimal bond edits
//     (a synthetic hydrogen, one new bond, one or two removed bonds) and keeps
//     the edits for which iso.Full finds the edited reactants identical to the
//     products.
//   - Classify runs the dispatch table in priority order and returns the
//     first non-empty Result:
//     trivial, hydrogen migration, hydrogen abstraction, addition,
//     beta scission, elimination, insertion, substitution.
//   - ClassifySimple normalises arbitrary graphs first (explicit hydrogens,
//     no stereo, disjoint standard keys) and returns only the class.
//   - ClassifyBatch classifies many reactions concurrently.
//   - RingFormingScission is available on its own; it is not in the table.
//
// Contract
//
//	Every classifier validates both lists with ValidateReagents: explicit
//	hydrogens only, no stereo parities, atom keys disjoint within a list.
//	Violations wrap ErrInvalidReagentSet. Classify additionally requires
//	element balance and wraps ErrInvalidReaction otherwise.
//
//	Not finding a transformation is not an error: the Result is empty and
//	both orders are nil. A non-empty Result always carries both orders.
//
// Reagent order
//
//	Size-descending: heavy atoms, then atoms, then electrons, all descending,
//	ties kept in input order. Trivial, hydrogen abstraction and elimination
//	derive their orders from the match instead.
//
// Determinism
//
//	Candidate sites and bonds are enumerated in ascending key order.
//	Classifiers built on reversal (beta scission, insertion) and substitution
//	deduplicate and sort their output by Transformation.Key.
//
// Usage
//
//	res, err := reac.Classify(rcts, prds, reac.WithLogger(log))
//	if err != nil {
//	    // errors.Is(err, reac.ErrInvalidReagentSet) or reac.ErrInvalidReaction
//	}
//	if res.Empty() {
//	    // unclassified
//	}
package reac
