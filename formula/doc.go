// SPDX-License-Identifier: MIT

// Package formula provides molecular formulas as element → count maps,
// their Hill-order string form, and the formula-level reaction checks the
// classifiers rely on.
//
// Formulas carry no structure. Two reactions with the same element totals on
// each side are indistinguishable here; IsValidReaction only rules out
// unbalanced input, and ArgsortHydrogenAbstraction only proposes a pairing that
// a graph-level search must still confirm.
//
// Hill order: carbon first, hydrogen second, then the remaining symbols
// alphabetically. A formula without carbon is ordered purely alphabetically,
// hydrogen included.
package formula
