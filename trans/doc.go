// SPDX-License-Identifier: MIT

// Package trans defines reaction classes and the Transformation value: a
// reaction class plus the sets of bonds formed and broken to turn the
// reactants into the products.
//
// Transformations are immutable values. Bond sets are stored sorted and
// without duplicates, so two transformations built from the same sets in any
// order compare Equal and share a Key.
//
// Reversal:
//
//	Reverse(t, x, y) applies t to x, finds an isomorphism of the result onto
//	y, and re-expresses t's bond sets in y's key space with formed and broken
//	swapped. The class becomes Class.Reverse().
//
// Errors:
//
//	ErrUnknownClass  - ParseClass on an unknown name.
//	ErrNotReversible - Reverse could not match Apply(t, x) to y, or the class
//	                   has no reverse.
package trans
