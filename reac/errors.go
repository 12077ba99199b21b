// SPDX-License-Identifier: MIT

package reac

import "errors"

// Sentinel errors for contract violations. Both are wrapped with context;
// test with errors.Is.
var (
	// ErrInvalidReagentSet is returned when a reagent list has implicit
	// hydrogens, stereo parities or shared atom keys.
	ErrInvalidReagentSet = errors.New("reac: invalid reagent set")

	// ErrInvalidReaction is returned by Classify when reactant and product
	// element totals differ.
	ErrInvalidReaction = errors.New("reac: invalid reaction")
)
