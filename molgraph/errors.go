// SPDX-License-Identifier: MIT

package molgraph

import "errors"

// Sentinel errors for molecular graph operations.
// Callers branch with errors.Is; implementations attach context with %w.
var (
	// ErrAtomNotFound indicates an operation referenced an absent atom key.
	ErrAtomNotFound = errors.New("molgraph: atom not found")

	// ErrAtomExists indicates an attempt to add an atom under a taken key.
	ErrAtomExists = errors.New("molgraph: atom key already present")

	// ErrBondNotFound indicates an operation referenced an absent bond.
	ErrBondNotFound = errors.New("molgraph: bond not found")

	// ErrBondExists indicates a second bond between the same pair of atoms.
	ErrBondExists = errors.New("molgraph: bond already present")

	// ErrSelfBond indicates a bond whose two endpoints are the same atom.
	ErrSelfBond = errors.New("molgraph: self-bond not allowed")

	// ErrOverlappingKeys indicates that graphs to be combined share atom keys.
	ErrOverlappingKeys = errors.New("molgraph: overlapping atom keys")

	// ErrBadRelabel indicates a key map that is not total over the graph's
	// atoms or maps two atoms onto the same key.
	ErrBadRelabel = errors.New("molgraph: invalid key relabeling")

	// ErrBadOrder indicates a bond order below 1.
	ErrBadOrder = errors.New("molgraph: bond order must be positive")
)
