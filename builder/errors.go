// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor's minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrBadSite indicates a carbon index outside the chain or ring.
var ErrBadSite = errors.New("builder: site out of range")

// ErrConstructFailed indicates a nil constructor or a sketch that could not be
// frozen into a graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSpecies indicates a name Named does not know.
var ErrUnknownSpecies = errors.New("builder: unknown species")
