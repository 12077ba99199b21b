// SPDX-License-Identifier: MIT

package notation

import "errors"

var (
	// ErrSyntax indicates text that does not match the grammar.
	ErrSyntax = errors.New("notation: syntax error")

	// ErrInvalidGraph indicates a well-formed literal that describes an
	// invalid graph (dangling bond, duplicate bond, zero order).
	ErrInvalidGraph = errors.New("notation: invalid graph")
)
