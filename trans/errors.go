// SPDX-License-Identifier: MIT

package trans

import "errors"

var (
	// ErrUnknownClass indicates a class name outside the known set.
	ErrUnknownClass = errors.New("trans: unknown reaction class")

	// ErrNotReversible indicates a transformation could not be expressed in
	// the reverse direction.
	ErrNotReversible = errors.New("trans: transformation not reversible")
)
