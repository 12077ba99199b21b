// SPDX-License-Identifier: MIT
//
// File: impl_chain.go
// Role: Alkane, AlkylRadical and Alkene constructors.
// Contract:
//   - n ≥ 1 carbons (Alkene: n ≥ 2), else ErrTooFewAtoms.
//   - Sites are 0-based carbon indices along the chain, else ErrBadSite.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnclass/molgraph"
)

const (
	methodAlkane       = "Alkane"
	methodAlkylRadical = "AlkylRadical"
	methodAlkene       = "Alkene"
	minChain           = 1
	minAlkene          = 2
)

// Alkane builds the linear alkane CₙH₂ₙ₊₂.
func Alkane(n int) Constructor {
	return func(s *Sketch) error {
		if n < minChain {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAlkane, n, minChain, ErrTooFewAtoms)
		}
		s.Saturate(chain(s, n), nil)
		return nil
	}
}

// AlkylRadical builds the linear alkane with one hydrogen missing at carbon
// site.
func AlkylRadical(n, site int) Constructor {
	return func(s *Sketch) error {
		if n < minChain {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAlkylRadical, n, minChain, ErrTooFewAtoms)
		}
		if site < 0 || site >= n {
			return fmt.Errorf("%s: site=%d not in [0,%d): %w", methodAlkylRadical, site, n, ErrBadSite)
		}
		cs := chain(s, n)
		s.Saturate(cs, map[molgraph.Key]int{cs[site]: 1})
		return nil
	}
}

// Alkene builds the linear chain unsaturated between carbons at and at+1,
// each missing one hydrogen.
func Alkene(n, at int) Constructor {
	return func(s *Sketch) error {
		if n < minAlkene {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAlkene, n, minAlkene, ErrTooFewAtoms)
		}
		if at < 0 || at+1 >= n {
			return fmt.Errorf("%s: at=%d not in [0,%d): %w", methodAlkene, at, n-1, ErrBadSite)
		}
		cs := chain(s, n)
		s.Saturate(cs, map[molgraph.Key]int{cs[at]: 1, cs[at+1]: 1})
		return nil
	}
}

// chain adds n carbons bonded in a row and returns their keys.
func chain(s *Sketch, n int) []molgraph.Key {
	cs := make([]molgraph.Key, n)
	for i := range cs {
		cs[i] = s.AddAtom("C")
		if i > 0 {
			s.Bond(cs[i-1], cs[i])
		}
	}
	return cs
}
