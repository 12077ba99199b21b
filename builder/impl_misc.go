// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rxnclass/molgraph"
)

const (
	methodCycloalkane = "Cycloalkane"
	minRing           = 3
)

// Cycloalkane builds the saturated n-membered carbon ring CₙH₂ₙ.
func Cycloalkane(n int) Constructor {
	return func(s *Sketch) error {
		if n < minRing {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycloalkane, n, minRing, ErrTooFewAtoms)
		}
		cs := chain(s, n)
		s.Bond(cs[0], cs[n-1])
		s.Saturate(cs, nil)
		return nil
	}
}

// HydrogenAtom builds a lone hydrogen atom. WithImplicitHydrogens does not
// apply to it.
func HydrogenAtom() Constructor {
	return func(s *Sketch) error {
		s.AddAtom(molgraph.Hydrogen)
		return nil
	}
}

// Hydrogen2 builds H₂ as two bonded hydrogen atoms.
func Hydrogen2() Constructor {
	return func(s *Sketch) error {
		s.Bond(s.AddAtom(molgraph.Hydrogen), s.AddAtom(molgraph.Hydrogen))
		return nil
	}
}

// species maps the names accepted by Named to their constructors.
var species = map[string]func(a []int) Constructor{
	"alkane":      func(a []int) Constructor { return Alkane(a[0]) },
	"alkyl":       func(a []int) Constructor { return AlkylRadical(a[0], a[1]) },
	"alkene":      func(a []int) Constructor { return Alkene(a[0], a[1]) },
	"cycloalkane": func(a []int) Constructor { return Cycloalkane(a[0]) },
	"hydrogen":    func([]int) Constructor { return HydrogenAtom() },
	"dihydrogen":  func([]int) Constructor { return Hydrogen2() },
}

var speciesArity = map[string]int{
	"alkane": 1, "alkyl": 2, "alkene": 2, "cycloalkane": 1, "hydrogen": 0, "dihydrogen": 0,
}

// Named returns the constructor called name with its integer arguments, e.g.
// Named("alkyl", 2, 0) for the ethyl radical.
func Named(name string, args ...int) (Constructor, error) {
	mk, ok := species[name]
	if !ok {
		return nil, fmt.Errorf("Named: %q: %w", name, ErrUnknownSpecies)
	}
	if want := speciesArity[name]; len(args) != want {
		return nil, fmt.Errorf("Named: %s wants %d arguments, got %d: %w", name, want, len(args), ErrConstructFailed)
	}
	return mk(args), nil
}

// Names lists the species accepted by Named, sorted.
func Names() []string {
	out := make([]string, 0, len(species))
	for n := range species {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
