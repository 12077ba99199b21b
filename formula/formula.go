// SPDX-License-Identifier: MIT
//
// File: formula.go
// Role: Formula value type and arithmetic.
// Policy:
//   - Zero and negative counts are dropped from every result, so Equal is a
//     plain map comparison.

package formula

import (
	"github.com/katalvlaran/rxnclass/molgraph"
)

// Formula maps element symbols to atom counts.
type Formula map[string]int

// Of returns the formula of g, implicit hydrogens included.
func Of(g *molgraph.Graph) Formula {
	return Formula(g.Formula()).normalized()
}

// OfEach returns the formula of every graph, in order.
func OfEach(graphs []*molgraph.Graph) []Formula {
	out := make([]Formula, len(graphs))
	for i, g := range graphs {
		out[i] = Of(g)
	}
	return out
}

// Sum returns the element-wise total of fmls.
func Sum(fmls ...Formula) Formula {
	out := make(Formula)
	for _, f := range fmls {
		for s, n := range f {
			out[s] += n
		}
	}
	return out.normalized()
}

// Add returns f + o.
func (f Formula) Add(o Formula) Formula { return Sum(f, o) }

// Sub returns f − o. Elements whose count drops to zero or below are removed.
func (f Formula) Sub(o Formula) Formula {
	out := make(Formula, len(f))
	for s, n := range f {
		out[s] = n
	}
	for s, n := range o {
		out[s] -= n
	}
	return out.normalized()
}

// Contains reports whether every count in o is covered by f.
func (f Formula) Contains(o Formula) bool {
	for s, n := range o {
		if n > 0 && f[s] < n {
			return false
		}
	}
	return true
}

// Equal reports whether f and o have the same positive counts.
func (f Formula) Equal(o Formula) bool {
	a, b := f.normalized(), o.normalized()
	if len(a) != len(b) {
		return false
	}
	for s, n := range a {
		if b[s] != n {
			return false
		}
	}
	return true
}

// WithoutHydrogen returns f with hydrogen removed.
func (f Formula) WithoutHydrogen() Formula {
	out := f.normalized()
	delete(out, molgraph.Hydrogen)
	return out
}

// HeavyAtomCount returns the number of non-hydrogen atoms.
func (f Formula) HeavyAtomCount() int {
	n := 0
	for s, c := range f {
		if s != molgraph.Hydrogen && c > 0 {
			n += c
		}
	}
	return n
}

// normalized copies f without zero or negative entries.
func (f Formula) normalized() Formula {
	out := make(Formula, len(f))
	for s, n := range f {
		if n > 0 {
			out[s] = n
		}
	}
	return out
}

// hydrogenAtom is the formula of a single hydrogen atom.
var hydrogenAtom = Formula{molgraph.Hydrogen: 1}
