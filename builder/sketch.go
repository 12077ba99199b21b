// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/rxnclass/molgraph"

// Sketch is the mutable scratch space constructors write into.
type Sketch struct {
	atoms map[molgraph.Key]molgraph.Atom
	bonds map[molgraph.BondKey]molgraph.Bond
	next  molgraph.Key
	cfg   builderConfig
}

func newSketch(cfg builderConfig) *Sketch {
	return &Sketch{
		atoms: make(map[molgraph.Key]molgraph.Atom),
		bonds: make(map[molgraph.BondKey]molgraph.Bond),
		next:  cfg.offset,
		cfg:   cfg,
	}
}

// AddAtom adds an atom under the next free key and returns the key.
func (s *Sketch) AddAtom(symbol string) molgraph.Key {
	k := s.next
	s.atoms[k] = molgraph.Atom{Symbol: symbol}
	s.next++
	return k
}

// Bond adds a single bond between a and b.
func (s *Sketch) Bond(a, b molgraph.Key) {
	s.bonds[molgraph.NewBondKey(a, b)] = molgraph.Bond{Order: 1}
}

// Saturate gives each listed heavy atom hydrogens up to its valence, less
// missing[k]. Hydrogens become atoms, or counts under WithImplicitHydrogens.
func (s *Sketch) Saturate(keys []molgraph.Key, missing map[molgraph.Key]int) {
	for _, k := range keys {
		a := s.atoms[k]
		n := molgraph.Valence(a.Symbol) - s.degree(k) - missing[k]
		if n <= 0 {
			continue
		}
		if s.cfg.implicit {
			a.ImplicitH = n
			s.atoms[k] = a
			continue
		}
		for i := 0; i < n; i++ {
			s.Bond(k, s.AddAtom(molgraph.Hydrogen))
		}
	}
}

func (s *Sketch) degree(k molgraph.Key) int {
	d := 0
	for bk := range s.bonds {
		if bk.Contains(k) {
			d++
		}
	}
	return d
}

func (s *Sketch) freeze() (*molgraph.Graph, error) {
	return molgraph.New(s.atoms, s.bonds)
}
