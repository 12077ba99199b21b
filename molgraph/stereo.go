// SPDX-License-Identifier: MIT

package molgraph

// HasStereo reports whether any atom or bond carries a parity.
func (g *Graph) HasStereo() bool {
	for _, a := range g.atoms {
		if a.Parity != NoParity {
			return true
		}
	}
	for _, b := range g.bonds {
		if b.Parity != NoParity {
			return true
		}
	}
	return false
}

// WithoutStereo returns a copy of g with every parity cleared.
func (g *Graph) WithoutStereo() *Graph {
	atoms, bonds := g.copyMaps()
	for k, a := range atoms {
		a.Parity = NoParity
		atoms[k] = a
	}
	for bk, b := range bonds {
		b.Parity = NoParity
		bonds[bk] = b
	}
	return from(atoms, bonds)
}
