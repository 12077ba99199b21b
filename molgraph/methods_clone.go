// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Composition and key-space operations (Clone, Union, RelabelKeys,
//       ShiftKeys, StandardKeys, StandardKeysForSequence).
// Determinism:
//   - StandardKeys maps the i-th smallest key to i.
//   - StandardKeysForSequence continues numbering across graphs in input order.
// AI-HINT (file):
//   - Union is the only way two key spaces meet; it refuses overlaps.

package molgraph

import "fmt"

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	atoms, bonds := g.copyMaps()
	return from(atoms, bonds)
}

// Union combines graphs whose atom keys are pairwise disjoint.
// Union() of nothing is the empty graph.
//
// Errors: ErrOverlappingKeys naming the first shared key.
// Complexity: O(ΣA + ΣB).
func Union(graphs ...*Graph) (*Graph, error) {
	atoms := make(map[Key]Atom)
	bonds := make(map[BondKey]Bond)
	for i, g := range graphs {
		for k, a := range g.atoms {
			if _, dup := atoms[k]; dup {
				return nil, fmt.Errorf("Union: graph #%d key %d: %w", i, k, ErrOverlappingKeys)
			}
			atoms[k] = a
		}
		for bk, b := range g.bonds {
			bonds[bk] = b
		}
	}
	return from(atoms, bonds), nil
}

// RelabelKeys returns a copy of g with every atom key k replaced by m[k].
//
// Errors: ErrBadRelabel if m misses an atom of g or maps two atoms to the
// same key.
// Complexity: O(A + B).
func (g *Graph) RelabelKeys(m map[Key]Key) (*Graph, error) {
	atoms := make(map[Key]Atom, len(g.atoms))
	for k, a := range g.atoms {
		nk, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("RelabelKeys: key %d unmapped: %w", k, ErrBadRelabel)
		}
		if _, dup := atoms[nk]; dup {
			return nil, fmt.Errorf("RelabelKeys: key %d hit twice: %w", nk, ErrBadRelabel)
		}
		atoms[nk] = a
	}
	bonds := make(map[BondKey]Bond, len(g.bonds))
	for bk, b := range g.bonds {
		nk, _ := bk.Map(m)
		bonds[nk] = b
	}
	return from(atoms, bonds), nil
}

// ShiftKeys returns a copy of g with offset added to every atom key.
func (g *Graph) ShiftKeys(offset Key) *Graph {
	m := make(map[Key]Key, len(g.atoms))
	for k := range g.atoms {
		m[k] = k + offset
	}
	// a uniform shift is always injective
	out, _ := g.RelabelKeys(m)
	return out
}

// StandardKeys renumbers g onto 0..n-1 preserving key order. It returns the
// relabeled graph and the old→new key map.
func (g *Graph) StandardKeys() (*Graph, map[Key]Key) {
	return g.standardKeysFrom(0)
}

// StandardKeysForSequence renumbers a sequence of graphs into one contiguous,
// disjoint key space: the first graph gets 0..n0-1, the second n0..n0+n1-1,
// and so on. It returns the relabeled graphs and, per graph, the old→new map.
func StandardKeysForSequence(graphs []*Graph) ([]*Graph, []map[Key]Key) {
	out := make([]*Graph, len(graphs))
	maps := make([]map[Key]Key, len(graphs))
	start := Key(0)
	for i, g := range graphs {
		out[i], maps[i] = g.standardKeysFrom(start)
		start += Key(g.AtomCount())
	}
	return out, maps
}

func (g *Graph) standardKeysFrom(start Key) (*Graph, map[Key]Key) {
	m := make(map[Key]Key, len(g.atoms))
	for i, k := range g.AtomKeys() {
		m[k] = start + Key(i)
	}
	out, _ := g.RelabelKeys(m)
	return out, m
}
