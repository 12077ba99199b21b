// SPDX-License-Identifier: MIT

package molgraph

// ComponentKeys partitions the atom keys into connected components.
// Each component is sorted, and components are ordered by their smallest key.
//
// Breadth-first over the adjacency sets, seeded from the smallest unvisited key.
//
// Time:   O(A + B).
// Memory: O(A) for the visited set and output.
func (g *Graph) ComponentKeys() [][]Key {
	seen := make(map[Key]bool, len(g.atoms))
	var comps [][]Key

	for _, k0 := range g.AtomKeys() {
		if seen[k0] {
			continue
		}
		queue := []Key{k0}
		seen[k0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := range g.adjacency[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sortKeys(queue)
		comps = append(comps, queue)
	}
	return comps
}

// ConnectedComponents splits g into one graph per connected component, in
// the order of ComponentKeys.
func (g *Graph) ConnectedComponents() []*Graph {
	comps := g.ComponentKeys()
	out := make([]*Graph, len(comps))
	for i, keys := range comps {
		out[i] = g.Subgraph(keys)
	}
	return out
}

// Subgraph returns the graph induced by keys. Keys not in g are ignored.
func (g *Graph) Subgraph(keys []Key) *Graph {
	keep := make(map[Key]struct{}, len(keys))
	atoms := make(map[Key]Atom, len(keys))
	for _, k := range keys {
		if a, ok := g.atoms[k]; ok {
			keep[k] = struct{}{}
			atoms[k] = a
		}
	}
	bonds := make(map[BondKey]Bond)
	for bk, b := range g.bonds {
		_, okA := keep[bk.A]
		_, okB := keep[bk.B]
		if okA && okB {
			bonds[bk] = b
		}
	}
	return from(atoms, bonds)
}
