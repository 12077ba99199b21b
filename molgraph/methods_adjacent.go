// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries (Neighbors, NeighborMap, Degree, BondOrderSum).
// Determinism:
//   - Neighbor lists are sorted ascending.

package molgraph

// Neighbors returns the sorted keys bonded to k, or nil if k is absent.
// Complexity: O(d log d).
func (g *Graph) Neighbors(k Key) []Key {
	adj, ok := g.adjacency[k]
	if !ok {
		return nil
	}
	out := make([]Key, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sortKeys(out)
	return out
}

// NeighborMap returns the sorted neighbour list of every atom.
// Complexity: O(A + B log d).
func (g *Graph) NeighborMap() map[Key][]Key {
	out := make(map[Key][]Key, len(g.atoms))
	for k := range g.atoms {
		out[k] = g.Neighbors(k)
	}
	return out
}

// Degree returns the number of atoms bonded to k.
func (g *Graph) Degree(k Key) int { return len(g.adjacency[k]) }

// BondOrderSum returns the sum of the orders of the bonds incident to k.
func (g *Graph) BondOrderSum(k Key) int {
	sum := 0
	for n := range g.adjacency[k] {
		sum += g.bonds[NewBondKey(k, n)].Order
	}
	return sum
}
