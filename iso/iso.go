// SPDX-License-Identifier: MIT
//
// File: iso.go
// Role: Full(), Isomorphic() and the backtracking search.
// Determinism:
//   - Atoms are indexed in ascending key order; candidates are tried in
//     ascending key order.
// Complexity:
//   - Refinement O(R·(A + B)·log) with R ≤ A rounds; backtracking is
//     exponential in the worst case and near-linear for molecules, whose
//     colour classes are small after refinement.

package iso

import "github.com/katalvlaran/rxnclass/molgraph"

// Full returns a mapping from the atom keys of a to those of b realising an
// isomorphism, or (nil, false) if none exists.
//
// Complexity:
//   - O(A + B) rejection on counts, then refinement and backtracking as
//     described for the file.
//
// Errors: none; a failed match is (nil, false).
func Full(a, b *molgraph.Graph) (map[molgraph.Key]molgraph.Key, bool) {
	if a.AtomCount() != b.AtomCount() || a.BondCount() != b.BondCount() {
		return nil, false
	}
	ia, ib := index(a), index(b)
	ca, cb, ok := refine(ia, ib)
	if !ok {
		return nil, false
	}

	s := newSearch(ia, ib, ca, cb)
	if !s.match(0) {
		return nil, false
	}
	out := make(map[molgraph.Key]molgraph.Key, len(ia.keys))
	for x, y := range s.m {
		out[ia.keys[x]] = ib.keys[y]
	}
	return out, true
}

// Isomorphic reports whether a and b are isomorphic.
func Isomorphic(a, b *molgraph.Graph) bool {
	_, ok := Full(a, b)
	return ok
}

// search holds the backtracking state for one Full call.
type search struct {
	a, b    *indexed
	ca, cb  []int
	order   []int
	classes map[int][]int // colour → b indices, ascending
	m       []int         // a index → b index, -1 if unmapped
	used    []bool        // b index taken
}

func newSearch(a, b *indexed, ca, cb []int) *search {
	s := &search{
		a: a, b: b, ca: ca, cb: cb,
		classes: make(map[int][]int),
		m:       make([]int, len(a.keys)),
		used:    make([]bool, len(b.keys)),
	}
	for i := range s.m {
		s.m[i] = -1
	}
	for y, c := range cb {
		s.classes[c] = append(s.classes[c], y)
	}
	s.order = s.connectivityOrder()
	return s
}

// connectivityOrder lists a's atoms breadth-first, each component seeded from
// the unvisited atom with the smallest colour class (lowest index on ties).
func (s *search) connectivityOrder() []int {
	n := len(s.a.keys)
	seen := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		seed := -1
		for x := 0; x < n; x++ {
			if seen[x] {
				continue
			}
			if seed < 0 || len(s.classes[s.ca[x]]) < len(s.classes[s.ca[seed]]) {
				seed = x
			}
		}
		seen[seed] = true
		queue := []int{seed}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			order = append(order, u)
			for _, e := range s.a.adj[u] {
				if !seen[e.to] {
					seen[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
	}
	return order
}

func (s *search) match(i int) bool {
	if i == len(s.order) {
		return true
	}
	x := s.order[i]
	for _, y := range s.classes[s.ca[x]] {
		if s.used[y] || !s.feasible(x, y) {
			continue
		}
		s.m[x], s.used[y] = y, true
		if s.match(i + 1) {
			return true
		}
		s.m[x], s.used[y] = -1, false
	}
	return false
}

// feasible checks that pairing x with y preserves every bond, and every
// non-bond, between x and the atoms mapped so far.
func (s *search) feasible(x, y int) bool {
	mapped := 0
	for _, e := range s.a.adj[x] {
		my := s.m[e.to]
		if my < 0 {
			continue
		}
		mapped++
		bond, ok := s.b.bond(y, my)
		if !ok || bond != e.bond {
			return false
		}
	}
	images := 0
	for _, e := range s.b.adj[y] {
		if s.used[e.to] {
			images++
		}
	}
	return mapped == images
}
