// SPDX-License-Identifier: MIT
//
// File: reac.go
// Role: Formula-level reaction checks.
// Determinism:
//   - ArgsortHydrogenAbstraction tries reactant permutations in lexicographic
//     order, and product permutations in lexicographic order for each.

package formula

// IsValidReaction reports whether reactants and products carry the same
// element totals.
func IsValidReaction(rcts, prds []Formula) bool {
	return Sum(rcts...).Equal(Sum(prds...))
}

// ArgsortHydrogenAbstraction looks for index orders of two reactants and two
// products matching R1H + R2 → R2H + R1, i.e.
//
//	rcts[r[0]] = prds[p[1]] + H
//	prds[p[0]] = rcts[r[1]] + H
//
// It returns ok=false when the lists are not pairs or no order fits.
func ArgsortHydrogenAbstraction(rcts, prds []Formula) (r, p []int, ok bool) {
	if len(rcts) != 2 || len(prds) != 2 {
		return nil, nil, false
	}
	perms := [][]int{{0, 1}, {1, 0}}
	for _, ri := range perms {
		for _, pi := range perms {
			q1h, q2 := rcts[ri[0]], rcts[ri[1]]
			q2h, q1 := prds[pi[0]], prds[pi[1]]
			if q1h.Equal(q1.Add(hydrogenAtom)) && q2h.Equal(q2.Add(hydrogenAtom)) {
				return append([]int(nil), ri...), append([]int(nil), pi...), true
			}
		}
	}
	return nil, nil, false
}
