// SPDX-License-Identifier: MIT
//
// File: trivial.go
// Role: Trivial-reaction test (products are the reactants, possibly permuted).
// Policy:
//   - Default: each reactant in order claims the first unclaimed isomorphic
//     product. A reactant left without a product fails the whole test.
//   - WithMaximumTrivialMatching: augmenting-path bipartite matching over the
//     reactant × product isomorphism table.

package reac

import (
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// TrivialReaction reports a single Trivial transformation when every reactant
// pairs with a distinct isomorphic product. ReactantOrder is 0..n-1 and
// ProductOrder[i] is the product paired with reactant i.
func TrivialReaction(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if err := validatePair(rcts, prds); err != nil {
		return Result{}, err
	}
	pairing, ok := trivialPairing(rcts, prds, newOptions(opts))
	if !ok {
		return Result{}, nil
	}
	rctOrder := make([]int, len(rcts))
	for i := range rctOrder {
		rctOrder[i] = i
	}
	return found([]trans.Transformation{trans.New(trans.Trivial, nil, nil)}, rctOrder, pairing), nil
}

// IsTrivialReaction reports whether TrivialReaction finds a pairing.
func IsTrivialReaction(rcts, prds []*molgraph.Graph, opts ...Option) (bool, error) {
	res, err := TrivialReaction(rcts, prds, opts...)
	return !res.Empty(), err
}

// trivialPairing skips validation; callers have validated.
func trivialPairing(rcts, prds []*molgraph.Graph, o options) ([]int, bool) {
	if len(rcts) != len(prds) {
		return nil, false
	}
	if o.maximumTrivial {
		return maximumPairing(rcts, prds)
	}
	return greedyPairing(rcts, prds)
}

func greedyPairing(rcts, prds []*molgraph.Graph) ([]int, bool) {
	claimed := make([]bool, len(prds))
	pairing := make([]int, len(rcts))
	for i, r := range rcts {
		pairing[i] = -1
		for j, p := range prds {
			if !claimed[j] && iso.Isomorphic(r, p) {
				claimed[j] = true
				pairing[i] = j
				break
			}
		}
		if pairing[i] < 0 {
			return nil, false
		}
	}
	return pairing, true
}

// maximumPairing finds a perfect matching by repeated augmenting-path search.
func maximumPairing(rcts, prds []*molgraph.Graph) ([]int, bool) {
	n := len(rcts)
	adj := make([][]int, n)
	for i, r := range rcts {
		for j, p := range prds {
			if iso.Isomorphic(r, p) {
				adj[i] = append(adj[i], j)
			}
		}
	}

	owner := make([]int, n) // product → reactant, -1 if free
	for j := range owner {
		owner[j] = -1
	}
	var augment func(i int, seen []bool) bool
	augment = func(i int, seen []bool) bool {
		for _, j := range adj[i] {
			if seen[j] {
				continue
			}
			seen[j] = true
			if owner[j] < 0 || augment(owner[j], seen) {
				owner[j] = i
				return true
			}
		}
		return false
	}
	for i := 0; i < n; i++ {
		if !augment(i, make([]bool, n)) {
			return nil, false
		}
	}

	pairing := make([]int, n)
	for j, i := range owner {
		pairing[i] = j
	}
	return pairing, true
}

// nonTrivial is the guard every other classifier runs after validation.
func nonTrivial(rcts, prds []*molgraph.Graph, o options) bool {
	_, triv := trivialPairing(rcts, prds, o)
	return !triv
}
