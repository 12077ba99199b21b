// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Reagent-list preconditions and the size-descending order.

package reac

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rxnclass/molgraph"
)

// ValidateReagents checks that every graph is explicit, has no stereo
// parities, and that no two graphs share an atom key.
func ValidateReagents(graphs []*molgraph.Graph) error {
	for i, g := range graphs {
		if !g.IsExplicit() {
			return errors.Wrapf(ErrInvalidReagentSet,
				"implicit hydrogens are not allowed: graph %d of\n%s", i, describe(graphs))
		}
		if g.HasStereo() {
			return errors.Wrapf(ErrInvalidReagentSet,
				"stereo assignments are not allowed: graph %d of\n%s", i, describe(graphs))
		}
	}
	owner := make(map[molgraph.Key]int)
	for i, g := range graphs {
		for _, k := range g.AtomKeys() {
			if j, dup := owner[k]; dup {
				return errors.Wrapf(ErrInvalidReagentSet,
					"overlapping atom key %d in graphs %d and %d of\n%s", k, j, i, describe(graphs))
			}
			owner[k] = i
		}
	}
	return nil
}

func validatePair(rcts, prds []*molgraph.Graph) error {
	if err := ValidateReagents(rcts); err != nil {
		return errors.WithMessage(err, "reactants")
	}
	if err := ValidateReagents(prds); err != nil {
		return errors.WithMessage(err, "products")
	}
	return nil
}

func describe(graphs []*molgraph.Graph) string {
	parts := make([]string, len(graphs))
	for i, g := range graphs {
		parts[i] = g.String()
	}
	return strings.Join(parts, "\n---\n")
}

// ArgsortReagents returns the indices of graphs ordered largest species
// first: heavy-atom count, atom count, electron count, all descending. Ties
// keep input order.
func ArgsortReagents(graphs []*molgraph.Graph) []int {
	type size struct{ heavy, atoms, electrons int }
	sizes := make([]size, len(graphs))
	idx := make([]int, len(graphs))
	for i, g := range graphs {
		sizes[i] = size{g.HeavyAtomCount(), g.AtomCount(), g.ElectronCount()}
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		x, y := sizes[idx[a]], sizes[idx[b]]
		if x.heavy != y.heavy {
			return x.heavy > y.heavy
		}
		if x.atoms != y.atoms {
			return x.atoms > y.atoms
		}
		return x.electrons > y.electrons
	})
	return idx
}
