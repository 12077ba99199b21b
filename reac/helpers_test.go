// SPDX-License-Identifier: MIT

package reac_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/reac"
	"github.com/katalvlaran/rxnclass/trans"
)

func bk(a, b molgraph.Key) molgraph.BondKey { return molgraph.NewBondKey(a, b) }

func side(cons ...builder.Constructor) []*molgraph.Graph { return builder.MustReagents(cons...) }

// requireConsistent checks the result shape and that every transformation,
// applied to the reactants, reproduces the products.
func requireConsistent(t *testing.T, res reac.Result, rcts, prds []*molgraph.Graph) {
	t.Helper()
	if res.Empty() {
		require.Nil(t, res.ReactantOrder)
		require.Nil(t, res.ProductOrder)
		return
	}
	require.Len(t, res.ReactantOrder, len(rcts))
	require.Len(t, res.ProductOrder, len(prds))

	rg, err := molgraph.Union(rcts...)
	require.NoError(t, err)
	pg, err := molgraph.Union(prds...)
	require.NoError(t, err)
	for _, tr := range res.Transformations {
		out, err := trans.Apply(tr, rg)
		require.NoError(t, err, tr.String())
		require.True(t, iso.Isomorphic(out, pg), "%s does not reproduce the products", tr)
	}
}
