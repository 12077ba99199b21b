// SPDX-License-Identifier: MIT

package iso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
)

type atoms = map[molgraph.Key]molgraph.Atom
type bonds = map[molgraph.BondKey]molgraph.Bond

func bk(a, b molgraph.Key) molgraph.BondKey { return molgraph.NewBondKey(a, b) }

// chain builds an explicit-free carbon chain C0-C1-…, keys starting at off.
func chain(n int, off molgraph.Key) *molgraph.Graph {
	as, bs := atoms{}, bonds{}
	for i := 0; i < n; i++ {
		k := off + molgraph.Key(i)
		as[k] = molgraph.Atom{Symbol: "C"}
		if i > 0 {
			bs[bk(k-1, k)] = molgraph.Bond{Order: 1}
		}
	}
	return molgraph.MustNew(as, bs)
}

// requireValid checks that m is a full isomorphism from a onto b.
func requireValid(t *testing.T, a, b *molgraph.Graph, m map[molgraph.Key]molgraph.Key) {
	t.Helper()
	require.Len(t, m, a.AtomCount())
	seen := map[molgraph.Key]bool{}
	for k, v := range m {
		require.False(t, seen[v], "image %d used twice", v)
		seen[v] = true
		aa, _ := a.Atom(k)
		ba, ok := b.Atom(v)
		require.True(t, ok)
		require.Equal(t, aa, ba)
	}
	for _, x := range a.AtomKeys() {
		for _, y := range a.AtomKeys() {
			if x >= y {
				continue
			}
			ab, aok := a.Bond(x, y)
			bb, bok := b.Bond(m[x], m[y])
			require.Equal(t, aok, bok, "bond %d-%d", x, y)
			require.Equal(t, ab, bb)
		}
	}
}

func TestFull_Relabelled(t *testing.T) {
	a := chain(5, 0)
	b, err := a.RelabelKeys(map[molgraph.Key]molgraph.Key{0: 14, 1: 10, 2: 12, 3: 11, 4: 13})
	require.NoError(t, err)

	m, ok := iso.Full(a, b)
	require.True(t, ok)
	requireValid(t, a, b, m)
}

func TestFull_Rejections(t *testing.T) {
	cases := []struct {
		name string
		a, b *molgraph.Graph
	}{
		{"atom count", chain(3, 0), chain(4, 0)},
		{
			"symbol",
			molgraph.MustNew(atoms{0: {Symbol: "C"}, 1: {Symbol: "O"}}, bonds{bk(0, 1): {Order: 1}}),
			molgraph.MustNew(atoms{0: {Symbol: "C"}, 1: {Symbol: "N"}}, bonds{bk(0, 1): {Order: 1}}),
		},
		{
			"bond order",
			molgraph.MustNew(atoms{0: {Symbol: "C"}, 1: {Symbol: "O"}}, bonds{bk(0, 1): {Order: 1}}),
			molgraph.MustNew(atoms{0: {Symbol: "C"}, 1: {Symbol: "O"}}, bonds{bk(0, 1): {Order: 2}}),
		},
		{
			"implicit hydrogens",
			molgraph.MustNew(atoms{0: {Symbol: "C", ImplicitH: 3}}, nil),
			molgraph.MustNew(atoms{0: {Symbol: "C", ImplicitH: 2}}, nil),
		},
		{
			"branching",
			// n-butane skeleton vs isobutane skeleton
			chain(4, 0),
			molgraph.MustNew(
				atoms{0: {Symbol: "C"}, 1: {Symbol: "C"}, 2: {Symbol: "C"}, 3: {Symbol: "C"}},
				bonds{bk(0, 1): {Order: 1}, bk(0, 2): {Order: 1}, bk(0, 3): {Order: 1}},
			),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := iso.Full(tc.a, tc.b)
			assert.False(t, ok)
			assert.Nil(t, m)
		})
	}
}

// TestFull_RegularGraphs covers graphs colour refinement cannot split: a
// six-ring against two three-rings (both 2-regular, same counts).
func TestFull_RegularGraphs(t *testing.T) {
	ring6 := bonds{}
	two3 := bonds{}
	as := atoms{}
	for i := molgraph.Key(0); i < 6; i++ {
		as[i] = molgraph.Atom{Symbol: "C"}
		ring6[bk(i, (i+1)%6)] = molgraph.Bond{Order: 1}
	}
	for _, b := range []molgraph.BondKey{bk(0, 1), bk(1, 2), bk(0, 2), bk(3, 4), bk(4, 5), bk(3, 5)} {
		two3[b] = molgraph.Bond{Order: 1}
	}
	a := molgraph.MustNew(as, ring6)
	b := molgraph.MustNew(as, two3)

	assert.False(t, iso.Isomorphic(a, b))
	assert.False(t, iso.Isomorphic(b, a))

	m, ok := iso.Full(a, a.ShiftKeys(100))
	require.True(t, ok)
	requireValid(t, a, a.ShiftKeys(100), m)
}

func TestFull_Disconnected(t *testing.T) {
	a, err := molgraph.Union(chain(2, 0), chain(3, 10))
	require.NoError(t, err)
	b, err := molgraph.Union(chain(3, 0), chain(2, 5))
	require.NoError(t, err)

	m, ok := iso.Full(a, b)
	require.True(t, ok)
	requireValid(t, a, b, m)
}

func TestFull_Empty(t *testing.T) {
	empty := molgraph.MustNew(nil, nil)
	m, ok := iso.Full(empty, empty)
	require.True(t, ok)
	assert.Empty(t, m)
}

// TestFull_Symmetric checks any returned mapping of a symmetric molecule is
// valid, in both directions.
func TestFull_Symmetric(t *testing.T) {
	// explicit methane
	a := molgraph.MustNew(
		atoms{0: {Symbol: "C"}, 1: {Symbol: "H"}, 2: {Symbol: "H"}, 3: {Symbol: "H"}, 4: {Symbol: "H"}},
		bonds{bk(0, 1): {Order: 1}, bk(0, 2): {Order: 1}, bk(0, 3): {Order: 1}, bk(0, 4): {Order: 1}},
	)
	b, err := a.RelabelKeys(map[molgraph.Key]molgraph.Key{0: 9, 1: 5, 2: 6, 3: 7, 4: 8})
	require.NoError(t, err)

	m, ok := iso.Full(a, b)
	require.True(t, ok)
	requireValid(t, a, b, m)
	assert.Equal(t, molgraph.Key(9), m[0])

	inv, ok := iso.Full(b, a)
	require.True(t, ok)
	requireValid(t, b, a, inv)
}
