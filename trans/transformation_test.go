// SPDX-License-Identifier: MIT

package trans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnclass/iso"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

func bk(a, b molgraph.Key) molgraph.BondKey { return molgraph.NewBondKey(a, b) }

// methyls returns two explicit methyl radicals keyed 0..3 and 4..7.
func methyls() *molgraph.Graph {
	as := map[molgraph.Key]molgraph.Atom{}
	bs := map[molgraph.BondKey]molgraph.Bond{}
	for _, c := range []molgraph.Key{0, 4} {
		as[c] = molgraph.Atom{Symbol: "C"}
		for h := c + 1; h <= c+3; h++ {
			as[h] = molgraph.Atom{Symbol: "H"}
			bs[bk(c, h)] = molgraph.Bond{Order: 1}
		}
	}
	return molgraph.MustNew(as, bs)
}

// ethane returns explicit ethane with carbons 10, 11 and hydrogens 12..17.
func ethane() *molgraph.Graph {
	as := map[molgraph.Key]molgraph.Atom{10: {Symbol: "C"}, 11: {Symbol: "C"}}
	bs := map[molgraph.BondKey]molgraph.Bond{bk(10, 11): {Order: 1}}
	for h := molgraph.Key(12); h < 18; h++ {
		as[h] = molgraph.Atom{Symbol: "H"}
		c := molgraph.Key(10)
		if h >= 15 {
			c = 11
		}
		bs[bk(c, h)] = molgraph.Bond{Order: 1}
	}
	return molgraph.MustNew(as, bs)
}

func TestNew_NormalisesBondSets(t *testing.T) {
	a := trans.New(trans.Elimination, []molgraph.BondKey{{A: 5, B: 2}}, []molgraph.BondKey{bk(3, 4), bk(0, 1), {A: 1, B: 0}})
	b := trans.New(trans.Elimination, []molgraph.BondKey{bk(2, 5)}, []molgraph.BondKey{bk(0, 1), bk(3, 4)})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, []molgraph.BondKey{bk(0, 1), bk(3, 4)}, a.Broken())
	assert.Equal(t, "elimination: +[2-5] -[0-1 3-4]", a.String())

	c := trans.New(trans.Insertion, a.Formed(), a.Broken())
	assert.False(t, a.Equal(c), "class is part of the value")
}

func TestClass_Reverse(t *testing.T) {
	pairs := map[trans.Class]trans.Class{
		trans.Addition:            trans.BetaScission,
		trans.BetaScission:        trans.Addition,
		trans.Elimination:         trans.Insertion,
		trans.HydrogenMigration:   trans.HydrogenMigration,
		trans.HydrogenAbstraction: trans.HydrogenAbstraction,
	}
	for c, want := range pairs {
		got, ok := c.Reverse()
		require.True(t, ok, c)
		assert.Equal(t, want, got)
	}
	_, ok := trans.RingFormingScission.Reverse()
	assert.False(t, ok)

	c, err := trans.ParseClass("beta scission")
	require.NoError(t, err)
	assert.Equal(t, trans.BetaScission, c)
	_, err = trans.ParseClass("fission")
	require.ErrorIs(t, err, trans.ErrUnknownClass)
	assert.Len(t, trans.Classes(), 9)
}

func TestApply(t *testing.T) {
	add := trans.New(trans.Addition, []molgraph.BondKey{bk(0, 4)}, nil)
	out, err := trans.Apply(add, methyls())
	require.NoError(t, err)
	assert.True(t, iso.Isomorphic(out, ethane()))

	_, err = trans.Apply(trans.New(trans.BetaScission, nil, []molgraph.BondKey{bk(0, 4)}), methyls())
	require.ErrorIs(t, err, molgraph.ErrBondNotFound)
}

func TestReverse_Involution(t *testing.T) {
	x, y := methyls(), ethane()
	add := trans.New(trans.Addition, []molgraph.BondKey{bk(0, 4)}, nil)

	beta, err := trans.Reverse(add, x, y)
	require.NoError(t, err)
	assert.Equal(t, trans.BetaScission, beta.Class())
	assert.Equal(t, []molgraph.BondKey{bk(10, 11)}, beta.Broken())
	assert.Empty(t, beta.Formed())

	back, err := trans.Reverse(beta, y, x)
	require.NoError(t, err)
	assert.True(t, back.Equal(add), "got %s", back)
}

func TestReverse_Failures(t *testing.T) {
	wrong := trans.New(trans.Addition, []molgraph.BondKey{bk(0, 1)}, []molgraph.BondKey{bk(0, 1)})
	_, err := trans.Reverse(wrong, methyls(), ethane())
	require.ErrorIs(t, err, trans.ErrNotReversible)

	ring := trans.New(trans.RingFormingScission, nil, nil)
	_, err = trans.Reverse(ring, methyls(), methyls())
	require.ErrorIs(t, err, trans.ErrNotReversible)
}

func TestUniqueAndSort(t *testing.T) {
	a := trans.New(trans.Substitution, []molgraph.BondKey{bk(1, 2)}, []molgraph.BondKey{bk(0, 1)})
	b := trans.New(trans.Substitution, []molgraph.BondKey{bk(0, 2)}, []molgraph.BondKey{bk(0, 1)})
	a2 := trans.New(trans.Substitution, []molgraph.BondKey{{A: 2, B: 1}}, []molgraph.BondKey{bk(0, 1)})

	u := trans.Unique([]trans.Transformation{a, b, a2})
	require.Len(t, u, 2)
	assert.True(t, u[0].Equal(a))

	trans.Sort(u)
	assert.True(t, u[0].Equal(b), "0-2 sorts before 1-2")
}
