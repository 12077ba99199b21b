// SPDX-License-Identifier: MIT

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/internal/store"
	"github.com/katalvlaran/rxnclass/reac"
	"github.com/katalvlaran/rxnclass/trans"
)

func abstraction() reac.Reaction {
	return reac.Reaction{
		ID:        "r1",
		Reactants: builder.MustReagents(builder.AlkylRadical(2, 0), builder.Hydrogen2()),
		Products:  builder.MustReagents(builder.Alkane(2), builder.HydrogenAtom()),
	}
}

func TestFingerprintOf(t *testing.T) {
	rx := abstraction()
	a := store.FingerprintOf(rx, "default")

	rx.ID = "other"
	assert.Equal(t, a, store.FingerprintOf(rx, "default"), "id is not part of the fingerprint")
	assert.NotEqual(t, a.Sum, store.FingerprintOf(rx, "maximum").Sum)

	swapped := reac.Reaction{Reactants: rx.Products, Products: rx.Reactants}
	assert.NotEqual(t, a.Sum, store.FingerprintOf(swapped, "default").Sum)
}

func TestStore_RoundTrip(t *testing.T) {
	s, err := store.Open("")
	require.NoError(t, err)
	defer s.Close()

	rx := abstraction()
	f := store.FingerprintOf(rx, "default")

	_, ok, err := s.Get(f)
	require.NoError(t, err)
	assert.False(t, ok)

	res, err := reac.Classify(rx.Reactants, rx.Products)
	require.NoError(t, err)
	require.NoError(t, s.Put(f, res))

	got, ok, err := s.Get(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res.ReactantOrder, got.ReactantOrder)
	assert.Equal(t, res.ProductOrder, got.ProductOrder)
	require.Len(t, got.Transformations, len(res.Transformations))
	for i := range res.Transformations {
		assert.True(t, got.Transformations[i].Equal(res.Transformations[i]))
	}

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_EmptyResultAndCollision(t *testing.T) {
	s, err := store.Open("")
	require.NoError(t, err)
	defer s.Close()

	f := store.FingerprintOf(abstraction(), "default")
	require.NoError(t, s.Put(f, reac.Result{}))
	got, ok, err := s.Get(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Empty())
	assert.Nil(t, got.ReactantOrder)

	clash := store.Fingerprint{Sum: f.Sum, Text: "something else"}
	_, ok, err = s.Get(clash)
	require.NoError(t, err)
	assert.False(t, ok, "same hash with different text is a miss")
}

func TestStore_Persistent(t *testing.T) {
	dir := t.TempDir()
	f := store.FingerprintOf(abstraction(), "default")
	res := reac.Result{
		Transformations: []trans.Transformation{trans.New(trans.Trivial, nil, nil)},
		ReactantOrder:   []int{0, 1},
		ProductOrder:    []int{1, 0},
	}

	s, err := store.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(f, res))
	require.NoError(t, s.Close())

	_, _, err = s.Get(f)
	require.ErrorIs(t, err, store.ErrClosed)
	require.ErrorIs(t, s.Put(f, res), store.ErrClosed)

	s, err = store.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(f)
	require.NoError(t, err)
	require.True(t, ok)
	c, _ := got.Class()
	assert.Equal(t, trans.Trivial, c)
	assert.Equal(t, []int{1, 0}, got.ProductOrder)
}
