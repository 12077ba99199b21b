// SPDX-License-Identifier: MIT

package reac_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/reac"
	"github.com/katalvlaran/rxnclass/trans"
)

// ClassifySuite runs the dispatcher over one reaction per class.
type ClassifySuite struct {
	suite.Suite
}

// TestHydrogenAbstraction: C2H5 + H2 → C2H6 + H.
func (s *ClassifySuite) TestHydrogenAbstraction() {
	rcts := side(builder.AlkylRadical(2, 0), builder.Hydrogen2())
	prds := side(builder.Alkane(2), builder.HydrogenAtom())

	res, err := reac.Classify(rcts, prds)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Transformations, 1)

	tr := res.Transformations[0]
	require.Equal(s.T(), trans.HydrogenAbstraction, tr.Class())
	// ethyl keys 0..6 with the radical on 0; H2 is 7-8
	require.Equal(s.T(), []molgraph.BondKey{bk(7, 8)}, tr.Broken())
	formed := tr.Formed()
	require.Len(s.T(), formed, 1)
	require.Equal(s.T(), molgraph.Key(0), formed[0].A)
	require.Contains(s.T(), []molgraph.Key{7, 8}, formed[0].B)

	require.Equal(s.T(), []int{1, 0}, res.ReactantOrder)
	require.Equal(s.T(), []int{0, 1}, res.ProductOrder)
	requireConsistent(s.T(), res, rcts, prds)
}

// TestFormulaMismatch: CH4 → C2H6 fails before any classifier runs.
func (s *ClassifySuite) TestFormulaMismatch() {
	_, err := reac.Classify(side(builder.Alkane(1)), side(builder.Alkane(2)))
	require.ErrorIs(s.T(), err, reac.ErrInvalidReaction)
	require.Contains(s.T(), err.Error(), "CH4")
	require.Contains(s.T(), err.Error(), "C2H6")
}

// TestAdditionAndBetaScission: CH3 + CH3 ⇌ C2H6.
func (s *ClassifySuite) TestAdditionAndBetaScission() {
	methyls := side(builder.AlkylRadical(1, 0), builder.AlkylRadical(1, 0))
	ethane := side(builder.Alkane(2))

	add, err := reac.Classify(methyls, ethane)
	require.NoError(s.T(), err)
	require.Len(s.T(), add.Transformations, 1)
	require.Equal(s.T(), trans.Addition, add.Transformations[0].Class())
	require.Equal(s.T(), []molgraph.BondKey{bk(0, 4)}, add.Transformations[0].Formed())
	require.Equal(s.T(), []int{0, 1}, add.ReactantOrder)
	require.Equal(s.T(), []int{0}, add.ProductOrder)
	requireConsistent(s.T(), add, methyls, ethane)

	beta, err := reac.Classify(ethane, methyls)
	require.NoError(s.T(), err)
	require.Len(s.T(), beta.Transformations, 1)
	require.Equal(s.T(), trans.BetaScission, beta.Transformations[0].Class())
	require.Equal(s.T(), []molgraph.BondKey{bk(0, 1)}, beta.Transformations[0].Broken())
	require.Empty(s.T(), beta.Transformations[0].Formed())
	require.Equal(s.T(), []int{0}, beta.ReactantOrder)
	require.Equal(s.T(), []int{0, 1}, beta.ProductOrder)
	requireConsistent(s.T(), beta, ethane, methyls)
}

// TestBetaScissionIsReverseOfAddition compares BetaScission(p, r) with the
// reverse of every Addition(r, p) transformation.
func (s *ClassifySuite) TestBetaScissionIsReverseOfAddition() {
	rcts := side(builder.AlkylRadical(2, 0), builder.AlkylRadical(1, 0))
	prds := side(builder.Alkane(3))

	add, err := reac.Addition(rcts, prds)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), add.Transformations)

	beta, err := reac.BetaScission(prds, rcts)
	require.NoError(s.T(), err)

	rg, _ := molgraph.Union(rcts...)
	pg, _ := molgraph.Union(prds...)
	want := map[string]bool{}
	for _, t := range add.Transformations {
		r, err := trans.Reverse(t, rg, pg)
		require.NoError(s.T(), err)
		want[r.Key()] = true

		back, err := trans.Reverse(r, pg, rg)
		require.NoError(s.T(), err)
		require.True(s.T(), back.Equal(t), "reversal must be involutive")
	}
	got := map[string]bool{}
	for _, t := range beta.Transformations {
		got[t.Key()] = true
	}
	require.Equal(s.T(), want, got)
}

// TestTrivialPermuted: reactants and products are the same species swapped.
func (s *ClassifySuite) TestTrivialPermuted() {
	rcts := side(builder.Alkane(2), builder.Hydrogen2())
	prds := side(builder.Hydrogen2(), builder.Alkane(2))

	for _, opts := range [][]reac.Option{nil, {reac.WithMaximumTrivialMatching()}} {
		res, err := reac.Classify(rcts, prds, opts...)
		require.NoError(s.T(), err)
		require.Len(s.T(), res.Transformations, 1)
		require.Equal(s.T(), trans.Trivial, res.Transformations[0].Class())
		require.Equal(s.T(), []int{0, 1}, res.ReactantOrder)
		require.Equal(s.T(), []int{1, 0}, res.ProductOrder)
	}

	class, ok, err := reac.ClassifySimple(rcts, prds)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	require.Equal(s.T(), trans.Trivial, class)
}

// TestHydrogenMigration: n-propyl ⇌ isopropyl, classified both ways.
func (s *ClassifySuite) TestHydrogenMigration() {
	npropyl := side(builder.AlkylRadical(3, 0))
	ipropyl := side(builder.AlkylRadical(3, 1))

	fwd, err := reac.Classify(npropyl, ipropyl)
	require.NoError(s.T(), err)
	require.Len(s.T(), fwd.Transformations, 1)
	tr := fwd.Transformations[0]
	require.Equal(s.T(), trans.HydrogenMigration, tr.Class())

	// the hydrogen leaves the middle carbon (1) for the radical carbon (0)
	broken, formed := tr.Broken()[0], tr.Formed()[0]
	require.Equal(s.T(), molgraph.Key(1), broken.A)
	require.Equal(s.T(), molgraph.Key(0), formed.A)
	require.Equal(s.T(), broken.B, formed.B)
	require.True(s.T(), npropyl[0].HasBond(1, broken.B))
	requireConsistent(s.T(), fwd, npropyl, ipropyl)

	rev, err := reac.Classify(ipropyl, npropyl)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), rev.Transformations)
	require.Equal(s.T(), trans.HydrogenMigration, rev.Transformations[0].Class())
	requireConsistent(s.T(), rev, ipropyl, npropyl)
}

// TestEliminationAndInsertion: C2H6 ⇌ C2H4 + H2.
func (s *ClassifySuite) TestEliminationAndInsertion() {
	ethane := side(builder.Alkane(2))
	prds := side(builder.Alkene(2, 0), builder.Hydrogen2())

	elim, err := reac.Classify(ethane, prds)
	require.NoError(s.T(), err)
	require.Len(s.T(), elim.Transformations, 9, "one per pair of hydrogens on different carbons")
	for _, tr := range elim.Transformations {
		require.Equal(s.T(), trans.Elimination, tr.Class())
		require.Len(s.T(), tr.Broken(), 2)
	}
	require.Equal(s.T(), []int{0}, elim.ReactantOrder)
	require.Equal(s.T(), []int{0, 1}, elim.ProductOrder)
	requireConsistent(s.T(), elim, ethane, prds)

	ins, err := reac.Classify(prds, ethane)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), ins.Transformations)
	for _, tr := range ins.Transformations {
		require.Equal(s.T(), trans.Insertion, tr.Class())
		// the H-H bond of the H2 reagent (keys 6, 7)
		require.Equal(s.T(), []molgraph.BondKey{bk(6, 7)}, tr.Broken())
	}
	require.Equal(s.T(), []int{0, 1}, ins.ReactantOrder)
	require.Equal(s.T(), []int{0}, ins.ProductOrder)
	requireConsistent(s.T(), ins, prds, ethane)
}

// TestEliminationDisconnectedReactant: a bare C3 ring and a lone carbon in one
// graph. Cutting two ring bonds leaves the outer atoms bonded to each other,
// which is a no-match, not an error.
func (s *ClassifySuite) TestEliminationDisconnectedReactant() {
	carbons := func(keys ...molgraph.Key) map[molgraph.Key]molgraph.Atom {
		m := make(map[molgraph.Key]molgraph.Atom, len(keys))
		for _, k := range keys {
			m[k] = molgraph.Atom{Symbol: "C"}
		}
		return m
	}
	single := func(bks ...molgraph.BondKey) map[molgraph.BondKey]molgraph.Bond {
		m := make(map[molgraph.BondKey]molgraph.Bond, len(bks))
		for _, b := range bks {
			m[b] = molgraph.Bond{Order: 1}
		}
		return m
	}
	rcts := []*molgraph.Graph{
		molgraph.MustNew(carbons(0, 1, 2, 9), single(bk(0, 1), bk(1, 2), bk(0, 2))),
	}
	prds := []*molgraph.Graph{
		molgraph.MustNew(carbons(0, 1), single(bk(0, 1))),
		molgraph.MustNew(carbons(2, 3), single(bk(2, 3))),
	}

	res, err := reac.Elimination(rcts, prds)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Empty())
	requireConsistent(s.T(), res, rcts, prds)

	res, err = reac.Classify(rcts, prds)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Empty())
}

// TestSubstitution: H + C2H6 → CH4 + CH3.
func (s *ClassifySuite) TestSubstitution() {
	rcts := side(builder.HydrogenAtom(), builder.Alkane(2))
	prds := side(builder.Alkane(1), builder.AlkylRadical(1, 0))

	res, err := reac.Classify(rcts, prds)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), res.Transformations)
	for _, tr := range res.Transformations {
		require.Equal(s.T(), trans.Substitution, tr.Class())
		// H is key 0, ethane carbons are 1 and 2
		require.Equal(s.T(), []molgraph.BondKey{bk(1, 2)}, tr.Broken())
		require.Equal(s.T(), molgraph.Key(0), tr.Formed()[0].A)
	}
	require.Equal(s.T(), []int{1, 0}, res.ReactantOrder)
	require.Equal(s.T(), []int{0, 1}, res.ProductOrder)
	requireConsistent(s.T(), res, rcts, prds)
}

// TestUnclassified returns an empty result with nil orders.
func (s *ClassifySuite) TestUnclassified() {
	// propane → cyclopropane + H2 needs three bond changes
	rcts := side(builder.Alkane(3))
	prds := side(builder.Cycloalkane(3), builder.Hydrogen2())

	res, err := reac.Classify(rcts, prds)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Empty())
	requireConsistent(s.T(), res, rcts, prds)

	_, ok, err := reac.ClassifySimple(rcts, prds)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

// TestRingFormingScission: 1-butyl → cyclobutane + H. Classify does not try
// this class.
func (s *ClassifySuite) TestRingFormingScission() {
	butyl := side(builder.AlkylRadical(4, 0))
	prds := side(builder.Cycloalkane(4), builder.HydrogenAtom())

	res, err := reac.RingFormingScission(butyl, prds)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Transformations, 1)
	tr := res.Transformations[0]
	require.Equal(s.T(), trans.RingFormingScission, tr.Class())
	// carbons 0..3; the first hydrogen of carbon 3 is key 10
	require.Equal(s.T(), []molgraph.BondKey{bk(0, 3)}, tr.Formed())
	require.Equal(s.T(), []molgraph.BondKey{bk(3, 10)}, tr.Broken())
	require.Equal(s.T(), []int{0}, res.ReactantOrder)
	require.Equal(s.T(), []int{0, 1}, res.ProductOrder)
	requireConsistent(s.T(), res, butyl, prds)

	_, ok := trans.RingFormingScission.Reverse()
	require.False(s.T(), ok)

	plain, err := reac.Classify(butyl, prds)
	require.NoError(s.T(), err)
	require.True(s.T(), plain.Empty())
}

// TestNeverMixed runs every classifier on every fixture and checks that a
// non-empty result carries only its own class.
func (s *ClassifySuite) TestNeverMixed() {
	fixtures := [][2][]*molgraph.Graph{
		{side(builder.AlkylRadical(2, 0), builder.Hydrogen2()), side(builder.Alkane(2), builder.HydrogenAtom())},
		{side(builder.AlkylRadical(3, 0)), side(builder.AlkylRadical(3, 1))},
		{side(builder.Alkane(2)), side(builder.Alkene(2, 0), builder.Hydrogen2())},
		{side(builder.HydrogenAtom(), builder.Alkane(2)), side(builder.Alkane(1), builder.AlkylRadical(1, 0))},
	}
	for _, f := range fixtures {
		for _, e := range reac.Classifiers() {
			res, err := e.Classify(f[0], f[1])
			require.NoError(s.T(), err)
			for _, tr := range res.Transformations {
				require.Equal(s.T(), e.Class, tr.Class())
			}
			requireConsistent(s.T(), res, f[0], f[1])
		}
	}
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifySuite))
}
