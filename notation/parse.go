// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: ParseGraph, ParseReaction, ReadReactions.

package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/reac"
)

const commentPrefix = "#"

// ParseGraph reads one graph literal or species.
func ParseGraph(s string) (*molgraph.Graph, error) {
	t, err := parseTermExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("ParseGraph: %w: %s", ErrSyntax, err)
	}
	g, err := t.build(0)
	if err != nil {
		return nil, fmt.Errorf("ParseGraph: %w", err)
	}
	return g, nil
}

// ParseReaction reads one reaction. The id is empty when the text has none.
func ParseReaction(s string) (reac.Reaction, error) {
	r, err := parseReactionExpr.ParseString("", s)
	if err != nil {
		return reac.Reaction{}, fmt.Errorf("ParseReaction: %w: %s", ErrSyntax, err)
	}
	rcts, err := buildSide(r.Reactants)
	if err != nil {
		return reac.Reaction{}, fmt.Errorf("ParseReaction: reactants: %w", err)
	}
	prds, err := buildSide(r.Products)
	if err != nil {
		return reac.Reaction{}, fmt.Errorf("ParseReaction: products: %w", err)
	}
	return reac.Reaction{ID: r.ID, Reactants: rcts, Products: prds}, nil
}

// ReadReactions parses one reaction per line of r. Errors name the line.
func ReadReactions(r io.Reader) ([]reac.Reaction, error) {
	var out []reac.Reaction
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		rx, err := ParseReaction(text)
		if err != nil {
			return nil, fmt.Errorf("ReadReactions: line %d: %w", line, err)
		}
		out = append(out, rx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadReactions: %w", err)
	}
	return out, nil
}

// buildSide keys each species after every graph before it.
func buildSide(terms []*termExpr) ([]*molgraph.Graph, error) {
	out := make([]*molgraph.Graph, 0, len(terms))
	next := molgraph.Key(0)
	for i, t := range terms {
		g, err := t.build(next)
		if err != nil {
			return nil, fmt.Errorf("#%d: %w", i, err)
		}
		if g.AtomCount() > 0 && g.MaxKey()+1 > next {
			next = g.MaxKey() + 1
		}
		out = append(out, g)
	}
	return out, nil
}

func (t *termExpr) build(offset molgraph.Key) (*molgraph.Graph, error) {
	if t.Species != nil {
		return t.Species.build(offset)
	}
	return t.Graph.build()
}

func (s *speciesExpr) build(offset molgraph.Key) (*molgraph.Graph, error) {
	cons, err := builder.Named(s.Name, s.Args...)
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph([]builder.BuilderOption{builder.WithKeyOffset(offset)}, cons)
}

func (e *graphExpr) build() (*molgraph.Graph, error) {
	atoms := make(map[molgraph.Key]molgraph.Atom, len(e.Atoms))
	for _, a := range e.Atoms {
		k := molgraph.Key(a.Key)
		if _, dup := atoms[k]; dup {
			return nil, fmt.Errorf("%w: atom %d listed twice", ErrInvalidGraph, k)
		}
		atoms[k] = molgraph.Atom{Symbol: a.Symbol, ImplicitH: a.ImplicitH, Parity: parity(a.Parity)}
	}
	bonds := make(map[molgraph.BondKey]molgraph.Bond, len(e.Bonds))
	for _, b := range e.Bonds {
		order := 1
		if b.Order != nil {
			order = *b.Order
		}
		bk := molgraph.NewBondKey(molgraph.Key(b.A), molgraph.Key(b.B))
		if _, dup := bonds[bk]; dup {
			return nil, fmt.Errorf("%w: bond %s listed twice", ErrInvalidGraph, bk)
		}
		bonds[bk] = molgraph.Bond{Order: order, Parity: parity(b.Parity)}
	}
	g, err := molgraph.New(atoms, bonds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}
	return g, nil
}

func parity(s string) molgraph.Parity {
	switch s {
	case parityFalse:
		return molgraph.ParityFalse
	case parityTrue:
		return molgraph.ParityTrue
	}
	return molgraph.NoParity
}
