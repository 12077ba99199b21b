// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph, Reagents and MustReagents.
// Determinism:
//   - Same constructors, order and options give identical keys.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnclass/molgraph"
)

// Constructor adds one species to a Sketch. Constructors validate their
// parameters and return wrapped sentinels; they never panic.
type Constructor func(s *Sketch) error

// BuildGraph applies every constructor to one sketch, in order, and returns
// the resulting graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Constructors: the sum of their costs, O(n) atoms each; freezing is
//     O(A + B) for the finished sketch.
//
// Errors:
//   - A nil constructor gives ErrConstructFailed.
//   - Constructor errors are wrapped with "BuildGraph: %w"; branch with
//     errors.Is against ErrTooFewAtoms, ErrBadSite, ErrConstructFailed.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*molgraph.Graph, error) {
	s := newSketch(newBuilderConfig(bopts...))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g, err := s.freeze()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}
	return g, nil
}

// Reagents builds one graph per constructor. Each graph's keys start right
// after the previous graph's largest key, so the result passes reagent
// validation.
//
// Errors: the first BuildGraph error, prefixed with the constructor index.
// Complexity: O(K + ΣA + ΣB) for K constructors.
func Reagents(bopts []BuilderOption, cons ...Constructor) ([]*molgraph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	next := cfg.offset
	out := make([]*molgraph.Graph, 0, len(cons))
	for i, fn := range cons {
		opts := append(append([]BuilderOption(nil), bopts...), WithKeyOffset(next))
		g, err := BuildGraph(opts, fn)
		if err != nil {
			return nil, fmt.Errorf("Reagents: #%d: %w", i, err)
		}
		out = append(out, g)
		if g.AtomCount() > 0 {
			next = g.MaxKey() + 1
		}
	}
	return out, nil
}

// MustReagents is Reagents for tests and examples; it panics on error.
func MustReagents(cons ...Constructor) []*molgraph.Graph {
	out, err := Reagents(nil, cons...)
	if err != nil {
		panic(err)
	}
	return out
}
