// SPDX-License-Identifier: MIT

package reac

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rxnclass/molgraph"
)

// Reaction is one input to ClassifyBatch.
type Reaction struct {
	ID        string
	Reactants []*molgraph.Graph
	Products  []*molgraph.Graph
}

// BatchResult is the outcome for one Reaction. Err holds contract violations
// for that reaction only.
type BatchResult struct {
	ID     string
	Result Result
	Err    error
}

// ClassifyBatch classifies reactions concurrently on at most workers
// goroutines and returns results in input order. Per-reaction errors are
// recorded on the item; only cancellation of ctx aborts the batch, in which
// case the returned error is ctx.Err() and unfinished items are zero.
//
// Concurrency:
//   - Graphs are immutable, so reactions may share graphs. Each item is written
//     by exactly one goroutine.
//
// Errors: workers < 1, or ctx.Err() on cancellation.
func ClassifyBatch(ctx context.Context, reactions []Reaction, workers int, opts ...Option) ([]BatchResult, error) {
	if workers < 1 {
		return nil, fmt.Errorf("ClassifyBatch: workers %d < 1", workers)
	}
	out := make([]BatchResult, len(reactions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	launched := 0
	for i := range reactions {
		if gctx.Err() != nil {
			break
		}
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rx := reactions[i]
			res, err := Classify(rx.Reactants, rx.Products, opts...)
			out[i] = BatchResult{ID: rx.ID, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if launched < len(reactions) {
		return out, ctx.Err()
	}
	return out, nil
}
