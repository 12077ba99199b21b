// SPDX-License-Identifier: MIT

package reac

import (
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// Result is the outcome of a classifier.
type Result struct {
	// Transformations found, possibly several for symmetric sites.
	Transformations []trans.Transformation

	// ReactantOrder and ProductOrder index into the input lists. Both are nil
	// exactly when Transformations is empty.
	ReactantOrder []int
	ProductOrder  []int
}

// Empty reports whether no transformation was found.
func (r Result) Empty() bool { return len(r.Transformations) == 0 }

// Class returns the class of the first transformation, if any.
func (r Result) Class() (trans.Class, bool) {
	if r.Empty() {
		return "", false
	}
	return r.Transformations[0].Class(), true
}

// Classifier is the shape shared by every per-class classifier.
type Classifier func(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error)

// found builds a Result, or the empty Result when ts is empty.
func found(ts []trans.Transformation, rctOrder, prdOrder []int) Result {
	if len(ts) == 0 {
		return Result{}
	}
	return Result{Transformations: ts, ReactantOrder: rctOrder, ProductOrder: prdOrder}
}
