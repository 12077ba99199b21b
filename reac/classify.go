// SPDX-License-Identifier: MIT
//
// File: classify.go
// Role: Dispatch table, Classify, ClassifySimple, ReverseClass.
// Determinism:
//   - The table order is fixed; the first non-empty Result wins.

package reac

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/rxnclass/formula"
	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/trans"
)

// Entry pairs a reaction class with the classifier detecting it.
type Entry struct {
	Class    trans.Class
	Classify Classifier
}

// table is the dispatch order used by Classify.
var table = [...]Entry{
	{trans.Trivial, TrivialReaction},
	{trans.HydrogenMigration, HydrogenMigration},
	{trans.HydrogenAbstraction, HydrogenAbstraction},
	{trans.Addition, Addition},
	{trans.BetaScission, BetaScission},
	{trans.Elimination, Elimination},
	{trans.Insertion, Insertion},
	{trans.Substitution, Substitution},
}

// Classifiers returns a copy of the dispatch table in priority order.
func Classifiers() []Entry {
	return append([]Entry(nil), table[:]...)
}

// IsValidReaction reports whether reactants and products have equal element
// totals.
func IsValidReaction(rcts, prds []*molgraph.Graph) bool {
	return formula.IsValidReaction(formula.OfEach(rcts), formula.OfEach(prds))
}

// Classify checks element balance, then runs the dispatch table and returns
// the first non-empty Result. An unclassifiable reaction yields an empty
// Result and a nil error.
//
// Errors:
//   - ErrInvalidReaction when element totals differ, naming both formulas.
//   - A classifier's ErrInvalidReagentSet, wrapped with "classify <class>".
//
// Complexity: the sum of the classifiers tried, at most eight; each logs at
// debug level through WithLogger.
func Classify(rcts, prds []*molgraph.Graph, opts ...Option) (Result, error) {
	if !IsValidReaction(rcts, prds) {
		return Result{}, errors.Wrapf(ErrInvalidReaction, "%v -> %v",
			formula.Strings(formula.OfEach(rcts)), formula.Strings(formula.OfEach(prds)))
	}
	o := newOptions(opts)
	for _, e := range table {
		o.logger.Debug("trying classifier", zap.Stringer("class", e.Class))
		res, err := e.Classify(rcts, prds, opts...)
		if err != nil {
			return Result{}, errors.Wrapf(err, "classify %s", e.Class)
		}
		if !res.Empty() {
			o.logger.Info("reaction classified",
				zap.Stringer("class", e.Class),
				zap.Int("transformations", len(res.Transformations)),
				zap.Ints("reactant_order", res.ReactantOrder),
				zap.Ints("product_order", res.ProductOrder))
			return res, nil
		}
	}
	o.logger.Debug("reaction not classified")
	return Result{}, nil
}

// Normalize returns explicit, stereo-free copies of graphs renumbered onto one
// disjoint key space starting at 0.
func Normalize(graphs []*molgraph.Graph) []*molgraph.Graph {
	out := make([]*molgraph.Graph, len(graphs))
	for i, g := range graphs {
		out[i] = g.Explicit().WithoutStereo()
	}
	out, _ = molgraph.StandardKeysForSequence(out)
	return out
}

// ClassifySimple normalises both lists with Normalize, classifies them and
// returns the class of the first transformation. ok is false when the
// reaction is not classified.
func ClassifySimple(rcts, prds []*molgraph.Graph, opts ...Option) (class trans.Class, ok bool, err error) {
	res, err := Classify(Normalize(rcts), Normalize(prds), opts...)
	if err != nil {
		return "", false, err
	}
	class, ok = res.Class()
	return class, ok, nil
}

// reverseClasses lists the classes with a known reverse.
var reverseClasses = map[trans.Class]trans.Class{
	trans.HydrogenMigration:   trans.HydrogenMigration,
	trans.HydrogenAbstraction: trans.HydrogenAbstraction,
	trans.Addition:            trans.BetaScission,
	trans.BetaScission:        trans.Addition,
}

// ReverseClass returns the class of the reverse reaction for hydrogen
// migration, hydrogen abstraction, addition and beta scission. Other classes
// report false.
func ReverseClass(c trans.Class) (trans.Class, bool) {
	r, ok := reverseClasses[c]
	return r, ok
}
