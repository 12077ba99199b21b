// SPDX-License-Identifier: MIT

package reac

import "go.uber.org/zap"

// Option configures classification.
type Option func(*options)

type options struct {
	logger *zap.Logger

	// maximumTrivial selects maximum bipartite matching for the trivial test
	// instead of greedy first-match claiming.
	maximumTrivial bool
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes classifier diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaximumTrivialMatching makes the trivial test pair reactants with
// products by maximum bipartite matching. Since isomorphism is an equivalence
// relation both strategies accept the same reactions; the pairings they report
// may differ when a side holds several copies of one species.
func WithMaximumTrivialMatching() Option {
	return func(o *options) { o.maximumTrivial = true }
}
