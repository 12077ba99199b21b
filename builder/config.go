// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig, its deterministic defaults and the options.

package builder

import "github.com/katalvlaran/rxnclass/molgraph"

// builderConfig holds the resolved options. Passed by value.
type builderConfig struct {
	// offset is the first key handed out.
	offset molgraph.Key

	// implicit folds hydrogens into Atom.ImplicitH instead of adding atoms.
	implicit bool
}

// BuilderOption customises a build.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithKeyOffset starts key numbering at k. Panics on a negative offset.
func WithKeyOffset(k molgraph.Key) BuilderOption {
	if k < 0 {
		panic("builder: WithKeyOffset(negative)")
	}
	return func(c *builderConfig) { c.offset = k }
}

// WithImplicitHydrogens records hydrogens as counts on their carbon.
func WithImplicitHydrogens() BuilderOption {
	return func(c *builderConfig) { c.implicit = true }
}
