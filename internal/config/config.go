// SPDX-License-Identifier: MIT

// Package config loads rxnclass settings from a YAML file, a .env file and
// RXNCLASS_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rxnclass/internal/logging"
)

// Output formats accepted by output.format.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full rxnclass configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log" yaml:"log" json:"log"`
	Classify ClassifyConfig `mapstructure:"classify" yaml:"classify" json:"classify"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache" json:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" json:"output"`
}

// ClassifyConfig controls batch classification.
type ClassifyConfig struct {
	Workers                int  `mapstructure:"workers" yaml:"workers" json:"workers"`
	Simple                 bool `mapstructure:"simple" yaml:"simple" json:"simple"`
	MaximumTrivialMatching bool `mapstructure:"maximum_trivial_matching" yaml:"maximum_trivial_matching" json:"maximum_trivial_matching"`
}

// CacheConfig enables the result cache when Dir is set.
type CacheConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

// MetricsConfig enables the textfile export when File is set.
type MetricsConfig struct {
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Classify.Workers < 1 {
		return fmt.Errorf("%w: classify.workers %d < 1", ErrInvalid, c.Classify.Workers)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
