// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the rxnclass binary.
//
// Library packages take a *zap.Logger through their options and default to
// zap.NewNop(); only the binary constructs real loggers, through New.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config carries logger construction parameters.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string `yaml:"level" json:"level" mapstructure:"level"`

	// Format is json or console. Unknown values mean json.
	Format string `yaml:"format" json:"format" mapstructure:"format"`

	// OutputPaths defaults to stderr so that command output on stdout stays
	// machine readable.
	OutputPaths []string `yaml:"output_paths" json:"output_paths" mapstructure:"output_paths"`
}

// ParseLevel converts a level name to a zapcore.Level, case-insensitively.
// Unknown names yield InfoLevel.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger from cfg with ISO8601 timestamps under "ts".
func New(cfg Config) (*zap.Logger, error) {
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}

	encoding := FormatJSON
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Format == FormatConsole {
		encoding = FormatConsole
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Development:      encoding == FormatConsole,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger: %w", err)
	}
	return l, nil
}

// NewFromCore wraps an existing core, typically an observer in tests.
func NewFromCore(core zapcore.Core) *zap.Logger {
	return zap.New(core)
}
