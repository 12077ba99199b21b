// SPDX-License-Identifier: MIT

package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rxnclass/builder"
	"github.com/katalvlaran/rxnclass/internal/logging"
	"github.com/katalvlaran/rxnclass/reac"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{logging.FormatJSON, logging.FormatConsole, "other"} {
		path := filepath.Join(t.TempDir(), "log.txt")
		l, err := logging.New(logging.Config{Level: "debug", Format: format, OutputPaths: []string{path}})
		require.NoError(t, err, format)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
		l.Info("hello")
		_ = l.Sync()
	}

	l, err := logging.New(logging.Config{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New(logging.Config{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "log")}})
	require.Error(t, err)
}

func TestClassifierLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewFromCore(core)

	rcts := builder.MustReagents(builder.AlkylRadical(1, 0), builder.AlkylRadical(1, 0))
	prds := builder.MustReagents(builder.Alkane(2))
	_, err := reac.Classify(rcts, prds, reac.WithLogger(l))
	require.NoError(t, err)

	matched := logs.FilterMessage("reaction classified").All()
	require.Len(t, matched, 1)
	assert.Equal(t, "addition", matched[0].ContextMap()["class"])
	// trivial, migration and abstraction were tried before addition
	assert.Equal(t, 4, logs.FilterMessage("trying classifier").Len())
}
