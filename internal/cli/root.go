// SPDX-License-Identifier: MIT

// Package cli implements the rxnclass command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/rxnclass/internal/config"
	"github.com/katalvlaran/rxnclass/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the flags that are not configuration keys.
type rootOptions struct {
	configPath string
	envFiles   []string
}

// app carries the state shared by every command of one invocation.
type app struct {
	v         *viper.Viper
	cfg       *config.Config
	logger    *zap.Logger
	newLogger func(logging.Config) (*zap.Logger, error)
}

func newApp() *app {
	return &app{v: config.New(), logger: zap.NewNop(), newLogger: logging.New}
}

// NewRootCmd builds the command tree with a fresh configuration instance.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rxnclass",
		Short: "Classify elementary gas-phase reactions from molecular graphs",
		Long: "rxnclass reads reactions written as reactant and product molecular graphs\n" +
			"and reports their class (hydrogen abstraction, addition, beta scission,\n" +
			"migration, elimination, insertion, substitution) with the bonds formed\n" +
			"and broken.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default: ./.env if present)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.StringP("output", "o", config.DefaultOutputFormat, "output format (text, json, yaml)")
	mustBind(a.v, pf, map[string]string{
		"log.level":     "log-level",
		"log.format":    "log-format",
		"output.format": "output",
	})

	cmd.AddCommand(
		newClassifyCmd(a),
		newEnumerateCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	a := newApp()
	return execute(a, newRootCmd(a))
}

// execute runs cmd and flushes the logger whether or not the command failed.
func execute(a *app, cmd *cobra.Command) error {
	defer func() { _ = a.logger.Sync() }()
	return cmd.Execute()
}

// init loads the configuration and builds the logger.
func (a *app) init(opts *rootOptions) error {
	cfg, err := config.Load(a.v, opts.configPath, opts.envFiles...)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	logger, err := a.newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// mustBind binds configuration keys to flags of fs. Binding only fails on a
// nil flag, which is a programming error.
func mustBind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("cli: bind %s to --%s: %v", key, name, err))
		}
	}
}
