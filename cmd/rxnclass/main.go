// SPDX-License-Identifier: MIT

// Command rxnclass classifies elementary reactions given as molecular graphs.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rxnclass/internal/cli"
)

// Set with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
