// SPDX-License-Identifier: MIT

// Command frontierctl runs multi-frontier expansions over edge-list graphs.
//
//	frontierctl gen grid 10 10 > grid.txt
//	frontierctl run --graph grid.txt --seeds 0,0 --seeds 9,9 --policy path-potential
//	frontierctl compare --graph grid.txt --config sweep.yaml --format table
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("frontierctl %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("frontierctl %s-dev", version)
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	format   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "frontierctl",
		Short:         "Multi-frontier graph expansion: sample regions connecting seed nodes",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&g.format, "format", "json", "Output format: json|table")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(newRunCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newGenCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
