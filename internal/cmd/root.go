// Package cmd wires the xltools command line: the match (exact) and fuzzy
// (exact-then-fuzzy) subcommands, shared flag handling, and the run sequence
// around the reconciliation engine.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SpinningVinyl/xltools/internal/config"
	"github.com/SpinningVinyl/xltools/internal/logger"
)

var verbose bool

// NewRootCmd builds the xltools root command.
func NewRootCmd() *cobra.Command {
	env := config.LoadEnv()

	root := &cobra.Command{
		Use:   "xltools",
		Short: "Reconcile two Excel documents by matching their contents",
		Long: `xltools copies a data column from a source Excel document into a
destination document, pairing rows by a match column. The match subcommand
uses exact key lookups; the fuzzy subcommand falls back to similarity-scored
matching when no exact key exists. Changed cells are highlighted so copied
and inferred values can be audited.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := env.LogLevel
			if verbose {
				level = "debug"
			}
			logger.Init(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log every processed row")

	root.AddCommand(newMatchCmd(env))
	root.AddCommand(newFuzzyCmd(env))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
