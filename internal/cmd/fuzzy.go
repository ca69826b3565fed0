package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SpinningVinyl/xltools/internal/config"
	"github.com/SpinningVinyl/xltools/internal/reconcile"
)

func newFuzzyCmd(env *config.EnvDefaults) *cobra.Command {
	var (
		opts        config.Options
		profilePath string
	)

	cmd := &cobra.Command{
		Use:   "fuzzy <dest> <source>",
		Short: "Match two Excel documents using fuzzy string matching",
		Long: `Fuzzy copies the source data column into the destination document,
pairing rows by exact key lookup first and falling back to similarity-scored
matching when no exact key exists. Cells updated through an exact hit are
highlighted light green; fuzzy hits are yellow when the score is 99 or
better and red otherwise, so inferred values stand out during review.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DestPath, opts.SourcePath = args[0], args[1]
			if err := finishOptions(cmd, &opts, profilePath); err != nil {
				return err
			}
			return runReconcile(&opts, reconcile.ModeFuzzy)
		},
	}

	commonFlags(cmd, &opts, &profilePath, env)
	cmd.Flags().IntVarP(&opts.Threshold, "threshold", "t", env.Threshold,
		"minimum score that will be considered a match")
	cmd.Flags().BoolVarP(&opts.Weighted, "weighted", "w", false,
		"use weighted ratio instead of simple ratio for calculating scores")

	return cmd
}
