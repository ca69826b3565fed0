package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SpinningVinyl/xltools/internal/config"
	"github.com/SpinningVinyl/xltools/internal/reconcile"
)

func newMatchCmd(env *config.EnvDefaults) *cobra.Command {
	var (
		opts        config.Options
		profilePath string
	)

	cmd := &cobra.Command{
		Use:   "match <dest> <source>",
		Short: "Match two Excel documents by exact key lookup",
		Long: `Match copies the source data column into the destination document for
every destination row whose match key exists verbatim in the source. With
--ignore-case, keys are compared after trimming whitespace and folding case.
Changed cells can be highlighted with a configurable color.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DestPath, opts.SourcePath = args[0], args[1]
			if err := finishOptions(cmd, &opts, profilePath); err != nil {
				return err
			}
			return runReconcile(&opts, reconcile.ModeExact)
		},
	}

	commonFlags(cmd, &opts, &profilePath, env)
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false,
		"ignore case and surrounding spaces when matching")
	cmd.Flags().StringVarP(&opts.Highlight, "color-highlight", "c", "",
		"background color for changed cells (bare -c: "+config.DefaultHighlightColor+")")
	cmd.Flags().Lookup("color-highlight").NoOptDefVal = config.DefaultHighlightColor

	return cmd
}
