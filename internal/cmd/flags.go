package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SpinningVinyl/xltools/internal/config"
)

// commonFlags registers the flags shared by both subcommands: column
// mapping, row bounds, output handling and the profile file.
func commonFlags(cmd *cobra.Command, opts *config.Options, profilePath *string, env *config.EnvDefaults) {
	f := cmd.Flags()

	f.StringVar(&opts.DestMatchColumn, "dest-match", env.DestMatchColumn,
		"column in the destination document used to match the content")
	f.StringVar(&opts.SourceMatchColumn, "source-match", env.SourceMatchColumn,
		"column in the source document used to match the content")
	f.StringVar(&opts.DestDataColumn, "dest-column", env.DestDataColumn,
		"column in the destination document which will be populated")
	f.StringVar(&opts.SourceDataColumn, "source-column", env.SourceDataColumn,
		"column in the source document used as the source of data")

	f.IntVar(&opts.DestMinRow, "dest-min-row", config.DefaultMinRow,
		"first row to update in the destination document")
	f.IntVar(&opts.DestMaxRow, "dest-max-row", config.UseSheetMaxRow,
		"last row to update in the destination document (-1: actual last row)")
	f.IntVar(&opts.SourceMinRow, "source-min-row", config.DefaultMinRow,
		"first row to read in the source document")
	f.IntVar(&opts.SourceMaxRow, "source-max-row", config.UseSheetMaxRow,
		"last row to read in the source document (-1: actual last row)")

	f.StringVarP(&opts.Output, "output", "o", "none",
		`output document ("none": overwrite the destination; bare -o: write <dest>_new.<ext>)`)
	f.Lookup("output").NoOptDefVal = ""

	f.BoolVarP(&opts.NoBackup, "no-backup", "n", false,
		"do not back up the destination document before overwriting it")
	f.BoolVar(&opts.Strict, "strict", false,
		"fail when the source contains duplicate match keys")
	f.StringVar(profilePath, "profile", "",
		"YAML profile file with option defaults for recurring runs")
}

// finishOptions applies the profile file (if any) on top of flag values and
// validates the result. Flags set explicitly on the command line always win
// over the profile.
func finishOptions(cmd *cobra.Command, opts *config.Options, profilePath string) error {
	if profilePath != "" {
		p, err := config.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		p.Apply(opts, cmd.Flags().Changed)
	}
	return opts.Validate()
}
