package cmd

import (
	"fmt"

	"github.com/SpinningVinyl/xltools/internal/config"
	"github.com/SpinningVinyl/xltools/internal/logger"
	"github.com/SpinningVinyl/xltools/internal/reconcile"
	"github.com/SpinningVinyl/xltools/internal/xlsx"
	"github.com/SpinningVinyl/xltools/pkg/fuzzy"
)

// runReconcile executes one reconciliation run: back up if overwriting in
// place, open both workbooks, build the source index, sweep the destination
// rows and save the result.
func runReconcile(opts *config.Options, mode reconcile.Mode) error {
	cols, err := parseColumns(opts)
	if err != nil {
		return err
	}

	outputPath := opts.OutputPath()
	if opts.InPlace() && !opts.NoBackup {
		backupPath := config.DerivedName(opts.DestPath, "old")
		if err := copyFile(opts.DestPath, backupPath); err != nil {
			return fmt.Errorf("back up destination document: %w", err)
		}
		logger.Info("Backed up destination document to %s", backupPath)
	}

	source, err := xlsx.Open(opts.SourcePath)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := xlsx.Open(opts.DestPath)
	if err != nil {
		return err
	}
	defer dest.Close()

	announceRun(opts, mode)

	sourceMaxRow := opts.SourceMaxRow
	if sourceMaxRow == config.UseSheetMaxRow {
		sourceMaxRow = source.MaxRow()
	}
	destMaxRow := opts.DestMaxRow
	if destMaxRow == config.UseSheetMaxRow {
		destMaxRow = dest.MaxRow()
	}
	logger.Info("Source document: using rows %d to %d", opts.SourceMinRow, sourceMaxRow)
	logger.Info("Destination document: using rows %d to %d", opts.DestMinRow, destMaxRow)

	index, err := reconcile.BuildIndex(source, reconcile.IndexOptions{
		MatchColumn:     cols.sourceMatch,
		DataColumn:      cols.sourceData,
		MinRow:          opts.SourceMinRow,
		MaxRow:          sourceMaxRow,
		CaseInsensitive: mode == reconcile.ModeExact && opts.IgnoreCase,
		Strict:          opts.Strict,
		Progress: func(row int) {
			logger.Debug("Source document: reading row %d", row)
		},
	})
	if err != nil {
		return err
	}
	logger.Info("Source document: indexed %d keys", index.Len())

	summary, err := reconcile.Reconcile(dest, index, reconcile.Options{
		Mode:            mode,
		MatchColumn:     cols.destMatch,
		DestColumn:      cols.destData,
		MinRow:          opts.DestMinRow,
		MaxRow:          destMaxRow,
		CaseInsensitive: opts.IgnoreCase,
		Highlight:       opts.Highlight,
		Threshold:       opts.Threshold,
		Scorer:          fuzzy.ScorerFor(opts.Weighted),
		Progress: func(row int) {
			logger.Debug("Destination document: updating row %d", row)
		},
	})
	if err != nil {
		return err
	}
	logger.Info("Destination document: %d rows processed, %d literal updates, %d fuzzy updates, %d unchanged",
		summary.Rows, summary.LiteralUpdates, summary.FuzzyUpdates, summary.Unchanged)

	logger.Info("Saving file: %s", outputPath)
	return dest.Save(outputPath)
}

type columns struct {
	destMatch   int
	sourceMatch int
	destData    int
	sourceData  int
}

func parseColumns(opts *config.Options) (columns, error) {
	var cols columns
	var err error
	if cols.destMatch, err = xlsx.ParseColumn(opts.DestMatchColumn); err != nil {
		return cols, err
	}
	if cols.sourceMatch, err = xlsx.ParseColumn(opts.SourceMatchColumn); err != nil {
		return cols, err
	}
	if cols.destData, err = xlsx.ParseColumn(opts.DestDataColumn); err != nil {
		return cols, err
	}
	if cols.sourceData, err = xlsx.ParseColumn(opts.SourceDataColumn); err != nil {
		return cols, err
	}
	return cols, nil
}

func announceRun(opts *config.Options, mode reconcile.Mode) {
	if mode == reconcile.ModeExact {
		if opts.Highlight != "" {
			logger.Info("Changed cells will be highlighted, color: %s", opts.Highlight)
		} else {
			logger.Info("Changed cells will NOT be highlighted")
		}
		if opts.IgnoreCase {
			logger.Info("Case-insensitive match requested")
		} else {
			logger.Info("Case-sensitive match requested")
		}
		return
	}
	logger.Info("Minimum score that will be considered a match: %d", opts.Threshold)
	if opts.Weighted {
		logger.Info("Using weighted ratio to calculate scores")
	} else {
		logger.Info("Using simple ratio to calculate scores")
	}
}
