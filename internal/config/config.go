// Package config holds the run configuration for both reconciliation modes:
// option defaults, validation, and output path resolution. Defaults layer as
// built-in < environment < profile file < explicit flags.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in defaults, matching the documented CLI surface.
const (
	DefaultDestMatchColumn   = "B"
	DefaultSourceMatchColumn = "W"
	DefaultDestDataColumn    = "G"
	DefaultSourceDataColumn  = "AE"
	DefaultMinRow            = 2
	DefaultThreshold         = 90
	DefaultHighlightColor    = "FFFF00"

	// UseSheetMaxRow in a max-row option means "use the sheet's actual last
	// row", resolved once the workbook is open.
	UseSheetMaxRow = -1
)

var rgbPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Options is the full configuration of one run.
type Options struct {
	DestPath   string
	SourcePath string

	// Output is the raw output option: "none" overwrites the destination in
	// place, "" derives <name>_new.<ext>, anything else is a path.
	Output string

	DestMatchColumn   string
	SourceMatchColumn string
	DestDataColumn    string
	SourceDataColumn  string

	DestMinRow   int
	DestMaxRow   int
	SourceMinRow int
	SourceMaxRow int

	// Exact mode.
	IgnoreCase bool
	// Highlight is a 6-hex-digit RGB color, or "" for no highlighting.
	Highlight string

	// Fuzzy mode.
	Threshold int
	Weighted  bool

	Strict   bool
	NoBackup bool
}

// IsValidColor reports whether rgb is a 6-hex-digit RGB string.
func IsValidColor(rgb string) bool {
	return rgbPattern.MatchString(rgb)
}

// Validate checks the options before any file is touched. Violations are
// fatal configuration errors.
func (o *Options) Validate() error {
	for _, c := range []struct{ name, letter string }{
		{"dest-match", o.DestMatchColumn},
		{"source-match", o.SourceMatchColumn},
		{"dest-column", o.DestDataColumn},
		{"source-column", o.SourceDataColumn},
	} {
		if strings.TrimSpace(c.letter) == "" {
			return fmt.Errorf("column option --%s must not be empty", c.name)
		}
	}
	if o.Highlight != "" && !IsValidColor(o.Highlight) {
		return fmt.Errorf("%s is not a valid RGB color", o.Highlight)
	}
	if o.Threshold < 0 || o.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", o.Threshold)
	}
	if o.DestMinRow < 1 || o.SourceMinRow < 1 {
		return fmt.Errorf("min rows must be 1 or greater")
	}
	if o.DestMaxRow != UseSheetMaxRow && o.DestMaxRow < o.DestMinRow {
		return fmt.Errorf("dest-max-row %d is below dest-min-row %d", o.DestMaxRow, o.DestMinRow)
	}
	if o.SourceMaxRow != UseSheetMaxRow && o.SourceMaxRow < o.SourceMinRow {
		return fmt.Errorf("source-max-row %d is below source-min-row %d", o.SourceMaxRow, o.SourceMinRow)
	}
	return nil
}

// OutputPath resolves the output option against the destination path.
func (o *Options) OutputPath() string {
	switch {
	case o.Output == "":
		return DerivedName(o.DestPath, "new")
	case strings.EqualFold(o.Output, "none"):
		return o.DestPath
	default:
		return o.Output
	}
}

// InPlace reports whether the run overwrites the destination file.
func (o *Options) InPlace() bool {
	return o.OutputPath() == o.DestPath
}

// DerivedName inserts _suffix before the file extension: "report.xlsx" with
// suffix "old" becomes "report_old.xlsx". Names without a dot get the suffix
// appended.
func DerivedName(fname, suffix string) string {
	lastDot := strings.LastIndex(fname, ".")
	if lastDot == -1 {
		return fname + "_" + suffix
	}
	return fname[:lastDot] + "_" + suffix + fname[lastDot:]
}
