// Package reconcile implements the matching engine: it builds a key-to-value
// index from a source table and sweeps a destination table row by row,
// resolving each row's value by exact key lookup or, in fuzzy mode, by a
// similarity-scored fallback. Changed cells are tagged with a background
// color stating how the value was resolved.
package reconcile

import (
	"fmt"

	"github.com/SpinningVinyl/xltools/internal/xlsx"
	"github.com/SpinningVinyl/xltools/pkg/fuzzy"
)

// Cell tag colors.
const (
	// ColorLiteralMatch marks cells updated through an exact key hit in
	// fuzzy mode.
	ColorLiteralMatch = "90EE90"
	// ColorFuzzyHighScore marks fuzzy updates scoring 99 or 100.
	ColorFuzzyHighScore = "FCE883"
	// ColorFuzzyLowScore marks fuzzy updates scoring below 99.
	ColorFuzzyLowScore = "FF91A4"
	// ColorDefaultHighlight is the exact-mode highlight when none is
	// configured explicitly.
	ColorDefaultHighlight = "FFFF00"
)

// Mode selects the lookup policy for a reconciliation pass.
type Mode int

const (
	// ModeExact resolves rows by exact key equality only, optionally
	// case-insensitive.
	ModeExact Mode = iota
	// ModeFuzzy tries an exact hit first and falls back to a scored sweep
	// over the whole index.
	ModeFuzzy
)

// Options configures a reconciliation pass over the destination table.
type Options struct {
	Mode        Mode
	MatchColumn int
	DestColumn  int
	MinRow      int
	MaxRow      int

	// CaseInsensitive folds destination keys the same way the index was
	// built. Exact mode only.
	CaseInsensitive bool

	// Highlight is the exact-mode tag color. Empty disables tagging.
	Highlight string

	// Threshold is the minimum fuzzy score accepted as a match.
	Threshold int

	// Scorer computes fuzzy similarity. Required in fuzzy mode.
	Scorer fuzzy.Scorer

	Progress Progress
}

// Summary reports what a reconciliation pass did.
type Summary struct {
	Rows           int
	LiteralUpdates int
	FuzzyUpdates   int
	Unchanged      int
}

// Reconcile sweeps destination rows MinRow..MaxRow, resolving values from
// the index and writing them in place. A cell already holding its resolved
// value is left untouched, including its tag, so re-running the pass is a
// no-op.
func Reconcile(dest Table, ix *Index, opts Options) (Summary, error) {
	var sum Summary
	for row := opts.MinRow; row <= opts.MaxRow; row++ {
		if opts.Progress != nil {
			opts.Progress(row)
		}
		sum.Rows++

		updated, err := reconcileRow(dest, ix, row, opts)
		if err != nil {
			return sum, err
		}
		switch updated {
		case outcomeLiteral:
			sum.LiteralUpdates++
		case outcomeFuzzy:
			sum.FuzzyUpdates++
		default:
			sum.Unchanged++
		}
	}
	return sum, nil
}

type outcome int

const (
	outcomeUnchanged outcome = iota
	outcomeLiteral
	outcomeFuzzy
)

func reconcileRow(dest Table, ix *Index, row int, opts Options) (outcome, error) {
	matchCell, err := dest.Cell(row, opts.MatchColumn)
	if err != nil {
		return outcomeUnchanged, fmt.Errorf("destination row %d: %w", row, err)
	}

	// Fuzzy mode keeps the key's case; the comparator tolerates it.
	key := NormalizeKey(matchCell.Raw, opts.Mode == ModeExact && opts.CaseInsensitive)

	if key != "" {
		if value, ok := ix.Lookup(key); ok {
			color := ColorLiteralMatch
			if opts.Mode == ModeExact {
				color = opts.Highlight
			}
			wrote, err := writeIfChanged(dest, row, opts.DestColumn, value, color)
			if err != nil {
				return outcomeUnchanged, err
			}
			if wrote {
				return outcomeLiteral, nil
			}
			return outcomeUnchanged, nil
		}
	}

	if opts.Mode != ModeFuzzy || ix.Len() == 0 {
		return outcomeUnchanged, nil
	}

	bestKey, bestScore := bestMatch(key, ix, opts.Scorer)
	if bestScore < opts.Threshold {
		return outcomeUnchanged, nil
	}
	value, _ := ix.Lookup(bestKey)

	color := ColorFuzzyLowScore
	if bestScore >= 99 {
		color = ColorFuzzyHighScore
	}
	wrote, err := writeIfChanged(dest, row, opts.DestColumn, value, color)
	if err != nil {
		return outcomeUnchanged, err
	}
	if wrote {
		return outcomeFuzzy, nil
	}
	return outcomeUnchanged, nil
}

// bestMatch scores key against every index key and returns the winner. On
// equal scores the later key displaces the earlier one, so ties resolve to
// the highest-scoring key closest to the end of the source range.
func bestMatch(key string, ix *Index, score fuzzy.Scorer) (string, int) {
	bestKey, bestScore := "", 0
	for _, candidate := range ix.Keys() {
		if s := score(key, candidate); s >= bestScore {
			bestKey, bestScore = candidate, s
		}
	}
	return bestKey, bestScore
}

// writeIfChanged writes value to (row, col) and tags the cell, skipping both
// when the cell already holds the value. An empty color disables tagging.
func writeIfChanged(dest Table, row, col int, value xlsx.Value, color string) (bool, error) {
	current, err := dest.Cell(row, col)
	if err != nil {
		return false, fmt.Errorf("destination row %d: %w", row, err)
	}
	if current.Raw == value.Raw {
		return false, nil
	}
	if err := dest.SetCell(row, col, value); err != nil {
		return false, fmt.Errorf("destination row %d: %w", row, err)
	}
	if color != "" {
		if err := dest.Highlight(row, col, color); err != nil {
			return false, fmt.Errorf("destination row %d: %w", row, err)
		}
	}
	return true, nil
}
