package reconcile

import (
	"fmt"

	"github.com/SpinningVinyl/xltools/internal/xlsx"
)

// Table is the read/write surface the engine needs from a spreadsheet. The
// xlsx package provides the production implementation.
type Table interface {
	MaxRow() int
	Cell(row, col int) (xlsx.Value, error)
	SetCell(row, col int, v xlsx.Value) error
	Highlight(row, col int, rgb string) error
}

// Progress is invoked once per processed row. A nil hook is a no-op; the
// engine never depends on it.
type Progress func(row int)

// Index maps normalized match keys to payload values. Keys keep their source
// row order so fuzzy sweeps iterate deterministically; on duplicate keys the
// later row's payload wins while the key keeps its first position.
type Index struct {
	keys   []string
	values map[string]xlsx.Value
}

func newIndex() *Index {
	return &Index{values: make(map[string]xlsx.Value)}
}

func (ix *Index) put(key string, v xlsx.Value) {
	if _, ok := ix.values[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.values[key] = v
}

// Lookup returns the payload for key.
func (ix *Index) Lookup(key string) (xlsx.Value, bool) {
	v, ok := ix.values[key]
	return v, ok
}

// Keys returns the keys in source row order. The returned slice is shared;
// callers must not modify it.
func (ix *Index) Keys() []string {
	return ix.keys
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// IndexOptions configures a source table scan.
type IndexOptions struct {
	MatchColumn int
	DataColumn  int
	MinRow      int
	MaxRow      int

	// CaseInsensitive folds keys while normalizing. Leave false in fuzzy
	// mode, where keys keep their original case and the comparator absorbs
	// the difference.
	CaseInsensitive bool

	// Strict rejects duplicate normalized keys instead of letting the later
	// row win.
	Strict bool

	Progress Progress
}

// BuildIndex scans rows MinRow..MaxRow of the source table and returns the
// key-to-payload mapping. Payloads are copied verbatim from the data column;
// only keys are normalized.
func BuildIndex(src Table, opts IndexOptions) (*Index, error) {
	ix := newIndex()
	keyRows := make(map[string]int)

	for row := opts.MinRow; row <= opts.MaxRow; row++ {
		if opts.Progress != nil {
			opts.Progress(row)
		}

		matchCell, err := src.Cell(row, opts.MatchColumn)
		if err != nil {
			return nil, fmt.Errorf("source row %d: %w", row, err)
		}
		key := NormalizeKey(matchCell.Raw, opts.CaseInsensitive)

		if opts.Strict {
			if first, dup := keyRows[key]; dup {
				return nil, fmt.Errorf("duplicate match key %q in source rows %d and %d", key, first, row)
			}
			keyRows[key] = row
		}

		payload, err := src.Cell(row, opts.DataColumn)
		if err != nil {
			return nil, fmt.Errorf("source row %d: %w", row, err)
		}
		ix.put(key, payload)
	}
	return ix, nil
}
