// Package xlsx wraps excelize with the narrow surface the reconciliation
// engine needs: open or create a workbook, address cells on the active sheet
// by (row, column), read and write scalar values, apply a solid background
// fill, and save.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Value is a scalar cell value. Raw holds the cell contents as text; Numeric
// marks values that should be written back as numbers so the copied cell
// keeps its native type.
type Value struct {
	Raw     string
	Numeric bool
}

// IsEmpty reports whether the cell had no content.
func (v Value) IsEmpty() bool {
	return v.Raw == ""
}

// Document is a single open workbook operating on its active sheet.
type Document struct {
	f      *excelize.File
	sheet  string
	styles map[string]int // fill color -> style ID
}

// Open loads the workbook at path. The active sheet at load time is the one
// all cell operations address.
func Open(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return wrap(f), nil
}

// New creates an empty single-sheet workbook in memory.
func New() *Document {
	return wrap(excelize.NewFile())
}

func wrap(f *excelize.File) *Document {
	return &Document{
		f:      f,
		sheet:  f.GetSheetName(f.GetActiveSheetIndex()),
		styles: make(map[string]int),
	}
}

// Sheet returns the name of the sheet being operated on.
func (d *Document) Sheet() string {
	return d.sheet
}

// MaxRow returns the highest row number containing data, 0 for an empty
// sheet.
func (d *Document) MaxRow() int {
	rows, err := d.f.GetRows(d.sheet)
	if err != nil {
		return 0
	}
	return len(rows)
}

// Cell reads the cell at (row, col). Rows and columns are 1-based.
func (d *Document) Cell(row, col int) (Value, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Value{}, fmt.Errorf("cell address (%d,%d): %w", row, col, err)
	}
	raw, err := d.f.GetCellValue(d.sheet, name)
	if err != nil {
		return Value{}, fmt.Errorf("read cell %s: %w", name, err)
	}
	return Value{Raw: raw, Numeric: d.isNumeric(name, raw)}, nil
}

// isNumeric detects number cells. Plain numeric cells carry no type
// attribute in the xlsx format, so an unset type with a parseable value
// counts as a number too.
func (d *Document) isNumeric(name, raw string) bool {
	if raw == "" {
		return false
	}
	typ, err := d.f.GetCellType(d.sheet, name)
	if err != nil {
		return false
	}
	switch typ {
	case excelize.CellTypeNumber:
		return true
	case excelize.CellTypeUnset:
		_, err := strconv.ParseFloat(raw, 64)
		return err == nil
	}
	return false
}

// SetCell writes v to the cell at (row, col), preserving numeric typing.
func (d *Document) SetCell(row, col int, v Value) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell address (%d,%d): %w", row, col, err)
	}
	if v.Numeric {
		if n, perr := strconv.ParseFloat(v.Raw, 64); perr == nil {
			if err := d.f.SetCellValue(d.sheet, name, n); err != nil {
				return fmt.Errorf("write cell %s: %w", name, err)
			}
			return nil
		}
	}
	if err := d.f.SetCellValue(d.sheet, name, v.Raw); err != nil {
		return fmt.Errorf("write cell %s: %w", name, err)
	}
	return nil
}

// Highlight applies a solid background fill to the cell at (row, col). Style
// IDs are cached per color so repeated tags reuse one style.
func (d *Document) Highlight(row, col int, rgb string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell address (%d,%d): %w", row, col, err)
	}
	styleID, ok := d.styles[rgb]
	if !ok {
		styleID, err = d.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "solid",
				Color:   []string{rgb},
				Pattern: 1,
			},
		})
		if err != nil {
			return fmt.Errorf("create fill style %s: %w", rgb, err)
		}
		d.styles[rgb] = styleID
	}
	if err := d.f.SetCellStyle(d.sheet, name, name, styleID); err != nil {
		return fmt.Errorf("style cell %s: %w", name, err)
	}
	return nil
}

// Save writes the workbook to path.
func (d *Document) Save(path string) error {
	if err := d.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// ParseColumn converts a column letter such as "A" or "AE" to its 1-based
// index.
func ParseColumn(letter string) (int, error) {
	col, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", letter, err)
	}
	return col, nil
}

// ColumnName converts a 1-based column index back to letter notation.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}
