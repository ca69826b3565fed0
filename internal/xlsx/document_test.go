package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		letter  string
		want    int
		wantErr bool
	}{
		{letter: "A", want: 1},
		{letter: "B", want: 2},
		{letter: "Z", want: 26},
		{letter: "AA", want: 27},
		{letter: "AE", want: 31},
		{letter: "", wantErr: true},
		{letter: "1", wantErr: true},
		{letter: "A1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			got, err := ParseColumn(tt.letter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.letter, ColumnName(got))
		})
	}
}

func TestCellRoundTrip(t *testing.T) {
	d := New()

	require.NoError(t, d.SetCell(1, 1, Value{Raw: "hello"}))
	require.NoError(t, d.SetCell(2, 2, Value{Raw: "100", Numeric: true}))

	v, err := d.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Raw)
	assert.False(t, v.IsEmpty())

	v, err = d.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "100", v.Raw)
	assert.True(t, v.Numeric)

	// Untouched cell reads back empty.
	v, err = d.Cell(5, 5)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestMaxRow(t *testing.T) {
	d := New()
	assert.Equal(t, 0, d.MaxRow())

	require.NoError(t, d.SetCell(1, 1, Value{Raw: "a"}))
	require.NoError(t, d.SetCell(7, 3, Value{Raw: "b"}))
	assert.Equal(t, 7, d.MaxRow())
}

func TestSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	d := New()
	require.NoError(t, d.SetCell(1, 1, Value{Raw: "persisted"}))
	require.NoError(t, d.SetCell(2, 1, Value{Raw: "42.5", Numeric: true}))
	require.NoError(t, d.Save(path))
	require.NoError(t, d.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "persisted", v.Raw)

	v, err = reopened.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "42.5", v.Raw)
	assert.True(t, v.Numeric, "number cell should keep its native type across save")
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	d := New()
	require.NoError(t, d.SetCell(2, 2, Value{Raw: "tagged"}))
	require.NoError(t, d.Highlight(2, 2, "FFFF00"))

	styleID, err := d.f.GetCellStyle(d.sheet, "B2")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	// Same color reuses the cached style.
	require.NoError(t, d.Highlight(3, 2, "FFFF00"))
	other, err := d.f.GetCellStyle(d.sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, styleID, other)

	// A different color gets its own style.
	require.NoError(t, d.Highlight(4, 2, "90EE90"))
	green, err := d.f.GetCellStyle(d.sheet, "B4")
	require.NoError(t, err)
	assert.NotEqual(t, styleID, green)
}
