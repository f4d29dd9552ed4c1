package seriesio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pricekit/seriesio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const pricesCSV = `date,open,close
2024-01-02,37.5,38
2024-01-03,38,27
2024-01-04,27,43
2024-01-05,43,"1,003.5"
`

// TestReadCSV_Selection covers header names, indices and header detection.
func TestReadCSV_Selection(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts seriesio.Options
		want []float64
	}{
		{
			name: "by header name",
			data: pricesCSV,
			opts: seriesio.Options{Column: "Close"},
			want: []float64{38, 27, 43, 1003.5},
		},
		{
			name: "by index with detected header",
			data: pricesCSV,
			opts: seriesio.Options{Index: 1},
			want: []float64{37.5, 38, 27, 43},
		},
		{
			name: "headerless single column",
			data: "38\n27\n43\n",
			want: []float64{38, 27, 43},
		},
		{
			name: "blank cells and short rows are skipped",
			data: "a,b\n1,2\n3\n, \n4,5\n",
			opts: seriesio.Options{Index: 1},
			want: []float64{2, 5},
		},
		{
			name: "negative and exponent values",
			data: "-1.5\n2e3\n",
			want: []float64{-1.5, 2000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seriesio.ReadCSV(strings.NewReader(tt.data), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestReadCSV_Errors checks the sentinel for each failure.
func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		opts    seriesio.Options
		wantErr error
	}{
		{name: "unknown column", data: pricesCSV, opts: seriesio.Options{Column: "volume"}, wantErr: seriesio.ErrColumnNotFound},
		{name: "bad cell", data: "price\n1\nabc\n", wantErr: seriesio.ErrBadValue},
		{name: "nan cell", data: "1\nNaN\n", wantErr: seriesio.ErrBadValue},
		{name: "empty input", data: "", wantErr: seriesio.ErrNoData},
		{name: "header only", data: "price\n", wantErr: seriesio.ErrNoData},
		{name: "negative index", data: "1\n", opts: seriesio.Options{Index: -1}, wantErr: seriesio.ErrBadIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seriesio.ReadCSV(strings.NewReader(tt.data), tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// writeWorkbook saves a one-sheet workbook with a header and the given closes.
func writeWorkbook(t *testing.T, sheet string, closes []float64) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	require.NoError(t, f.SetCellValue(sheet, "A1", "Day"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Close"))
	for i, c := range closes {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, i+1))
		cell, err = excelize.CoordinatesToCellName(2, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, c))
	}

	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

// TestReadXLSX reads a workbook by sheet and header.
func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Bulletin", []float64{38, 27, 43, 3.25})

	got, err := seriesio.ReadXLSX(path, seriesio.Options{Column: "close"})
	require.NoError(t, err)
	assert.Equal(t, []float64{38, 27, 43, 3.25}, got)

	got, err = seriesio.ReadXLSX(path, seriesio.Options{Sheet: "Bulletin", Index: 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	_, err = seriesio.ReadXLSX(path, seriesio.Options{Sheet: "Missing"})
	assert.Error(t, err)
}

// TestLoad dispatches on the file extension.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "prices.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte(pricesCSV), 0o600))
	got, err := seriesio.Load(csvPath, seriesio.Options{Column: "close"})
	require.NoError(t, err)
	assert.Equal(t, []float64{38, 27, 43, 1003.5}, got)

	xlsxPath := writeWorkbook(t, "Sheet1", []float64{1.5, 2.5})
	got, err = seriesio.Load(xlsxPath, seriesio.Options{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, got)

	_, err = seriesio.Load(filepath.Join(dir, "prices.json"), seriesio.Options{})
	assert.ErrorIs(t, err, seriesio.ErrUnsupportedFormat)

	_, err = seriesio.Load(filepath.Join(dir, "missing.csv"), seriesio.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
