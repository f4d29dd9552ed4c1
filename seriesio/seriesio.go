// SPDX-License-Identifier: MIT

package seriesio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a series from path, choosing the reader by file extension
// (.csv or .xlsx).
func Load(path string, opts Options) ([]float64, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		defer f.Close()

		return ReadCSV(f, opts)
	case ".xlsx":
		return ReadXLSX(path, opts)
	default:
		return nil, fmt.Errorf("Load: %q: %w", ext, ErrUnsupportedFormat)
	}
}

// ReadCSV reads the selected column from CSV data. Rows may have differing
// field counts.
func ReadCSV(r io.Reader, opts Options) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	values, err := extract(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return values, nil
}

// ReadXLSX reads the selected column from a sheet of the workbook at path.
func ReadXLSX(path string, opts Options) ([]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: failed to open file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("ReadXLSX: %w", ErrNoData)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: sheet %q: %w", sheet, err)
	}

	values, err := extract(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: sheet %q: %w", sheet, err)
	}

	return values, nil
}
