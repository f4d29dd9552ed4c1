// SPDX-License-Identifier: MIT

package seriesio

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension Load does not handle.
	ErrUnsupportedFormat = errors.New("seriesio: unsupported file format")

	// ErrColumnNotFound indicates Options.Column is missing from the header.
	ErrColumnNotFound = errors.New("seriesio: column not found")

	// ErrBadValue indicates a cell that is not a finite number.
	ErrBadValue = errors.New("seriesio: cell is not a finite number")

	// ErrNoData indicates that the selected column holds no values.
	ErrNoData = errors.New("seriesio: no values in selected column")

	// ErrBadIndex indicates a negative Options.Index.
	ErrBadIndex = errors.New("seriesio: column index must be non-negative")
)

// Options selects the column (and, for workbooks, the sheet) to read.
type Options struct {
	// Column is a header name; when set it takes precedence over Index.
	Column string
	// Index is the zero-based column used when Column is empty.
	Index int
	// Sheet is the workbook sheet; empty means the first sheet. CSV ignores it.
	Sheet string
}
