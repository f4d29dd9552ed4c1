// SPDX-License-Identifier: MIT

// Package seriesio loads a numeric series from a column of a CSV file or an
// XLSX workbook sheet.
//
// Column selection:
//   - Options.Column names a header cell (case-insensitive, trimmed); the
//     first row is then the header.
//   - Otherwise Options.Index picks a zero-based column, and the first row is
//     treated as a header only when its cell does not parse as a number.
//
// Blank cells and rows too short to reach the column are skipped. Thousands
// separators ("1,234.5") are accepted. Non-numeric or non-finite cells stop
// the load with ErrBadValue.
package seriesio
