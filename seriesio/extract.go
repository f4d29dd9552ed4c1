// SPDX-License-Identifier: MIT

package seriesio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// extract pulls the selected column out of rows.
func extract(rows [][]string, opts Options) ([]float64, error) {
	if opts.Index < 0 && opts.Column == "" {
		return nil, fmt.Errorf("index %d: %w", opts.Index, ErrBadIndex)
	}

	col, body, err := locate(rows, opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(body))
	for i, row := range body {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		v, ok := parseNumber(cell)
		if !ok {
			line := i + 1 + len(rows) - len(body)
			return nil, fmt.Errorf("row %d: %q: %w", line, cell, ErrBadValue)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}

	return out, nil
}

// locate resolves the column index and the data rows following any header.
func locate(rows [][]string, opts Options) (int, [][]string, error) {
	if len(rows) == 0 {
		return 0, nil, ErrNoData
	}

	if opts.Column != "" {
		want := strings.ToLower(strings.TrimSpace(opts.Column))
		for i, h := range rows[0] {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				return i, rows[1:], nil
			}
		}

		return 0, nil, fmt.Errorf("%q: %w", opts.Column, ErrColumnNotFound)
	}

	first := rows[0]
	if opts.Index < len(first) {
		cell := strings.TrimSpace(first[opts.Index])
		if _, ok := parseNumber(cell); cell != "" && !ok {
			return opts.Index, rows[1:], nil // header row
		}
	}

	return opts.Index, rows, nil
}

// parseNumber accepts plain and thousands-separated finite numbers.
func parseNumber(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
