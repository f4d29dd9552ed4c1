// SPDX-License-Identifier: MIT
// Package: pricekit/maxrange
//
// types.go - Range result type and sentinel errors.

package maxrange

import "errors"

var (
	// ErrEmptySeries indicates a zero-length input; the maximum is undefined.
	ErrEmptySeries = errors.New("maxrange: series must be non-empty")

	// ErrNonFinite indicates a NaN or infinite value in the input.
	ErrNonFinite = errors.New("maxrange: series contains a non-finite value")
)

// Range is a maximum-sum contiguous sub-range of a series.
// Start and End are inclusive: 0 <= Start <= End < len(series).
type Range struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Sum   float64 `json:"sum"`
}

// Len returns the number of elements covered by r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}
