// SPDX-License-Identifier: MIT
// Package: pricekit/mergesort
//
// errors.go - sentinel errors and method names used in wrapping.

package mergesort

import "errors"

var (
	// ErrNonFinite indicates a NaN or infinite value in the input series.
	ErrNonFinite = errors.New("mergesort: series contains a non-finite value")

	// ErrBadRange indicates SortRange bounds that do not describe a range of seq.
	ErrBadRange = errors.New("mergesort: malformed index range")
)

// Method names used as error context.
const (
	methodSort      = "Sort"
	methodSortRange = "SortRange"
)
