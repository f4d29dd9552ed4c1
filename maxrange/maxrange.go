// SPDX-License-Identifier: MIT
// Package: pricekit/maxrange
//
// maxrange.go - maximum-sum contiguous sub-range in one left-to-right pass.
//
// Purpose:
//   - Find the period whose values add up to the largest total. Over daily
//     price changes this is the best buy/sell holding period.
//
// Contract:
//   - best.Sum starts at -Inf, so an all-negative series still yields the
//     single least negative element.
//   - The running sum is compared with strict '>' before it is reset, so the
//     first maximum reached wins ties.
//   - The running sum resets to 0 (and the run restarts at i+1) once it drops
//     below zero.
//   - O(n) time; O(1) memory; seq is never modified.

package maxrange

import (
	"fmt"
	"math"
)

// MaxRange returns the contiguous sub-range of seq with the largest sum.
// Among equal sums the one completed first during the scan is returned.
//
// Errors:
//   - ErrEmptySeries if seq is empty.
//   - ErrNonFinite if seq holds NaN or ±Inf.
func MaxRange(seq []float64) (Range, error) {
	if len(seq) == 0 {
		return Range{}, fmt.Errorf("MaxRange: %w", ErrEmptySeries)
	}

	best := Range{Sum: math.Inf(-1)}
	var (
		current      float64 // sum of the run ending at i
		currentStart int     // first index of that run
	)
	for i, v := range seq {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Range{}, fmt.Errorf("MaxRange: index %d: %w", i, ErrNonFinite)
		}

		current += v
		if current > best.Sum {
			best = Range{Start: currentStart, End: i, Sum: current}
		}
		// A negative prefix can only lower any later sum.
		if current < 0 {
			current = 0
			currentStart = i + 1
		}
	}

	return best, nil
}
