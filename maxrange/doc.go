// SPDX-License-Identifier: MIT

// Package maxrange finds the contiguous, non-empty sub-range of a numeric
// series with the largest sum (Kadane's scan).
//
// Algorithm:
//
//	One left-to-right pass keeps the sum of the best run ending at i and the
//	index where that run started. After adding seq[i] the running sum is
//	compared with the best sum so far (strictly greater wins, so the first
//	maximum is kept); only afterwards a negative running sum is dropped and
//	the next run starts at i+1. The best sum starts at -Inf, so all-negative
//	series still report their least negative element.
//
// Usage:
//
//	r, err := maxrange.MaxRange([]float64{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	// r = {Start:3 End:6 Sum:6}
//
// Complexity: O(n) time, O(1) memory.
package maxrange
