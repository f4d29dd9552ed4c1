// SPDX-License-Identifier: MIT

// Package mergesort provides a stable top-down merge sort for numeric
// series and for arbitrary element types.
//
// What it does:
//
//	The index range [left, right] is split at mid = left + (right-left)/2,
//	both halves are sorted recursively and then merged through a scratch
//	buffer. On equal keys the left element is taken first, so the sort is
//	stable.
//
// Key features:
//   - Sort     : new sorted copy of a float64 series (input untouched)
//   - SortRange: in-place sort of seq[left..right], inclusive bounds
//   - SortFunc : generic stable sort with a caller-supplied less function
//   - optional fork-join parallelism (WithParallelCutoff) over disjoint halves
//
// Usage:
//
//	sorted, err := mergesort.Sort([]float64{38, 27, 43, 3, 9, 82, 10})
//	// sorted = [3 9 10 27 38 43 82]
//
// Errors:
//   - ErrNonFinite: NaN or ±Inf in the input (NaN has no total order).
//   - ErrBadRange : SortRange bounds outside the slice or left > right+1.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n) scratch, allocated once per call.
package mergesort
