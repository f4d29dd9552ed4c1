// SPDX-License-Identifier: MIT
// Package: pricekit/mergesort
//
// mergesort.go - stable top-down merge sort over float64 series and generic slices.
//
// Purpose:
//   - Sort returns a sorted copy; SortRange sorts seq[left..right] in place;
//     SortFunc sorts any element type with a caller-supplied less.
//   - One scratch buffer per call, split between the halves at every level.
//
// Contract:
//   - Halves are a[0..mid] and a[mid+1..n-1] with mid = (n-1)/2.
//   - merge takes the left head unless the right head is strictly less, so
//     equal keys keep their input order.
//   - Float entry points reject NaN and ±Inf before touching any data.
//   - O(n log n) time; O(n) extra memory.
//
// Concurrency:
//   - With WithParallelCutoff(n > 0), sub-ranges of at least n elements sort
//     their left half in an errgroup goroutine and their right half inline.
//     Both branches own disjoint slices of data and scratch; merge runs after
//     Wait, so output is identical to the sequential sort.

package mergesort

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Sort returns a new slice holding the values of seq in non-decreasing order.
// seq itself is not modified. An empty seq yields an empty, non-nil slice.
//
// Errors:
//   - ErrNonFinite if seq holds NaN or ±Inf.
//
// Complexity: O(n log n) time, O(n) memory.
func Sort(seq []float64, opts ...Option) ([]float64, error) {
	if err := checkFinite(seq, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSort, err)
	}

	out := make([]float64, len(seq))
	copy(out, seq)
	sortSlice(out, make([]float64, len(out)), lessFloat, newConfig(opts...).parallelCutoff)

	return out, nil
}

// SortRange sorts seq[left..right] (both bounds inclusive) in place and leaves
// the rest of seq untouched. left == right+1 denotes the empty range.
//
// Errors:
//   - ErrBadRange if left < 0, right >= len(seq) or left > right+1.
//   - ErrNonFinite if the range holds NaN or ±Inf.
func SortRange(seq []float64, left, right int, opts ...Option) error {
	if left < 0 || right >= len(seq) || left > right+1 {
		return fmt.Errorf("%s: [%d, %d] over length %d: %w", methodSortRange, left, right, len(seq), ErrBadRange)
	}
	if left > right {
		return nil
	}

	part := seq[left : right+1]
	if err := checkFinite(part, left); err != nil {
		return fmt.Errorf("%s: %w", methodSortRange, err)
	}
	sortSlice(part, make([]float64, len(part)), lessFloat, newConfig(opts...).parallelCutoff)

	return nil
}

// SortFunc returns a stably sorted copy of s ordered by less. Elements for
// which neither less(a, b) nor less(b, a) holds keep their relative order.
// less must describe a strict weak ordering; a nil less panics.
func SortFunc[T any](s []T, less func(a, b T) bool, opts ...Option) []T {
	if less == nil {
		panic("mergesort: SortFunc(nil less)")
	}

	out := make([]T, len(s))
	copy(out, s)
	sortSlice(out, make([]T, len(out)), less, newConfig(opts...).parallelCutoff)

	return out
}

// sortSlice sorts a in place, using buf (len(buf) >= len(a)) as scratch.
// The left half is a[0..mid], the right half a[mid+1..n-1].
func sortSlice[T any](a, buf []T, less func(a, b T) bool, cutoff int) {
	n := len(a)
	if n < 2 {
		return
	}
	mid := (n - 1) / 2

	left, right := a[:mid+1], a[mid+1:]
	leftBuf, rightBuf := buf[:mid+1], buf[mid+1:n]

	if cutoff > 0 && n >= cutoff {
		var g errgroup.Group
		g.Go(func() error {
			sortSlice(left, leftBuf, less, cutoff)
			return nil
		})
		sortSlice(right, rightBuf, less, cutoff)
		_ = g.Wait() // branches never fail
	} else {
		sortSlice(left, leftBuf, less, cutoff)
		sortSlice(right, rightBuf, less, cutoff)
	}

	merge(a, mid, buf[:n], less)
}

// merge combines the sorted runs a[0..mid] and a[mid+1..] through tmp.
// The left head is taken unless the right head is strictly smaller.
func merge[T any](a []T, mid int, tmp []T, less func(a, b T) bool) {
	i, j, k := 0, mid+1, 0
	for i <= mid && j < len(a) {
		if less(a[j], a[i]) {
			tmp[k] = a[j]
			j++
		} else {
			tmp[k] = a[i]
			i++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid+1])
	copy(tmp[k:], a[j:])

	copy(a, tmp)
}

func lessFloat(a, b float64) bool { return a < b }

// checkFinite reports the first NaN/Inf in seq; offset shifts the reported index.
func checkFinite(seq []float64, offset int) error {
	for i, v := range seq {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("index %d: %w", i+offset, ErrNonFinite)
		}
	}

	return nil
}
