// SPDX-License-Identifier: MIT
// Package: pricekit/closestpair
//
// closestpair.go - divide-and-conquer closest pair of points in the plane.
//
// Purpose:
//   - Distance/Find return the minimum Euclidean distance (and its pair);
//     BruteForce is the O(n²) reference and the base case.
//
// Contract:
//   - px is sorted by (x, y) and every point carries its rank in px; py holds
//     the same points sorted by (y, rank).
//   - Split px at mid = n/2. py is partitioned by rank (ranks below that of
//     px[mid] go left) in one stable pass, so each half stays y-sorted and
//     matches its px half even when many points share the split x.
//   - d = min(dl, dr) with the left half winning ties. The strip keeps py
//     points with |x - mid.x| < d; each is compared with later strip points
//     while their y gap is below the current best. The strip replaces the
//     best only on a strictly smaller distance.
//   - Slices of at most three points are solved by allPairs.
//   - O(n log n) time; O(n log n) memory for the partitioned py slices.
//
// Concurrency:
//   - With WithParallelCutoff(n > 0), slices of at least n points solve the
//     left half in an errgroup goroutine. Halves share no mutable state.

package closestpair

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pricekit/mergesort"
)

// bruteForceLimit is the largest slice solved by comparing all pairs.
const bruteForceLimit = 3

// ranked is a point tagged with its position in the x-sorted order.
// Ranks give the y partition an exact, tie-free split rule.
type ranked struct {
	Point
	rank int
}

// Distance returns the minimum Euclidean distance between two points of points.
// Coincident points yield 0.
//
// Errors:
//   - ErrTooFewPoints if len(points) < 2.
//   - ErrNonFinite if a coordinate is NaN or ±Inf.
func Distance(points []Point, opts ...Option) (float64, error) {
	pair, err := Find(points, opts...)
	if err != nil {
		return 0, err
	}

	return pair.Distance, nil
}

// Find returns a closest pair of points together with its distance.
// When several pairs share the minimum distance the choice is deterministic.
//
// Errors are the same as for Distance.
func Find(points []Point, opts ...Option) (Pair, error) {
	if err := validate("Find", points); err != nil {
		return Pair{}, err
	}
	cfg := newConfig(opts...)

	px := mergesort.SortFunc(points, lessXY)
	rx := make([]ranked, len(px))
	for i, p := range px {
		rx[i] = ranked{Point: p, rank: i}
	}
	py := mergesort.SortFunc(rx, lessYRank)

	return solve(rx, py, cfg.parallelCutoff), nil
}

// BruteForce compares every pair of points: O(n²) time, O(1) memory.
//
// Errors are the same as for Distance.
func BruteForce(points []Point) (Pair, error) {
	if err := validate("BruteForce", points); err != nil {
		return Pair{}, err
	}

	return allPairs(len(points), func(i int) Point { return points[i] }), nil
}

// solve returns the closest pair of the slice px, given py holding the same
// points sorted by y. The ranks in px form one contiguous block.
func solve(px, py []ranked, cutoff int) Pair {
	n := len(px)
	if n <= bruteForceLimit {
		return allPairs(n, func(i int) Point { return px[i].Point })
	}

	mid := n / 2
	midPoint := px[mid]

	// Stable single-pass split: both halves stay sorted by y.
	pyl := make([]ranked, 0, mid)
	pyr := make([]ranked, 0, n-mid)
	for _, p := range py {
		if p.rank < midPoint.rank {
			pyl = append(pyl, p)
		} else {
			pyr = append(pyr, p)
		}
	}

	var left, right Pair
	if cutoff > 0 && n >= cutoff {
		var g errgroup.Group
		g.Go(func() error {
			left = solve(px[:mid], pyl, cutoff)
			return nil
		})
		right = solve(px[mid:], pyr, cutoff)
		_ = g.Wait() // branches never fail
	} else {
		left = solve(px[:mid], pyl, cutoff)
		right = solve(px[mid:], pyr, cutoff)
	}

	best := left
	if right.Distance < best.Distance {
		best = right
	}

	strip := make([]ranked, 0, n)
	for _, p := range py {
		if math.Abs(p.X-midPoint.X) < best.Distance {
			strip = append(strip, p)
		}
	}

	return closestInStrip(strip, best)
}

// closestInStrip improves best with pairs from the y-sorted strip. Each point
// is compared only with later points whose y gap is below the current best.
func closestInStrip(strip []ranked, best Pair) Pair {
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best.Distance; j++ {
			if d := Dist(strip[i].Point, strip[j].Point); d < best.Distance {
				best = Pair{A: strip[i].Point, B: strip[j].Point, Distance: d}
			}
		}
	}

	return best
}

// allPairs scans every pair among the n >= 2 points returned by at.
// best starts from the first real pair, so A and B are always input points.
func allPairs(n int, at func(int) Point) Pair {
	best := Pair{A: at(0), B: at(1)}
	best.Distance = Dist(best.A, best.B)
	for i := 0; i < n; i++ {
		a := at(i)
		for j := i + 1; j < n; j++ {
			if i == 0 && j == 1 {
				continue
			}
			b := at(j)
			if d := Dist(a, b); d < best.Distance {
				best = Pair{A: a, B: b, Distance: d}
			}
		}
	}

	return best
}

func validate(method string, points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%s: got %d points: %w", method, len(points), ErrTooFewPoints)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%s: point %d: %w", method, i, ErrNonFinite)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// lessXY orders points by x, then by y.
func lessXY(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}

// lessYRank orders ranked points by y, then by x-rank.
func lessYRank(a, b ranked) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.rank < b.rank
}
