// SPDX-License-Identifier: MIT

// Package closestpair computes the minimum Euclidean distance between any two
// points of a planar point set with the divide-and-conquer algorithm.
//
// What it does:
//
//	Points are sorted once by x (px) and once by y (py). Each recursive step
//	splits px at its midpoint, partitions py into the two halves in a single
//	stable pass (so both halves stay y-sorted), solves both halves and takes
//	d = min(dl, dr). Pairs crossing the dividing line can only lie in the
//	strip |x - mid.x| < d; walking the strip in y order, each point is
//	compared with the following points while their y gap stays below d,
//	which bounds the work to a constant number of candidates per point.
//	Slices of three points or fewer are solved by brute force.
//
// Key features:
//   - Distance  : minimum pairwise distance (the usual contract)
//   - Find      : the same, plus the pair of points that realizes it
//   - BruteForce: O(n²) reference over all pairs
//   - optional fork-join parallelism over the two halves (WithParallelCutoff)
//
// Guarantees:
//   - Exact and deterministic: identical inputs give bit-identical results,
//     with or without parallelism.
//   - Coincident points are allowed and yield distance 0.
//   - Points sharing one x coordinate still partition into equal halves.
//
// Errors:
//   - ErrTooFewPoints: fewer than two points (the minimum is undefined).
//   - ErrNonFinite   : a coordinate is NaN or ±Inf.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n) per recursion level for the y partitions and the strip.
//   - Depth:  O(log n) recursion.
package closestpair
