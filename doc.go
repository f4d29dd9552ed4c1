// SPDX-License-Identifier: MIT

// Package pricekit is a small toolkit for analysing daily closing prices
// with classic divide-and-conquer and linear-scan algorithms.
//
// What is inside?
//
//	mergesort/    stable top-down merge sort (float64 and generic), optional fork-join
//	maxrange/     maximum-sum contiguous period (single linear scan)
//	closestpair/  closest pair of points in the plane, O(n log n)
//	series/       day points, day-over-day changes, average and anomaly band
//	synth/        deterministic GBM OHLC and close generator for tests and demos
//	seriesio/     CSV and XLSX loaders for a price column
//
// The cmd/pricekit command wires them together: it loads a series (file,
// synthetic or the built-in demo), runs every analysis and prints a text or
// JSON report. Configuration comes from pricekit.yaml and PRICEKIT_*
// environment variables; logs are structured.
//
// Algorithms never log and never panic on user input. Invalid input is
// reported through package-level sentinel errors, so callers branch with
// errors.Is:
//
//	sorted, err := mergesort.Sort(prices)
//	if errors.Is(err, mergesort.ErrNonFinite) {
//		// NaN or Inf in the input
//	}
//
// Results are deterministic: the same input (and seed, for synth) always
// yields the same output, sequential or parallel.
package pricekit
