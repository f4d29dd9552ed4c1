// SPDX-License-Identifier: MIT
// Package: pricekit/mergesort
//
// types.go - functional options for every sort entry point.

package mergesort

// Option customizes a sort call.
type Option func(*config)

// config holds the resolved knobs of a single sort call.
type config struct {
	// parallelCutoff is the minimum sub-range length that sorts its halves
	// concurrently; values <= 0 keep the sort sequential.
	parallelCutoff int
}

// WithParallelCutoff enables fork-join sorting of both halves for every
// sub-range holding at least n elements. n <= 0 disables it (the default).
//
// Each branch works on disjoint slices of the data and of the scratch buffer,
// and a merge starts only after both halves are done, so the result is
// identical to the sequential sort.
func WithParallelCutoff(n int) Option {
	return func(c *config) {
		c.parallelCutoff = n
	}
}

// newConfig applies opts in order over the sequential defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
