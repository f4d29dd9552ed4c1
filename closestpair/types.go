// SPDX-License-Identifier: MIT
// Package: pricekit/closestpair
//
// types.go - Point, Pair, the distance function, options and sentinel errors.

package closestpair

import (
	"errors"
	"math"
)

var (
	// ErrTooFewPoints indicates a point set with fewer than two points.
	ErrTooFewPoints = errors.New("closestpair: at least two points are required")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("closestpair: point has a non-finite coordinate")
)

// Point is a location in the plane. It has no identity beyond its coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pair is the closest pair found in a point set together with its distance.
type Pair struct {
	A        Point   `json:"a"`
	B        Point   `json:"b"`
	Distance float64 `json:"distance"`
}

// Dist returns the Euclidean distance between a and b. It goes through
// math.Hypot, so squaring large coordinate gaps cannot overflow to +Inf.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Option customizes Find and Distance.
type Option func(*config)

type config struct {
	parallelCutoff int // <= 0 keeps the recursion sequential
}

// WithParallelCutoff solves both halves concurrently whenever the current
// slice holds at least n points. n <= 0 disables it (the default).
func WithParallelCutoff(n int) Option {
	return func(c *config) {
		c.parallelCutoff = n
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
