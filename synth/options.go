// SPDX-License-Identifier: MIT
// Package: pricekit/synth
//
// options.go: functional options and the resolved generator config.

package synth

import (
	"errors"
	"math/rand"
)

// ErrBadSize indicates a requested series length below one day.
var ErrBadSize = errors.New("synth: days must be at least 1")

// Deterministic defaults.
const (
	defaultStart      = 100.0  // initial price S0
	defaultDrift      = 0.0005 // daily drift μ
	defaultVolatility = 0.02   // daily volatility σ
	defaultSteps      = 8      // intraday steps per day
)

// Option customizes a generator call.
type Option func(*genConfig)

// genConfig is the single source of truth for the generator knobs.
type genConfig struct {
	start float64
	drift float64
	vol   float64
	steps int
	rng   *rand.Rand // nil ⇒ local stream seeded by the call's seed
}

// WithStart sets the opening price of the first day. Panics if s0 <= 0.
func WithStart(s0 float64) Option {
	if s0 <= 0 {
		panic("synth: WithStart(s0<=0)")
	}
	return func(c *genConfig) {
		c.start = s0
	}
}

// WithDrift sets the daily drift μ. Any real value is accepted.
func WithDrift(mu float64) Option {
	return func(c *genConfig) {
		c.drift = mu
	}
}

// WithVolatility sets the daily volatility σ. Panics if sigma < 0;
// sigma == 0 gives a smooth exponential path.
func WithVolatility(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithVolatility(sigma<0)")
	}
	return func(c *genConfig) {
		c.vol = sigma
	}
}

// WithIntradaySteps sets the number of GBM steps per day. Panics if k < 1.
func WithIntradaySteps(k int) Option {
	if k < 1 {
		panic("synth: WithIntradaySteps(k<1)")
	}
	return func(c *genConfig) {
		c.steps = k
	}
}

// WithRand shares r across calls. Panics on nil. r is not goroutine-safe.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh stream seeded with seed; it overrides the seed
// argument of the builder.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newGenConfig applies opts in order (last wins) over the defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		start: defaultStart,
		drift: defaultDrift,
		vol:   defaultVolatility,
		steps: defaultSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFor prefers the configured stream and falls back to a local one.
func rngFor(cfg genConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
