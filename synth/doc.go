// SPDX-License-Identifier: MIT
// Package: pricekit/synth
//
// Package synth generates deterministic synthetic price series for
// fixtures, property tests and demos.
//
// Model:
//
//	Each trading day is simulated with a fixed number of intraday steps of a
//	discrete geometric Brownian motion,
//
//	  S_{t+1} = S_t · exp((μ − σ²/2)·Δt + σ·√Δt·Z),  Z ~ N(0,1),  Δt = 1/steps,
//
//	and summarized as an OHLC candle. The intraday path forms the wicks.
//
// Determinism:
//   - Same (days, seed, options) ⇒ identical output on every platform.
//   - WithRand / WithSeed share one stream across several calls; without them
//     the seed argument drives a local stream.
//
// Invariant per day: Low ≤ min(Open, Close) ≤ max(Open, Close) ≤ High.
//
// Options follow the functional-option policy: constructors panic on
// meaningless values (S0 ≤ 0, σ < 0, steps < 1, nil rand), builders never
// panic and report ErrBadSize for days < 1.
package synth
