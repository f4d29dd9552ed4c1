// SPDX-License-Identifier: MIT
// Package: pricekit/synth
//
// ohlc.go: GBM candles and the close-only shortcut.

package synth

import (
	"fmt"
	"math"
)

// OHLC holds one candle per trading day; all slices share one length.
type OHLC struct {
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64
}

// Len returns the number of days in o.
func (o OHLC) Len() int {
	return len(o.Close)
}

// BuildOHLC simulates days trading days and returns their candles.
//
// Complexity: O(days·steps) time, O(days) memory.
func BuildOHLC(days int, seed int64, opts ...Option) (OHLC, error) {
	if days < 1 {
		return OHLC{}, fmt.Errorf("BuildOHLC: days=%d: %w", days, ErrBadSize)
	}

	cfg := newGenConfig(opts...)
	rng := rngFor(cfg, seed)

	out := OHLC{
		Open:  make([]float64, days),
		High:  make([]float64, days),
		Low:   make([]float64, days),
		Close: make([]float64, days),
	}

	dt := 1.0 / float64(cfg.steps)
	drift := (cfg.drift - 0.5*cfg.vol*cfg.vol) * dt
	noise := cfg.vol * math.Sqrt(dt)

	price := cfg.start
	for d := 0; d < days; d++ {
		open := price
		high, low := open, open

		for s := 0; s < cfg.steps; s++ {
			price *= math.Exp(drift + noise*rng.NormFloat64())
			high = math.Max(high, price)
			low = math.Min(low, price)
		}

		out.Open[d] = open
		out.High[d] = high
		out.Low[d] = low
		out.Close[d] = price
	}

	return out, nil
}

// BuildCloses returns only the closing prices of BuildOHLC.
func BuildCloses(days int, seed int64, opts ...Option) ([]float64, error) {
	o, err := BuildOHLC(days, seed, opts...)
	if err != nil {
		return nil, err
	}

	return o.Close, nil
}
