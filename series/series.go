// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pricekit/closestpair"
)

// Points maps values[i] to the point (origin+i, values[i]).
// origin 1 numbers trading days from one.
func Points(values []float64, origin int) []closestpair.Point {
	pts := make([]closestpair.Point, len(values))
	for i, v := range values {
		pts[i] = closestpair.Point{X: float64(origin + i), Y: v}
	}

	return pts
}

// Changes returns the day-over-day differences values[i+1]-values[i].
// A maximum-sum range [s, e] over the changes is the holding period that buys
// on day s and sells on day e+1.
func Changes(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("Changes: got %d values: %w", len(values), ErrTooShort)
	}

	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = values[i+1] - values[i]
	}

	return out, nil
}

// Average returns the arithmetic mean of values.
func Average(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Average: %w", ErrEmptySeries)
	}

	return stat.Mean(values, nil), nil
}

// Anomalies returns, in index order, every value outside the band th builds
// around the series average.
func Anomalies(values []float64, th Threshold) ([]Anomaly, error) {
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("Anomalies: %w", err)
	}
	avg, err := Average(values)
	if err != nil {
		return nil, fmt.Errorf("Anomalies: %w", err)
	}

	band := th.Band
	if th.Mode == Relative {
		band *= math.Abs(avg)
	}
	lo, hi := avg-band, avg+band

	var out []Anomaly
	for i, v := range values {
		if v < lo || v > hi {
			out = append(out, Anomaly{Index: i, Value: v, Deviation: v - avg})
		}
	}

	return out, nil
}
