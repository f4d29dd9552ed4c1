// Package analysis runs every pricekit component over one series and
// collects the results into a Report.
package analysis

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pricekit/closestpair"
	"github.com/katalvlaran/pricekit/internal/config"
	"github.com/katalvlaran/pricekit/maxrange"
	"github.com/katalvlaran/pricekit/mergesort"
	"github.com/katalvlaran/pricekit/series"
)

// Options tunes a single Analyze call.
type Options struct {
	Threshold      series.Threshold
	PointOrigin    int // x of the first (day, price) point
	ParallelCutoff int // 0 keeps sort and closest pair sequential
}

// DefaultOptions matches config.DefaultConfig.
func DefaultOptions() Options {
	return Options{
		Threshold:   series.DefaultThreshold(),
		PointOrigin: 1,
	}
}

// OptionsFromConfig maps the analysis and anomaly sections to Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	th, err := cfg.Anomaly.Threshold()
	if err != nil {
		return Options{}, fmt.Errorf("analysis: %w", err)
	}

	return Options{
		Threshold:      th,
		PointOrigin:    cfg.Analysis.PointOrigin,
		ParallelCutoff: cfg.Analysis.ParallelCutoff,
	}, nil
}

// GainPeriod is the holding period with the largest price increase:
// buy at the close of day Buy, sell at the close of day Sell.
type GainPeriod struct {
	Buy  int     `json:"buy"`
	Sell int     `json:"sell"`
	Gain float64 `json:"gain"`
}

// Report collects the results of every stage.
type Report struct {
	Values    []float64        `json:"values"`
	Sorted    []float64        `json:"sorted"`
	MaxRange  maxrange.Range   `json:"max_range"`
	MaxGain   *GainPeriod      `json:"max_gain,omitempty"` // nil for a single value
	Average   float64          `json:"average"`
	Threshold series.Threshold `json:"threshold"`
	Anomalies []series.Anomaly `json:"anomalies"`

	PointsByX   []closestpair.Point `json:"points_by_x"`
	PointsByY   []closestpair.Point `json:"points_by_y"`
	ClosestPair *closestpair.Pair   `json:"closest_pair,omitempty"` // nil below two points
}

// Analyze runs sort, max range, max gain, average, anomalies and closest pair
// over values. values is not modified.
func Analyze(values []float64, opts Options, log zerolog.Logger) (*Report, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("analysis: %w", series.ErrEmptySeries)
	}
	log.Debug().Int("values", len(values)).Int("parallel_cutoff", opts.ParallelCutoff).Msg("analysis started")

	rep := &Report{
		Values:    append([]float64(nil), values...),
		Threshold: opts.Threshold,
	}
	sortOpts := []mergesort.Option{mergesort.WithParallelCutoff(opts.ParallelCutoff)}

	var err error
	start := time.Now()
	if rep.Sorted, err = mergesort.Sort(values, sortOpts...); err != nil {
		return nil, fmt.Errorf("analysis: sort: %w", err)
	}
	start = stageDone(log, "sort", start)

	if rep.MaxRange, err = maxrange.MaxRange(values); err != nil {
		return nil, fmt.Errorf("analysis: max range: %w", err)
	}
	if len(values) > 1 {
		if rep.MaxGain, err = maxGain(values); err != nil {
			return nil, fmt.Errorf("analysis: max gain: %w", err)
		}
	}
	start = stageDone(log, "max_range", start)

	if rep.Average, err = series.Average(values); err != nil {
		return nil, fmt.Errorf("analysis: average: %w", err)
	}
	if rep.Anomalies, err = series.Anomalies(values, opts.Threshold); err != nil {
		return nil, fmt.Errorf("analysis: anomalies: %w", err)
	}
	start = stageDone(log, "anomalies", start)

	pts := series.Points(values, opts.PointOrigin)
	rep.PointsByX = mergesort.SortFunc(pts, func(a, b closestpair.Point) bool { return a.X < b.X }, sortOpts...)
	rep.PointsByY = mergesort.SortFunc(pts, func(a, b closestpair.Point) bool { return a.Y < b.Y }, sortOpts...)
	if len(pts) >= 2 {
		pair, err := closestpair.Find(pts, closestpair.WithParallelCutoff(opts.ParallelCutoff))
		if err != nil {
			return nil, fmt.Errorf("analysis: closest pair: %w", err)
		}
		rep.ClosestPair = &pair
	}
	stageDone(log, "closest_pair", start)

	log.Info().
		Int("values", len(values)).
		Float64("max_sum", rep.MaxRange.Sum).
		Int("anomalies", len(rep.Anomalies)).
		Msg("analysis complete")

	return rep, nil
}

// maxGain runs the max-range scan over day-over-day changes.
func maxGain(values []float64) (*GainPeriod, error) {
	changes, err := series.Changes(values)
	if err != nil {
		return nil, err
	}
	r, err := maxrange.MaxRange(changes)
	if err != nil {
		return nil, err
	}

	return &GainPeriod{Buy: r.Start, Sell: r.End + 1, Gain: r.Sum}, nil
}

// stageDone logs the elapsed time of a stage and returns the next start.
func stageDone(log zerolog.Logger, name string, start time.Time) time.Time {
	now := time.Now()
	log.Debug().Str("stage", name).Dur("elapsed", now.Sub(start)).Msg("stage complete")

	return now
}
