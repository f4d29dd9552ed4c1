// SPDX-License-Identifier: MIT

// Package series holds the caller-side helpers that sit around the
// algorithmic core: turning a price series into (day, price) points,
// day-over-day changes, the series average and the average-band anomaly scan.
//
// Anomaly policy is a parameter, not a constant. Two band shapes exist:
//
//	Absolute: value outside avg ± Band            (e.g. ±10 points)
//	Relative: value outside avg ± Band·|avg|      (e.g. ±30 %)
//
// Values exactly on a band edge are not anomalies.
package series
