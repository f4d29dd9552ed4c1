// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrEmptySeries indicates a zero-length input series.
	ErrEmptySeries = errors.New("series: series must be non-empty")

	// ErrTooShort indicates a series too short for the requested transform.
	ErrTooShort = errors.New("series: series is too short")

	// ErrBadThreshold indicates a negative band or an unknown threshold mode.
	ErrBadThreshold = errors.New("series: invalid anomaly threshold")
)

// ThresholdMode selects how the anomaly band is derived from the average.
type ThresholdMode int

const (
	// Absolute bands are avg ± Band.
	Absolute ThresholdMode = iota

	// Relative bands are avg ± Band·|avg|.
	Relative
)

// String implements fmt.Stringer.
func (m ThresholdMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("ThresholdMode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m ThresholdMode) MarshalText() ([]byte, error) {
	if m != Absolute && m != Relative {
		return nil, fmt.Errorf("mode %d: %w", int(m), ErrBadThreshold)
	}

	return []byte(m.String()), nil
}

// UnmarshalText accepts the names ParseThresholdMode accepts.
func (m *ThresholdMode) UnmarshalText(text []byte) error {
	mode, err := ParseThresholdMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}

// ParseThresholdMode maps "absolute" / "relative" (any case) to a mode.
func ParseThresholdMode(s string) (ThresholdMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute":
		return Absolute, nil
	case "relative":
		return Relative, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: %w", s, ErrBadThreshold)
	}
}

// Threshold describes the anomaly band around the series average.
type Threshold struct {
	Mode ThresholdMode `json:"mode"`
	Band float64       `json:"band"`
}

// DefaultThreshold is the ±10 point absolute band.
func DefaultThreshold() Threshold {
	return Threshold{Mode: Absolute, Band: 10}
}

// Validate reports ErrBadThreshold for unknown modes and for bands that are
// negative or not finite.
func (t Threshold) Validate() error {
	if t.Mode != Absolute && t.Mode != Relative {
		return fmt.Errorf("mode %v: %w", t.Mode, ErrBadThreshold)
	}
	if t.Band < 0 || math.IsNaN(t.Band) || math.IsInf(t.Band, 0) {
		return fmt.Errorf("band %v: %w", t.Band, ErrBadThreshold)
	}

	return nil
}

// Anomaly is a series value outside the threshold band.
type Anomaly struct {
	Index     int     `json:"index"`
	Value     float64 `json:"value"`
	Deviation float64 `json:"deviation"` // Value minus the series average
}
