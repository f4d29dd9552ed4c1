package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pricekit/series"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete pricekit configuration.
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Anomaly  AnomalyConfig  `mapstructure:"anomaly"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// InputConfig selects where the series comes from.
type InputConfig struct {
	Path          string `mapstructure:"path"`           // .csv or .xlsx file; empty uses synthetic or demo data
	Column        string `mapstructure:"column"`         // header name of the price column
	Index         int    `mapstructure:"index"`          // zero-based column when Column is empty
	Sheet         string `mapstructure:"sheet"`          // workbook sheet, first sheet when empty
	SyntheticDays int    `mapstructure:"synthetic_days"` // >0 generates a GBM series instead of reading Path
	Seed          int64  `mapstructure:"seed"`           // seed for the synthetic series
}

// AnalysisConfig tunes the algorithms.
type AnalysisConfig struct {
	PointOrigin    int `mapstructure:"point_origin"`    // x of the first (day, price) point
	ParallelCutoff int `mapstructure:"parallel_cutoff"` // 0 keeps sort and closest pair sequential
}

// AnomalyConfig describes the average band.
type AnomalyConfig struct {
	Mode string  `mapstructure:"mode"` // absolute, relative
	Band float64 `mapstructure:"band"` // points (absolute) or fraction of the average (relative)
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	Output string `mapstructure:"output"` // stdout, stderr, file path
}

// Threshold converts the anomaly section into a series.Threshold.
func (a AnomalyConfig) Threshold() (series.Threshold, error) {
	mode, err := series.ParseThresholdMode(a.Mode)
	if err != nil {
		return series.Threshold{}, err
	}
	th := series.Threshold{Mode: mode, Band: a.Band}

	return th, th.Validate()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Index < 0 {
		return fmt.Errorf("input.index %d: %w", c.Input.Index, ErrInvalid)
	}
	if c.Input.SyntheticDays < 0 {
		return fmt.Errorf("input.synthetic_days %d: %w", c.Input.SyntheticDays, ErrInvalid)
	}
	if c.Analysis.ParallelCutoff < 0 {
		return fmt.Errorf("analysis.parallel_cutoff %d: %w", c.Analysis.ParallelCutoff, ErrInvalid)
	}
	if _, err := c.Anomaly.Threshold(); err != nil {
		return fmt.Errorf("anomaly: %w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "pretty":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}

	return nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			PointOrigin: 1,
		},
		Anomaly: AnomalyConfig{
			Mode: "absolute",
			Band: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}
