package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pricekit/internal/config"
	"github.com/katalvlaran/pricekit/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input:
  path: prices.xlsx
  column: Close
  sheet: Bulletin
analysis:
  point_origin: 0
  parallel_cutoff: 4096
anomaly:
  mode: relative
  band: 0.3
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prices.xlsx", cfg.Input.Path)
	assert.Equal(t, "Close", cfg.Input.Column)
	assert.Equal(t, "Bulletin", cfg.Input.Sheet)
	assert.Equal(t, 0, cfg.Analysis.PointOrigin)
	assert.Equal(t, 4096, cfg.Analysis.ParallelCutoff)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep defaults")

	th, err := cfg.Anomaly.Threshold()
	require.NoError(t, err)
	assert.Equal(t, series.Threshold{Mode: series.Relative, Band: 0.3}, th)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PRICEKIT_ANOMALY_BAND", "5")
	t.Setenv("PRICEKIT_INPUT_SYNTHETIC_DAYS", "30")

	cfg, err := config.Load(writeConfig(t, "anomaly:\n  band: 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Anomaly.Band)
	assert.Equal(t, 30, cfg.Input.SyntheticDays)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "negative index", mutate: func(c *config.Config) { c.Input.Index = -1 }},
		{name: "negative synthetic days", mutate: func(c *config.Config) { c.Input.SyntheticDays = -5 }},
		{name: "negative cutoff", mutate: func(c *config.Config) { c.Analysis.ParallelCutoff = -1 }},
		{name: "unknown anomaly mode", mutate: func(c *config.Config) { c.Anomaly.Mode = "sigma" }},
		{name: "negative band", mutate: func(c *config.Config) { c.Anomaly.Band = -1 }},
		{name: "unknown log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	assert.NoError(t, config.DefaultConfig().Validate())
}
