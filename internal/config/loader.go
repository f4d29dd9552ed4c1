package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PRICEKIT_ANOMALY_BAND=5.
const EnvPrefix = "PRICEKIT"

// Load loads configuration from configPath, or from pricekit.yaml in the
// usual locations when configPath is empty. A missing default file is not an
// error; environment variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		// An explicit path must exist; only the search locations are optional.
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("pricekit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/pricekit")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.column", d.Input.Column)
	v.SetDefault("input.index", d.Input.Index)
	v.SetDefault("input.sheet", d.Input.Sheet)
	v.SetDefault("input.synthetic_days", d.Input.SyntheticDays)
	v.SetDefault("input.seed", d.Input.Seed)

	v.SetDefault("analysis.point_origin", d.Analysis.PointOrigin)
	v.SetDefault("analysis.parallel_cutoff", d.Analysis.ParallelCutoff)

	v.SetDefault("anomaly.mode", d.Anomaly.Mode)
	v.SetDefault("anomaly.band", d.Anomaly.Band)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
}

// parseConfig unmarshals and validates.
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
