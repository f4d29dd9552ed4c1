// Command pricekit analyses a series of daily closing prices: sorted prices,
// the maximum-sum period, the largest gain, anomalies around the average and
// the closest pair of (day, price) points.
//
// Usage:
//
//	pricekit [-config pricekit.yaml] [-input prices.csv] [-column Close]
//	         [-sheet Sheet1] [-synthetic 250 -seed 7] [-json]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/pricekit/internal/analysis"
	"github.com/katalvlaran/pricekit/internal/config"
	"github.com/katalvlaran/pricekit/internal/logging"
	"github.com/katalvlaran/pricekit/seriesio"
	"github.com/katalvlaran/pricekit/synth"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

// demoSeries is analysed when neither an input file nor synthetic days are given.
var demoSeries = []float64{38, 27, 43, 3, 9, 82, 10}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "pricekit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("pricekit", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	input := fs.String("input", "", "CSV or XLSX file with closing prices")
	column := fs.String("column", "", "Header name of the price column")
	sheet := fs.String("sheet", "", "Workbook sheet (first sheet when empty)")
	synthetic := fs.Int("synthetic", 0, "Generate N synthetic trading days instead of reading a file")
	seed := fs.Int64("seed", 0, "Seed for the synthetic series")
	asJSON := fs.Bool("json", false, "Print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over file and environment, but only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "column":
			cfg.Input.Column = *column
		case "sheet":
			cfg.Input.Sheet = *sheet
		case "synthetic":
			cfg.Input.SyntheticDays = *synthetic
		case "seed":
			cfg.Input.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logCloser.Close() }()
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()
	logger.Info().Str("version", Version).Str("commit", GitCommit).Msg("pricekit starting")

	values, source, err := loadSeries(cfg.Input)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to load series")
		return err
	}
	logger.Info().Str("source", source).Int("values", len(values)).Msg("series loaded")

	opts, err := analysis.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	rep, err := analysis.Analyze(values, opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		return err
	}

	return writeReport(stdout, rep, *asJSON, logger)
}

// loadSeries picks the input file, then synthetic data, then the demo series.
func loadSeries(in config.InputConfig) ([]float64, string, error) {
	switch {
	case in.Path != "":
		values, err := seriesio.Load(in.Path, seriesio.Options{
			Column: in.Column,
			Index:  in.Index,
			Sheet:  in.Sheet,
		})
		return values, in.Path, err
	case in.SyntheticDays > 0:
		values, err := synth.BuildCloses(in.SyntheticDays, in.Seed)
		return values, "synthetic", err
	default:
		return append([]float64(nil), demoSeries...), "demo", nil
	}
}

func writeReport(w io.Writer, rep *analysis.Report, asJSON bool, logger zerolog.Logger) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		logger.Debug().Msg("report written as json")
		return nil
	}
	if err := rep.WriteText(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Debug().Msg("report written as text")

	return nil
}
