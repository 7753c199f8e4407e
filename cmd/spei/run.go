package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gospei/dist"
	"github.com/sartorproj/gospei/internal/config"
	"github.com/sartorproj/gospei/internal/logging"
	"github.com/sartorproj/gospei/si"
	"github.com/sartorproj/gospei/stats"
	"github.com/sartorproj/gospei/timeseries"
)

func runIndex(cmd *cobra.Command, kind indexKind, configPath string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		return err
	}
	logging.SetGlobal(logger)

	series, err := loadInput(kind, &cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("Loaded input",
		"path", cfg.Input.Path,
		"observations", series.Count(),
		"min", series.Min(),
		"median", series.Median(),
		"max", series.Max())

	indexCfg, err := indexConfig(&cfg.Index, logger)
	if err != nil {
		return err
	}

	var index *timeseries.Series
	switch kind {
	case kindSPI:
		index, err = si.SPI(series, indexCfg)
	case kindSPEI:
		index, err = si.SPEI(series, indexCfg)
	case kindSGI:
		index, err = si.SGI(series, indexCfg)
	}
	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", kind, err)
	}
	logger.Info("Index summary",
		"index", index.Name,
		"values", index.Len(),
		"mean", index.Mean(),
		"std", index.Std())

	return writeOutput(cmd.OutOrStdout(), cfg.Output.Path, index)
}

// indexConfig converts the file/flag settings into an engine configuration.
func indexConfig(cfg *config.IndexConfig, logger *logging.Logger) (*si.Config, error) {
	out := &si.Config{
		MinPeriods: cfg.MinPeriods,
		Unit:       timeseries.Day,
		Partial:    cfg.Partial,
		Logger:     logger,
	}

	if cfg.Window != "" {
		window, err := timeseries.ParseWindow(cfg.Window)
		if err != nil {
			return nil, err
		}
		out.Window = window
	}

	if cfg.ProbZero {
		out.ZeroInflation = stats.ZeroInflationActive
	}

	if cfg.Distribution != "" {
		family, err := dist.ParseFamily(cfg.Distribution)
		if err != nil {
			return nil, err
		}
		out.Distribution = family
	}

	grouping, err := timeseries.ParseGrouping(cfg.Grouping)
	if err != nil {
		return nil, err
	}
	out.Grouping = grouping

	return out, nil
}

func loadInput(kind indexKind, cfg *config.InputConfig) (*timeseries.Series, error) {
	if cfg.Path == "" {
		return nil, errors.New("no input file given")
	}

	var (
		series *timeseries.Series
		err    error
	)
	if kind == kindSPEI {
		series, err = loadBalance(cfg)
	} else {
		series, err = loadColumn(cfg, cfg.Column)
	}
	if err != nil {
		return nil, err
	}

	r, err := cfg.Range()
	if err != nil {
		return nil, err
	}
	if !r[0].IsZero() || !r[1].IsZero() {
		from, to := r[0], r[1]
		if to.IsZero() && series.Len() > 0 {
			to = series.Timestamps[series.Len()-1]
		}
		series = series.Between(from, to)
	}
	return series, nil
}

// loadBalance loads precipitation and evaporation and returns their
// difference on the shared dates.
func loadBalance(cfg *config.InputConfig) (*timeseries.Series, error) {
	if cfg.PrecColumn == "" || cfg.EvapColumn == "" {
		return nil, errors.New("spei needs both --prec-column and --evap-column")
	}

	prec, err := loadColumn(cfg, cfg.PrecColumn)
	if err != nil {
		return nil, err
	}
	evap, err := loadColumn(cfg, cfg.EvapColumn)
	if err != nil {
		return nil, err
	}
	return prec.Sub(evap).Rename("balance"), nil
}

func loadColumn(cfg *config.InputConfig, column string) (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = cfg.DateColumn
	opts.ValueColumn = column
	opts.Delimiter = cfg.DelimiterRune()

	series, err := timeseries.LoadCSV(cfg.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.Path, err)
	}
	if cfg.Scale != 1 {
		series = series.Scale(cfg.Scale)
	}
	return series, nil
}

func writeOutput(stdout io.Writer, path string, index *timeseries.Series) error {
	if path == "" || path == "-" {
		return timeseries.WriteCSV(stdout, index)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := timeseries.WriteCSV(file, index); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return file.Close()
}
