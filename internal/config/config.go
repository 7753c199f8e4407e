// Package config loads the settings of the spei command.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sartorproj/gospei/dist"
	"github.com/sartorproj/gospei/timeseries"
)

// Config represents the complete application configuration
type Config struct {
	Index   IndexConfig   `mapstructure:"index"`
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// IndexConfig holds the standardized index settings
type IndexConfig struct {
	Window       string `mapstructure:"window"`       // Rolling window, e.g. "30D"; empty when the input is already aggregated
	MinPeriods   int    `mapstructure:"min_periods"`  // Minimum observations per window (default: window length in days)
	ProbZero     bool   `mapstructure:"prob_zero"`    // Model the probability of zero separately
	Distribution string `mapstructure:"distribution"` // Distribution family; empty selects the index default
	Grouping     string `mapstructure:"grouping"`     // Periodic grouping key (default: month)
	Partial      bool   `mapstructure:"partial"`      // Keep going when some groups cannot be fitted
}

// InputConfig describes the CSV input
type InputConfig struct {
	Path       string  `mapstructure:"path"`
	Column     string  `mapstructure:"column"`      // Value column for spi and sgi
	PrecColumn string  `mapstructure:"prec_column"` // Precipitation column for spei
	EvapColumn string  `mapstructure:"evap_column"` // Evaporation column for spei
	DateColumn string  `mapstructure:"date_column"` // Date column (default: first column)
	Delimiter  string  `mapstructure:"delimiter"`
	Scale      float64 `mapstructure:"scale"` // Factor applied to every input value
	Start      string  `mapstructure:"start"` // Optional first date, YYYY-MM-DD
	End        string  `mapstructure:"end"`   // Optional last date, YYYY-MM-DD
}

// OutputConfig describes where results go
type OutputConfig struct {
	Path string `mapstructure:"path"` // Output CSV; empty or "-" writes to stdout
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json or console
	OutputPath string `mapstructure:"output_path"` // stderr, stdout or a file path
}

// Validate validates the complete configuration
func (c *Config) Validate() error {
	if err := c.Index.Validate(); err != nil {
		return fmt.Errorf("index config: %w", err)
	}

	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates index configuration
func (c *IndexConfig) Validate() error {
	if c.MinPeriods < 0 {
		return fmt.Errorf("invalid min_periods: %d", c.MinPeriods)
	}

	if c.Window != "" {
		length, err := timeseries.ParseWindow(c.Window)
		if err != nil {
			return err
		}
		if c.MinPeriods > 0 {
			if err := timeseries.NewWindow(length, c.MinPeriods).Validate(); err != nil {
				return err
			}
		}
	} else if c.MinPeriods > 0 {
		return fmt.Errorf("min_periods %d set without a window", c.MinPeriods)
	}

	if c.Distribution != "" {
		if _, err := dist.ParseFamily(c.Distribution); err != nil {
			return err
		}
	}

	if _, err := timeseries.ParseGrouping(c.Grouping); err != nil {
		return err
	}

	return nil
}

// Validate validates input configuration
func (c *InputConfig) Validate() error {
	if c.Delimiter != "" && utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}

	if c.Scale == 0 {
		return fmt.Errorf("scale must not be zero")
	}

	if _, err := c.Range(); err != nil {
		return err
	}

	return nil
}

// Range parses Start and End. Zero times mean unbounded.
func (c *InputConfig) Range() ([2]time.Time, error) {
	var r [2]time.Time
	for i, s := range []string{c.Start, c.End} {
		if s == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return r, fmt.Errorf("invalid date %q: %w", s, err)
		}
		r[i] = t
	}
	if !r[0].IsZero() && !r[1].IsZero() && r[1].Before(r[0]) {
		return r, fmt.Errorf("end %s is before start %s", c.End, c.Start)
	}
	return r, nil
}

// DelimiterRune returns the delimiter as a rune, defaulting to ','.
func (c *InputConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level: %s", c.Level)
	}

	switch c.Format {
	case "", "json", "console", "pretty":
	default:
		return fmt.Errorf("invalid format: %s", c.Format)
	}

	return nil
}
