package si

import (
	"fmt"
	"time"

	"github.com/sartorproj/gospei/dist"
	"github.com/sartorproj/gospei/internal/logging"
	"github.com/sartorproj/gospei/stats"
	"github.com/sartorproj/gospei/timeseries"
)

// Config holds the settings of an index computation.
type Config struct {
	Window        time.Duration       // Rolling window; 0 when the input is already aggregated
	MinPeriods    int                 // Minimum observations per window (default: Window/Unit)
	Unit          time.Duration       // Sampling unit of the input (default: one day)
	ZeroInflation stats.ZeroInflation // Treatment of the probability mass at zero
	Distribution  dist.Family         // Distribution fitted per group (default: gamma)
	Grouping      timeseries.Grouping // Periodic grouping key (default: month)
	Partial       bool                // Report unfittable groups instead of failing
	Name          string              // Name of the output series
	Logger        *logging.Logger     // Defaults to logging.Global()
}

// DefaultConfig returns the default configuration: gamma distribution fitted
// per calendar month to an already aggregated series, without zero inflation.
func DefaultConfig() *Config {
	return &Config{
		Unit:          timeseries.Day,
		ZeroInflation: stats.NoZeroInflation,
		Distribution:  dist.Gamma,
		Grouping:      timeseries.GroupMonth,
	}
}

// withDefaults returns a copy of c with empty fields filled in.
func (c Config) withDefaults() Config {
	if c.Unit <= 0 {
		c.Unit = timeseries.Day
	}
	if c.Distribution == "" {
		c.Distribution = dist.Gamma
	}
	if c.Grouping == "" {
		c.Grouping = timeseries.GroupMonth
	}
	if c.Window > 0 && c.MinPeriods == 0 {
		c.MinPeriods = int(c.Window / c.Unit)
	}
	if c.Logger == nil {
		c.Logger = logging.Global()
	}
	return c
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := dist.ParseFamily(string(c.Distribution)); err != nil {
		return err
	}
	if _, err := timeseries.ParseGrouping(string(c.Grouping)); err != nil {
		return err
	}
	switch c.ZeroInflation {
	case stats.NoZeroInflation, stats.ZeroInflationActive:
	default:
		return fmt.Errorf("unknown zero inflation mode %s", c.ZeroInflation)
	}
	if c.Window < 0 {
		return fmt.Errorf("window must not be negative, got %s", c.Window)
	}
	if c.Window == 0 {
		if c.MinPeriods != 0 {
			return fmt.Errorf("min periods %d set without a window", c.MinPeriods)
		}
		return nil
	}
	return c.window().Validate()
}

func (c *Config) window() timeseries.Window {
	return timeseries.Window{Length: c.Window, MinPeriods: c.MinPeriods, Unit: c.Unit}
}
