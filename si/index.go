package si

import (
	"time"

	"github.com/sartorproj/gospei/dist"
	"github.com/sartorproj/gospei/stats"
	"github.com/sartorproj/gospei/timeseries"
)

// SPI computes the Standardized Precipitation Index of a precipitation
// series. A nil cfg fits a gamma distribution per calendar month to the
// series as given.
//
//	prec30, _ := prec.RollingSum(timeseries.NewWindow(30*timeseries.Day, 30))
//	spi, err := si.SPI(prec30.DropNaN(), &si.Config{ZeroInflation: stats.ZeroInflationActive})
func SPI(series *timeseries.Series, cfg *Config) (*timeseries.Series, error) {
	return compute(series, cfg, dist.Gamma, "SPI")
}

// SPEI computes the Standardized Precipitation Evaporation Index of a
// climatic water balance (precipitation minus evaporation). The balance is
// usually negative in dry periods, so a nil cfg fits a Pearson type III
// distribution, which has unbounded support.
func SPEI(balance *timeseries.Series, cfg *Config) (*timeseries.Series, error) {
	return compute(balance, cfg, dist.Pearson3, "SPEI")
}

func compute(series *timeseries.Series, cfg *Config, family dist.Family, name string) (*timeseries.Series, error) {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.Distribution == "" {
		c.Distribution = family
	}
	if c.Name == "" {
		c.Name = name
	}

	engine, err := New(&c)
	if err != nil {
		return nil, err
	}
	result, err := engine.Compute(series)
	if err != nil {
		return nil, err
	}
	return result.Index, nil
}

// SGI computes the Standardized Groundwater Index of a head series.
//
// SGI is non-parametric: within each period group the observations are
// ranked, converted to Weibull plotting positions rank/(n+1) and mapped
// through the inverse standard normal. Distribution and ZeroInflation in
// cfg are ignored.
func SGI(head *timeseries.Series, cfg *Config) (*timeseries.Series, error) {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	c.Distribution = dist.Normal
	c.ZeroInflation = stats.NoZeroInflation
	if c.Name == "" {
		c.Name = "SGI"
	}

	engine, err := New(&c)
	if err != nil {
		return nil, err
	}
	prepared, err := engine.Prepare(head)
	if err != nil {
		return nil, err
	}
	return engine.normalScores(prepared), nil
}

// normalScores replaces every value by the normal score of its plotting
// position within its period group.
func (e *Engine) normalScores(series *timeseries.Series) *timeseries.Series {
	scores := make([]float64, series.Len())
	groups := series.GroupBy(e.cfg.Grouping)
	for _, key := range groups.Keys() {
		indices := groups[key]
		positions := stats.PlottingPositions(series.ValuesAt(indices))
		for j, idx := range indices {
			scores[idx] = stats.NormalQuantile(positions[j])
		}
	}

	e.logger.Info("Computed standardized index",
		"name", e.cfg.Name,
		"output", series.Len(),
		"groups", len(groups))

	timestamps := make([]time.Time, series.Len())
	copy(timestamps, series.Timestamps)
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     scores,
		Name:       e.cfg.Name,
	}
}
