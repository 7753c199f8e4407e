package si

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gospei/internal/logging"
	"github.com/sartorproj/gospei/stats"
	"github.com/sartorproj/gospei/timeseries"
)

// Engine computes a standardized index: it aggregates the input, fits one
// distribution per period group and maps every observation to a
// standard-normal quantile.
type Engine struct {
	cfg    Config
	logger *logging.Logger
}

// Result is the output of Engine.Compute.
type Result struct {
	Index  *timeseries.Series
	Fitted Distributions
	Failed map[int]error // Groups that could not be fitted; only set in partial mode
}

// New creates an engine. A nil cfg uses DefaultConfig.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := cfg.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid index config: %w", err)
	}

	return &Engine{
		cfg:    c,
		logger: c.Logger.With("dist", string(c.Distribution), "group", string(c.Grouping)),
	}, nil
}

// Config returns the effective configuration, with defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Prepare validates series, aggregates it over the configured window and
// drops missing observations. The input is not modified.
func (e *Engine) Prepare(series *timeseries.Series) (*timeseries.Series, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for i, v := range series.Values {
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: infinite value at %s", ErrInvalidInput,
				series.Timestamps[i].Format(time.DateOnly))
		}
	}

	prepared := series.DropNaN()
	if e.cfg.Window > 0 {
		rolled, err := prepared.RollingSum(e.cfg.window())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		prepared = rolled.DropNaN()
	}
	if prepared.Len() == 0 {
		return nil, fmt.Errorf("%w: no valid observations after aggregation", ErrInvalidInput)
	}

	if err := e.checkSupport(prepared); err != nil {
		return nil, err
	}
	return prepared, nil
}

func (e *Engine) checkSupport(series *timeseries.Series) error {
	for i, v := range series.Values {
		switch {
		case e.cfg.ZeroInflation.Active() && v < 0:
			return fmt.Errorf("%w: negative value %v at %s with zero inflation",
				ErrInvalidInput, v, series.Timestamps[i].Format(time.DateOnly))
		case !e.cfg.ZeroInflation.Active() && e.cfg.Distribution.PositiveSupport() && v <= 0:
			return fmt.Errorf("%w: non-positive value %v at %s; %s needs positive values or zero inflation",
				ErrInvalidInput, v, series.Timestamps[i].Format(time.DateOnly), e.cfg.Distribution)
		}
	}
	return nil
}

// Fit partitions a prepared series into period groups and fits the
// configured distribution to each of them in parallel.
//
// Groups that cannot be fitted are returned in failed, keyed by group. In
// partial mode these failures are not fatal; otherwise the failure of the
// lowest group key is returned as err.
func (e *Engine) Fit(series *timeseries.Series) (fitted Distributions, failed map[int]error, err error) {
	groups := series.GroupBy(e.cfg.Grouping)
	keys := groups.Keys()

	fits := make([]*Fitted, len(keys))
	errs := make([]error, len(keys))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, key := range keys {
		i := i
		values := series.ValuesAt(groups[key])
		g.Go(func() error {
			fits[i], errs[i] = e.fitGroup(values)
			return nil
		})
	}
	_ = g.Wait()

	fitted = make(Distributions, len(keys))
	failed = make(map[int]error)
	for i, key := range keys {
		if errs[i] != nil {
			failed[key] = &GroupError{Group: key, Err: errs[i]}
			continue
		}
		fitted[key] = fits[i]
		e.logger.Debug("Fitted group",
			"key", key,
			"n", fits[i].N,
			"n_fit", fits[i].NFit,
			"p0", fits[i].ZeroProbability,
			"params", fits[i].Distribution.Params())
	}

	if len(failed) == 0 {
		return fitted, nil, nil
	}
	if !e.cfg.Partial || len(fitted) == 0 {
		for _, key := range keys {
			if cause, ok := failed[key]; ok {
				return nil, failed, cause
			}
		}
	}

	e.logger.Warn("Skipping groups that could not be fitted",
		"failed", len(failed),
		"fitted", len(fitted))
	return fitted, failed, nil
}

func (e *Engine) fitGroup(values []float64) (*Fitted, error) {
	p0, nonzero := e.cfg.ZeroInflation.Split(values)
	d, err := e.cfg.Distribution.Fit(nonzero)
	if err != nil {
		return nil, err
	}

	return &Fitted{
		Distribution:    d,
		Zero:            e.cfg.ZeroInflation,
		ZeroProbability: p0,
		N:               len(values),
		NFit:            len(nonzero),
		GoodnessOfFit:   stats.KolmogorovSmirnov(nonzero, d.CDF),
	}, nil
}

// Apply maps every observation of series to its standardized index using
// fitted. Missing observations produce no output. In partial mode,
// observations of unfitted groups are skipped as well.
func (e *Engine) Apply(series *timeseries.Series, fitted Distributions) (*timeseries.Series, error) {
	timestamps := make([]time.Time, 0, series.Len())
	values := make([]float64, 0, series.Len())

	for i, t := range series.Timestamps {
		v := series.Values[i]
		if math.IsNaN(v) {
			continue
		}
		key := e.cfg.Grouping.Key(t)
		if e.cfg.Partial && fitted[key] == nil {
			continue
		}
		z, err := Transform(v, key, fitted)
		if err != nil {
			return nil, err
		}
		timestamps = append(timestamps, t)
		values = append(values, z)
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       e.cfg.Name,
	}, nil
}

// Compute runs Prepare, Fit and Apply.
func (e *Engine) Compute(series *timeseries.Series) (*Result, error) {
	start := time.Now()

	prepared, err := e.Prepare(series)
	if err != nil {
		return nil, err
	}
	fitted, failed, err := e.Fit(prepared)
	if err != nil {
		return nil, err
	}
	index, err := e.Apply(prepared, fitted)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Computed standardized index",
		"name", e.cfg.Name,
		"input", series.Len(),
		"output", index.Len(),
		"groups", len(fitted),
		"duration", time.Since(start))

	return &Result{
		Index:  index,
		Fitted: fitted,
		Failed: failed,
	}, nil
}
