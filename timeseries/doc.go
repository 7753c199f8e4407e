// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing timestamped
// observations, along with functions for loading, aggregating and
// partitioning them before a standardized index is computed.
//
// # Creating a Series
//
// Create a daily time series from a slice:
//
//	values := []float64{1.2, 0, 0, 3.4, 0.8}
//	series := timeseries.NewDaily(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), values)
//
// Or with explicit, strictly increasing timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// Missing observations are represented as NaN.
//
// # Loading from CSV
//
// Load a named column from a semicolon-separated file whose first column
// holds the dates:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	opts.ValueColumn = "Prec [m/d] 081_JOURE"
//	prec, err := timeseries.LoadCSV("data.csv", opts)
//
// Missing values are dropped unless KeepMissing is set.
//
// # Rolling Windows
//
// Accumulate over a time-based window, as in a 30-day precipitation sum:
//
//	length, _ := timeseries.ParseWindow("30D")
//	rolled, err := prec.RollingSum(timeseries.NewWindow(length, 30))
//	rolled = rolled.DropNaN()
//
// A value at t sums the observations in (t-length, t]; windows with fewer
// than MinPeriods observations are NaN.
//
// # Grouping
//
// Partition a series by a periodic key:
//
//	groups := series.GroupBy(timeseries.GroupMonth)
//	for _, month := range groups.Keys() {
//	    values := series.ValuesAt(groups[month])
//	}
//
// # Transformations
//
//	mm := prec.Scale(1e3)             // m/d to mm/d
//	deficit := evap.Sub(prec)         // aligned on shared timestamps
//	subset := deficit.Between(from, to)
package timeseries
