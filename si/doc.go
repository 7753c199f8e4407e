// Package si computes standardized hydrological indices such as the
// Standardized Precipitation Index (SPI), the Standardized Precipitation
// Evaporation Index (SPEI) and the Standardized Groundwater Index (SGI).
//
// # Quick Start
//
//	prec, _ := timeseries.LoadCSV("prec.csv", nil)
//
//	spi, err := si.SPI(prec, &si.Config{
//	    Window:        30 * timeseries.Day,
//	    MinPeriods:    30,
//	    ZeroInflation: stats.ZeroInflationActive,
//	})
//
// # Engine
//
// SPI and SPEI are thin wrappers around Engine, which exposes the
// individual steps:
//
//	engine, _ := si.New(cfg)
//	prepared, _ := engine.Prepare(prec)        // aggregate, drop missing values
//	fitted, failed, _ := engine.Fit(prepared)  // one distribution per group
//	index, _ := engine.Apply(prepared, fitted) // map to standard normal
//
// Compute runs all three. Fitted distributions can be applied again to new
// observations of the same groups with Apply or Transform.
//
// # Zero Inflation
//
// Aggregated precipitation often contains exact zeros, which gamma and the
// other positive-support families cannot produce. With
// stats.ZeroInflationActive the distribution is fitted to the positive
// values only and a zero observation maps to the midpoint p0/2 of the zero
// mass, where p0 is the fraction of zeros in its group.
//
// # Errors
//
// Invalid input is reported with ErrInvalidInput. A group too small or too
// uniform to fit fails with a *GroupError wrapping ErrDegenerateSample; set
// Config.Partial to skip such groups instead.
package si
