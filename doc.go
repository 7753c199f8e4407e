// Package gospei computes standardized hydrological drought indices.
//
// GoSPEI turns precipitation, evaporation and groundwater-head time series
// into the Standardized Precipitation Index (SPI), the Standardized
// Precipitation Evaporation Index (SPEI) and the Standardized Groundwater
// Index (SGI). Observations are optionally accumulated over a rolling time
// window, a distribution is fitted per calendar period and every value is
// mapped to a quantile of the standard normal distribution.
//
// # Features
//
//   - Time-based rolling sums with a minimum number of observations
//   - Gamma, normal, log-normal, log-logistic (Fisk) and Pearson III fits
//   - Explicit zero-inflation handling for dry spells
//   - Grouping by month, quarter, ISO week or day of year, fitted in parallel
//   - Non-parametric SGI from Weibull plotting positions
//   - Kolmogorov-Smirnov goodness of fit per group
//   - CSV input and output, and the spei command line tool
//
// # Quick Start
//
// Compute a one-month SPI from daily precipitation in m/d:
//
//	prec, _ := timeseries.LoadCSV("prec.csv", nil)
//	spi, err := si.SPI(prec.Scale(1e3), &si.Config{
//	    Window:        30 * timeseries.Day,
//	    MinPeriods:    30,
//	    ZeroInflation: stats.ZeroInflationActive,
//	})
//
// Compute an SPEI from the water balance:
//
//	spei, err := si.SPEI(prec.Sub(evap), &si.Config{Window: 90 * timeseries.Day})
//
// # Packages
//
// The library is organized into the following packages:
//
//   - si: SPI, SPEI, SGI and the underlying Engine
//   - dist: Distribution families and their fitters
//   - stats: Zero inflation, inverse normal transform, ranks, goodness of fit
//   - timeseries: Time series data structures, CSV, rolling sums, grouping
//
// # References
//
//   - McKee, T. B., Doesken, N. J., & Kleist, J. (1993). The relationship of drought frequency and duration to time scales
//   - Vicente-Serrano, S. M., Beguería, S., & López-Moreno, J. I. (2010). A multiscalar drought index sensitive to global warming: the SPEI
//   - Bloomfield, J. P., & Marchant, B. P. (2013). Analysis of groundwater drought building on the standardised precipitation index approach
package gospei
