package main

import (
	"github.com/spf13/cobra"
)

// indexKind selects the index a subcommand computes.
type indexKind string

const (
	kindSPI  indexKind = "spi"
	kindSPEI indexKind = "spei"
	kindSGI  indexKind = "sgi"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "spei",
		Short: "Compute standardized drought indices from CSV time series",
		Long: `spei fits a distribution per period group to a hydrological time series
and maps every observation to a standard normal quantile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./spei.yaml or ./configs/spei.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	rootCmd.AddCommand(
		newIndexCmd(kindSPI, "Standardized Precipitation Index", &configPath),
		newIndexCmd(kindSPEI, "Standardized Precipitation Evaporation Index", &configPath),
		newIndexCmd(kindSGI, "Standardized Groundwater Index", &configPath),
	)

	return rootCmd
}

func newIndexCmd(kind indexKind, title string, configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: "Compute the " + title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, kind, *configPath)
		},
	}

	flags := cmd.Flags()
	flags.String("input", "", "input CSV file")
	flags.String("date-column", "", "date column (default: first column)")
	flags.String("delimiter", ",", "CSV field delimiter")
	flags.Float64("scale", 1, "factor applied to every input value, e.g. 1000 for m to mm")
	flags.String("start", "", "first date to use, YYYY-MM-DD")
	flags.String("end", "", "last date to use, YYYY-MM-DD")
	flags.String("output", "-", "output CSV file, - for stdout")
	flags.String("window", "", "rolling sum window, e.g. 30D; empty when the input is already aggregated")
	flags.Int("min-periods", 0, "minimum observations per window (default: window length in days)")
	flags.String("group", "month", "period grouping: month, quarter, week, dayofyear or none")

	if kind == kindSPEI {
		flags.String("prec-column", "", "precipitation column")
		flags.String("evap-column", "", "evaporation column")
	} else {
		flags.String("column", "", "value column (default: last column)")
	}
	if kind != kindSGI {
		flags.Bool("prob-zero", false, "model the probability of zero separately")
		flags.String("dist", "", "distribution: gamma, normal, lognormal, fisk or pearson3")
		flags.Bool("partial", false, "skip groups that cannot be fitted instead of failing")
	}

	return cmd
}
