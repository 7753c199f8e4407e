// Command spei computes standardized drought indices (SPI, SPEI, SGI) from
// CSV time series.
//
// Usage:
//
//	spei spi  --input prec.csv --column prec --scale 1000 --window 30D --prob-zero
//	spei spei --input meteo.csv --prec-column prec --evap-column evap --window 90D
//	spei sgi  --input head.csv --column head --output sgi.csv
//
// Settings can also come from spei.yaml or SPEI_* environment variables,
// e.g. SPEI_INDEX_GROUPING=quarter.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gospei/internal/logging"
)

func main() {
	os.Exit(run(newRootCmd()))
}

// run executes cmd and returns the process exit code.
func run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		logging.Error("Command failed", "error", err)
		return 1
	}
	return 0
}
