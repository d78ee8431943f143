package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

// hoursCmd reports per-hour production averages across the filtered scope.
var hoursCmd = &cobra.Command{
	Use:   "hours [csv-path]",
	Short: "Report per-hour production averages for the selected month or day",
	Long: `Parse the time-series export, keep rows matching the configured month
(and optionally day), and report the mean of each measured column per UTC hour.

Examples:
  # April averages at the representative sampling hours (03 06 09 12 15)
  sunseries hours timeseri.csv

  # A single day, all 24 hours
  sunseries hours timeseri.csv --day 15 --hours all

  # June averages as CSV
  sunseries hours timeseri.csv --month 06 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runSeries(schema.GroupByHour); err != nil {
			contract.LogFatal("Cannot run hourly analysis", err)
		}
	},
}
