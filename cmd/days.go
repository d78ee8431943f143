package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

// daysCmd reports per day-and-hour production averages for the whole month.
var daysCmd = &cobra.Command{
	Use:   "days [csv-path]",
	Short: "Report per day-and-hour production averages across the month",
	Long: `Parse the time-series export and report the mean of each measured column
per (day, hour) pair, one row per observed day and allowed hour.

Examples:
  # Full April breakdown at the representative sampling hours
  sunseries days timeseri.csv

  # Every hour of every April day
  sunseries days timeseri.csv --hours all`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runSeries(schema.GroupByDayHour); err != nil {
			contract.LogFatal("Cannot run daily analysis", err)
		}
	},
}
