package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tgunes/sunseries/core"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/internal/outwriter"
	"github.com/tgunes/sunseries/schema"
)

// peakCmd reports only the ranked hours by mean irradiance.
var peakCmd = &cobra.Command{
	Use:   "peak [csv-path]",
	Short: "Rank hours by mean irradiance, peak first or minimum first",
	Long: `Run the same per-hour aggregation as 'hours' and report only the ranked
entries by mean G(i).

Examples:
  # Top 5 April hours by mean irradiance
  sunseries peak timeseri.csv

  # The single best hour of April 15th
  sunseries peak timeseri.csv --day 15 --hours all --top 1

  # The weakest daylight hours
  sunseries peak timeseri.csv --direction min`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		cfg.GroupBy = schema.GroupByHour

		start := time.Now()
		report, err := core.Run(cfg)
		if err != nil {
			contract.LogFatal("Cannot run peak analysis", err)
		}
		if err := outwriter.WriteRanked(report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write peak results", err)
		}
	},
}
