// Package cmd defines the command-line interface for sunseries.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(peakCmd)
	rootCmd.AddCommand(clearskyCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("month", "m", contract.DefaultMonth, "2-digit month to analyze")
	rootCmd.PersistentFlags().StringP("day", "d", "", "Optional 2-digit day to analyze (empty = any day in month)")
	rootCmd.PersistentFlags().String("hours", string(schema.RepresentativeHourSet), "Allowed UTC hours: representative, all, or a comma-separated list")
	rootCmd.PersistentFlags().String("direction", string(schema.PeakDirection), "Ranking direction: peak or min")
	rootCmd.PersistentFlags().IntP("top", "n", contract.DefaultRankCount, "Number of ranked entries to report")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("detail", false, "Echo sample parsed records for verification")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of clearskyCmd to Viper
	clearskyCmd.Flags().Float64("lat", 0, "Site latitude in degrees (north positive)")
	clearskyCmd.Flags().Float64("lon", 0, "Site longitude in degrees (west negative)")
	clearskyCmd.Flags().Float64("elevation", 0, "Site elevation in meters")
	clearskyCmd.Flags().String("date", "", "Date in YYYY-MM-DD")
	clearskyCmd.Flags().String("time", "12:00", "UTC time in HH:MM")
	clearskyCmd.Flags().Float64("solar-constant", 1367, "Extraterrestrial solar constant in W/m2")
	clearskyCmd.Flags().Float64("pressure", 1013, "Sea level pressure in millibar")
	clearskyCmd.Flags().Float64("albedo", 0.2, "Ground reflectance (0-1)")
	clearskyCmd.Flags().Float64("ozone", 0.3, "Total column ozone in atm-cm")
	clearskyCmd.Flags().Float64("water", 1.5, "Precipitable water vapor in cm")
	clearskyCmd.Flags().Float64("aot500", 0.1, "Aerosol optical thickness at 500nm")
	clearskyCmd.Flags().Float64("aot380", 0.15, "Aerosol optical thickness at 380nm")
	if err := viper.BindPFlags(clearskyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding clearsky flags", err)
	}
}
