// Package contract provides configuration and shared utilities for internal architecture.
package contract

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tgunes/sunseries/schema"
)

// Default values for configuration.
const (
	DefaultMonth     = "04"
	DefaultInputFile = "timeseri.csv"
	DefaultRankCount = 5
	DefaultPrecision = 2
	MaxRankCount     = 100
)

// Config holds the runtime configuration for one aggregation run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile string // Path to the time-series CSV export

	Month string // Fixed 2-digit month to match, e.g. "04"
	Day   string // Optional fixed 2-digit day, "" means any day in month
	Hours []int  // Allowed hours, ascending and deduplicated

	GroupBy schema.GroupBy // Aggregation key shape, set per command

	RankCount     int                  // Number of ranked entries to report
	RankDirection schema.RankDirection // peak (descending) or min (ascending)

	Precision  int               // Decimal precision for numeric columns
	Output     schema.OutputMode // text, csv, json or parquet
	OutputFile string            // Optional path to write output to
	Width      int               // Terminal width override (0 = auto-detect)

	Detail    bool // Echo sample parsed records for verification
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	Month      string `mapstructure:"month"`
	Day        string `mapstructure:"day"`
	Hours      string `mapstructure:"hours"`
	Direction  string `mapstructure:"direction"`
	Top        int    `mapstructure:"top"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Detail     bool   `mapstructure:"detail"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeFilter(cfg, input); err != nil {
		return err
	}
	if err := processHours(cfg, input); err != nil {
		return err
	}
	if err := processRanking(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-filter fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFileStr
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	return nil
}

// processTimeFilter validates the month and optional day selection.
func processTimeFilter(cfg *Config, input *ConfigRawInput) error {
	month, err := normalizeTwoDigit(input.Month, 1, 12)
	if err != nil {
		return fmt.Errorf("invalid month '%s': %w", input.Month, err)
	}
	cfg.Month = month

	if strings.TrimSpace(input.Day) == "" {
		cfg.Day = ""
		return nil
	}
	day, err := normalizeTwoDigit(input.Day, 1, 31)
	if err != nil {
		return fmt.Errorf("invalid day '%s': %w", input.Day, err)
	}
	cfg.Day = day
	return nil
}

// processHours resolves the allowed-hours policy. Accepts the named sets
// "representative" and "all", or an explicit comma-separated hour list.
func processHours(cfg *Config, input *ConfigRawInput) error {
	raw := strings.ToLower(strings.TrimSpace(input.Hours))

	if _, ok := schema.ValidHourSets[schema.HourSet(raw)]; ok {
		if schema.HourSet(raw) == schema.AllHourSet {
			cfg.Hours = slices.Clone(schema.AllHours)
		} else {
			cfg.Hours = slices.Clone(schema.RepresentativeHours)
		}
		return nil
	}

	seen := make(map[int]struct{})
	var hours []int
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("invalid hour '%s' in --hours: %w", part, err)
		}
		if h < 0 || h > 23 {
			return fmt.Errorf("hour %d in --hours is out of range 0-23", h)
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hours = append(hours, h)
	}
	if len(hours) == 0 {
		return fmt.Errorf("invalid --hours '%s'. must be 'representative', 'all' or a comma-separated hour list", input.Hours)
	}
	slices.Sort(hours)
	cfg.Hours = hours
	return nil
}

// processRanking validates the ranked-section parameters.
func processRanking(cfg *Config, input *ConfigRawInput) error {
	if input.Top <= 0 || input.Top > MaxRankCount {
		return fmt.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxRankCount, input.Top)
	}
	cfg.RankCount = input.Top

	cfg.RankDirection = schema.RankDirection(strings.ToLower(input.Direction))
	if _, ok := schema.ValidRankDirections[cfg.RankDirection]; !ok {
		return fmt.Errorf("invalid direction '%s'. must be peak or min", input.Direction)
	}
	return nil
}

// normalizeTwoDigit parses a 1-2 digit numeric string within [low, high]
// and returns it zero-padded to two digits, matching the timestamp layout.
func normalizeTwoDigit(s string, low, high int) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return "", fmt.Errorf("expected a 1-2 digit value")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return "", err
	}
	if v < low || v > high {
		return "", fmt.Errorf("value %d out of range %d-%d", v, low, high)
	}
	return fmt.Sprintf("%02d", v), nil
}
