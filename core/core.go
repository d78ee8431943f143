package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

// Run reads the configured input file and executes the full aggregation
// pipeline. A missing or unreadable file is the only real error; an empty
// data scope produces a valid, near-empty report.
func Run(cfg *contract.Config) (*schema.Report, error) {
	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file %q: %w", cfg.InputFile, err)
	}
	return RunLines(strings.Split(string(data), "\n"), cfg)
}

// RunLines executes the pipeline over pre-split lines: locate the data
// section, parse and filter rows, group and aggregate, rank by mean
// irradiance, and assemble the report. Every stage is a pure
// transformation, so re-running over the same lines yields an identical
// report.
func RunLines(lines []string, cfg *contract.Config) (*schema.Report, error) {
	filter, err := NewRecordFilter(cfg.Month, cfg.Day)
	if err != nil {
		return nil, err
	}

	start, found := LocateDataStart(lines)
	var scoped []schema.Record
	if found {
		scoped = ParseSeries(lines[start:], filter)
	}

	filtered := FilterByHour(scoped, cfg.Hours)
	summaries := Aggregate(filtered, cfg.GroupBy)
	ranked := RankByIrradiance(summaries, cfg.RankDirection, cfg.RankCount)

	return BuildReport(cfg, scoped, summaries, ranked), nil
}
