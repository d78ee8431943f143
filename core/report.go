package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

// maxSampleRecords limits how many parsed rows a report echoes for
// verification.
const maxSampleRecords = 5

// BuildReport assembles the structured report for one run. The scoped
// records are everything matching the month/day pattern; summaries and
// ranked entries come from the hour-filtered subset. Rows follow the
// requested hours in ascending order so re-runs produce identical output.
func BuildReport(cfg *contract.Config, scoped []schema.Record, summaries map[schema.GroupKey]schema.HourSummary, ranked []schema.HourSummary) *schema.Report {
	report := &schema.Report{
		Title:        buildTitle(cfg),
		GroupBy:      cfg.GroupBy,
		Ranked:       ranked,
		Direction:    cfg.RankDirection,
		RecordCount:  len(scoped),
		DistinctDays: countDistinctDays(scoped),
		Years:        distinctYears(scoped),
		Samples:      sampleRecords(scoped),
	}

	for _, key := range requestedKeys(cfg, scoped) {
		row := schema.ReportRow{Key: key}
		if summary, ok := summaries[key]; ok {
			row.Summary = &summary
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

// FormatLines renders the report as a sequence of plain text lines in a
// fixed-column layout: title, column header, separator rule, one data or
// no-data line per group, a summary section and a peak-or-minimum section.
// Pure formatting, no side effects.
func FormatLines(report *schema.Report, precision int) []string {
	lines := []string{
		report.Title,
		columnHeader(report.GroupBy),
		strings.Repeat("-", len(columnHeader(report.GroupBy))),
	}

	for _, row := range report.Rows {
		lines = append(lines, formatRow(report.GroupBy, row, precision))
	}

	lines = append(lines,
		"",
		"=== SUMMARY ===",
		fmt.Sprintf("Total days analyzed: %d", report.DistinctDays),
		fmt.Sprintf("Years covered: %s", strings.Join(report.Years, ", ")),
	)

	lines = append(lines, "", rankedTitle(report.Direction))
	for i, s := range report.Ranked {
		lines = append(lines, fmt.Sprintf("%d. %s | G(i) avg %.*f W/m2 (n=%d)",
			i+1, describeKey(report.GroupBy, s.Key), precision, s.Irradiance, s.Count))
	}

	if report.Empty() {
		lines = append(lines, "", "No records found in scope.")
	}
	return lines
}

// buildTitle names the report after the configured scope.
func buildTitle(cfg *contract.Config) string {
	if cfg.Day != "" {
		return fmt.Sprintf("=== SOLAR PRODUCTION AVERAGES (MONTH %s, DAY %s) ===", cfg.Month, cfg.Day)
	}
	return fmt.Sprintf("=== SOLAR PRODUCTION AVERAGES (MONTH %s) ===", cfg.Month)
}

// requestedKeys enumerates the group keys a report must cover, in
// deterministic order. Hour grouping walks the allowed hours; day-hour
// grouping crosses the days observed in scope with the allowed hours.
func requestedKeys(cfg *contract.Config, scoped []schema.Record) []schema.GroupKey {
	if cfg.GroupBy != schema.GroupByDayHour {
		keys := make([]schema.GroupKey, 0, len(cfg.Hours))
		for _, h := range cfg.Hours {
			keys = append(keys, schema.GroupKey{Hour: h})
		}
		return keys
	}

	daySet := make(map[int]struct{})
	for _, rec := range scoped {
		daySet[rec.Day] = struct{}{}
	}
	days := make([]int, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Ints(days)

	var keys []schema.GroupKey
	for _, d := range days {
		for _, h := range cfg.Hours {
			keys = append(keys, schema.GroupKey{Day: d, Hour: h})
		}
	}
	return keys
}

// countDistinctDays counts unique YYYYMMDD prefixes across the scoped
// records.
func countDistinctDays(records []schema.Record) int {
	days := make(map[string]struct{})
	for _, rec := range records {
		days[rec.Timestamp[:8]] = struct{}{}
	}
	return len(days)
}

// distinctYears returns the sorted unique YYYY prefixes across the scoped
// records.
func distinctYears(records []schema.Record) []string {
	yearSet := make(map[string]struct{})
	for _, rec := range records {
		yearSet[rec.Timestamp[:4]] = struct{}{}
	}
	years := make([]string, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// sampleRecords keeps the first few parsed records for verification output.
func sampleRecords(records []schema.Record) []schema.Record {
	if len(records) > maxSampleRecords {
		return records[:maxSampleRecords]
	}
	return records
}

func columnHeader(groupBy schema.GroupBy) string {
	if groupBy == schema.GroupByDayHour {
		return "Day | UTC Time | G(i) Avg | H_sun Avg | T2m Avg | WS10m Avg | Int Avg | Count"
	}
	return "UTC Time | G(i) Avg | H_sun Avg | T2m Avg | WS10m Avg | Int Avg | Count"
}

func formatRow(groupBy schema.GroupBy, row schema.ReportRow, precision int) string {
	prefix := fmt.Sprintf("   %02d   ", row.Key.Hour)
	if groupBy == schema.GroupByDayHour {
		prefix = fmt.Sprintf(" %02d |   %02d   ", row.Key.Day, row.Key.Hour)
	}

	if row.Summary == nil {
		return prefix + "| No data found"
	}
	s := row.Summary
	return fmt.Sprintf("%s| %8.*f | %8.*f | %6.*f | %8.*f | %6.*f | %5d",
		prefix,
		precision, s.Irradiance,
		precision, s.SunHours,
		precision, s.Temperature,
		precision, s.WindSpeed,
		precision, s.Intensity,
		s.Count)
}

func describeKey(groupBy schema.GroupBy, key schema.GroupKey) string {
	if groupBy == schema.GroupByDayHour {
		return fmt.Sprintf("day %02d hour %02d", key.Day, key.Hour)
	}
	return fmt.Sprintf("hour %02d", key.Hour)
}

func rankedTitle(direction schema.RankDirection) string {
	if direction == schema.MinimumDirection {
		return "=== MINIMUM HOURS ==="
	}
	return "=== PEAK HOURS ==="
}
