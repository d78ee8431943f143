// Package core has the parse, aggregate and rank pipeline for sunseries.
package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tgunes/sunseries/schema"
)

// minFieldCount is the smallest number of comma-separated fields a data row
// may carry: the timestamp plus five numeric columns. Extra trailing fields
// are ignored.
const minFieldCount = 6

// RecordFilter holds the compiled month/day selection pattern. The pattern
// doubles as the shape check for the fixed-width YYYYMMDD:HHMM timestamp.
type RecordFilter struct {
	pattern *regexp.Regexp
}

// NewRecordFilter compiles the timestamp pattern for a fixed 2-digit month
// and an optional fixed 2-digit day. An empty day matches any day in the
// month.
func NewRecordFilter(month, day string) (*RecordFilter, error) {
	dayPart := `\d{2}`
	if day != "" {
		dayPart = day
	}
	pattern, err := regexp.Compile(`^\d{4}` + month + dayPart + `:\d{4}$`)
	if err != nil {
		return nil, fmt.Errorf("cannot compile timestamp pattern: %w", err)
	}
	return &RecordFilter{pattern: pattern}, nil
}

// LocateDataStart scans for the fixed header line that precedes the data
// section and returns the index of the line after it. The second return is
// false when no header exists, which downstream treats as an empty data
// section rather than an error.
func LocateDataStart(lines []string) (int, bool) {
	for i, line := range lines {
		if strings.HasPrefix(line, schema.DataHeaderPrefix) {
			return i + 1, true
		}
	}
	return 0, false
}

// ParseRecord parses one physical line into a Record. The second return is
// false when the row is skipped: blank line, missing separator, too few
// fields, timestamp outside the filter pattern, or any numeric field that
// fails to parse. Skips are silent; malformed or out-of-scope rows are
// expected in a raw sensor export and must not abort the run.
func ParseRecord(line string, filter *RecordFilter) (schema.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, ",") {
		return schema.Record{}, false
	}

	parts := strings.Split(line, ",")
	if len(parts) < minFieldCount {
		return schema.Record{}, false
	}

	ts := parts[0]
	if !filter.pattern.MatchString(ts) {
		return schema.Record{}, false
	}

	var fields [5]float64
	for i := range fields {
		v, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			// Partial records are never retained.
			return schema.Record{}, false
		}
		fields[i] = v
	}

	// The pattern guarantees digits at these fixed offsets: day at 6-7 of
	// the date segment, hour at 0-1 of the HHMM segment.
	day, _ := strconv.Atoi(ts[6:8])
	hour, _ := strconv.Atoi(ts[9:11])

	return schema.Record{
		Timestamp:   ts,
		Day:         day,
		Hour:        hour,
		Irradiance:  fields[0],
		SunHours:    fields[1],
		Temperature: fields[2],
		WindSpeed:   fields[3],
		Intensity:   fields[4],
	}, true
}

// ParseSeries parses every line of the data section in file order and
// returns the surviving records, chronological because the source is.
func ParseSeries(lines []string, filter *RecordFilter) []schema.Record {
	var records []schema.Record
	for _, line := range lines {
		if rec, ok := ParseRecord(line, filter); ok {
			records = append(records, rec)
		}
	}
	return records
}

// FilterByHour keeps only records whose hour is a member of the allowed
// set, preserving input order.
func FilterByHour(records []schema.Record, allowedHours []int) []schema.Record {
	allowed := make(map[int]struct{}, len(allowedHours))
	for _, h := range allowedHours {
		allowed[h] = struct{}{}
	}

	var kept []schema.Record
	for _, rec := range records {
		if _, ok := allowed[rec.Hour]; ok {
			kept = append(kept, rec)
		}
	}
	return kept
}
