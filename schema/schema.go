// Package schema has configs, models and constants for all parts of sunseries.
package schema

// Record is one parsed row of the irradiance time series.
// A Record exists only if the timestamp matched the configured pattern and
// all five numeric fields parsed successfully; anything else is skipped
// during parsing and never reaches this type.
type Record struct {
	Timestamp   string  `json:"timestamp"`   // Original YYYYMMDD:HHMM key, kept for traceability
	Day         int     `json:"day"`         // Day-of-month, from timestamp offsets 6-7
	Hour        int     `json:"hour"`        // Hour-of-day (UTC), from the HHMM segment
	Irradiance  float64 `json:"irradiance"`  // G(i): global irradiance on inclined plane, W/m^2
	SunHours    float64 `json:"sun_hours"`   // H_sun: sunshine duration indicator
	Temperature float64 `json:"temperature"` // T2m: air temperature at 2m
	WindSpeed   float64 `json:"wind_speed"`  // WS10m: wind speed at 10m
	Intensity   float64 `json:"intensity"`   // Int: auxiliary intensity metric
}

// GroupKey identifies one aggregation bucket. Day is zero when grouping
// by hour alone.
type GroupKey struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// HourSummary holds the finalized arithmetic means for one group plus the
// number of contributing records. Immutable once computed.
type HourSummary struct {
	Key         GroupKey `json:"key"`
	Count       int      `json:"count"`
	Irradiance  float64  `json:"irradiance"`
	SunHours    float64  `json:"sun_hours"`
	Temperature float64  `json:"temperature"`
	WindSpeed   float64  `json:"wind_speed"`
	Intensity   float64  `json:"intensity"`
}

// ReportRow pairs a requested group key with its summary. Summary is nil
// when no records survived filtering for that key, which renders as a
// "no data" placeholder instead of numeric columns.
type ReportRow struct {
	Key     GroupKey     `json:"key"`
	Summary *HourSummary `json:"summary,omitempty"`
}

// Report is the structured output of one aggregation run. Presentation
// layers (table, CSV, JSON, parquet) render it without re-deriving any
// statistics.
type Report struct {
	Title        string        `json:"title"`
	GroupBy      GroupBy       `json:"group_by"`
	Rows         []ReportRow   `json:"rows"`
	Ranked       []HourSummary `json:"ranked,omitempty"`
	Direction    RankDirection `json:"direction,omitempty"`
	DistinctDays int           `json:"distinct_days"`
	Years        []string      `json:"years"`
	RecordCount  int           `json:"record_count"`
	Samples      []Record      `json:"samples,omitempty"`
}

// Empty reports whether the run found no records in scope. This is an
// expected, informational outcome rather than an error.
func (r *Report) Empty() bool {
	return r.RecordCount == 0
}
