package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// RankDirection represents the direction of irradiance ranking.
	RankDirection string

	// GroupBy represents the aggregation key shape.
	GroupBy string

	// HourSet represents a named allowed-hours policy.
	HourSet string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All rank directions supported.
const (
	PeakDirection    RankDirection = "peak" // default, descending by mean irradiance
	MinimumDirection RankDirection = "min"  // ascending by mean irradiance
)

// All grouping modes supported.
const (
	GroupByHour    GroupBy = "hour" // default
	GroupByDayHour GroupBy = "dayhour"
)

// All named hour sets supported.
const (
	RepresentativeHourSet HourSet = "representative" // default
	AllHourSet            HourSet = "all"
)

// DataHeaderPrefix marks the line that separates the file preamble from
// the data section. Column names are fixed by the source export format.
const DataHeaderPrefix = "time,G(i),H_sun,T2m,WS10m,Int"

// RepresentativeHours are the five default UTC sampling hours that
// bracket the daylight production curve: 03, 06, 09, 12 and 15.
var RepresentativeHours = []int{3, 6, 9, 12, 15}

// AllHours covers the full day.
var AllHours = func() []int {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}
	return hours
}()

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRankDirections lists all valid rank directions.
var ValidRankDirections = map[RankDirection]struct{}{
	PeakDirection:    {},
	MinimumDirection: {},
}

// ValidHourSets lists all valid named hour sets.
var ValidHourSets = map[HourSet]struct{}{
	RepresentativeHourSet: {},
	AllHourSet:            {},
}
