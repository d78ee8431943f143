// Package parquet exports hour summaries to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/tgunes/sunseries/schema"
)

// HourSummaryRow is the columnar form of one aggregated group.
type HourSummaryRow struct {
	// Day is the day-of-month, zero when grouping by hour alone
	Day int32 `parquet:"day,snappy"`

	// Hour is the UTC hour-of-day of the group
	Hour int32 `parquet:"hour,snappy"`

	// IrradianceWm2 is the mean G(i) in W/m^2
	IrradianceWm2 float64 `parquet:"irradiance_wm2,snappy"`

	// SunHours is the mean sunshine duration indicator
	SunHours float64 `parquet:"sun_hours,snappy"`

	// TemperatureC is the mean air temperature at 2m
	TemperatureC float64 `parquet:"temperature_c,snappy"`

	// WindSpeedMs is the mean wind speed at 10m
	WindSpeedMs float64 `parquet:"wind_speed_ms,snappy"`

	// Intensity is the mean auxiliary intensity metric
	Intensity float64 `parquet:"intensity,snappy"`

	// RecordCount is the number of contributing records
	RecordCount int32 `parquet:"record_count,snappy"`
}

// RowsFromReport flattens the populated report rows into parquet rows,
// preserving report order. Groups without data have no row.
func RowsFromReport(report *schema.Report) []HourSummaryRow {
	var summaries []schema.HourSummary
	for _, row := range report.Rows {
		if row.Summary == nil {
			continue
		}
		summaries = append(summaries, *row.Summary)
	}
	return RowsFromSummaries(summaries)
}

// RowsFromSummaries converts summaries to parquet rows in input order.
func RowsFromSummaries(summaries []schema.HourSummary) []HourSummaryRow {
	rows := make([]HourSummaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, HourSummaryRow{
			Day:           int32(s.Key.Day),
			Hour:          int32(s.Key.Hour),
			IrradianceWm2: s.Irradiance,
			SunHours:      s.SunHours,
			TemperatureC:  s.Temperature,
			WindSpeedMs:   s.WindSpeed,
			Intensity:     s.Intensity,
			RecordCount:   int32(s.Count),
		})
	}
	return rows
}

// WriteHourSummaries writes the summary rows to a Parquet file. The schema
// is derived from the HourSummaryRow struct tags.
func WriteHourSummaries(rows []HourSummaryRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[HourSummaryRow](file)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
