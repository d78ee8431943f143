package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tgunes/sunseries/core"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/internal/parquet"
	"github.com/tgunes/sunseries/schema"
)

// WriteReport outputs the aggregation report, dispatching based on the
// output format configured.
func WriteReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquet(report, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		if err := writeReportText(report, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeReportJSON handles opening the file and calling the JSON writer.
func writeReportJSON(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON report")
}

// writeReportCSV handles opening the file and calling the CSV writer.
// Only populated groups are emitted; absent keys have no row.
func writeReportCSV(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVRows(csvWriter, report, fmtFloat, intFmt)
	}, "Wrote CSV report")
}

// writeCSVRows writes the report summaries to a CSV writer.
func writeCSVRows(w *csv.Writer, report *schema.Report, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"day", "hour", "irradiance", "sun_hours", "temperature", "wind_speed", "intensity", "count"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range report.Rows {
		if row.Summary == nil {
			continue
		}
		s := row.Summary
		record := []string{
			fmt.Sprintf(intFmt, s.Key.Day),
			fmt.Sprintf(intFmt, s.Key.Hour),
			fmtFloat(s.Irradiance),
			fmtFloat(s.SunHours),
			fmtFloat(s.Temperature),
			fmtFloat(s.WindSpeed),
			fmtFloat(s.Intensity),
			fmt.Sprintf(intFmt, s.Count),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeReportParquet exports the populated summaries as a parquet file.
func writeReportParquet(report *schema.Report, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.RowsFromReport(report)
	if err := parquet.WriteHourSummaries(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(printDest, "Wrote parquet report to %s\n", cfg.OutputFile)
	return nil
}

// writeReportText renders the human-readable report. With an output file
// configured it writes the plain fixed-column lines, since ANSI colors and
// box drawing belong on a terminal, not in a saved report.
func writeReportText(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if cfg.OutputFile != "" {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, line := range core.FormatLines(report, cfg.Precision) {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote report")
	}
	return renderReportTable(report, cfg, fmtFloat, duration, printDest)
}

// renderReportTable prints the report as a table plus summary sections.
func renderReportTable(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, w io.Writer) error {
	fmt.Fprintln(w, report.Title)

	table := tablewriter.NewWriter(w)

	withLabel := showLabelColumn(cfg)
	headers := []string{"Hour", "G(i)", "H_sun", "T2m", "WS10m", "Int", "Count"}
	if withLabel {
		headers = append(headers, "Label")
	}
	if report.GroupBy == schema.GroupByDayHour {
		headers = append([]string{"Day"}, headers...)
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range report.Rows {
		data = append(data, buildTableRow(report.GroupBy, row, cfg, fmtFloat, withLabel))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Days analyzed: %d, years covered: %s\n", report.DistinctDays, strings.Join(report.Years, ", "))

	printRankedSection(w, report, fmtFloat)

	if cfg.Detail && len(report.Samples) > 0 {
		printSampleSection(w, report.Samples, fmtFloat)
	}

	if report.Empty() {
		fmt.Fprintln(w, "No records found in scope.")
	}

	fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return nil
}

// buildTableRow prepares the cells for one report row. Groups without data
// render a "no data" placeholder instead of numeric columns.
func buildTableRow(groupBy schema.GroupBy, row schema.ReportRow, cfg *contract.Config, fmtFloat func(float64) string, withLabel bool) []string {
	var cells []string
	if groupBy == schema.GroupByDayHour {
		cells = append(cells, fmt.Sprintf("%02d", row.Key.Day))
	}
	cells = append(cells, fmt.Sprintf("%02d", row.Key.Hour))

	if row.Summary == nil {
		cells = append(cells, "no data", "-", "-", "-", "-", "-")
		if withLabel {
			cells = append(cells, "-")
		}
		return cells
	}

	s := row.Summary
	cells = append(cells,
		fmtFloat(s.Irradiance),
		fmtFloat(s.SunHours),
		fmtFloat(s.Temperature),
		fmtFloat(s.WindSpeed),
		fmtFloat(s.Intensity),
		strconv.Itoa(s.Count),
	)
	if withLabel {
		label := contract.GetPlainLabel(s.Irradiance)
		if cfg.UseColors {
			label = contract.GetColorLabel(s.Irradiance)
		}
		cells = append(cells, label)
	}
	return cells
}

// printRankedSection prints the peak or minimum entries below the table.
func printRankedSection(w io.Writer, report *schema.Report, fmtFloat func(float64) string) {
	if len(report.Ranked) == 0 {
		return
	}
	title := "Peak hours by mean G(i):"
	if report.Direction == schema.MinimumDirection {
		title = "Minimum hours by mean G(i):"
	}
	fmt.Fprintln(w, title)
	for i, s := range report.Ranked {
		name := fmt.Sprintf("hour %02d", s.Key.Hour)
		if report.GroupBy == schema.GroupByDayHour {
			name = fmt.Sprintf("day %02d hour %02d", s.Key.Day, s.Key.Hour)
		}
		fmt.Fprintf(w, "  %d. %s: %s W/m2 (n=%d)\n", i+1, name, fmtFloat(s.Irradiance), s.Count)
	}
}

// printSampleSection echoes the first parsed records for verification.
func printSampleSection(w io.Writer, samples []schema.Record, fmtFloat func(float64) string) {
	fmt.Fprintln(w, "Sample records:")
	for _, rec := range samples {
		fmt.Fprintf(w, "  %s | G(i): %s | H_sun: %s | T2m: %s | WS10m: %s | Int: %s\n",
			rec.Timestamp,
			fmtFloat(rec.Irradiance),
			fmtFloat(rec.SunHours),
			fmtFloat(rec.Temperature),
			fmtFloat(rec.WindSpeed),
			fmtFloat(rec.Intensity))
	}
}
