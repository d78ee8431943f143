package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/internal/parquet"
	"github.com/tgunes/sunseries/schema"
)

// WriteRanked outputs only the ranked section of a report, dispatching
// based on the output format configured.
func WriteRanked(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankedJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankedCSV(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteHourSummaries(parquet.RowsFromSummaries(report.Ranked), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(printDest, "Wrote parquet ranking to %s\n", cfg.OutputFile)
	default:
		if err := renderRankedTable(report, cfg, fmtFloat, duration, printDest); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// writeRankedJSON handles opening the file and calling the JSON writer.
func writeRankedJSON(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report.Ranked)
	}, "Wrote JSON ranking")
}

// writeRankedCSV writes the ranked entries as CSV rows.
func writeRankedCSV(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		header := []string{"rank", "day", "hour", "irradiance", "count"}
		if err := csvWriter.Write(header); err != nil {
			return err
		}
		for i, s := range report.Ranked {
			row := []string{
				strconv.Itoa(i + 1),
				fmt.Sprintf(intFmt, s.Key.Day),
				fmt.Sprintf(intFmt, s.Key.Hour),
				fmtFloat(s.Irradiance),
				fmt.Sprintf(intFmt, s.Count),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote CSV ranking")
}

// renderRankedTable prints the ranked entries as a table.
func renderRankedTable(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, w io.Writer) error {
	title := "Peak hours by mean G(i)"
	if report.Direction == schema.MinimumDirection {
		title = "Minimum hours by mean G(i)"
	}
	fmt.Fprintln(w, title)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Hour", "G(i)", "Count", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range report.Ranked {
		label := contract.GetPlainLabel(s.Irradiance)
		if cfg.UseColors {
			label = contract.GetColorLabel(s.Irradiance)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%02d", s.Key.Hour),
			fmtFloat(s.Irradiance),
			strconv.Itoa(s.Count),
			label,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if report.Empty() {
		fmt.Fprintln(w, "No records found in scope.")
	}
	fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return nil
}
