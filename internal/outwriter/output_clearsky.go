package outwriter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tgunes/sunseries/internal/birdmodel"
	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

// clearskyResult pairs model inputs with outputs for JSON encoding.
type clearskyResult struct {
	Inputs  birdmodel.Inputs  `json:"inputs"`
	Outputs birdmodel.Outputs `json:"outputs"`
}

// WriteClearsky outputs the clear-sky model results, dispatching based on
// the output format configured. Parquet has no meaningful shape for a
// single model run and falls back to the table.
func WriteClearsky(inputs birdmodel.Inputs, outputs birdmodel.Outputs, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, clearskyResult{Inputs: inputs, Outputs: outputs})
		}, "Wrote JSON clearsky results")
	case schema.CSVOut:
		return writeClearskyCSV(outputs, cfg, fmtFloat)
	default:
		return renderClearskyTable(inputs, outputs, cfg, fmtFloat, printDest)
	}
}

// writeClearskyCSV writes the model outputs as a single CSV row.
func writeClearskyCSV(outputs birdmodel.Outputs, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := "julian_date,zenith,air_mass,direct,diffuse,total\n"
		if _, err := fmt.Fprint(w, header); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s\n",
			fmtFloat(outputs.JulianDate),
			fmtFloat(outputs.ZenithAngle),
			fmtFloat(outputs.AirMass),
			fmtFloat(outputs.Direct),
			fmtFloat(outputs.Diffuse),
			fmtFloat(outputs.Total))
		return err
	}, "Wrote CSV clearsky results")
}

// renderClearskyTable prints the model results as a two-column table.
func renderClearskyTable(inputs birdmodel.Inputs, outputs birdmodel.Outputs, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	fmt.Fprintf(w, "Clear-sky estimate for (%.4f, %.4f) on %04d-%02d-%02d %02.0f:%02.0f UTC\n",
		inputs.Latitude, inputs.Longitude, inputs.Year, inputs.Month, inputs.Day, inputs.Hour, inputs.Minute)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Quantity", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Julian date", fmt.Sprintf("%.5f", outputs.JulianDate)},
		{"Station pressure (mbar)", fmtFloat(outputs.StationPressure)},
		{"Earth-sun distance (AU)", fmt.Sprintf("%.6f", outputs.EarthSunDistance)},
		{"Zenith angle (deg)", fmtFloat(outputs.ZenithAngle)},
		{"Air mass", fmtFloat(outputs.AirMass)},
		{"Corrected constant (W/m2)", fmtFloat(outputs.CorrectedConstant)},
		{"Direct (W/m2)", fmtFloat(outputs.Direct)},
		{"Diffuse (W/m2)", fmtFloat(outputs.Diffuse)},
		{"Total (W/m2)", fmtFloat(outputs.Total)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
