package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgunes/sunseries/internal/birdmodel"
	"github.com/tgunes/sunseries/schema"
)

func clearskyFixture() (birdmodel.Inputs, birdmodel.Outputs) {
	inputs := birdmodel.Inputs{
		SolarConstant:    1353,
		Longitude:        32.85,
		Latitude:         39.92,
		Elevation:        890,
		Year:             2023,
		Month:            6,
		Day:              21,
		Hour:             10,
		SeaLevelPressure: 1013,
		Albedo:           0.2,
		Ozone:            0.3,
		WaterVapor:       1.5,
		AOT500:           0.1,
		AOT380:           0.15,
	}
	return inputs, birdmodel.Compute(inputs)
}

func TestWriteClearsky_JSONToFile(t *testing.T) {
	inputs, outputs := clearskyFixture()
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "clearsky.json")

	err := WriteClearsky(inputs, outputs, cfg)

	require.NoError(t, err)
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded clearskyResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, inputs.Latitude, decoded.Inputs.Latitude)
	assert.InDelta(t, outputs.Total, decoded.Outputs.Total, 1e-9)
}

func TestWriteClearsky_CSVToFile(t *testing.T) {
	inputs, outputs := clearskyFixture()
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "clearsky.csv")

	err := WriteClearsky(inputs, outputs, cfg)

	require.NoError(t, err)
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "julian_date,zenith,air_mass,direct,diffuse,total")
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 2, lines)
}

func TestRenderClearskyTable(t *testing.T) {
	inputs, outputs := clearskyFixture()
	cfg := textConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)
	var buf bytes.Buffer

	err := renderClearskyTable(inputs, outputs, cfg, fmtFloat, &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Clear-sky estimate for (39.9200, 32.8500)")
	assert.Contains(t, out, "Julian date")
	assert.Contains(t, out, "Total (W/m2)")
}
