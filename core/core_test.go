package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgunes/sunseries/internal/contract"
	"github.com/tgunes/sunseries/schema"
)

var sampleExport = strings.Join([]string{
	"Latitude (decimal degrees): 39.92",
	"Elevation (m): 890",
	"time,G(i),H_sun,T2m,WS10m,Int",
	"20230415:0900,400.00,1.00,18.00,2.00,0.50",
	"20230415:1200,820.50,1.00,24.00,3.00,0.10",
	"20230416:0900,600.00,0.80,22.00,4.00,0.70",
	"20230516:0900,999.00,1.00,30.00,1.00,0.00",
	"",
	"G(i): Global irradiance on the inclined plane (W/m2)",
}, "\n")

func pipelineConfig() *contract.Config {
	return &contract.Config{
		Month:         "04",
		Hours:         []int{9, 12, 15},
		GroupBy:       schema.GroupByHour,
		RankCount:     2,
		RankDirection: schema.PeakDirection,
		Precision:     2,
	}
}

func TestRunLines_EndToEnd(t *testing.T) {
	cfg := pipelineConfig()

	report, err := RunLines(strings.Split(sampleExport, "\n"), cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, report.RecordCount)
	assert.Equal(t, 2, report.DistinctDays)
	assert.Equal(t, []string{"2023"}, report.Years)

	require.Len(t, report.Rows, 3)
	require.NotNil(t, report.Rows[0].Summary)
	assert.InDelta(t, 500.0, report.Rows[0].Summary.Irradiance, 1e-9)
	assert.Equal(t, 2, report.Rows[0].Summary.Count)
	assert.Nil(t, report.Rows[2].Summary)

	require.Len(t, report.Ranked, 2)
	assert.Equal(t, 12, report.Ranked[0].Key.Hour)
	assert.Equal(t, 9, report.Ranked[1].Key.Hour)
}

func TestRunLines_SingleDaySingleHour(t *testing.T) {
	cfg := pipelineConfig()
	cfg.Day = "15"
	cfg.Hours = []int{9}

	report, err := RunLines(strings.Split(sampleExport, "\n"), cfg)

	require.NoError(t, err)
	assert.Equal(t, 2, report.RecordCount)

	require.Len(t, report.Rows, 1)
	require.NotNil(t, report.Rows[0].Summary)
	s := report.Rows[0].Summary
	assert.Equal(t, 9, s.Key.Hour)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 400.0, s.Irradiance)
}

func TestRunLines_HeaderOnlyFile(t *testing.T) {
	cfg := pipelineConfig()
	lines := []string{
		"Latitude (decimal degrees): 39.92",
		"time,G(i),H_sun,T2m,WS10m,Int",
	}

	report, err := RunLines(lines, cfg)

	require.NoError(t, err)
	assert.True(t, report.Empty())

	text := FormatLines(report, cfg.Precision)
	assert.Contains(t, text, "   09   | No data found")
	assert.Contains(t, text, "   12   | No data found")
	assert.Contains(t, text, "   15   | No data found")
	assert.Contains(t, text, "No records found in scope.")
}

func TestRunLines_NoHeaderYieldsEmptyReport(t *testing.T) {
	cfg := pipelineConfig()
	lines := []string{
		"Latitude (decimal degrees): 39.92",
		"20230415:0900,400.00,1.00,18.00,2.00,0.50",
	}

	report, err := RunLines(lines, cfg)

	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.Len(t, report.Rows, 3)
	for _, row := range report.Rows {
		assert.Nil(t, row.Summary)
	}
	assert.Empty(t, report.Ranked)
}

func TestRunLines_Deterministic(t *testing.T) {
	cfg := pipelineConfig()
	lines := strings.Split(sampleExport, "\n")

	first, err := RunLines(lines, cfg)
	require.NoError(t, err)
	firstText := strings.Join(FormatLines(first, cfg.Precision), "\n")

	for i := 0; i < 10; i++ {
		again, err := RunLines(lines, cfg)
		require.NoError(t, err)
		assert.Equal(t, firstText, strings.Join(FormatLines(again, cfg.Precision), "\n"))
	}
}

func TestRun_ReadsFile(t *testing.T) {
	cfg := pipelineConfig()
	cfg.InputFile = filepath.Join(t.TempDir(), "timeseri.csv")
	require.NoError(t, os.WriteFile(cfg.InputFile, []byte(sampleExport), 0o644))

	report, err := Run(cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, report.RecordCount)
}

func TestRun_MissingFile(t *testing.T) {
	cfg := pipelineConfig()
	cfg.InputFile = filepath.Join(t.TempDir(), "absent.csv")

	report, err := Run(cfg)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "cannot read input file")
}
