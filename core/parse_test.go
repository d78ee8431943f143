package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgunes/sunseries/schema"
)

func mustFilter(t *testing.T, month, day string) *RecordFilter {
	t.Helper()
	filter, err := NewRecordFilter(month, day)
	require.NoError(t, err)
	return filter
}

func TestLocateDataStart_Found(t *testing.T) {
	lines := []string{
		"Latitude (decimal degrees): 39.92",
		"Elevation (m): 890",
		"time,G(i),H_sun,T2m,WS10m,Int",
		"20230415:0900,500.00,1.0,20.0,3.0,0.9",
	}

	start, found := LocateDataStart(lines)

	assert.True(t, found)
	assert.Equal(t, 3, start)
}

func TestLocateDataStart_HeaderWithTrailingColumns(t *testing.T) {
	lines := []string{"time,G(i),H_sun,T2m,WS10m,Int,extra"}

	start, found := LocateDataStart(lines)

	assert.True(t, found)
	assert.Equal(t, 1, start)
}

func TestLocateDataStart_Missing(t *testing.T) {
	lines := []string{
		"Latitude (decimal degrees): 39.92",
		"20230415:0900,500.00,1.0,20.0,3.0,0.9",
	}

	start, found := LocateDataStart(lines)

	assert.False(t, found)
	assert.Equal(t, 0, start)
}

func TestParseRecord_Valid(t *testing.T) {
	filter := mustFilter(t, "04", "")

	rec, ok := ParseRecord("20230415:0900,500.00,1.0,20.0,3.0,0.9", filter)

	require.True(t, ok)
	assert.Equal(t, "20230415:0900", rec.Timestamp)
	assert.Equal(t, 15, rec.Day)
	assert.Equal(t, 9, rec.Hour)
	assert.Equal(t, 500.0, rec.Irradiance)
	assert.Equal(t, 1.0, rec.SunHours)
	assert.Equal(t, 20.0, rec.Temperature)
	assert.Equal(t, 3.0, rec.WindSpeed)
	assert.Equal(t, 0.9, rec.Intensity)
}

func TestParseRecord_TrailingFieldsIgnored(t *testing.T) {
	filter := mustFilter(t, "04", "")

	rec, ok := ParseRecord("20230415:1200,810.5,1.0,22.5,2.1,0.1,extra,columns", filter)

	require.True(t, ok)
	assert.Equal(t, 810.5, rec.Irradiance)
	assert.Equal(t, 12, rec.Hour)
}

func TestParseRecord_SkippedRows(t *testing.T) {
	filter := mustFilter(t, "04", "")

	cases := []struct {
		name string
		line string
	}{
		{"blank", ""},
		{"whitespace only", "   "},
		{"no separator", "20230415:0900 500.00"},
		{"too few fields", "20230415:0900,500.00,1.0"},
		{"wrong month", "20230515:0900,500.00,1.0,20.0,3.0,0.9"},
		{"malformed timestamp", "2023-04-15 09:00,500.00,1.0,20.0,3.0,0.9"},
		{"non-numeric field", "20230415:0900,abc,1.0,20.0,3.0,0.9"},
		{"footer line", "G(i): Global irradiance on the inclined plane (W/m2)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseRecord(tc.line, filter)
			assert.False(t, ok)
		})
	}
}

func TestParseRecord_DayFilter(t *testing.T) {
	filter := mustFilter(t, "04", "15")

	_, ok := ParseRecord("20230415:0900,500.00,1.0,20.0,3.0,0.9", filter)
	assert.True(t, ok)

	_, ok = ParseRecord("20230416:0900,500.00,1.0,20.0,3.0,0.9", filter)
	assert.False(t, ok)
}

func TestParseSeries_PreservesOrder(t *testing.T) {
	filter := mustFilter(t, "04", "")
	lines := []string{
		"20230415:0900,500.00,1.0,20.0,3.0,0.9",
		"not a data row",
		"20230415:1200,810.50,1.0,22.5,2.1,0.1",
		"20230416:0900,450.25,0.9,18.2,4.0,1.2",
	}

	records := ParseSeries(lines, filter)

	require.Len(t, records, 3)
	assert.Equal(t, "20230415:0900", records[0].Timestamp)
	assert.Equal(t, "20230415:1200", records[1].Timestamp)
	assert.Equal(t, "20230416:0900", records[2].Timestamp)
}

func TestFilterByHour(t *testing.T) {
	records := []schema.Record{
		{Timestamp: "20230415:0300", Hour: 3},
		{Timestamp: "20230415:0700", Hour: 7},
		{Timestamp: "20230415:0900", Hour: 9},
		{Timestamp: "20230415:1200", Hour: 12},
	}

	kept := FilterByHour(records, []int{3, 9, 12})

	require.Len(t, kept, 3)
	assert.Equal(t, 3, kept[0].Hour)
	assert.Equal(t, 9, kept[1].Hour)
	assert.Equal(t, 12, kept[2].Hour)
}

func TestFilterByHour_EmptyAllowedSet(t *testing.T) {
	records := []schema.Record{{Hour: 9}}

	kept := FilterByHour(records, nil)

	assert.Empty(t, kept)
}
