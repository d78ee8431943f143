package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgunes/sunseries/schema"
)

// validRawInput mirrors the viper defaults wired in the command layer.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Month:     DefaultMonth,
		Hours:     string(schema.RepresentativeHourSet),
		Direction: string(schema.PeakDirection),
		Top:       DefaultRankCount,
		Precision: DefaultPrecision,
		Output:    string(schema.TextOut),
		Color:     "yes",
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}

	err := ProcessAndValidate(cfg, validRawInput())

	require.NoError(t, err)
	assert.Equal(t, DefaultInputFile, cfg.InputFile)
	assert.Equal(t, "04", cfg.Month)
	assert.Equal(t, "", cfg.Day)
	assert.Equal(t, []int{3, 6, 9, 12, 15}, cfg.Hours)
	assert.Equal(t, schema.PeakDirection, cfg.RankDirection)
	assert.Equal(t, DefaultRankCount, cfg.RankCount)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_MonthAndDayZeroPadded(t *testing.T) {
	input := validRawInput()
	input.Month = "4"
	input.Day = "7"
	cfg := &Config{}

	err := ProcessAndValidate(cfg, input)

	require.NoError(t, err)
	assert.Equal(t, "04", cfg.Month)
	assert.Equal(t, "07", cfg.Day)
}

func TestProcessAndValidate_InvalidMonth(t *testing.T) {
	cases := []string{"0", "13", "abc", "123", ""}
	for _, month := range cases {
		t.Run(month, func(t *testing.T) {
			input := validRawInput()
			input.Month = month

			err := ProcessAndValidate(&Config{}, input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid month")
		})
	}
}

func TestProcessAndValidate_InvalidDay(t *testing.T) {
	input := validRawInput()
	input.Day = "32"

	err := ProcessAndValidate(&Config{}, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid day")
}

func TestProcessAndValidate_ExplicitHourList(t *testing.T) {
	input := validRawInput()
	input.Hours = "12, 9,12,15"
	cfg := &Config{}

	err := ProcessAndValidate(cfg, input)

	require.NoError(t, err)
	assert.Equal(t, []int{9, 12, 15}, cfg.Hours)
}

func TestProcessAndValidate_AllHours(t *testing.T) {
	input := validRawInput()
	input.Hours = "all"
	cfg := &Config{}

	err := ProcessAndValidate(cfg, input)

	require.NoError(t, err)
	assert.Len(t, cfg.Hours, 24)
	assert.Equal(t, 0, cfg.Hours[0])
	assert.Equal(t, 23, cfg.Hours[23])
}

func TestProcessAndValidate_EveryNamedHourSet(t *testing.T) {
	for set := range schema.ValidHourSets {
		t.Run(string(set), func(t *testing.T) {
			input := validRawInput()
			input.Hours = string(set)
			cfg := &Config{}

			err := ProcessAndValidate(cfg, input)

			require.NoError(t, err)
			assert.NotEmpty(t, cfg.Hours)
		})
	}
}

func TestProcessAndValidate_InvalidHours(t *testing.T) {
	cases := []struct {
		name  string
		hours string
	}{
		{"out of range", "9,24"},
		{"negative", "-1"},
		{"not a number", "9,noon"},
		{"empty list", ","},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRawInput()
			input.Hours = tc.hours

			err := ProcessAndValidate(&Config{}, input)
			assert.Error(t, err)
		})
	}
}

func TestProcessAndValidate_RankingBounds(t *testing.T) {
	for _, top := range []int{0, -1, MaxRankCount + 1} {
		input := validRawInput()
		input.Top = top

		err := ProcessAndValidate(&Config{}, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "top must be")
	}
}

func TestProcessAndValidate_Direction(t *testing.T) {
	input := validRawInput()
	input.Direction = "MIN"
	cfg := &Config{}

	err := ProcessAndValidate(cfg, input)

	require.NoError(t, err)
	assert.Equal(t, schema.MinimumDirection, cfg.RankDirection)

	input.Direction = "sideways"
	err = ProcessAndValidate(&Config{}, input)
	assert.Error(t, err)
}

func TestProcessAndValidate_InvalidOutput(t *testing.T) {
	input := validRawInput()
	input.Output = "xml"

	err := ProcessAndValidate(&Config{}, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestProcessAndValidate_PrecisionBounds(t *testing.T) {
	for _, p := range []int{-1, 5} {
		input := validRawInput()
		input.Precision = p

		err := ProcessAndValidate(&Config{}, input)
		assert.Error(t, err)
	}
}

func TestProcessAndValidate_PositionalInputFile(t *testing.T) {
	input := validRawInput()
	input.InputFileStr = "exports/ankara_2023.csv"
	cfg := &Config{}

	err := ProcessAndValidate(cfg, input)

	require.NoError(t, err)
	assert.Equal(t, "exports/ankara_2023.csv", cfg.InputFile)
}
