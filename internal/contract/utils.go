package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Irradiance label constants.
const (
	PeakValue     = "Peak"     // Peak production band
	StrongValue   = "Strong"   // Strong production band
	ModerateValue = "Moderate" // Moderate production band
	LowValue      = "Low"      // Low or no production band
)

// Color variables for console output.
var (
	PeakColor     = color.New(color.FgRed, color.Bold)    // peak mean irradiance
	StrongColor   = color.New(color.FgYellow, color.Bold) // strong mean irradiance
	ModerateColor = color.New(color.FgYellow)             // moderate mean irradiance
	LowColor      = color.New(color.FgCyan)               // low mean irradiance, night hours included
)

// GetPlainLabel returns a plain text label for a mean irradiance value in
// W/m^2. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(irradiance float64) string {
	switch {
	case irradiance >= 600:
		return PeakValue
	case irradiance >= 300:
		return StrongValue
	case irradiance >= 100:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(irradiance float64) string {
	text := GetPlainLabel(irradiance)

	switch text {
	case PeakValue:
		return PeakColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
