package outwriter

import (
	"io"
	"os"

	"github.com/tgunes/sunseries/internal/contract"
	"golang.org/x/term"
)

// printDest is where terminal tables render. Tests may swap it for a buffer.
var printDest io.Writer = os.Stdout

// minLabelWidth is the narrowest terminal that still fits the label column
// next to the six numeric columns.
const minLabelWidth = 90

// GetTableWidth returns the effective terminal width for table layout,
// honoring the --width override and falling back to a conservative default
// when no terminal is attached (CI, pipes).
func GetTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// showLabelColumn reports whether the irradiance label column fits.
func showLabelColumn(cfg *contract.Config) bool {
	return GetTableWidth(cfg) >= minLabelWidth
}
