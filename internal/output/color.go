package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by --color and the settings file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode reports whether mode is one of the accepted color modes.
func ValidateColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return NewUserError(fmt.Sprintf("invalid color mode %q (want auto, always, or never)", mode))
	}
}

// ResolveColorMode determines whether color is enabled based on the --color
// flag and actual TTY detection. The colorMode parameter accepts "never",
// "always", or "auto":
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value (default behavior)
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
