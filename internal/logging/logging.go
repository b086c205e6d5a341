// Package logging builds the diagnostic logger used by the delorder CLI.
// Logs go to stderr only; stdout carries nothing but the result.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gorewood/delorder/internal/output"
)

// Accepted log levels.
const (
	LevelDebug    = "debug"
	LevelInfo     = "info"
	LevelWarn     = "warn"
	LevelError    = "error"
	LevelDisabled = "disabled"
)

// ParseLevel converts a level name into a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	case LevelDisabled, "":
		return zerolog.Disabled, nil
	default:
		return zerolog.Disabled, output.NewUserError(
			fmt.Sprintf("invalid log level %q (want debug, info, warn, error, or disabled)", level))
	}
}

// New creates a console logger writing to w at the given level.
// color enables ANSI colors in the console output.
func New(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	writer := zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
