package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"
)

// Printer writes command results to one writer and diagnostics to another.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	color  bool
	styles *Styles
}

// Styles holds lipgloss styles for diagnostics.
type Styles struct {
	Error lipgloss.Style
}

// NewPrinter creates a new Printer.
// If color is true, results are syntax highlighted and diagnostics styled.
func NewPrinter(writer io.Writer, color bool) *Printer {
	styles := &Styles{
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
	}

	if !color {
		styles.Error = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		color:  color,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsColor returns true if the printer emits ANSI colors.
func (p *Printer) IsColor() bool {
	return p.color
}

// Result writes a fully rendered JSON result in a single write.
// When color is enabled the JSON tokens are highlighted; whitespace and
// separators are left untouched.
func (p *Printer) Result(data []byte) error {
	if p.color {
		data = pretty.Color(data, pretty.TerminalStyle)
	}
	if _, err := p.w.Write(data); err != nil {
		return NewSystemErrorWithCause("failed to write output", err)
	}
	return nil
}

// Error outputs an error as "Error: <message>" on the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
