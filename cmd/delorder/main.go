// Package main provides the entry point for the delorder CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/delorder/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(printError),
	)
	return output.GetExitCode(err)
}

// printError reports every command failure, including flag and argument
// errors raised by cobra before the command runs.
func printError(w io.Writer, _ fang.Styles, err error) {
	output.NewPrinter(w, output.IsTTY(w)).Error(err)
}

// newRootCmd creates the root command for the delorder CLI.
func newRootCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "delorder RESULTS",
		Short: "Print the deletion order recorded for a defect trial",
		Long: `Delorder prints the order in which nodes were deleted during one trial of a
defect run, read from a .results.json file.

The initial state (an empty step) is dropped and the remaining steps are
printed as a JSON array, one step per line.

Examples:
  delorder hex.results.json          # First trial
  delorder hex.results.json -n 3     # Fourth trial
  delorder hex.results.json -n -1    # Last trial`,
		Version:       buildVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	addExtractFlags(cmd, &opts)

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	return cmd
}
