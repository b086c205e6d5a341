package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/delorder/internal/config"
	"github.com/gorewood/delorder/internal/logging"
	"github.com/gorewood/delorder/internal/output"
	"github.com/gorewood/delorder/internal/results"
)

// extractOptions holds the flag values of the root command.
type extractOptions struct {
	trial      int
	color      string
	logLevel   string
	configPath string
}

// addExtractFlags registers the root command flags.
func addExtractFlags(cmd *cobra.Command, opts *extractOptions) {
	cmd.Flags().IntVarP(&opts.trial, "trial", "n", 0, "Trial index (negative counts from the last trial)")
	cmd.Flags().StringVar(&opts.color, "color", output.ColorAuto, "Colorize output: auto, always, never")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", logging.LevelDisabled, "Log level on stderr: debug, info, warn, error, disabled")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default $DELORDER_CONFIG_HOME/config.yaml)")
}

// runExtract prints the deletion order of the selected trial. Nothing is
// written to stdout unless every step succeeds.
func runExtract(cmd *cobra.Command, path string, opts extractOptions) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	color := output.ResolveColorMode(settings.Color, output.IsTTY(stdout))
	printer := output.NewPrinter(stdout, color).WithStderr(stderr)

	logger, err := logging.New(stderr, settings.LogLevel, output.IsTTY(stderr))
	if err != nil {
		return err
	}

	doc, err := results.Load(path)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", doc.Source()).Int("bytes", doc.Size()).Msg("loaded results")
	if event := logger.Debug(); event.Enabled() {
		count, _ := doc.TrialCount()
		event.Int("trials", count).Int("requested", opts.trial).Msg("selecting trial")
	}

	steps, err := doc.DeletionOrder(opts.trial)
	if err != nil {
		return err
	}
	logger.Debug().Int("trial", opts.trial).Int("steps", len(steps)).Msg("extracted deletion order")

	if err := printer.Result(doc.Formatter().List(steps)); err != nil {
		return err
	}
	logger.Info().Int("steps", len(steps)).Bool("color", printer.IsColor()).Msg("wrote deletion order")
	return nil
}

// resolveSettings merges the settings file with flags given on the command
// line. Flags win over the file; the file wins over defaults.
func resolveSettings(cmd *cobra.Command, opts extractOptions) (config.Settings, error) {
	path := config.DefaultPath()
	if cmd.Flags().Changed("config") {
		path = opts.configPath
		if _, err := os.Stat(path); err != nil {
			return config.Settings{}, output.NewUserErrorWithCause("config file not found: "+path, err)
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}

	if cmd.Flags().Changed("color") {
		settings.Color = opts.color
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = opts.logLevel
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}
