package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/delorder/internal/logging"
	"github.com/gorewood/delorder/internal/output"
)

// Settings holds user defaults for flags that are not given on the command line.
type Settings struct {
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		Color:    output.ColorAuto,
		LogLevel: logging.LevelDisabled,
	}
}

// Load reads settings from path. A missing file yields Defaults; fields
// left out of the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Defaults()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, output.NewUserErrorWithCause("failed to parse config file "+path+": "+err.Error(), err)
	}

	if err := settings.Validate(); err != nil {
		return settings, output.NewUserErrorWithCause(path+": "+err.Error(), err)
	}
	return settings, nil
}

// Validate checks that every field holds an accepted value.
func (s Settings) Validate() error {
	if err := output.ValidateColorMode(s.Color); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}
