// Package config locates and reads the delorder settings file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "delorder"

// Dir returns the directory holding config.yaml, or "" when no home
// directory is known. DELORDER_CONFIG_HOME takes precedence, then
// XDG_CONFIG_HOME, then the platform default.
func Dir() string {
	if dir := os.Getenv("DELORDER_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if appData := os.Getenv("APPDATA"); runtime.GOOS == "windows" && appData != "" {
		return filepath.Join(appData, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultPath is the settings file consulted when --config is not given.
func DefaultPath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return ""
}
