// Package config loads optional runner configuration from a .grit.yaml file
// in the working directory. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up in the working
// directory.
const FileName = ".grit.yaml"

// Color modes accepted by the Color field and the --color flag.
const (
	ColorAuto   = "auto"   // color when stdout is a terminal
	ColorAlways = "always" // force color
	ColorNever  = "never"  // plain output
)

// Config holds runner configuration.
type Config struct {
	// Output is the XML report destination. Empty disables the report,
	// matching the behavior of omitting --gtest_output.
	Output string `yaml:"output"`

	// Color controls ANSI color on console prefixes: auto, always, never.
	Color string `yaml:"color"`

	// History is the path of the SQLite run-history database.
	// Empty disables history recording.
	History string `yaml:"history"`

	// Verbose enables structured diagnostics on stderr.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// Load reads the configuration file from dir. A missing file yields the
// defaults with no error; a present but malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if !ValidColorMode(cfg.Color) {
		return nil, fmt.Errorf("parse config %s: invalid color mode %q", path, cfg.Color)
	}

	return cfg, nil
}

// ValidColorMode reports whether mode is one of auto, always, never.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
