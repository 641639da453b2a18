// Package config loads the checker driver's optional presentation
// settings from an .fmcrc.toml file. Nothing the checker itself does
// is configurable -- only how the driver prints results.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls the driver's terminal output, never the checker's
// semantics.
type Config struct {
	Output OutputConfig `toml:"output"`
}

type OutputConfig struct {
	Color   bool `toml:"color"`
	Verbose bool `toml:"verbose"`
}

// Default returns the settings used when no config file is found:
// color on, verbose off.
func Default() Config {
	return Config{Output: OutputConfig{Color: true, Verbose: false}}
}

// Load reads path and decodes it over the defaults, so a config file
// that sets only [output].verbose still gets color=true. A missing
// path is not an error; Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for ".fmcrc.toml" in the current working directory.
func Discover() (Config, error) {
	if _, err := os.Stat(".fmcrc.toml"); err != nil {
		return Default(), nil
	}
	return Load(".fmcrc.toml")
}
