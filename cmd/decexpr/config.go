package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/decexpr"
)

// config holds the settings that may be given in a configuration file.
type config struct {
	// Scale is the number of fractional digits kept by calculations.
	Scale int `yaml:"scale"`
	// JSON selects JSON output.
	JSON bool `yaml:"json"`
	// Echo prints postfix forms alongside results.
	Echo bool `yaml:"echo"`
	// Color enables or disables colored errors. Unset means automatic.
	Color *bool `yaml:"color"`
}

// loadConfig reads a configuration file. An empty name gives the defaults.
func loadConfig(name string) (config, error) {
	cfg := config{Scale: decexpr.DefaultScale}
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return parseConfig(b, cfg)
}

// parseConfig decodes YAML settings over cfg. Unknown keys are errors.
func parseConfig(b []byte, cfg config) (config, error) {
	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)
	// An empty document leaves the defaults.
	if err := d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Scale < 0 {
		return cfg, fmt.Errorf("parsing config: scale (%d) must not be negative", cfg.Scale)
	}
	if cfg.Scale > decexpr.MaxScale {
		return cfg, fmt.Errorf("parsing config: scale (%d) must be at most %d", cfg.Scale, decexpr.MaxScale)
	}
	return cfg, nil
}
