// Package bench measures how parallel accumulation time scales with the
// number of worker goroutines.
package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures a timing sweep.
type Config struct {
	// MaxStreams is the largest worker count; the sweep runs 1..MaxStreams.
	MaxStreams int `yaml:"max_streams"`
	// Length is the number of values accumulated per run.
	Length int `yaml:"length"`
	// Repeats is the number of runs per worker count; the fastest is kept.
	Repeats int `yaml:"repeats"`
}

// DefaultConfig returns 19 streams over 100 values, one run each.
func DefaultConfig() Config {
	return Config{
		MaxStreams: 19,
		Length:     100,
		Repeats:    1,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.MaxStreams < 1:
		return fmt.Errorf("max_streams must be at least 1, got %d", c.MaxStreams)
	case c.Length < 0:
		return fmt.Errorf("length must not be negative, got %d", c.Length)
	case c.Repeats < 1:
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	}
	return nil
}
