// Package config holds the run configuration of the keypadchain tool, as
// read from a YAML file and overlaid on Default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Weight names accepted in the `weight` field.
const (
	WeightNumeric = "numeric"
	WeightUnit    = "unit"
)

// Config is the configuration data as present in a config file.
type Config struct {
	// Depth is the number of directional arms between the numeric arm and the human.
	Depth int `yaml:"depth"`
	// Codes are priced in addition to any read from Input.
	Codes []string `yaml:"codes"`
	// Input is a file with one code per line; "-" reads standard input.
	Input string `yaml:"input"`
	// Weight selects the weighting strategy, WeightNumeric or WeightUnit.
	Weight string `yaml:"weight"`
	// Concurrent prices codes on Workers goroutines.
	Concurrent bool `yaml:"concurrent"`
	Workers    int  `yaml:"workers"`
	// MaxExpansion caps the length printed by the expand command.
	MaxExpansion int `yaml:"max-expansion"`

	Log Log `yaml:"log"`
}

// Log configures logging. File, when set, receives JSON lines rotated by size.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file is given: the
// 25-arm chain, numeric weighting, info logging to the console only.
func Default() Config {
	return Config{
		Depth:        25,
		Weight:       WeightNumeric,
		Workers:      4,
		MaxExpansion: 1 << 20,
		Log: Log{
			Level:      zerolog.LevelInfoValue,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Parse overlays the YAML document data on Default; keys absent from data
// keep their default values. The result is not validated.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing yaml: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	return Parse(data)
}

// Validate reports the first out-of-range value as ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Depth < 0:
		return fmt.Errorf("%w: depth cannot be negative (%d)", ErrInvalidConfig, c.Depth)
	case c.Weight != WeightNumeric && c.Weight != WeightUnit:
		return fmt.Errorf("%w: unknown weight %q", ErrInvalidConfig, c.Weight)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, c.Workers)
	case c.MaxExpansion <= 0:
		return fmt.Errorf("%w: max-expansion must be positive (%d)", ErrInvalidConfig, c.MaxExpansion)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}
