// Package config defines the optional YAML configuration shared by both
// converter variants. The file supplies defaults only; command-line flags
// always win.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bin2c/bin2c/internal/encoder"
)

// DefaultPath is the configuration file consulted when no --config flag is
// given. A missing file is not an error.
const DefaultPath = "bin2c.yaml"

// Config represents the top-level configuration structure.
type Config struct {
	// Naming supplies default symbol name parts.
	Naming NamingConfig `yaml:"naming"`
	// Output controls the generated artifacts.
	Output OutputConfig `yaml:"output"`
	// Encoder tunes the streaming encoder.
	Encoder EncoderConfig `yaml:"encoder"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// NamingConfig supplies default name parts used when the corresponding
// flags are absent.
type NamingConfig struct {
	// Prefix is prepended to the array name.
	Prefix string `yaml:"prefix"`
	// Suffix is appended to the array name.
	Suffix string `yaml:"suffix"`
	// LengthSuffix is the default length-macro suffix for global scope.
	LengthSuffix string `yaml:"length_suffix"`
}

// OutputConfig controls the generated artifacts.
type OutputConfig struct {
	// ElementType is the C element type of the array.
	ElementType string `yaml:"element_type"`
	// Atomic writes each artifact to a temporary path and renames it onto
	// the target only on success, instead of leaving partial artifacts
	// behind on failure.
	Atomic bool `yaml:"atomic"`
}

// EncoderConfig tunes the streaming encoder.
type EncoderConfig struct {
	// BlockSize is the read block size in bytes. Must be a power of two of
	// at least 512.
	BlockSize int `yaml:"block_size"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads the configuration at path. A missing file yields the defaults;
// an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
//
// Parameters:
//   - cfg: The Config object to modify.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.ElementType == "" {
		cfg.Output.ElementType = "unsigned char const"
	}
	if cfg.Encoder.BlockSize == 0 {
		cfg.Encoder.BlockSize = encoder.DefaultBlockSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors.
//
// Parameters:
//   - cfg: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(cfg *Config) error {
	if bs := cfg.Encoder.BlockSize; bs < encoder.MinBlockSize || bs&(bs-1) != 0 {
		return fmt.Errorf("invalid encoder block_size: %d (must be a power of two of at least %d)", bs, encoder.MinBlockSize)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
	}

	return nil
}
