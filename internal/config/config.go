// Package config provides configuration for the cleaning pipeline. The
// cleaning rules (exclusion sets, platform alias table) live here rather
// than as constants in the pipeline so they stay independently testable
// and extensible.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"logscrub/internal/models"
)

// Configuration validation errors.
var (
	ErrMissingInputPath    = errors.New("pipeline.input_path is required")
	ErrMissingOutputPath   = errors.New("pipeline.output_path is required")
	ErrNoPlatformAliases   = errors.New("rules.platform_aliases must not be empty")
	ErrBadAliasTarget      = errors.New("rules.platform_aliases values must be one of: Android, iOS, Web, Other")
	ErrNegativePreviewRows = errors.New("rules.preview_rows must be non-negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Features FeaturesConfig `yaml:"features"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig holds the source and destination paths plus the cleaning
// rules.
type PipelineConfig struct {
	InputPath  string `yaml:"input_path"`
	OutputPath string `yaml:"output_path"`
	Rules      Rules  `yaml:"rules"`
}

// Rules are the externalized cleaning rules.
type Rules struct {
	ExcludedEvents  []string          `yaml:"excluded_events"`
	InvalidUserIDs  []string          `yaml:"invalid_user_ids"`
	PlatformAliases map[string]string `yaml:"platform_aliases"`
	PreviewRows     int               `yaml:"preview_rows"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	EnableCleaningPreview bool `yaml:"enable_cleaning_preview"`
	StrictValidation      bool `yaml:"strict_validation"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration, including the standard
// cleaning rules.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputPath:  "data/raw/dirty_logs.txt",
			OutputPath: "data/processed/cleaned_data.csv",
			Rules: Rules{
				ExcludedEvents: []string{"system_heartbeat", "ad_load"},
				InvalidUserIDs: []string{"", "guest"},
				PlatformAliases: map[string]string{
					"android": "Android",
					"Android": "Android",
					"google":  "Android",
					"ios":     "iOS",
					"iOS":     "iOS",
					"Apple":   "iOS",
					"web":     "Web",
					"WebApp":  "Web",
				},
				PreviewRows: 5,
			},
		},
		Features: FeaturesConfig{
			EnableCleaningPreview: true,
			StrictValidation:      false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults, so a
// partial file only overrides what it names.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.InputPath == "" {
		return ErrMissingInputPath
	}
	if c.Pipeline.OutputPath == "" {
		return ErrMissingOutputPath
	}

	if len(c.Pipeline.Rules.PlatformAliases) == 0 {
		return ErrNoPlatformAliases
	}
	for alias, canonical := range c.Pipeline.Rules.PlatformAliases {
		switch models.Platform(canonical) {
		case models.PlatformAndroid, models.PlatformIOS, models.PlatformWeb, models.PlatformOther:
		default:
			return fmt.Errorf("%w: %q maps to %q", ErrBadAliasTarget, alias, canonical)
		}
	}

	if c.Pipeline.Rules.PreviewRows < 0 {
		return ErrNegativePreviewRows
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}
