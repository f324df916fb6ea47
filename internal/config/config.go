// Package config provides configuration types and defaults for organon.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/organlabs/organon/internal/log"
	"github.com/organlabs/organon/internal/tracing"
)

// Config holds all configuration options for organon.
type Config struct {
	// CatalogPath points at an external catalog YAML file. Empty means the
	// embedded default catalog.
	CatalogPath string `mapstructure:"catalog_path"`

	// DefaultSector initializes new sessions when no --sector flag is given.
	DefaultSector string `mapstructure:"default_sector"`

	// AllowUndeclaredCells permits activating cell ids that appear in no
	// sector of the catalog.
	AllowUndeclaredCells bool `mapstructure:"allow_undeclared_cells"`

	// AutoReload re-reads the catalog file when it changes on disk. Only
	// meaningful together with catalog_path and watch-capable commands.
	AutoReload bool `mapstructure:"auto_reload"`

	// LogFile appends engine logs to the given file. Empty disables
	// file logging; --debug logs to stderr regardless.
	LogFile string `mapstructure:"log_file"`

	Tracing tracing.Config `mapstructure:"tracing"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/organon/traces/traces.jsonl or empty string if home dir
// is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "organon", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		CatalogPath:          "",
		DefaultSector:        "",
		AllowUndeclaredCells: true,
		AutoReload:           true,
		LogFile:              "",
		Tracing: tracing.Config{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the configuration for errors. Empty values fall back to
// defaults and are always valid.
func Validate(cfg Config) error {
	if cfg.CatalogPath != "" {
		if info, err := os.Stat(cfg.CatalogPath); err != nil {
			return fmt.Errorf("catalog_path: %w", err)
		} else if info.IsDir() {
			return fmt.Errorf("catalog_path %q is a directory, want a YAML file", cfg.CatalogPath)
		}
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tc tracing.Config) error {
	if tc.SampleRate < 0.0 || tc.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tc.SampleRate)
	}

	if tc.Exporter != "" {
		switch tc.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tc.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tc.Enabled {
		if tc.Exporter == "file" && tc.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tc.Exporter == "otlp" && tc.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Organon Configuration

# Path to an external catalog file (default: built-in catalog)
# catalog_path: /path/to/catalog.yaml

# Sector to initialize when no --sector flag is given
# default_sector: retail

# Allow activating cells that are not declared in any sector (default: true)
allow_undeclared_cells: true

# Re-read an external catalog when it changes on disk (default: true)
# Only applies to watch-capable commands with catalog_path set.
auto_reload: true

# Append engine logs to a file (default: disabled)
# log_file: ~/.config/organon/organon.log

# Tracing configuration
# Enables end-to-end visibility into composition operations
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/organon/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1  # Sample 10% of traces
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
