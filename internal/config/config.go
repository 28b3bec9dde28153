// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Export
	Template  string `json:"template,omitempty"`   // Template id used for HTML and PDF output
	Mode      string `json:"mode,omitempty"`       // Export mode: normal or ats
	OutputDir string `json:"output_dir,omitempty"` // Directory artifacts are written to

	// Printing
	ChromePath          string `json:"chrome_path,omitempty"`           // Chrome/Chromium binary
	PrintTimeoutSeconds int    `json:"print_timeout_seconds,omitempty"` // Per-job print timeout

	// Server
	Port              int `json:"port,omitempty"`                // HTTP listen port
	StagingTTLSeconds int `json:"staging_ttl_seconds,omitempty"` // Lifetime of staged downloads

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Template:            "corporate",
		Mode:                string(types.ModeNormal),
		OutputDir:           ".",
		PrintTimeoutSeconds: 60,
		Port:                8080,
		StagingTTLSeconds:   120,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays CHROME_PATH, RESUME_EXPORT_MODE and PORT onto empty fields
func (c *Config) ApplyEnv() error {
	if c.ChromePath == "" {
		c.ChromePath = os.Getenv("CHROME_PATH")
	}
	if c.Mode == "" {
		c.Mode = os.Getenv("RESUME_EXPORT_MODE")
	}
	if c.Port == 0 {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config error: PORT must be a number, got %q", v)
			}
			c.Port = port
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; defaults fill them after merging.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := types.ParseExportMode(c.Mode); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.PrintTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'print_timeout_seconds' must be non-negative")
	}
	if c.StagingTTLSeconds < 0 {
		return fmt.Errorf("config error: 'staging_ttl_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	if result.PrintTimeoutSeconds == 0 {
		result.PrintTimeoutSeconds = defaults.PrintTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StagingTTLSeconds == 0 {
		result.StagingTTLSeconds = defaults.StagingTTLSeconds
	}

	// Bools cannot distinguish unset from false; CLI flags always win for them

	return result
}

// ExportMode returns the parsed export mode, normal when unset
func (c *Config) ExportMode() (types.ExportMode, error) {
	if c.Mode == "" {
		return types.ModeNormal, nil
	}
	return types.ParseExportMode(c.Mode)
}

// PrintTimeout returns the print timeout as a duration
func (c *Config) PrintTimeout() time.Duration {
	return time.Duration(c.PrintTimeoutSeconds) * time.Second
}

// StagingTTL returns the staged-download lifetime as a duration
func (c *Config) StagingTTL() time.Duration {
	return time.Duration(c.StagingTTLSeconds) * time.Second
}
