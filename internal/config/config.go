// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the screener configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Paths
	VocabularyPath string `json:"vocabulary,omitempty"` // Path to skill vocabulary JSON file
	UploadDir      string `json:"upload_dir,omitempty"` // Directory for uploaded resume files

	// Behavior
	NameStrategy string `json:"name_strategy,omitempty"` // "first-line" (default) or "entity"
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	switch c.NameStrategy {
	case "", "first-line", "entity":
	default:
		return fmt.Errorf("config error: 'name_strategy' must be \"first-line\" or \"entity\"")
	}

	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.NameStrategy == "" {
		result.NameStrategy = defaults.NameStrategy
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
