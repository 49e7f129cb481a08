// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/bachflower-advisor/internal/scoring"
	"github.com/jonathan/bachflower-advisor/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Sources
	Catalog     string `json:"catalog,omitempty"`      // Path to catalog JSON file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Scoring
	Parameters *types.ScoringParameters `json:"parameters,omitempty"` // Weights; nil means defaults

	// Output
	HideUnmatched bool `json:"hide_unmatched,omitempty"` // Omit remedies without symptom matches from rankings
	Limit         int  `json:"limit,omitempty"`          // Maximum ranked remedies, 0 for all
	Verbose       bool `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	// Weights missing from "parameters" keep their defaults
	params := scoring.DefaultParameters()
	cfg := Config{Parameters: &params}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Catalog != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'catalog' and 'database_url' are mutually exclusive")
	}

	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}

	if c.Parameters != nil {
		if err := scoring.ValidateParameters(*c.Parameters); err != nil {
			return fmt.Errorf("config error: 'parameters': %w", err)
		}
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}

	if result.Parameters == nil {
		if defaults.Parameters != nil {
			params := *defaults.Parameters
			result.Parameters = &params
		} else {
			params := scoring.DefaultParameters()
			result.Parameters = &params
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
