// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/application-customizer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile  string `json:"profile,omitempty"`  // Path to user profile JSON file
	Analysis string `json:"analysis,omitempty"` // Path to job description analysis JSON file
	Template string `json:"template,omitempty"` // Path to template structure JSON file
	Output   string `json:"output,omitempty"`   // Path to write generated content to

	// Targeting
	Country     string `json:"country,omitempty"`      // Target country for cultural adaptation
	ContentType string `json:"content_type,omitempty"` // Content type to generate

	// Behavior
	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"` // Anthropic API key
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`    // Gemini API key
	DatabaseURL     string `json:"database_url,omitempty"`      // PostgreSQL connection URL
	Verbose         bool   `json:"verbose,omitempty"`           // Print detailed reports
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.ContentType != "" && !types.ContentType(c.ContentType).Valid() {
		return fmt.Errorf("config error: unknown content_type %q", c.ContentType)
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Analysis != "" {
		if _, err := os.Stat(c.Analysis); os.IsNotExist(err) {
			return fmt.Errorf("config error: analysis file not found: %s", c.Analysis)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Analysis == "" {
		result.Analysis = defaults.Analysis
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.ContentType == "" {
		result.ContentType = defaults.ContentType
	}
	if result.AnthropicAPIKey == "" {
		result.AnthropicAPIKey = defaults.AnthropicAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
