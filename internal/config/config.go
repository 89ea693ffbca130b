// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Checks           string `yaml:"checks"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
		Platform         string `yaml:"platform"`
	} `yaml:"defaults"`

	// Reference lookup settings
	Lookup struct {
		Enabled        bool   `yaml:"enabled"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
		MaxRetries     int    `yaml:"max_retries"`
	} `yaml:"lookup"`

	// Aggregation weight overrides keyed by check name
	Weights map[string]float64 `yaml:"weights"`

	// Validation record store settings
	Records struct {
		File       string `yaml:"file"`
		MaxEntries int    `yaml:"max_entries"`
	} `yaml:"records"`

	// Web dashboard settings
	Web struct {
		Port int `yaml:"port"`
	} `yaml:"web"`

	// Profiles for different validation scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a validation profile with specific settings
type Profile struct {
	Format           string             `yaml:"format"`
	ConfidenceLevels string             `yaml:"confidence_levels"`
	Checks           string             `yaml:"checks"`
	Verbose          bool               `yaml:"verbose"`
	Debug            bool               `yaml:"debug"`
	NoColor          bool               `yaml:"no_color"`
	NoLookup         bool               `yaml:"no_lookup"`
	Description      string             `yaml:"description"`
	Weights          map[string]float64 `yaml:"weights"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
		Weights:  make(map[string]float64),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Checks = "all"
	config.Defaults.Platform = "manual"

	config.Lookup.Enabled = true
	config.Lookup.BaseURL = "https://en.wikipedia.org"
	config.Lookup.TimeoutSeconds = 8
	config.Lookup.MaxRetries = 2

	config.Records.File = "validation-records.yaml"
	config.Records.MaxEntries = 500

	config.Web.Port = 8080

	// Add default triage profile: fast structural checks, no network
	config.Profiles["triage"] = Profile{
		Format:           "text",
		ConfidenceLevels: "high,medium",
		Checks:           "error_keywords,response_length,sensitive_keywords",
		NoColor:          true,
		NoLookup:         true,
		Description:      "Fast structural checks without reference lookups",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store defaults that YAML unmarshaling would zero when absent
	defaultLookupEnabled := config.Lookup.Enabled

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file
	if !containsField(data, "lookup", "enabled") {
		config.Lookup.Enabled = defaultLookupEnabled
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks a loaded configuration for unusable values.
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "", "text", "json", "csv", "yaml":
	default:
		return fmt.Errorf("unknown output format: %s", config.Defaults.Format)
	}

	for name, w := range config.Weights {
		if w < 0 {
			return fmt.Errorf("weight for %s must be non-negative, got %v", name, w)
		}
	}
	for profileName, profile := range config.Profiles {
		for name, w := range profile.Weights {
			if w < 0 {
				return fmt.Errorf("profile %s: weight for %s must be non-negative, got %v", profileName, name, w)
			}
		}
	}

	if config.Lookup.TimeoutSeconds < 0 {
		return fmt.Errorf("lookup timeout must be non-negative, got %d", config.Lookup.TimeoutSeconds)
	}
	if config.Records.MaxEntries < 0 {
		return fmt.Errorf("records max_entries must be non-negative, got %d", config.Records.MaxEntries)
	}
	if config.Web.Port < 0 || config.Web.Port > 65535 {
		return fmt.Errorf("web port out of range: %d", config.Web.Port)
	}

	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	for _, name := range []string{
		"config.yaml",
		"parrot.yaml",
		"parrot.yml",
		".parrot-check.yaml",
		".parrot-check.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	// Explicit directory override
	if configDir := os.Getenv("PARROT_CONFIG_DIR"); configDir != "" {
		configFile := filepath.Join(configDir, "config.yaml")
		if fileExists(configFile) {
			return configFile
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Legacy locations in home directory
	for _, name := range []string{".parrot.yaml", ".parrot.yml"} {
		homeConfig := filepath.Join(home, name)
		if fileExists(homeConfig) {
			return homeConfig
		}
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		xdgConfigFile := filepath.Join(xdgConfig, "parrot-check", name)
		if fileExists(xdgConfigFile) {
			return xdgConfigFile
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// EffectiveWeights merges global weight overrides with profile overrides,
// profile winning. Returns nil when neither defines any.
func (c *Config) EffectiveWeights(profile *Profile) map[string]float64 {
	if len(c.Weights) == 0 && (profile == nil || len(profile.Weights) == 0) {
		return nil
	}
	merged := make(map[string]float64, len(c.Weights))
	for name, w := range c.Weights {
		merged[name] = w
	}
	if profile != nil {
		for name, w := range profile.Weights {
			merged[name] = w
		}
	}
	return merged
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}
