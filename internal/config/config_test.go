// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") returned error: %v", err)
	}

	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format text, got %s", cfg.Defaults.Format)
	}
	if cfg.Defaults.Checks != "all" {
		t.Errorf("expected default checks all, got %s", cfg.Defaults.Checks)
	}
	if !cfg.Lookup.Enabled {
		t.Error("expected lookup enabled by default")
	}
	if cfg.Lookup.BaseURL == "" {
		t.Error("expected a default lookup base URL")
	}
	if cfg.Records.MaxEntries != 500 {
		t.Errorf("expected default records max_entries 500, got %d", cfg.Records.MaxEntries)
	}
	if cfg.GetProfile("triage") == nil {
		t.Error("expected built-in triage profile")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
defaults:
  format: json
  checks: error_keywords,factual_accuracy
lookup:
  base_url: http://localhost:9999
  timeout_seconds: 3
weights:
  factual_accuracy: 0.6
profiles:
  strict:
    description: Strict profile
    confidence_levels: high
    weights:
      error_keywords: 0.3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Defaults.Format)
	}
	if cfg.Lookup.BaseURL != "http://localhost:9999" {
		t.Errorf("unexpected lookup base URL: %s", cfg.Lookup.BaseURL)
	}
	// lookup.enabled absent from the file must stay at its default
	if !cfg.Lookup.Enabled {
		t.Error("lookup.enabled should default to true when absent")
	}
	if cfg.Weights["factual_accuracy"] != 0.6 {
		t.Errorf("expected weight override 0.6, got %v", cfg.Weights["factual_accuracy"])
	}

	profile := cfg.GetProfile("strict")
	if profile == nil {
		t.Fatal("expected strict profile")
	}
	merged := cfg.EffectiveWeights(profile)
	if merged["factual_accuracy"] != 0.6 || merged["error_keywords"] != 0.3 {
		t.Errorf("unexpected merged weights: %v", merged)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative weight", "weights:\n  error_keywords: -0.5\n"},
		{"bad format", "defaults:\n  format: xml\n"},
		{"bad port", "web:\n  port: 99999\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
