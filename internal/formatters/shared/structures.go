// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"parrot-check/internal/detector"
	"parrot-check/internal/formatters"
)

// Response represents the top-level structure for JSON/YAML output
type Response struct {
	Results []ResultView `json:"results" yaml:"results"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// ResultView is one entry flattened for serialization
type ResultView struct {
	Question                     string            `json:"question" yaml:"question"`
	Response                     string            `json:"response" yaml:"response"`
	Platform                     string            `json:"platform,omitempty" yaml:"platform,omitempty"`
	Timestamp                    string            `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	IsValid                      bool              `json:"is_valid" yaml:"is_valid"`
	Confidence                   float64           `json:"confidence" yaml:"confidence"`
	ConfidenceLevel              string            `json:"confidence_level" yaml:"confidence_level"`
	ExternalVerificationRequired bool              `json:"external_verification_required" yaml:"external_verification_required"`
	EntityType                   string            `json:"entity_type" yaml:"entity_type"`
	Issues                       []string          `json:"issues" yaml:"issues"`
	Suggestions                  []string          `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Notes                        string            `json:"notes" yaml:"notes"`
	Validators                   []detector.Result `json:"validators,omitempty" yaml:"validators,omitempty"`
}

// Summary aggregates the exported set
type Summary struct {
	Total               int `json:"total" yaml:"total"`
	Valid               int `json:"valid" yaml:"valid"`
	Invalid             int `json:"invalid" yaml:"invalid"`
	NeedingVerification int `json:"needing_verification" yaml:"needing_verification"`
}

// FilterByConfidence filters entries based on confidence level settings
func FilterByConfidence(entries []formatters.Entry, options formatters.FormatterOptions) []formatters.Entry {
	if len(options.ConfidenceLevel) == 0 {
		return entries
	}
	var filtered []formatters.Entry
	for _, entry := range entries {
		if options.ConfidenceLevel[detector.ConfidenceLevel(entry.Report.Confidence)] {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Convert flattens entries into the serializable response structure
func Convert(entries []formatters.Entry, options formatters.FormatterOptions) Response {
	response := Response{Results: []ResultView{}}

	for _, entry := range entries {
		view := ResultView{
			Question:                     entry.Question,
			Response:                     entry.Response,
			Platform:                     entry.Platform,
			IsValid:                      entry.Report.IsValid,
			Confidence:                   entry.Report.Confidence,
			ConfidenceLevel:              detector.ConfidenceLevel(entry.Report.Confidence),
			ExternalVerificationRequired: entry.Report.ExternalVerificationRequired,
			EntityType:                   string(entry.Report.Entity.EntityType),
			Issues:                       entry.Report.Issues,
			Suggestions:                  entry.Report.Suggestions,
			Notes:                        entry.Report.Notes,
		}
		if !entry.Timestamp.IsZero() {
			view.Timestamp = entry.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		if options.Verbose {
			view.Validators = entry.Report.Validators
		}

		response.Results = append(response.Results, view)

		response.Summary.Total++
		if entry.Report.IsValid {
			response.Summary.Valid++
		} else {
			response.Summary.Invalid++
		}
		if entry.Report.ExternalVerificationRequired {
			response.Summary.NeedingVerification++
		}
	}

	return response
}
