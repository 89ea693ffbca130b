// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"context"
	"time"
)

// Severity classifies how serious a validator finding is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
)

// EntityType is the coarse classification of what a question is asking about.
type EntityType string

const (
	EntityPerson                 EntityType = "Person"
	EntityPersonalRelationship   EntityType = "PersonalRelationship"
	EntityPersonalCharacteristic EntityType = "PersonalCharacteristic"
	EntityCapital                EntityType = "Capital"
	EntityCountry                EntityType = "Country"
	EntityGeneral                EntityType = "General"
)

// GeneralQuery is the sentinel search query emitted when no entity rule matches.
const GeneralQuery = "General information"

// Sentinel snippets a Lookup returns instead of reference text.
const (
	LookupNotFound = "No specific information found from multiple sources"
	LookupFailed   = "Search failed - manual review needed"
)

// Stable validator names. They key the aggregation weight table and appear
// verbatim in serialized reports, so they must not change.
const (
	CheckErrorKeywords  = "error_keywords"
	CheckResponseLength = "response_length"
	CheckSensitive      = "sensitive_keywords"
	CheckProfessional   = "professional_claims"
	CheckRelationship   = "personal_relationship_validation"
	CheckCharacteristic = "personal_characteristic_validation"
	CheckFactual        = "factual_accuracy"
)

// Pair is one captured question/response exchange.
type Pair struct {
	Question  string    `json:"question" yaml:"question"`
	Response  string    `json:"response" yaml:"response"`
	Platform  string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// EntityInfo is the entity extractor's classification of a question.
// Derived purely from the question text and recomputed on every run.
type EntityInfo struct {
	Query                string     `json:"query" yaml:"query"`
	EntityType           EntityType `json:"entity_type" yaml:"entity_type"`
	MatchWeight          float64    `json:"match_weight" yaml:"match_weight"`
	RequiresVerification bool       `json:"requires_verification" yaml:"requires_verification"`
	StrictValidation     bool       `json:"strict_validation" yaml:"strict_validation"`
	IsPersonalValidation bool       `json:"is_personal_validation" yaml:"is_personal_validation"`
}

// Result is one validator's judgment on a pair. Score is normalized to [0,1].
type Result struct {
	Name     string         `json:"name" yaml:"name"`
	Pass     bool           `json:"pass" yaml:"pass"`
	Score    float64        `json:"score" yaml:"score"`
	Details  string         `json:"details" yaml:"details"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Report is the aggregate verdict over all validators for one pair.
type Report struct {
	IsValid                      bool       `json:"is_valid" yaml:"is_valid"`
	Confidence                   float64    `json:"confidence" yaml:"confidence"`
	Issues                       []string   `json:"issues" yaml:"issues"`
	Suggestions                  []string   `json:"suggestions" yaml:"suggestions"`
	ExternalVerificationRequired bool       `json:"external_verification_required" yaml:"external_verification_required"`
	Validators                   []Result   `json:"validators" yaml:"validators"`
	Notes                        string     `json:"notes" yaml:"notes"`
	Entity                       EntityInfo `json:"entity" yaml:"entity"`
}

// Validator is one independent check over a question/response pair. The
// returned bool reports whether a Result was emitted; false means the check
// was skipped because its required input was genuinely missing, and no
// Result may be fabricated for it.
type Validator interface {
	Name() string
	Validate(question, response string, entity EntityInfo) (Result, bool)
}

// Lookup fetches a best-effort reference snippet for a search query.
// Implementations return one of the Lookup* sentinels rather than an error
// when they can degrade gracefully; an error is reserved for transport
// failures the caller must absorb.
type Lookup interface {
	Lookup(ctx context.Context, query string) (string, error)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(ctx context.Context, query string) (string, error)

func (f LookupFunc) Lookup(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

// ConfidenceLevel buckets a [0,1] confidence for display and filtering.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.75:
		return "HIGH"
	case confidence >= 0.5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
