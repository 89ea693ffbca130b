// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package professionalclaims

import (
	"fmt"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// Validator flags professional or institutional claims made about a person.
// Titles and affiliations are the claims most often wrong in scraped chat
// responses, so when the question is about a Person they always warrant
// manual verification.
type Validator struct {
	keywords []string
	observer *observability.StandardObserver
}

// NewValidator creates the professional-claims validator with its fixed
// profession/institution keyword list.
func NewValidator() *Validator {
	return &Validator{
		keywords: []string{
			"doctor", "physician", "surgeon", "professor", "scientist",
			"physicist", "chemist", "biologist", "mathematician", "engineer",
			"lawyer", "attorney", "judge", "nurse", "ceo", "founder",
			"president", "director", "minister", "university", "institute",
			"hospital", "laboratory", "nobel", "phd",
		},
	}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckProfessional
}

// Validate implements detector.Validator. The check needs the entity type
// derived from the question, so it is omitted when the question is missing.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	if strings.TrimSpace(question) == "" {
		return detector.Result{}, false
	}

	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("professionalclaims_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckProfessional,
		Pass:     true,
		Score:    0.92,
		Details:  "No professional claims detected",
		Severity: detector.SeverityInfo,
	}

	lower := strings.ToLower(response)
	var matched string
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			matched = kw
			break
		}
	}

	if matched != "" {
		if entity.EntityType == detector.EntityPerson {
			result.Pass = false
			result.Score = 0.35
			result.Severity = detector.SeverityWarn
			result.Details = fmt.Sprintf("Professional claim %q about a person requires verification", matched)
		} else {
			result.Score = 0.82
			result.Details = fmt.Sprintf("Professional claim %q not tied to a person entity", matched)
		}
		result.Metadata = map[string]any{
			"keyword":     matched,
			"entity_type": string(entity.EntityType),
		}
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
