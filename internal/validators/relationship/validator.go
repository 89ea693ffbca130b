// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package relationship

import (
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// Validator handles questions about the user's own relationships ("meri dost
// ki...", "my brother..."). An assistant cannot know anything about the
// user's private relations, so a confirmation-seeking question of this kind
// is inherently unverifiable.
type Validator struct {
	observer *observability.StandardObserver
}

// NewValidator creates the personal-relationship validator.
func NewValidator() *Validator {
	return &Validator{}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckRelationship
}

// Validate implements detector.Validator. Omitted when the question is
// missing, since the judgment rests entirely on the question's entity type.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	if strings.TrimSpace(question) == "" {
		return detector.Result{}, false
	}

	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("relationship_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckRelationship,
		Pass:     true,
		Score:    0.9,
		Details:  "No personal relationship content",
		Severity: detector.SeverityInfo,
	}

	if entity.EntityType == detector.EntityPersonalRelationship {
		if entity.IsPersonalValidation {
			result.Pass = false
			result.Score = 0.3
			result.Severity = detector.SeverityCritical
			result.Details = "Question asks to confirm a private relationship claim; not externally verifiable"
		} else {
			result.Score = 0.7
			result.Details = "Personal relationship mentioned without a confirmation request"
		}
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
