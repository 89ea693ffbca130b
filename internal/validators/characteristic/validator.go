// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package characteristic

import (
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// Validator handles questions about personal attributes (age, height, name,
// naam, umar). Like relationship claims these are private facts the
// assistant has no way to confirm, but a wrong age is less consequential
// than a fabricated relationship, so failures are warn rather than critical.
type Validator struct {
	observer *observability.StandardObserver
}

// NewValidator creates the personal-characteristic validator.
func NewValidator() *Validator {
	return &Validator{}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckCharacteristic
}

// Validate implements detector.Validator. Omitted when the question is missing.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	if strings.TrimSpace(question) == "" {
		return detector.Result{}, false
	}

	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("characteristic_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckCharacteristic,
		Pass:     true,
		Score:    0.9,
		Details:  "No personal characteristic content",
		Severity: detector.SeverityInfo,
	}

	if entity.EntityType == detector.EntityPersonalCharacteristic {
		if entity.IsPersonalValidation {
			result.Pass = false
			result.Score = 0.3
			result.Severity = detector.SeverityWarn
			result.Details = "Question asks to confirm a private personal detail; not externally verifiable"
		} else {
			result.Score = 0.7
			result.Details = "Personal characteristic mentioned without a confirmation request"
		}
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
