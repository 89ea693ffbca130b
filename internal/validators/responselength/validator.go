// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package responselength

import (
	"fmt"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// minLength is the shortest response considered substantive.
const minLength = 10

// Validator flags responses too short to carry a real answer.
type Validator struct {
	observer *observability.StandardObserver
}

// NewValidator creates the response-length validator.
func NewValidator() *Validator {
	return &Validator{}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckResponseLength
}

// Validate implements detector.Validator. A missing response degrades to a
// neutral pass; length judgments only apply to content that exists.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("responselength_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckResponseLength,
		Pass:     true,
		Score:    0.92,
		Details:  fmt.Sprintf("Response length %d is adequate", len(response)),
		Severity: detector.SeverityInfo,
		Metadata: map[string]any{"length": len(response)},
	}

	switch {
	case response == "":
		result.Details = "Response missing; length check passed by default"
	case len(response) < minLength:
		result.Pass = false
		result.Score = 0.3
		result.Severity = detector.SeverityWarn
		result.Details = fmt.Sprintf("Response is very short (%d characters)", len(response))
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
