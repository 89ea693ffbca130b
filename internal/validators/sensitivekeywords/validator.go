// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sensitivekeywords

import (
	"fmt"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// Validator flags questions that solicit sensitive data. The earlier
// implementations of this check disagreed on polarity (one failed the check,
// one passed it while lowering the score); the canonical behavior is
// pass=false with critical severity when a sensitive keyword is present.
type Validator struct {
	keywords []string
	observer *observability.StandardObserver
}

// NewValidator creates the sensitive-keyword validator with its fixed keyword set.
func NewValidator() *Validator {
	return &Validator{
		keywords: []string{"password", "credit card", "ssn", "personal"},
	}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckSensitive
}

// Validate implements detector.Validator. The check inspects the question
// only; with no question there is nothing to judge, so the result is omitted.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	if strings.TrimSpace(question) == "" {
		return detector.Result{}, false
	}

	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("sensitivekeywords_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckSensitive,
		Pass:     true,
		Score:    0.9,
		Details:  "No sensitive keywords in question",
		Severity: detector.SeverityInfo,
	}

	lower := strings.ToLower(question)
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			result.Pass = false
			result.Score = 0.2
			result.Severity = detector.SeverityCritical
			result.Details = fmt.Sprintf("Question mentions sensitive topic %q", kw)
			result.Metadata = map[string]any{"keyword": kw}
			break
		}
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
