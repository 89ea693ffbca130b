// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package errorkeywords

import (
	"fmt"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
)

// Validator flags responses that contain refusal or failure language. A
// response apologizing or reporting an error is almost never a usable answer,
// so a hit is critical and scores near the floor.
type Validator struct {
	keywords []string
	observer *observability.StandardObserver
}

// NewValidator creates the error-keyword validator with its fixed keyword set.
func NewValidator() *Validator {
	return &Validator{
		keywords: []string{"error", "fail", "cannot", "unable", "sorry"},
	}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name implements detector.Validator.
func (v *Validator) Name() string {
	return detector.CheckErrorKeywords
}

// Validate implements detector.Validator. An empty response degrades to a
// neutral pass rather than omission: the check ran, it just had nothing to
// flag.
func (v *Validator) Validate(question, response string, entity detector.EntityInfo) (detector.Result, bool) {
	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("errorkeywords_validator", "validate")
	}

	result := detector.Result{
		Name:     detector.CheckErrorKeywords,
		Pass:     true,
		Score:    0.85,
		Details:  "No error keywords detected",
		Severity: detector.SeverityInfo,
	}

	lower := strings.ToLower(response)
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			result.Pass = false
			result.Score = 0.1
			result.Severity = detector.SeverityCritical
			result.Details = fmt.Sprintf("Response contains error indicator %q", kw)
			result.Metadata = map[string]any{"keyword": kw}
			break
		}
	}

	if response == "" {
		result.Details = "Response missing; error-keyword check passed by default"
	}

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}
